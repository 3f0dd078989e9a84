// internal/adapter/storage/profile_store.go

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"odyssey/internal/domain/journal"
)

// ProfileStore implements read access to profile records
type ProfileStore struct {
	db *pgxpool.Pool
}

// NewProfileStore creates a new profile store
func NewProfileStore(db *pgxpool.Pool) *ProfileStore {
	return &ProfileStore{
		db: db,
	}
}

// FindProfiles finds profiles whose username or full name matches the query
func (s *ProfileStore) FindProfiles(ctx context.Context, filter journal.ProfileFilter) ([]journal.Profile, error) {
	query := `
		SELECT id, username, full_name, avatar_url, bio, created_at
		FROM profiles
		WHERE username ILIKE $1 OR full_name ILIKE $1
		ORDER BY username
		LIMIT $2
	`

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(ctx, query, "%"+filter.Query+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var profiles []journal.Profile
	for rows.Next() {
		var p journal.Profile

		err := rows.Scan(
			&p.ID,
			&p.Username,
			&p.FullName,
			&p.AvatarURL,
			&p.Bio,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning profile: %w", err)
		}

		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profiles: %w", err)
	}

	return profiles, nil
}

// FindProfileByUsername resolves a single profile by username. A missing
// profile is not an error: callers use this to silently narrow searches.
func (s *ProfileStore) FindProfileByUsername(ctx context.Context, username string) (*journal.Profile, error) {
	query := `
		SELECT id, username, full_name, avatar_url, bio, created_at
		FROM profiles
		WHERE username ILIKE $1
		LIMIT 1
	`

	var p journal.Profile
	err := s.db.QueryRow(ctx, query, "%"+username+"%").Scan(
		&p.ID,
		&p.Username,
		&p.FullName,
		&p.AvatarURL,
		&p.Bio,
		&p.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error querying profile: %w", err)
	}

	return &p, nil
}

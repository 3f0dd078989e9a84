// internal/adapter/storage/post_store.go

package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v4/pgxpool"

	"odyssey/internal/domain/journal"
)

// PostStore implements read access to post records
type PostStore struct {
	db *pgxpool.Pool
}

// NewPostStore creates a new post store
func NewPostStore(db *pgxpool.Pool) *PostStore {
	return &PostStore{
		db: db,
	}
}

// FindPosts finds posts matching the filter
func (s *PostStore) FindPosts(ctx context.Context, filter journal.PostFilter) ([]journal.Post, error) {
	// Build dynamic query
	queryBuilder := strings.Builder{}
	queryBuilder.WriteString(`
		SELECT
			p.id, p.user_id, p.caption, p.category, p.location_name,
			p.latitude, p.longitude, p.city, p.country, p.address,
			p.images, p.likes_count, p.created_at,
			pr.id, pr.username, pr.full_name, pr.avatar_url
		FROM posts p
		LEFT JOIN profiles pr ON pr.id = p.user_id
		WHERE 1=1
	`)

	args := []interface{}{}
	argIndex := 1

	if filter.UserID != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND p.user_id = $%d", argIndex))
		args = append(args, filter.UserID)
		argIndex++
	}

	if filter.TextQuery != "" {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND (p.caption ILIKE $%d OR p.location_name ILIKE $%d)",
			argIndex, argIndex,
		))
		args = append(args, "%"+filter.TextQuery+"%")
		argIndex++
	}

	if filter.LocationName != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND p.location_name = $%d", argIndex))
		args = append(args, filter.LocationName)
		argIndex++
	}

	if filter.Category != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND p.category = $%d", argIndex))
		args = append(args, filter.Category)
		argIndex++
	}

	if filter.HasCoordinates {
		queryBuilder.WriteString(" AND p.latitude IS NOT NULL AND p.longitude IS NOT NULL")
	}

	if filter.HasLocationName {
		queryBuilder.WriteString(" AND p.location_name <> ''")
	}

	// Date bounds are inclusive
	if filter.CreatedFrom != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND p.created_at >= $%d", argIndex))
		args = append(args, *filter.CreatedFrom)
		argIndex++
	}

	if filter.CreatedTo != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND p.created_at <= $%d", argIndex))
		args = append(args, *filter.CreatedTo)
		argIndex++
	}

	switch filter.Sort {
	case journal.SortPopular, journal.SortTrending:
		queryBuilder.WriteString(" ORDER BY p.likes_count DESC, p.created_at DESC")
	default:
		queryBuilder.WriteString(" ORDER BY p.created_at DESC")
	}

	if filter.Limit > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", argIndex))
		args = append(args, filter.Limit)
		argIndex++
	}

	if filter.Offset > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" OFFSET $%d", argIndex))
		args = append(args, filter.Offset)
		argIndex++
	}

	rows, err := s.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var posts []journal.Post
	for rows.Next() {
		var p journal.Post
		var lat, lng *float64
		var city, country, address *string
		var authorID, username, fullName, avatarURL *string

		err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.Caption,
			&p.Category,
			&p.LocationName,
			&lat,
			&lng,
			&city,
			&country,
			&address,
			&p.Images,
			&p.LikesCount,
			&p.CreatedAt,
			&authorID,
			&username,
			&fullName,
			&avatarURL,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning post: %w", err)
		}

		// Set location if any geodata is present
		if lat != nil || lng != nil || city != nil || country != nil || address != nil {
			p.Location = &journal.Location{
				Latitude:  lat,
				Longitude: lng,
				City:      stringValue(city),
				Country:   stringValue(country),
				Address:   stringValue(address),
			}
		}

		// Set author if the profile join matched
		if authorID != nil {
			p.Author = &journal.Profile{
				ID:        *authorID,
				Username:  stringValue(username),
				FullName:  stringValue(fullName),
				AvatarURL: stringValue(avatarURL),
			}
		}

		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return posts, nil
}

// SearchLocations aggregates matching posts by location name
func (s *PostStore) SearchLocations(ctx context.Context, query string, limit int) ([]journal.LocationSummary, error) {
	sql := `
		SELECT
			location_name,
			COUNT(*) AS post_count,
			MIN(latitude) AS latitude,
			MIN(longitude) AS longitude
		FROM posts
		WHERE location_name <> ''
		AND location_name ILIKE $1
		GROUP BY location_name
		ORDER BY post_count DESC
		LIMIT $2
	`

	rows, err := s.db.Query(ctx, sql, "%"+query+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var summaries []journal.LocationSummary
	for rows.Next() {
		var summary journal.LocationSummary

		err := rows.Scan(
			&summary.Name,
			&summary.PostCount,
			&summary.Latitude,
			&summary.Longitude,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning location: %w", err)
		}

		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locations: %w", err)
	}

	return summaries, nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

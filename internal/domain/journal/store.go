// internal/domain/journal/store.go

package journal

import (
	"context"
	"time"
)

// SortMode selects the ordering a post query is returned in.
type SortMode string

const (
	// SortRecent orders by created_at descending. This is the default.
	SortRecent SortMode = "recent"

	// SortPopular orders by likes_count descending.
	SortPopular SortMode = "popular"

	// SortTrending orders by likes_count descending over a restricted
	// recency window. The window restriction is applied by the caller
	// through CreatedFrom.
	SortTrending SortMode = "trending"
)

// PostFilter defines criteria for filtering posts. Zero values mean the
// criterion is not applied. Date bounds are inclusive.
type PostFilter struct {
	UserID          string
	TextQuery       string
	LocationName    string
	Category        string
	HasCoordinates  bool
	HasLocationName bool
	CreatedFrom     *time.Time
	CreatedTo       *time.Time
	Sort            SortMode
	Limit           int
	Offset          int
}

// ProfileFilter defines criteria for filtering profiles.
type ProfileFilter struct {
	Query string
	Limit int
}

// PostStore defines read access to post records. Ordering and pagination
// are pushed down to the store rather than reimplemented by callers.
type PostStore interface {
	FindPosts(ctx context.Context, filter PostFilter) ([]Post, error)
}

// ProfileStore defines read access to profile records.
type ProfileStore interface {
	FindProfiles(ctx context.Context, filter ProfileFilter) ([]Profile, error)

	// FindProfileByUsername resolves a single profile by username
	// substring match. A missing profile is (nil, nil), not an error.
	FindProfileByUsername(ctx context.Context, username string) (*Profile, error)
}

// LocationStore defines read access to per-location post aggregates.
type LocationStore interface {
	SearchLocations(ctx context.Context, query string, limit int) ([]LocationSummary, error)
}

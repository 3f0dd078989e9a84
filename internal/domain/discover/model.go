// internal/domain/discover/model.go

package discover

import (
	"context"
	"time"

	"odyssey/internal/domain/journal"
)

// TrendingLocation is a recency-weighted aggregate over recent posts sharing
// a location. PostCount and RecentPostCount are kept as separate fields for
// forward extensibility even though the single-window query keeps them equal.
type TrendingLocation struct {
	Name            string  `json:"name"`
	City            string  `json:"city"`
	Country         string  `json:"country"`
	PostCount       int     `json:"post_count"`
	RecentPostCount int     `json:"recent_post_count"`
	TrendScore      float64 `json:"trend_score"`
}

// Destination is a grouped-by-location-name aggregate used for the popular
// destinations and recommended places views.
type Destination struct {
	Name      string `json:"name"`
	City      string `json:"city"`
	Country   string `json:"country"`
	PostCount int    `json:"post_count"`
	ImageURL  string `json:"image_url,omitempty"`
}

// SearchFilter narrows a unified search.
type SearchFilter struct {
	Sort     journal.SortMode
	Username string
	Category string
	DateFrom *time.Time
	DateTo   *time.Time
}

// SearchResult is the fan-in of three independent queries. The arrays are
// not cross-referenced or deduplicated. Degraded lists the sections whose
// sub-query failed and was substituted with an empty result.
type SearchResult struct {
	Posts     []journal.Post            `json:"posts"`
	Users     []journal.Profile         `json:"users"`
	Locations []journal.LocationSummary `json:"locations"`
	Degraded  []string                  `json:"degraded,omitempty"`
}

// TrendSnapshot is a point-in-time trending view published on the event bus.
type TrendSnapshot struct {
	ID          string             `json:"id"`
	GeneratedAt time.Time          `json:"generated_at"`
	Locations   []TrendingLocation `json:"locations"`
}

// Service defines the discovery surface: unified search plus the aggregated
// trending and destination views.
type Service interface {
	// Search runs the post, user and location lookups concurrently and
	// combines their results.
	Search(ctx context.Context, query string, filter SearchFilter) (*SearchResult, error)

	// TrendingLocations scores locations over the trailing seven days.
	TrendingLocations(ctx context.Context, limit int) ([]TrendingLocation, error)

	// PopularDestinations groups all posts by location name.
	PopularDestinations(ctx context.Context, limit int) ([]Destination, error)

	// RecommendedPlaces groups recent posts by location name.
	RecommendedPlaces(ctx context.Context, limit int) ([]Destination, error)
}

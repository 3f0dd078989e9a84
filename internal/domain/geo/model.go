// internal/domain/geo/model.go

package geo

import (
	"context"

	"odyssey/internal/domain/journal"
)

// LocationCluster groups geotagged posts that share a cluster key. The
// coordinates are taken from the first post seen for the key and are never
// recomputed as more posts join the cluster.
type LocationCluster struct {
	ID           string         `json:"id"`
	Latitude     float64        `json:"latitude"`
	Longitude    float64        `json:"longitude"`
	PostCount    int            `json:"post_count"`
	Posts        []journal.Post `json:"posts"`
	City         string         `json:"city,omitempty"`
	Country      string         `json:"country,omitempty"`
	LocationName string         `json:"location_name"`
}

// MapCenter is the derived viewport center for a set of clusters.
type MapCenter struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ZoomDelta is the derived viewport span for a set of clusters.
type ZoomDelta struct {
	LatitudeDelta  float64 `json:"latitude_delta"`
	LongitudeDelta float64 `json:"longitude_delta"`
}

// MapView is the full map payload: clusters plus the viewport parameters
// derived from them. It is rebuilt from scratch on every request.
type MapView struct {
	Clusters []LocationCluster `json:"clusters"`
	Center   MapCenter         `json:"center"`
	Zoom     ZoomDelta         `json:"zoom"`
}

// Mapper defines the interface for building map views over geotagged posts.
type Mapper interface {
	// PostLocations fetches geotagged posts and clusters them into a map view.
	PostLocations(ctx context.Context) (*MapView, error)
}

// internal/service/geo/service.go

package geo

import (
	"context"
	"fmt"

	"odyssey/internal/domain/geo"
	"odyssey/internal/domain/journal"
)

// MapService implements the geo.Mapper interface over a post store.
type MapService struct {
	posts journal.PostStore
}

// NewMapService creates a new map service.
func NewMapService(posts journal.PostStore) *MapService {
	return &MapService{
		posts: posts,
	}
}

// PostLocations fetches all geotagged posts, clusters them, and derives the
// viewport parameters. The view is recomputed from scratch on every call;
// nothing is cached between requests.
func (s *MapService) PostLocations(ctx context.Context) (*geo.MapView, error) {
	posts, err := s.posts.FindPosts(ctx, journal.PostFilter{
		HasCoordinates: true,
		Sort:           journal.SortRecent,
	})
	if err != nil {
		return nil, fmt.Errorf("fetching post locations: %w", err)
	}

	clusters := GroupPostsByLocation(posts)

	return &geo.MapView{
		Clusters: clusters,
		Center:   CalculateMapCenter(clusters),
		Zoom:     CalculateZoomDelta(clusters),
	}, nil
}

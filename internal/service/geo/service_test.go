package geo

import (
	"context"
	"errors"
	"testing"

	"odyssey/internal/domain/journal"
)

type fakePostStore struct {
	posts      []journal.Post
	err        error
	lastFilter journal.PostFilter
}

func (f *fakePostStore) FindPosts(ctx context.Context, filter journal.PostFilter) ([]journal.Post, error) {
	f.lastFilter = filter
	return f.posts, f.err
}

func TestMapService_PostLocations_EmptyBackend(t *testing.T) {
	store := &fakePostStore{}
	service := NewMapService(store)

	view, err := service.PostLocations(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !store.lastFilter.HasCoordinates {
		t.Fatalf("expected the store query to be restricted to geotagged posts")
	}
	if len(view.Clusters) != 0 {
		t.Fatalf("expected no clusters, got %d", len(view.Clusters))
	}
	if view.Center.Latitude != 39.0 || view.Center.Longitude != 35.0 {
		t.Fatalf("expected fallback center, got %+v", view.Center)
	}
	if view.Zoom.LatitudeDelta != 5.0 || view.Zoom.LongitudeDelta != 5.0 {
		t.Fatalf("expected wide zoom, got %+v", view.Zoom)
	}
}

func TestMapService_PostLocations_StoreError(t *testing.T) {
	store := &fakePostStore{err: errors.New("connection refused")}
	service := NewMapService(store)

	if _, err := service.PostLocations(context.Background()); err == nil {
		t.Fatalf("expected error to propagate")
	}
}

func TestMapService_PostLocations_ClustersAndViewport(t *testing.T) {
	store := &fakePostStore{posts: []journal.Post{
		geotagged("a", 48.8566, 2.3522, "Paris", "France"),
		geotagged("b", 41.0082, 28.9784, "Istanbul", "Turkey"),
	}}
	service := NewMapService(store)

	view, err := service.PostLocations(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(view.Clusters) != 2 {
		t.Fatalf("expected 2 clusters, got %d", len(view.Clusters))
	}
	if view.Center.Latitude == 39.0 && view.Center.Longitude == 35.0 {
		t.Fatalf("expected computed center, got fallback")
	}
}

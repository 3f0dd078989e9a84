package discover

import (
	"context"
	"errors"
	"testing"
	"time"

	"odyssey/internal/domain/discover"
	"odyssey/internal/domain/journal"
)

type fakePostStore struct {
	posts      []journal.Post
	err        error
	called     bool
	lastFilter journal.PostFilter
}

func (f *fakePostStore) FindPosts(ctx context.Context, filter journal.PostFilter) ([]journal.Post, error) {
	f.called = true
	f.lastFilter = filter
	return f.posts, f.err
}

type fakeProfileStore struct {
	profiles     []journal.Profile
	byUsername   *journal.Profile
	err          error
	lastUsername string
}

func (f *fakeProfileStore) FindProfiles(ctx context.Context, filter journal.ProfileFilter) ([]journal.Profile, error) {
	return f.profiles, f.err
}

func (f *fakeProfileStore) FindProfileByUsername(ctx context.Context, username string) (*journal.Profile, error) {
	f.lastUsername = username
	return f.byUsername, f.err
}

type fakeLocationStore struct {
	locations []journal.LocationSummary
	err       error
	lastQuery string
	lastLimit int
}

func (f *fakeLocationStore) SearchLocations(ctx context.Context, query string, limit int) ([]journal.LocationSummary, error) {
	f.lastQuery = query
	f.lastLimit = limit
	return f.locations, f.err
}

func newTestService(posts *fakePostStore, profiles *fakeProfileStore, locations *fakeLocationStore) *Service {
	svc := NewService(posts, profiles, locations)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestSearch_FansOutAllSections(t *testing.T) {
	posts := &fakePostStore{posts: []journal.Post{{ID: "p1"}}}
	profiles := &fakeProfileStore{profiles: []journal.Profile{{ID: "u1"}}}
	locations := &fakeLocationStore{locations: []journal.LocationSummary{{Name: "Rome, Italy"}}}

	svc := newTestService(posts, profiles, locations)

	result, err := svc.Search(context.Background(), "rome", discover.SearchFilter{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(result.Posts) != 1 || len(result.Users) != 1 || len(result.Locations) != 1 {
		t.Fatalf("expected all sections populated, got %d/%d/%d",
			len(result.Posts), len(result.Users), len(result.Locations))
	}
	if len(result.Degraded) != 0 {
		t.Fatalf("expected no degraded sections, got %v", result.Degraded)
	}

	if posts.lastFilter.TextQuery != "rome" {
		t.Fatalf("expected text query rome, got %q", posts.lastFilter.TextQuery)
	}
	if posts.lastFilter.Limit != 20 {
		t.Fatalf("expected post cap 20, got %d", posts.lastFilter.Limit)
	}
	if locations.lastLimit != 10 {
		t.Fatalf("expected location cap 10, got %d", locations.lastLimit)
	}
}

func TestSearch_DegradedSectionDoesNotFailOthers(t *testing.T) {
	posts := &fakePostStore{posts: []journal.Post{{ID: "p1"}}}
	profiles := &fakeProfileStore{profiles: []journal.Profile{{ID: "u1"}}}
	locations := &fakeLocationStore{err: errors.New("connection refused")}

	svc := newTestService(posts, profiles, locations)

	result, err := svc.Search(context.Background(), "rome", discover.SearchFilter{})
	if err != nil {
		t.Fatalf("expected fail-soft search, got %v", err)
	}

	if len(result.Posts) != 1 || len(result.Users) != 1 {
		t.Fatalf("expected surviving sections populated, got %d/%d",
			len(result.Posts), len(result.Users))
	}
	if result.Locations == nil || len(result.Locations) != 0 {
		t.Fatalf("expected empty location section, got %v", result.Locations)
	}
	if len(result.Degraded) != 1 || result.Degraded[0] != "locations" {
		t.Fatalf("expected degraded [locations], got %v", result.Degraded)
	}
}

func TestSearch_UsernameFilterRestrictsPosts(t *testing.T) {
	posts := &fakePostStore{}
	profiles := &fakeProfileStore{byUsername: &journal.Profile{ID: "u42", Username: "wanderer"}}
	locations := &fakeLocationStore{}

	svc := newTestService(posts, profiles, locations)

	if _, err := svc.Search(context.Background(), "", discover.SearchFilter{Username: "wanderer"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if profiles.lastUsername != "wanderer" {
		t.Fatalf("expected username resolution for wanderer, got %q", profiles.lastUsername)
	}
	if posts.lastFilter.UserID != "u42" {
		t.Fatalf("expected posts restricted to u42, got %q", posts.lastFilter.UserID)
	}
}

func TestSearch_UnknownUsernameYieldsNoPosts(t *testing.T) {
	posts := &fakePostStore{posts: []journal.Post{{ID: "p1"}}}
	profiles := &fakeProfileStore{}
	locations := &fakeLocationStore{}

	svc := newTestService(posts, profiles, locations)

	result, err := svc.Search(context.Background(), "", discover.SearchFilter{Username: "ghost"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if posts.called {
		t.Fatalf("expected post query to be skipped for an unknown username")
	}
	if len(result.Posts) != 0 {
		t.Fatalf("expected no posts, got %d", len(result.Posts))
	}
	if len(result.Degraded) != 0 {
		t.Fatalf("expected silent empty result, got degraded %v", result.Degraded)
	}
}

func TestSearch_TrendingSortRestrictsWindow(t *testing.T) {
	posts := &fakePostStore{}
	svc := newTestService(posts, &fakeProfileStore{}, &fakeLocationStore{})

	if _, err := svc.Search(context.Background(), "", discover.SearchFilter{Sort: journal.SortTrending}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if posts.lastFilter.Sort != journal.SortTrending {
		t.Fatalf("expected trending sort, got %s", posts.lastFilter.Sort)
	}
	if posts.lastFilter.CreatedFrom == nil {
		t.Fatalf("expected trending sort to set a window start")
	}

	wantStart := time.Date(2026, 7, 25, 12, 0, 0, 0, time.UTC)
	if !posts.lastFilter.CreatedFrom.Equal(wantStart) {
		t.Fatalf("expected window start %v, got %v", wantStart, *posts.lastFilter.CreatedFrom)
	}
}

func TestSearch_DefaultSortIsRecent(t *testing.T) {
	posts := &fakePostStore{}
	svc := newTestService(posts, &fakeProfileStore{}, &fakeLocationStore{})

	if _, err := svc.Search(context.Background(), "", discover.SearchFilter{}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if posts.lastFilter.Sort != journal.SortRecent {
		t.Fatalf("expected default sort recent, got %s", posts.lastFilter.Sort)
	}
}

func TestTrendingLocations_FetchesWindowAndScores(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	posts := &fakePostStore{posts: []journal.Post{
		{LocationName: "A", CreatedAt: now},
		{LocationName: "A", CreatedAt: now},
		{LocationName: "B", CreatedAt: now.AddDate(0, 0, -6)},
	}}

	svc := newTestService(posts, &fakeProfileStore{}, &fakeLocationStore{})

	trending, err := svc.TrendingLocations(context.Background(), 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !posts.lastFilter.HasLocationName {
		t.Fatalf("expected the query restricted to named locations")
	}
	if posts.lastFilter.CreatedFrom == nil ||
		!posts.lastFilter.CreatedFrom.Equal(now.AddDate(0, 0, -7)) {
		t.Fatalf("expected trailing 7-day window, got %v", posts.lastFilter.CreatedFrom)
	}
	if len(trending) != 2 || trending[0].Name != "A" || trending[0].TrendScore != 14 {
		t.Fatalf("unexpected trending result %+v", trending)
	}
}

func TestPopularDestinations_AggregatesFullHistory(t *testing.T) {
	posts := &fakePostStore{posts: []journal.Post{
		{LocationName: "A", CreatedAt: time.Now()},
		{LocationName: "A", CreatedAt: time.Now()},
		{LocationName: "B", CreatedAt: time.Now()},
	}}

	svc := newTestService(posts, &fakeProfileStore{}, &fakeLocationStore{})

	destinations, err := svc.PopularDestinations(context.Background(), 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if posts.lastFilter.CreatedFrom != nil {
		t.Fatalf("expected no window restriction for destinations")
	}
	if len(destinations) != 2 || destinations[0].Name != "A" || destinations[0].PostCount != 2 {
		t.Fatalf("unexpected destinations %+v", destinations)
	}
}

func TestRecommendedPlaces_RestrictsToRecentWindow(t *testing.T) {
	posts := &fakePostStore{}
	svc := newTestService(posts, &fakeProfileStore{}, &fakeLocationStore{})

	if _, err := svc.RecommendedPlaces(context.Background(), 10); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	wantStart := time.Date(2026, 7, 2, 12, 0, 0, 0, time.UTC)
	if posts.lastFilter.CreatedFrom == nil || !posts.lastFilter.CreatedFrom.Equal(wantStart) {
		t.Fatalf("expected 30-day window start %v, got %v", wantStart, posts.lastFilter.CreatedFrom)
	}
}

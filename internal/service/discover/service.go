// internal/service/discover/service.go

package discover

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"odyssey/internal/domain/discover"
	"odyssey/internal/domain/journal"
)

const (
	postResultCap     = 20
	userResultCap     = 20
	locationResultCap = 10

	// recommendedWindowDays keeps the recommended places view to fresh
	// activity; popular destinations aggregate the full history.
	recommendedWindowDays = 30
)

// Service implements the discover.Service interface over the journal stores.
type Service struct {
	posts     journal.PostStore
	profiles  journal.ProfileStore
	locations journal.LocationStore

	// now is swappable for tests.
	now func() time.Time
}

// NewService creates a new discovery service.
func NewService(
	posts journal.PostStore,
	profiles journal.ProfileStore,
	locations journal.LocationStore,
) *Service {
	return &Service{
		posts:     posts,
		profiles:  profiles,
		locations: locations,
		now:       time.Now,
	}
}

// Search fans out the post, profile and location lookups concurrently and
// fans their results back in. A failed sub-query degrades to an empty
// section rather than failing the whole search; the section name is recorded
// in Degraded so callers can tell degradation apart from a legitimate empty
// result. Branches never cancel their siblings.
func (s *Service) Search(ctx context.Context, query string, filter discover.SearchFilter) (*discover.SearchResult, error) {
	var (
		wg sync.WaitGroup

		posts    []journal.Post
		users    []journal.Profile
		places   []journal.LocationSummary
		postsErr error
		usersErr error
		locsErr  error
	)

	wg.Add(3)

	go func() {
		defer wg.Done()
		posts, postsErr = s.searchPosts(ctx, query, filter)
	}()

	go func() {
		defer wg.Done()
		users, usersErr = s.profiles.FindProfiles(ctx, journal.ProfileFilter{
			Query: query,
			Limit: userResultCap,
		})
	}()

	go func() {
		defer wg.Done()
		places, locsErr = s.locations.SearchLocations(ctx, query, locationResultCap)
	}()

	wg.Wait()

	result := &discover.SearchResult{
		Posts:     posts,
		Users:     users,
		Locations: places,
	}

	if postsErr != nil {
		log.Printf("search: post query degraded: %v", postsErr)
		result.Posts = []journal.Post{}
		result.Degraded = append(result.Degraded, "posts")
	}
	if usersErr != nil {
		log.Printf("search: profile query degraded: %v", usersErr)
		result.Users = []journal.Profile{}
		result.Degraded = append(result.Degraded, "users")
	}
	if locsErr != nil {
		log.Printf("search: location query degraded: %v", locsErr)
		result.Locations = []journal.LocationSummary{}
		result.Degraded = append(result.Degraded, "locations")
	}

	// Empty sections are empty arrays, never null
	if result.Posts == nil {
		result.Posts = []journal.Post{}
	}
	if result.Users == nil {
		result.Users = []journal.Profile{}
	}
	if result.Locations == nil {
		result.Locations = []journal.LocationSummary{}
	}

	return result, nil
}

// searchPosts builds the post branch of a unified search. A username filter
// resolves to a single profile first; no matching profile silently yields no
// posts. The trending sort restricts to the trailing seven days in addition
// to ordering by likes — deliberately different from the recency-weighted
// trending locations view.
func (s *Service) searchPosts(ctx context.Context, query string, filter discover.SearchFilter) ([]journal.Post, error) {
	pf := journal.PostFilter{
		TextQuery:   query,
		Category:    filter.Category,
		CreatedFrom: filter.DateFrom,
		CreatedTo:   filter.DateTo,
		Sort:        filter.Sort,
		Limit:       postResultCap,
	}

	if pf.Sort == "" {
		pf.Sort = journal.SortRecent
	}

	if pf.Sort == journal.SortTrending {
		windowStart := s.now().AddDate(0, 0, -trendWindowDays)
		if pf.CreatedFrom == nil || windowStart.After(*pf.CreatedFrom) {
			pf.CreatedFrom = &windowStart
		}
	}

	if filter.Username != "" {
		profile, err := s.profiles.FindProfileByUsername(ctx, filter.Username)
		if err != nil {
			return nil, fmt.Errorf("resolving username filter: %w", err)
		}
		if profile == nil {
			return []journal.Post{}, nil
		}
		pf.UserID = profile.ID
	}

	posts, err := s.posts.FindPosts(ctx, pf)
	if err != nil {
		return nil, fmt.Errorf("querying posts: %w", err)
	}

	return posts, nil
}

// TrendingLocations fetches the trailing-seven-day post window and scores it.
func (s *Service) TrendingLocations(ctx context.Context, limit int) ([]discover.TrendingLocation, error) {
	now := s.now()
	windowStart := now.AddDate(0, 0, -trendWindowDays)

	posts, err := s.posts.FindPosts(ctx, journal.PostFilter{
		HasLocationName: true,
		CreatedFrom:     &windowStart,
		Sort:            journal.SortRecent,
	})
	if err != nil {
		return nil, fmt.Errorf("fetching trending window: %w", err)
	}

	return ScoreTrendingLocations(posts, now, limit), nil
}

// PopularDestinations aggregates the full post history by location name.
func (s *Service) PopularDestinations(ctx context.Context, limit int) ([]discover.Destination, error) {
	posts, err := s.posts.FindPosts(ctx, journal.PostFilter{
		HasLocationName: true,
		Sort:            journal.SortRecent,
	})
	if err != nil {
		return nil, fmt.Errorf("fetching destinations: %w", err)
	}

	return AggregateByLocationName(posts, limit), nil
}

// RecommendedPlaces aggregates only recent posts by location name.
func (s *Service) RecommendedPlaces(ctx context.Context, limit int) ([]discover.Destination, error) {
	windowStart := s.now().AddDate(0, 0, -recommendedWindowDays)

	posts, err := s.posts.FindPosts(ctx, journal.PostFilter{
		HasLocationName: true,
		CreatedFrom:     &windowStart,
		Sort:            journal.SortRecent,
	})
	if err != nil {
		return nil, fmt.Errorf("fetching recommended places: %w", err)
	}

	return AggregateByLocationName(posts, limit), nil
}

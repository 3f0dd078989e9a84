package discover

import (
	"testing"
	"time"

	"odyssey/internal/domain/journal"
)

func postAt(name string, createdAt time.Time) journal.Post {
	return journal.Post{LocationName: name, CreatedAt: createdAt}
}

func TestScoreTrendingLocations_ScoreRange(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	// A post from right now contributes exactly 7.
	trending := ScoreTrendingLocations([]journal.Post{postAt("Rome, Italy", now)}, now, 0)
	if len(trending) != 1 {
		t.Fatalf("expected 1 location, got %d", len(trending))
	}
	if trending[0].TrendScore != 7 {
		t.Fatalf("expected score 7 for a post from today, got %f", trending[0].TrendScore)
	}

	// A post exactly 7 days old contributes the floor of 1, never less.
	trending = ScoreTrendingLocations([]journal.Post{
		postAt("Rome, Italy", now.AddDate(0, 0, -7)),
	}, now, 0)
	if trending[0].TrendScore != 1 {
		t.Fatalf("expected floor score 1, got %f", trending[0].TrendScore)
	}
}

func TestScoreTrendingLocations_TwoLocationScenario(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	trending := ScoreTrendingLocations([]journal.Post{
		postAt("A", now),
		postAt("A", now),
		postAt("B", now.AddDate(0, 0, -6)),
	}, now, 0)

	if len(trending) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(trending))
	}
	if trending[0].Name != "A" || trending[0].TrendScore != 14 || trending[0].PostCount != 2 {
		t.Fatalf("expected A with score 14 and 2 posts, got %+v", trending[0])
	}
	if trending[1].Name != "B" || trending[1].TrendScore != 1 || trending[1].PostCount != 1 {
		t.Fatalf("expected B with score 1 and 1 post, got %+v", trending[1])
	}
}

func TestScoreTrendingLocations_CityCountrySplit(t *testing.T) {
	now := time.Now()

	trending := ScoreTrendingLocations([]journal.Post{
		postAt("Paris, Île-de-France, France", now),
	}, now, 0)

	if trending[0].City != "Paris" {
		t.Fatalf("expected city Paris, got %s", trending[0].City)
	}
	if trending[0].Country != "France" {
		t.Fatalf("expected country France, got %s", trending[0].Country)
	}
}

func TestScoreTrendingLocations_SingleSegmentName(t *testing.T) {
	now := time.Now()

	trending := ScoreTrendingLocations([]journal.Post{postAt("Bali", now)}, now, 0)

	if trending[0].City != "Bali" || trending[0].Country != "Bali" {
		t.Fatalf("expected single segment to serve as both city and country, got %+v", trending[0])
	}
}

func TestScoreTrendingLocations_CountsMatch(t *testing.T) {
	now := time.Now()

	trending := ScoreTrendingLocations([]journal.Post{
		postAt("A", now),
		postAt("A", now.AddDate(0, 0, -2)),
	}, now, 0)

	if trending[0].PostCount != trending[0].RecentPostCount {
		t.Fatalf("expected postCount and recentPostCount to match, got %d and %d",
			trending[0].PostCount, trending[0].RecentPostCount)
	}
}

func TestScoreTrendingLocations_OrderIndependent(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	posts := []journal.Post{
		postAt("A", now),
		postAt("B", now.AddDate(0, 0, -3)),
		postAt("A", now.AddDate(0, 0, -1)),
	}
	reversed := []journal.Post{posts[2], posts[1], posts[0]}

	first := ScoreTrendingLocations(posts, now, 0)
	second := ScoreTrendingLocations(reversed, now, 0)

	if first[0].TrendScore != second[0].TrendScore {
		t.Fatalf("expected commutative scoring, got %f and %f",
			first[0].TrendScore, second[0].TrendScore)
	}
}

func TestScoreTrendingLocations_LimitAndSkipUnnamed(t *testing.T) {
	now := time.Now()

	trending := ScoreTrendingLocations([]journal.Post{
		postAt("A", now),
		postAt("A", now),
		postAt("B", now),
		postAt("C", now),
		postAt("", now),
	}, now, 2)

	if len(trending) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(trending))
	}
	if trending[0].Name != "A" {
		t.Fatalf("expected A first, got %s", trending[0].Name)
	}
}

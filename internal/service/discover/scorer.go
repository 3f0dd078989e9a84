// internal/service/discover/scorer.go

package discover

import (
	"sort"
	"strings"
	"time"

	"odyssey/internal/domain/discover"
	"odyssey/internal/domain/journal"
)

// trendWindowDays is the trailing window trending is computed over. The
// scoring formula below assumes this window: changing one without the other
// breaks the intended 1..7 contribution range.
const trendWindowDays = 7

// splitLocationName parses an operator-entered location name. The first
// comma-separated segment is the city, the last is the country; a name with
// a single segment degrades to both being that segment.
func splitLocationName(name string) (city, country string) {
	parts := strings.Split(name, ",")
	city = strings.TrimSpace(parts[0])
	country = strings.TrimSpace(parts[len(parts)-1])
	return city, country
}

// ScoreTrendingLocations accumulates a recency-weighted trend score per
// location over posts the caller has already restricted to the trailing
// seven-day window. Each post adds max(7-daysAgo, 1): a post from today
// contributes 7, a post six or more days old contributes the floor of 1.
// Scoring is commutative, so input order does not matter; ties in the final
// ordering keep insertion order (stable sort).
func ScoreTrendingLocations(posts []journal.Post, now time.Time, limit int) []discover.TrendingLocation {
	byKey := make(map[string]*discover.TrendingLocation)
	order := []string{}

	for _, post := range posts {
		if post.LocationName == "" {
			continue
		}

		city, country := splitLocationName(post.LocationName)
		key := city + "-" + country

		group, ok := byKey[key]
		if !ok {
			group = &discover.TrendingLocation{
				Name:    city,
				City:    city,
				Country: country,
			}
			byKey[key] = group
			order = append(order, key)
		}

		daysAgo := int(now.Sub(post.CreatedAt).Hours() / 24)
		points := trendWindowDays - daysAgo
		if points < 1 {
			points = 1
		}

		group.PostCount++
		group.RecentPostCount++
		group.TrendScore += float64(points)
	}

	trending := make([]discover.TrendingLocation, 0, len(order))
	for _, key := range order {
		trending = append(trending, *byKey[key])
	}

	sort.SliceStable(trending, func(i, j int) bool {
		return trending[i].TrendScore > trending[j].TrendScore
	})

	if limit > 0 && len(trending) > limit {
		trending = trending[:limit]
	}

	return trending
}

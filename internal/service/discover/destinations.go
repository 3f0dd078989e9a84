// internal/service/discover/destinations.go

package discover

import (
	"sort"

	"odyssey/internal/domain/discover"
	"odyssey/internal/domain/journal"
)

// AggregateByLocationName groups posts by their raw location name string.
// The key is an exact match — "Paris, France" and "paris, france" are
// different groups, matching the operator-entered upstream data. The image
// is first-write-wins: the first post in iteration order with a non-empty
// first image sets it, and later posts never override it. Posts arrive from
// the store in created_at descending order, so "first" means most recent.
func AggregateByLocationName(posts []journal.Post, limit int) []discover.Destination {
	byName := make(map[string]*discover.Destination)
	order := []string{}

	for _, post := range posts {
		if post.LocationName == "" {
			continue
		}

		group, ok := byName[post.LocationName]
		if !ok {
			city, country := splitLocationName(post.LocationName)
			group = &discover.Destination{
				Name:    post.LocationName,
				City:    city,
				Country: country,
			}
			byName[post.LocationName] = group
			order = append(order, post.LocationName)
		}

		group.PostCount++

		if group.ImageURL == "" && len(post.Images) > 0 && post.Images[0] != "" {
			group.ImageURL = post.Images[0]
		}
	}

	destinations := make([]discover.Destination, 0, len(order))
	for _, name := range order {
		destinations = append(destinations, *byName[name])
	}

	sort.SliceStable(destinations, func(i, j int) bool {
		return destinations[i].PostCount > destinations[j].PostCount
	})

	if limit > 0 && len(destinations) > limit {
		destinations = destinations[:limit]
	}

	return destinations
}

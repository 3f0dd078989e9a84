// internal/service/geo/grouper.go

package geo

import (
	"fmt"
	"math"

	"odyssey/internal/domain/geo"
	"odyssey/internal/domain/journal"
)

// unknownLocation is the display name used when a post carries coordinates
// but neither city nor country.
const unknownLocation = "Unknown Location"

// clusterKey derives the clustering identity for a location. City+country
// wins when both are present; otherwise the coordinates are rounded to two
// decimals (~1.1km cells at the equator) so near-duplicate points merge.
func clusterKey(loc *journal.Location) string {
	if loc.City != "" && loc.Country != "" {
		return loc.City + "-" + loc.Country
	}

	lat := math.Round(*loc.Latitude*100) / 100
	lng := math.Round(*loc.Longitude*100) / 100

	return fmt.Sprintf("%.2f-%.2f", lat, lng)
}

// GroupPostsByLocation groups geotagged posts into location clusters. Posts
// missing either coordinate are skipped. Clusters are returned in first-seen
// key order, with member order matching the input order; the stores feed
// posts in created_at descending order, so cluster members are implicitly
// most-recent-first.
func GroupPostsByLocation(posts []journal.Post) []geo.LocationCluster {
	byKey := make(map[string]*geo.LocationCluster)
	order := []string{}

	for _, post := range posts {
		if !post.Location.HasCoordinates() {
			continue
		}

		key := clusterKey(post.Location)

		if cluster, ok := byKey[key]; ok {
			cluster.Posts = append(cluster.Posts, post)
			cluster.PostCount++
			continue
		}

		name := post.Location.City
		if name == "" {
			name = post.Location.Country
		}
		if name == "" {
			name = unknownLocation
		}

		byKey[key] = &geo.LocationCluster{
			ID:           key,
			Latitude:     *post.Location.Latitude,
			Longitude:    *post.Location.Longitude,
			PostCount:    1,
			Posts:        []journal.Post{post},
			City:         post.Location.City,
			Country:      post.Location.Country,
			LocationName: name,
		}
		order = append(order, key)
	}

	clusters := make([]geo.LocationCluster, 0, len(order))
	for _, key := range order {
		clusters = append(clusters, *byKey[key])
	}

	return clusters
}

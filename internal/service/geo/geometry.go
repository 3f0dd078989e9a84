// internal/service/geo/geometry.go

package geo

import (
	"odyssey/internal/domain/geo"
)

const (
	// fallbackLatitude/fallbackLongitude center the map on the default
	// app region when there is no data to fit.
	fallbackLatitude  = 39.0
	fallbackLongitude = 35.0

	// wideZoomDelta is the span used for zero or one cluster.
	wideZoomDelta = 5.0

	// zoomPadding widens the coordinate spread so pins sit inside the
	// viewport rather than on its edge.
	zoomPadding = 1.5

	// minZoomDelta keeps tightly clustered data from over-zooming.
	minZoomDelta = 2.0
)

// CalculateMapCenter returns the arithmetic mean of the cluster coordinates.
// An empty cluster list is a valid "no data" signal and yields the default
// region center.
func CalculateMapCenter(clusters []geo.LocationCluster) geo.MapCenter {
	if len(clusters) == 0 {
		return geo.MapCenter{Latitude: fallbackLatitude, Longitude: fallbackLongitude}
	}

	var sumLat, sumLng float64
	for _, c := range clusters {
		sumLat += c.Latitude
		sumLng += c.Longitude
	}

	n := float64(len(clusters))

	return geo.MapCenter{
		Latitude:  sumLat / n,
		Longitude: sumLng / n,
	}
}

// CalculateZoomDelta derives a viewport span from the cluster coordinate
// spread. This is a heuristic fit, not a true bounding-box projection: the
// spread is padded by a fixed factor and floored per axis.
func CalculateZoomDelta(clusters []geo.LocationCluster) geo.ZoomDelta {
	if len(clusters) <= 1 {
		return geo.ZoomDelta{LatitudeDelta: wideZoomDelta, LongitudeDelta: wideZoomDelta}
	}

	minLat, maxLat := clusters[0].Latitude, clusters[0].Latitude
	minLng, maxLng := clusters[0].Longitude, clusters[0].Longitude

	for _, c := range clusters[1:] {
		if c.Latitude < minLat {
			minLat = c.Latitude
		}
		if c.Latitude > maxLat {
			maxLat = c.Latitude
		}
		if c.Longitude < minLng {
			minLng = c.Longitude
		}
		if c.Longitude > maxLng {
			maxLng = c.Longitude
		}
	}

	latDelta := (maxLat - minLat) * zoomPadding
	lngDelta := (maxLng - minLng) * zoomPadding

	if latDelta < minZoomDelta {
		latDelta = minZoomDelta
	}
	if lngDelta < minZoomDelta {
		lngDelta = minZoomDelta
	}

	return geo.ZoomDelta{LatitudeDelta: latDelta, LongitudeDelta: lngDelta}
}

package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/quickbite/dispatch/internal/pkg/models"
)

// earthRadiusKm is the Earth's radius used by the haversine formula
const earthRadiusKm = 6371.0

// kmPerLatDegree approximates the distance covered by one degree of latitude
const kmPerLatDegree = 111.0

// CalculateDistanceKm returns the great-circle distance between two points in
// kilometers using the haversine formula, rounded to two decimal places.
// All radius comparisons in the dispatch service use the rounded value so
// results stay reproducible across platforms.
func CalculateDistanceKm(a, b models.Location) float64 {
	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return math.Round(earthRadiusKm*c*100) / 100
}

// BoundingBox returns a rectangular area around center that contains every
// point within radiusKm. One degree of latitude is treated as 111 km and
// longitude degrees are scaled by cos(latitude). The box over-approximates
// near the poles and at large radii, so callers must re-check candidates with
// CalculateDistanceKm before trusting box membership.
func BoundingBox(center models.Location, radiusKm float64) models.BoundingBox {
	latOffset := radiusKm / kmPerLatDegree
	lngOffset := radiusKm / (kmPerLatDegree * math.Cos(center.Latitude*math.Pi/180.0))

	return models.BoundingBox{
		MinLat: center.Latitude - latOffset,
		MaxLat: center.Latitude + latOffset,
		MinLng: center.Longitude - lngOffset,
		MaxLng: center.Longitude + lngOffset,
	}
}

// IsValidCoordinate reports whether a location holds a usable coordinate pair
func IsValidCoordinate(location models.Location) bool {
	if math.IsNaN(location.Latitude) || math.IsNaN(location.Longitude) {
		return false
	}
	if location.Latitude < -90 || location.Latitude > 90 {
		return false
	}
	if location.Longitude < -180 || location.Longitude > 180 {
		return false
	}
	return true
}

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// DecodeGeohash converts a geohash string to latitude and longitude
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// Package geo filters and ranks directory entries by text, specialty and distance.
package geo

import (
	"math"

	"soulsync/models"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371

// Haversine returns the great-circle distance in kilometres between two points.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180)
	dLon := (lon2 - lon1) * (math.Pi / 180)
	lat1Rad := lat1 * (math.Pi / 180)
	lat2Rad := lat2 * (math.Pi / 180)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// DistanceKm returns the distance between origin and a therapist's office.
// ok is false when either point has a non-finite coordinate.
func DistanceKm(origin models.Coordinates, loc models.TherapistLocation) (float64, bool) {
	if !finite(origin.Lat) || !finite(origin.Lng) || !finite(loc.Lat) || !finite(loc.Lng) {
		return 0, false
	}
	d := Haversine(origin.Lat, origin.Lng, loc.Lat, loc.Lng)
	if !finite(d) {
		return 0, false
	}
	return d, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

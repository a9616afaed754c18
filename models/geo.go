package models

// Coordinates is a WGS84 point in degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// SpecialtyAll disables the specialty filter.
const SpecialtyAll = "all"

// DefaultMaxDistanceKm is the search radius used when the caller gives none.
const DefaultMaxDistanceKm = 50.0

// GeoQuery holds the filters for a single directory search.
// MaxDistanceKm is applied as given; 0 keeps only co-located therapists.
type GeoQuery struct {
	SearchText    string       `json:"q"`
	Specialty     string       `json:"specialty"`
	MaxDistanceKm float64      `json:"maxDistance"`
	Origin        *Coordinates `json:"origin,omitempty"`
}

// RankedResult pairs a therapist with its distance from the query origin.
// DistanceKm is nil when the query had no origin.
type RankedResult struct {
	Provider   Therapist `json:"therapist"`
	DistanceKm *float64  `json:"distanceKm,omitempty"`
}

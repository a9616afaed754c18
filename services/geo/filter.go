package geo

import (
	"sort"
	"strings"

	"soulsync/models"

	"go.uber.org/zap"
)

// Filter selects the therapists matching query and ranks them.
//
// With an origin, entries farther than query.MaxDistanceKm or with unusable
// coordinates are dropped and the rest are ordered by ascending distance,
// ties keeping input order. Without an origin the input order is kept and no
// distance is reported. The input slice is never modified.
func Filter(providers []models.Therapist, query models.GeoQuery) []models.RankedResult {
	results := make([]models.RankedResult, 0, len(providers))
	needle := strings.ToLower(query.SearchText)

	for _, p := range providers {
		if needle != "" && !matchesText(p, needle) {
			continue
		}
		if !matchesSpecialty(p, query.Specialty) {
			continue
		}

		result := models.RankedResult{Provider: p}
		if query.Origin != nil {
			d, ok := DistanceKm(*query.Origin, p.Location)
			if !ok {
				zap.L().Warn("skipping therapist with unusable coordinates",
					zap.String("therapistID", p.ID),
					zap.Float64("lat", p.Location.Lat),
					zap.Float64("lng", p.Location.Lng))
				continue
			}
			if d > query.MaxDistanceKm {
				continue
			}
			result.DistanceKm = &d
		}
		results = append(results, result)
	}

	if query.Origin != nil {
		sort.SliceStable(results, func(i, j int) bool {
			return *results[i].DistanceKm < *results[j].DistanceKm
		})
	}
	return results
}

func matchesText(p models.Therapist, needle string) bool {
	if strings.Contains(strings.ToLower(p.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Location.City), needle) {
		return true
	}
	for _, s := range p.Specialties {
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

func matchesSpecialty(p models.Therapist, specialty string) bool {
	if specialty == "" || specialty == models.SpecialtyAll {
		return true
	}
	for _, s := range p.Specialties {
		if strings.EqualFold(s, specialty) {
			return true
		}
	}
	return false
}

package match

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
)

// withinReach applies the filters that need no analysis: distance and age.
// Distance is only checked when both birth places carry coordinates.
func withinReach(base, candidate *domain.UserProfile, c domain.MatchCriteria, now time.Time) bool {
	if c.MaxDistanceKm > 0 && base.BirthPlace.HasCoordinates() && candidate.BirthPlace.HasCoordinates() {
		d := calculateDistance(
			*base.BirthPlace.Latitude, *base.BirthPlace.Longitude,
			*candidate.BirthPlace.Latitude, *candidate.BirthPlace.Longitude,
		)
		if d > c.MaxDistanceKm {
			return false
		}
	}
	if c.AgeRange != nil && !c.AgeRange.Contains(candidate.Age(now)) {
		return false
	}
	return true
}

// project turns a report into a match, or reports false when the score
// filters reject it.
func project(base, candidate *domain.UserProfile, report *domain.CompatibilityReport, c domain.MatchCriteria) (domain.ProfileMatch, bool) {
	score := report.OverallScore()
	level := report.Level()
	if score < c.MinScore {
		return domain.ProfileMatch{}, false
	}
	if c.MinLevel != "" && level.Rank() < c.MinLevel.Rank() {
		return domain.ProfileMatch{}, false
	}
	if len(c.PreferredCategories) > 0 && !hasStrengthIn(report.Strengths, c.PreferredCategories) {
		return domain.ProfileMatch{}, false
	}

	preview := domain.CompatibilityPreview{
		OverallScore: score,
		Level:        level,
		TopStrength:  topStrength(report.Strengths),
		TopChallenge: topChallenge(report.Challenges),
	}
	return domain.ProfileMatch{
		Profile:     *candidate,
		Preview:     preview,
		MatchReason: matchReason(preview),
		Confidence:  confidence(base, candidate),
	}, true
}

func hasStrengthIn(strengths []domain.CompatibilityStrength, categories []domain.CompatibilityCategory) bool {
	for _, s := range strengths {
		if slices.Contains(categories, s.Category) {
			return true
		}
	}
	return false
}

// topStrength picks the highest scored strength; the earliest wins ties.
func topStrength(strengths []domain.CompatibilityStrength) *domain.CompatibilityStrength {
	var top *domain.CompatibilityStrength
	for i := range strengths {
		if top == nil || strengths[i].Score > top.Score {
			top = &strengths[i]
		}
	}
	if top == nil {
		return nil
	}
	cp := *top
	return &cp
}

// topChallenge picks the most severe challenge; the earliest wins ties.
func topChallenge(challenges []domain.CompatibilityChallenge) *domain.CompatibilityChallenge {
	var top *domain.CompatibilityChallenge
	for i := range challenges {
		if top == nil || challenges[i].Severity.Rank() > top.Severity.Rank() {
			top = &challenges[i]
		}
	}
	if top == nil {
		return nil
	}
	cp := *top
	cp.Solutions = slices.Clone(top.Solutions)
	return &cp
}

func matchReason(p domain.CompatibilityPreview) string {
	level := strings.ToLower(string(p.Level))
	switch {
	case p.TopStrength != nil:
		return fmt.Sprintf("%.0f/100, %s match with strong %s", p.OverallScore, level, strings.ToLower(p.TopStrength.Aspect))
	case p.TopChallenge != nil:
		return fmt.Sprintf("%.0f/100, %s match; watch %s", p.OverallScore, level, strings.ToLower(p.TopChallenge.Aspect))
	default:
		return fmt.Sprintf("%.0f/100, %s match across all dimensions", p.OverallScore, level)
	}
}

// confidence is the mean completion of both profiles in [0,1].
func confidence(a, b *domain.UserProfile) float64 {
	pa := domain.ComputeCompletion(a).CompletionPercentage
	pb := domain.ComputeCompletion(b).CompletionPercentage
	return math.Round((pa+pb)/2) / 100
}

// calculateDistance returns the great-circle distance in kilometres.
func calculateDistance(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadius = 6371.0
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)
	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadius * c
}

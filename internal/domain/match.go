package domain

// CompatibilityPreview is the lightweight projection of a report used by
// match search results.
type CompatibilityPreview struct {
	OverallScore float64                 `json:"overall_score"`
	Level        CompatibilityLevel      `json:"level"`
	TopStrength  *CompatibilityStrength  `json:"top_strength,omitempty"`
	TopChallenge *CompatibilityChallenge `json:"top_challenge,omitempty"`
}

// ProfileMatch is one ranked search result. It only lives for the duration
// of the search call that produced it.
type ProfileMatch struct {
	Profile     UserProfile          `json:"profile"`
	Preview     CompatibilityPreview `json:"preview"`
	MatchReason string               `json:"match_reason"`
	// Confidence is the mean completion of both profiles in [0,1].
	Confidence float64 `json:"confidence"`
}

type AgeRange struct {
	Min int `json:"min" yaml:"min" validate:"gte=0"`
	Max int `json:"max" yaml:"max" validate:"gtefield=Min"`
}

func (r AgeRange) Contains(age int) bool {
	return age >= r.Min && age <= r.Max
}

// MatchCriteria filters and bounds a match search. Zero values disable the
// corresponding filter.
type MatchCriteria struct {
	MinScore            float64                 `json:"min_score" validate:"gte=0,lte=100"`
	MinLevel            CompatibilityLevel      `json:"min_level,omitempty" validate:"omitempty,oneof=SOULMATE EXCELLENT GOOD MODERATE CHALLENGING INCOMPATIBLE"`
	PreferredCategories []CompatibilityCategory `json:"preferred_categories,omitempty" validate:"dive,oneof=NUMEROLOGICAL ASTROLOGICAL TANTRIC ENERGETIC COMMUNICATION EMOTIONAL PHYSICAL SPIRITUAL"`
	MaxDistanceKm       float64                 `json:"max_distance_km,omitempty" validate:"gte=0"`
	AgeRange            *AgeRange               `json:"age_range,omitempty" validate:"omitempty"`
	Limit               int                     `json:"limit,omitempty" validate:"gte=0"`
}

const DefaultMinMatchScore = 60

func DefaultMatchCriteria() MatchCriteria {
	return MatchCriteria{MinScore: DefaultMinMatchScore}
}

package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type Dimension string

const (
	DimensionNumerology    Dimension = "numerology"
	DimensionAstrology     Dimension = "astrology"
	DimensionTantric       Dimension = "tantric"
	DimensionEnergetic     Dimension = "energetic"
	DimensionCommunication Dimension = "communication"
	DimensionEmotional     Dimension = "emotional"
)

// AllDimensions is the fixed scoring order used everywhere a report lists
// per-dimension data.
var AllDimensions = []Dimension{
	DimensionNumerology, DimensionAstrology, DimensionTantric,
	DimensionEnergetic, DimensionCommunication, DimensionEmotional,
}

type CompatibilityLevel string

const (
	LevelSoulmate     CompatibilityLevel = "SOULMATE"
	LevelExcellent    CompatibilityLevel = "EXCELLENT"
	LevelGood         CompatibilityLevel = "GOOD"
	LevelModerate     CompatibilityLevel = "MODERATE"
	LevelChallenging  CompatibilityLevel = "CHALLENGING"
	LevelIncompatible CompatibilityLevel = "INCOMPATIBLE"
)

// levelBands is evaluated top-down; the first band whose floor is reached wins.
var levelBands = []struct {
	level CompatibilityLevel
	floor float64
}{
	{LevelSoulmate, 90},
	{LevelExcellent, 75},
	{LevelGood, 60},
	{LevelModerate, 45},
	{LevelChallenging, 30},
}

// LevelForScore classifies an overall score. Band floors are inclusive.
func LevelForScore(score float64) CompatibilityLevel {
	for _, b := range levelBands {
		if score >= b.floor {
			return b.level
		}
	}
	return LevelIncompatible
}

// Rank orders levels from INCOMPATIBLE (0) to SOULMATE (5); unknown is -1.
func (l CompatibilityLevel) Rank() int {
	if l == LevelIncompatible {
		return 0
	}
	for i, b := range levelBands {
		if b.level == l {
			return len(levelBands) - i
		}
	}
	return -1
}

type CompatibilityCategory string

const (
	CategoryNumerological CompatibilityCategory = "NUMEROLOGICAL"
	CategoryAstrological  CompatibilityCategory = "ASTROLOGICAL"
	CategoryTantric       CompatibilityCategory = "TANTRIC"
	CategoryEnergetic     CompatibilityCategory = "ENERGETIC"
	CategoryCommunication CompatibilityCategory = "COMMUNICATION"
	CategoryEmotional     CompatibilityCategory = "EMOTIONAL"
	CategoryPhysical      CompatibilityCategory = "PHYSICAL"
	CategorySpiritual     CompatibilityCategory = "SPIRITUAL"
)

// Category returns the compatibility category a dimension reports under.
func (d Dimension) Category() CompatibilityCategory {
	switch d {
	case DimensionNumerology:
		return CategoryNumerological
	case DimensionAstrology:
		return CategoryAstrological
	case DimensionTantric:
		return CategoryTantric
	case DimensionEnergetic:
		return CategoryEnergetic
	case DimensionCommunication:
		return CategoryCommunication
	default:
		return CategoryEmotional
	}
}

type InsightCategory string

const (
	InsightSoulConnection     InsightCategory = "SOUL_CONNECTION"
	InsightCommunicationStyle InsightCategory = "COMMUNICATION_STYLE"
	InsightEmotionalHarmony   InsightCategory = "EMOTIONAL_HARMONY"
	InsightPhysicalAttraction InsightCategory = "PHYSICAL_ATTRACTION"
	InsightSpiritualAlignment InsightCategory = "SPIRITUAL_ALIGNMENT"
	InsightLifeGoals          InsightCategory = "LIFE_GOALS"
	InsightConflictResolution InsightCategory = "CONFLICT_RESOLUTION"
	InsightGrowthPotential    InsightCategory = "GROWTH_POTENTIAL"
)

type Importance string

const (
	ImportanceCritical Importance = "CRITICAL"
	ImportanceHigh     Importance = "HIGH"
	ImportanceMedium   Importance = "MEDIUM"
	ImportanceLow      Importance = "LOW"
)

type ChallengeSeverity string

const (
	SeverityMinor    ChallengeSeverity = "MINOR"
	SeverityModerate ChallengeSeverity = "MODERATE"
	SeverityMajor    ChallengeSeverity = "MAJOR"
	SeverityCritical ChallengeSeverity = "CRITICAL"
)

// Rank orders severities from MINOR (0) to CRITICAL (3).
func (s ChallengeSeverity) Rank() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityMajor:
		return 2
	case SeverityModerate:
		return 1
	default:
		return 0
	}
}

type RecommendationType string

const (
	RecommendationCommunicationTechnique RecommendationType = "COMMUNICATION_TECHNIQUE"
	RecommendationTantricPractice        RecommendationType = "TANTRIC_PRACTICE"
	RecommendationSpiritualExercise      RecommendationType = "SPIRITUAL_EXERCISE"
	RecommendationDateIdea               RecommendationType = "DATE_IDEA"
	RecommendationConflictResolution     RecommendationType = "CONFLICT_RESOLUTION"
	RecommendationIntimacyEnhancement    RecommendationType = "INTIMACY_ENHANCEMENT"
	RecommendationPersonalGrowth         RecommendationType = "PERSONAL_GROWTH"
	RecommendationRelationshipRitual     RecommendationType = "RELATIONSHIP_RITUAL"
)

type RecommendationPriority string

const (
	PriorityImmediate RecommendationPriority = "IMMEDIATE"
	PriorityHigh      RecommendationPriority = "HIGH"
	PriorityMedium    RecommendationPriority = "MEDIUM"
	PriorityLow       RecommendationPriority = "LOW"
	PriorityOptional  RecommendationPriority = "OPTIONAL"
)

// Rank orders priorities with IMMEDIATE first (0).
func (p RecommendationPriority) Rank() int {
	switch p {
	case PriorityImmediate:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// CompatibilityScores holds the six dimension scores. The total is always
// computed from them and never stored.
type CompatibilityScores struct {
	Numerology    float64 `json:"numerology_score"`
	Astrology     float64 `json:"astrology_score"`
	Tantric       float64 `json:"tantric_score"`
	Energetic     float64 `json:"energetic_score"`
	Communication float64 `json:"communication_score"`
	Emotional     float64 `json:"emotional_score"`
}

// Total is the unweighted mean of the six dimension scores.
func (s CompatibilityScores) Total() float64 {
	return (s.Numerology + s.Astrology + s.Tantric + s.Energetic + s.Communication + s.Emotional) / 6
}

func (s CompatibilityScores) Get(d Dimension) float64 {
	switch d {
	case DimensionNumerology:
		return s.Numerology
	case DimensionAstrology:
		return s.Astrology
	case DimensionTantric:
		return s.Tantric
	case DimensionEnergetic:
		return s.Energetic
	case DimensionCommunication:
		return s.Communication
	case DimensionEmotional:
		return s.Emotional
	}
	return 0
}

func (s *CompatibilityScores) Set(d Dimension, v float64) {
	switch d {
	case DimensionNumerology:
		s.Numerology = v
	case DimensionAstrology:
		s.Astrology = v
	case DimensionTantric:
		s.Tantric = v
	case DimensionEnergetic:
		s.Energetic = v
	case DimensionCommunication:
		s.Communication = v
	case DimensionEmotional:
		s.Emotional = v
	}
}

// MarshalJSON adds the derived total_score to the serialized form.
func (s CompatibilityScores) MarshalJSON() ([]byte, error) {
	type scores CompatibilityScores
	return json.Marshal(struct {
		scores
		TotalScore float64 `json:"total_score"`
	}{scores(s), s.Total()})
}

type RelationshipInsight struct {
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	Category           InsightCategory `json:"category"`
	Importance         Importance      `json:"importance"`
	Dimension          Dimension       `json:"dimension,omitempty"`
	SupportingEvidence []string        `json:"supporting_evidence,omitempty"`
}

type CompatibilityStrength struct {
	Aspect      string                `json:"aspect"`
	Description string                `json:"description"`
	Score       float64               `json:"score"`
	Category    CompatibilityCategory `json:"category"`
	Importance  Importance            `json:"importance"`
}

type CompatibilityChallenge struct {
	Aspect      string                `json:"aspect"`
	Description string                `json:"description"`
	Severity    ChallengeSeverity     `json:"severity"`
	Category    CompatibilityCategory `json:"category"`
	Solutions   []string              `json:"solutions,omitempty"`
}

type CompatibilityRecommendation struct {
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	ActionType  RecommendationType     `json:"action_type"`
	Priority    RecommendationPriority `json:"priority"`
	// RelatedContent holds tantric catalog ids the recommendation refers to.
	RelatedContent []string `json:"related_content,omitempty"`
}

// CompatibilityReport is the immutable result of one analysis. Callers must
// not modify a report after it has been returned by the engine.
type CompatibilityReport struct {
	ID              string                        `json:"id"`
	ProfileA        UserProfile                   `json:"profile_a"`
	ProfileB        UserProfile                   `json:"profile_b"`
	Scores          CompatibilityScores           `json:"scores"`
	ArchetypesA     ArchetypeAssignment           `json:"archetypes_a"`
	ArchetypesB     ArchetypeAssignment           `json:"archetypes_b"`
	Insights        []RelationshipInsight         `json:"insights"`
	Strengths       []CompatibilityStrength       `json:"strengths"`
	Challenges      []CompatibilityChallenge      `json:"challenges"`
	Recommendations []CompatibilityRecommendation `json:"recommendations"`
	TantricMatches  []TantricCompatibility        `json:"tantric_matches"`
	GeneratedAt     time.Time                     `json:"generated_at"`
}

func (r *CompatibilityReport) OverallScore() float64 {
	return r.Scores.Total()
}

func (r *CompatibilityReport) Level() CompatibilityLevel {
	return LevelForScore(r.Scores.Total())
}

// Key returns the order-independent cache key of the report's profile pair.
func (r *CompatibilityReport) Key() PairKey {
	return NewPairKey(r.ProfileA.ID, r.ProfileB.ID)
}

// Involves reports whether the profile id is one side of the report.
func (r *CompatibilityReport) Involves(profileID string) bool {
	return r.ProfileA.ID == profileID || r.ProfileB.ID == profileID
}

// MarshalJSON adds the derived compatibility_level to the serialized form.
func (r CompatibilityReport) MarshalJSON() ([]byte, error) {
	type report CompatibilityReport
	return json.Marshal(struct {
		report
		Level CompatibilityLevel `json:"compatibility_level"`
	}{report(r), r.Level()})
}

// Summary is a plain one-paragraph explanation of the report. It only uses
// categorical and numeric fields, so it is stable for identical reports.
func (r *CompatibilityReport) Summary() string {
	hi, lo := AllDimensions[0], AllDimensions[0]
	for _, d := range AllDimensions[1:] {
		if r.Scores.Get(d) > r.Scores.Get(hi) {
			hi = d
		}
		if r.Scores.Get(d) < r.Scores.Get(lo) {
			lo = d
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s and %s share %s compatibility (%.0f/100).",
		r.ProfileA.Label(), r.ProfileB.Label(), strings.ToLower(string(r.Level())), r.OverallScore())
	fmt.Fprintf(&sb, " Your strongest bond is %s (%.0f)", hi, r.Scores.Get(hi))
	if lo != hi {
		fmt.Fprintf(&sb, " and %s (%.0f) asks for the most care", lo, r.Scores.Get(lo))
	}
	sb.WriteString(".")
	if len(r.Challenges) > 0 {
		fmt.Fprintf(&sb, " Start with %s.", strings.ToLower(r.Challenges[0].Aspect))
	} else if len(r.Strengths) > 0 {
		fmt.Fprintf(&sb, " Build on your %s.", strings.ToLower(r.Strengths[0].Aspect))
	}
	return sb.String()
}

// PairKey identifies an unordered pair of profile ids. Lo <= Hi always.
type PairKey struct {
	Lo string
	Hi string
}

func NewPairKey(idA, idB string) PairKey {
	if idA > idB {
		idA, idB = idB, idA
	}
	return PairKey{Lo: idA, Hi: idB}
}

func (k PairKey) String() string {
	return k.Lo + ":" + k.Hi
}

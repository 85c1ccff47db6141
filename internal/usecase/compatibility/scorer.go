package compatibility

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
)

const (
	strengthThreshold  = 75.0
	challengeThreshold = 55.0
)

// DimensionResult is one scorer's output: a score in [0,100] and the
// strengths and challenges behind it.
type DimensionResult struct {
	Dimension  domain.Dimension
	Score      float64
	Strengths  []domain.CompatibilityStrength
	Challenges []domain.CompatibilityChallenge
}

// Scorer rates one dimension of a classified pair. Implementations must be
// total over their inputs and symmetric in a and b.
type Scorer interface {
	Dimension() domain.Dimension
	Score(a, b *domain.ArchetypeAssignment) DimensionResult
}

// facet is a weighted sub-score of a dimension.
type facet struct {
	aspect    string
	category  domain.CompatibilityCategory
	score     float64
	weight    float64
	strength  string
	challenge string
}

type facetScorer struct {
	dimension domain.Dimension
	facets    func(a, b *domain.ArchetypeAssignment) []facet
}

func (s facetScorer) Dimension() domain.Dimension {
	return s.dimension
}

func (s facetScorer) Score(a, b *domain.ArchetypeAssignment) DimensionResult {
	return buildResult(s.dimension, s.facets(a, b))
}

func buildResult(dim domain.Dimension, facets []facet) DimensionResult {
	res := DimensionResult{Dimension: dim}
	var total, weights float64
	for _, f := range facets {
		total += f.score * f.weight
		weights += f.weight
		switch {
		case f.score >= strengthThreshold:
			res.Strengths = append(res.Strengths, domain.CompatibilityStrength{
				Aspect:      f.aspect,
				Description: f.strength,
				Score:       f.score,
				Category:    f.category,
				Importance:  strengthImportance(f.score),
			})
		case f.score < challengeThreshold:
			res.Challenges = append(res.Challenges, domain.CompatibilityChallenge{
				Aspect:      f.aspect,
				Description: f.challenge,
				Severity:    challengeSeverity(f.score),
				Category:    f.category,
				Solutions:   solutionsFor(f.category),
			})
		}
	}
	if weights > 0 {
		res.Score = round2(clamp(total / weights))
	}
	return res
}

func strengthImportance(score float64) domain.Importance {
	switch {
	case score >= 90:
		return domain.ImportanceCritical
	case score >= 85:
		return domain.ImportanceHigh
	case score >= 80:
		return domain.ImportanceMedium
	default:
		return domain.ImportanceLow
	}
}

func challengeSeverity(score float64) domain.ChallengeSeverity {
	switch {
	case score < 35:
		return domain.SeverityCritical
	case score < 40:
		return domain.SeverityMajor
	case score < 50:
		return domain.SeverityModerate
	default:
		return domain.SeverityMinor
	}
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// pair renders two values in a stable order so swapped profiles produce
// identical text.
func pair[T ~string](a, b T) string {
	if a == b {
		return "both " + humanize(string(a))
	}
	x, y := humanize(string(a)), humanize(string(b))
	if x > y {
		x, y = y, x
	}
	return x + " and " + y
}

func humanize(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", " "))
}

// DefaultScorers returns the six dimension scorers in report order.
func DefaultScorers() []Scorer {
	return []Scorer{
		facetScorer{domain.DimensionNumerology, numerologyFacets},
		facetScorer{domain.DimensionAstrology, astrologyFacets},
		facetScorer{domain.DimensionTantric, tantricFacets},
		facetScorer{domain.DimensionEnergetic, energeticFacets},
		facetScorer{domain.DimensionCommunication, communicationFacets},
		facetScorer{domain.DimensionEmotional, emotionalFacets},
	}
}

func numerologyFacets(a, b *domain.ArchetypeAssignment) []facet {
	lo, hi := a.NumerologyDigest, b.NumerologyDigest
	if lo > hi {
		lo, hi = hi, lo
	}
	return []facet{{
		aspect:    "Life path resonance",
		category:  domain.CategoryNumerological,
		score:     numerologyScore(a.NumerologyDigest, b.NumerologyDigest),
		weight:    1,
		strength:  fmt.Sprintf("Name numbers %d and %d vibrate in harmony", lo, hi),
		challenge: fmt.Sprintf("Name numbers %d and %d pull toward different life lessons", lo, hi),
	}}
}

func astrologyFacets(a, b *domain.ArchetypeAssignment) []facet {
	return []facet{{
		aspect:    "Sun sign harmony",
		category:  domain.CategoryAstrological,
		score:     astrologyScore(a.Sign, b.Sign),
		weight:    1,
		strength:  fmt.Sprintf("Sun signs %s share a natural rhythm (%s)", pair(a.Sign, b.Sign), pair(a.Element, b.Element)),
		challenge: fmt.Sprintf("Sun signs %s meet with friction (%s)", pair(a.Sign, b.Sign), pair(a.Element, b.Element)),
	}}
}

func tantricFacets(a, b *domain.ArchetypeAssignment) []facet {
	return []facet{{
		aspect:    "Tantric union",
		category:  domain.CategoryTantric,
		score:     tantricTable.score(a.TantricType, b.TantricType),
		weight:    1,
		strength:  fmt.Sprintf("Tantric natures %s complete each other", pair(a.TantricType, b.TantricType)),
		challenge: fmt.Sprintf("Tantric natures %s compete for the same role", pair(a.TantricType, b.TantricType)),
	}}
}

func energeticFacets(a, b *domain.ArchetypeAssignment) []facet {
	return []facet{
		{
			aspect:    "Energy polarity",
			category:  domain.CategoryEnergetic,
			score:     polarityTable.score(a.Polarity, b.Polarity),
			weight:    0.7,
			strength:  fmt.Sprintf("Polarities %s create a strong current", pair(a.Polarity, b.Polarity)),
			challenge: fmt.Sprintf("Polarities %s leave little charge between you", pair(a.Polarity, b.Polarity)),
		},
		{
			aspect:    "Chakra alignment",
			category:  domain.CategorySpiritual,
			score:     chakraScore(a.Chakra, b.Chakra),
			weight:    0.3,
			strength:  fmt.Sprintf("Dominant chakras %s are closely aligned", pair(a.Chakra, b.Chakra)),
			challenge: fmt.Sprintf("Dominant chakras %s sit far apart", pair(a.Chakra, b.Chakra)),
		},
	}
}

func communicationFacets(a, b *domain.ArchetypeAssignment) []facet {
	return []facet{
		{
			aspect:    "Communication flow",
			category:  domain.CategoryCommunication,
			score:     communicationTable.score(a.CommunicationStyle, b.CommunicationStyle),
			weight:    0.7,
			strength:  fmt.Sprintf("Styles %s understand each other easily", pair(a.CommunicationStyle, b.CommunicationStyle)),
			challenge: fmt.Sprintf("Styles %s often talk past each other", pair(a.CommunicationStyle, b.CommunicationStyle)),
		},
		{
			aspect:    "Conflict resolution",
			category:  domain.CategoryCommunication,
			score:     conflictTable.score(a.ConflictStyle, b.ConflictStyle),
			weight:    0.3,
			strength:  fmt.Sprintf("Conflict styles %s settle disagreements well", pair(a.ConflictStyle, b.ConflictStyle)),
			challenge: fmt.Sprintf("Conflict styles %s tend to escalate or stall", pair(a.ConflictStyle, b.ConflictStyle)),
		},
	}
}

func emotionalFacets(a, b *domain.ArchetypeAssignment) []facet {
	return []facet{
		{
			aspect:    "Attachment security",
			category:  domain.CategoryEmotional,
			score:     attachmentTable.score(a.AttachmentStyle, b.AttachmentStyle),
			weight:    0.75,
			strength:  fmt.Sprintf("Attachment styles %s offer a safe base", pair(a.AttachmentStyle, b.AttachmentStyle)),
			challenge: fmt.Sprintf("Attachment styles %s can trigger each other", pair(a.AttachmentStyle, b.AttachmentStyle)),
		},
		{
			aspect:    "Love language",
			category:  domain.CategoryEmotional,
			score:     loveLanguageScore(a.LoveLanguage, b.LoveLanguage),
			weight:    0.25,
			strength:  "You give love the way the other most wants to receive it",
			challenge: "You express love in ways the other may not notice",
		},
	}
}

package compatibility

import (
	"fmt"
	"strings"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
)

var insightCategoryOf = map[domain.Dimension]domain.InsightCategory{
	domain.DimensionNumerology:    domain.InsightLifeGoals,
	domain.DimensionAstrology:     domain.InsightSoulConnection,
	domain.DimensionTantric:       domain.InsightPhysicalAttraction,
	domain.DimensionEnergetic:     domain.InsightSpiritualAlignment,
	domain.DimensionCommunication: domain.InsightCommunicationStyle,
	domain.DimensionEmotional:     domain.InsightEmotionalHarmony,
}

type sourcedStrength struct {
	dim domain.Dimension
	domain.CompatibilityStrength
}

type sourcedChallenge struct {
	dim domain.Dimension
	domain.CompatibilityChallenge
}

type aspectKey struct {
	aspect   string
	category domain.CompatibilityCategory
}

// collectFindings flattens scorer output in scorer order. When an
// (aspect, category) pair is reported again, the first report is kept.
func collectFindings(results []DimensionResult) ([]sourcedStrength, []sourcedChallenge) {
	var strengths []sourcedStrength
	var challenges []sourcedChallenge
	seenS := make(map[aspectKey]bool)
	seenC := make(map[aspectKey]bool)

	for _, r := range results {
		for _, s := range r.Strengths {
			k := aspectKey{s.Aspect, s.Category}
			if seenS[k] {
				continue
			}
			seenS[k] = true
			strengths = append(strengths, sourcedStrength{r.Dimension, s})
		}
		for _, c := range r.Challenges {
			k := aspectKey{c.Aspect, c.Category}
			if seenC[k] {
				continue
			}
			seenC[k] = true
			challenges = append(challenges, sourcedChallenge{r.Dimension, c})
		}
	}
	return strengths, challenges
}

func dimensionLabel(d domain.Dimension) string {
	s := string(d)
	return strings.ToUpper(s[:1]) + s[1:]
}

// buildInsights highlights the strongest and weakest dimensions, then every
// strength or challenge of critical weight. Ties between dimensions go to
// the one scored first.
func buildInsights(results []DimensionResult, strengths []sourcedStrength, challenges []sourcedChallenge) []domain.RelationshipInsight {
	insights := make([]domain.RelationshipInsight, 0, 2)
	if len(results) > 0 {
		hi, lo := 0, 0
		for i, r := range results {
			if r.Score > results[hi].Score {
				hi = i
			}
			if r.Score < results[lo].Score {
				lo = i
			}
		}

		top := results[hi]
		importance := domain.ImportanceMedium
		if top.Score >= strengthThreshold {
			importance = domain.ImportanceHigh
		}
		insights = append(insights, domain.RelationshipInsight{
			Title:              "Strongest bond: " + dimensionLabel(top.Dimension),
			Description:        fmt.Sprintf("%s compatibility scores %.0f/100, your highest dimension.", dimensionLabel(top.Dimension), top.Score),
			Category:           insightCategoryOf[top.Dimension],
			Importance:         importance,
			Dimension:          top.Dimension,
			SupportingEvidence: strengthEvidence(top),
		})

		if lo != hi {
			low := results[lo]
			importance := domain.ImportanceMedium
			if low.Score < challengeThreshold {
				importance = domain.ImportanceHigh
			}
			insights = append(insights, domain.RelationshipInsight{
				Title:              "Growth edge: " + dimensionLabel(low.Dimension),
				Description:        fmt.Sprintf("%s compatibility scores %.0f/100, the area that asks for the most care.", dimensionLabel(low.Dimension), low.Score),
				Category:           domain.InsightGrowthPotential,
				Importance:         importance,
				Dimension:          low.Dimension,
				SupportingEvidence: challengeEvidence(low),
			})
		}
	}

	for _, s := range strengths {
		if s.Importance != domain.ImportanceCritical {
			continue
		}
		insights = append(insights, domain.RelationshipInsight{
			Title:              "Exceptional " + strings.ToLower(s.Aspect),
			Description:        s.Description,
			Category:           insightCategoryOf[s.dim],
			Importance:         domain.ImportanceCritical,
			Dimension:          s.dim,
			SupportingEvidence: []string{fmt.Sprintf("%s scored %.0f/100", s.Aspect, s.Score)},
		})
	}
	for _, c := range challenges {
		if c.Severity != domain.SeverityCritical {
			continue
		}
		category := insightCategoryOf[c.dim]
		if c.Category == domain.CategoryCommunication {
			category = domain.InsightConflictResolution
		}
		insights = append(insights, domain.RelationshipInsight{
			Title:              "Handle with care: " + strings.ToLower(c.Aspect),
			Description:        c.Description,
			Category:           category,
			Importance:         domain.ImportanceCritical,
			Dimension:          c.dim,
			SupportingEvidence: c.Solutions,
		})
	}
	return insights
}

func strengthEvidence(r DimensionResult) []string {
	var out []string
	for _, s := range r.Strengths {
		out = append(out, s.Description)
	}
	return out
}

func challengeEvidence(r DimensionResult) []string {
	var out []string
	for _, c := range r.Challenges {
		out = append(out, c.Description)
	}
	return out
}

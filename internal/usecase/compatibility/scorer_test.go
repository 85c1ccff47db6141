package compatibility

import (
	"testing"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assignments enumerates a spread of classified profiles covering every
// value of each enum at least once.
func assignments() []domain.ArchetypeAssignment {
	languages := append([]domain.LoveLanguage{""}, domain.AllLoveLanguages...)
	var out []domain.ArchetypeAssignment
	for i := 0; i < 24; i++ {
		out = append(out, domain.ArchetypeAssignment{
			ProfileID:          string(rune('a' + i)),
			Sign:               domain.AllZodiacSigns[i%12],
			Element:            ElementOf(domain.AllZodiacSigns[i%12]),
			NumerologyDigest:   i%9 + 1,
			TantricType:        domain.AllTantricTypes[i%8],
			Polarity:           domain.AllEnergyPolarities[i%4],
			Chakra:             domain.AllChakras[i%7],
			Archetype:          domain.AllRelationshipArchetypes[i%8],
			CommunicationStyle: domain.AllCommunicationStyles[i%6],
			ConflictStyle:      domain.AllConflictStyles[i%5],
			AttachmentStyle:    domain.AllAttachmentStyles[i%4],
			LoveLanguage:       languages[i%len(languages)],
		})
	}
	return out
}

func TestDefaultScorers_TotalSymmetricAndBounded(t *testing.T) {
	scorers := DefaultScorers()
	require.Len(t, scorers, len(domain.AllDimensions))
	for i, s := range scorers {
		assert.Equal(t, domain.AllDimensions[i], s.Dimension())
	}

	all := assignments()
	for _, s := range scorers {
		for i := range all {
			for j := range all {
				ab := s.Score(&all[i], &all[j])
				ba := s.Score(&all[j], &all[i])
				assert.Equal(t, ab.Score, ba.Score, "%s %d/%d", s.Dimension(), i, j)
				assert.Equal(t, ab.Strengths, ba.Strengths, "%s %d/%d", s.Dimension(), i, j)
				assert.Equal(t, ab.Challenges, ba.Challenges, "%s %d/%d", s.Dimension(), i, j)
				assert.GreaterOrEqual(t, ab.Score, 0.0)
				assert.LessOrEqual(t, ab.Score, 100.0)
			}
		}
	}
}

func TestBuildResult_WeightsAndThresholds(t *testing.T) {
	res := buildResult(domain.DimensionCommunication, []facet{
		{aspect: "Flow", category: domain.CategoryCommunication, score: 92, weight: 0.7, strength: "good"},
		{aspect: "Conflict", category: domain.CategoryCommunication, score: 30, weight: 0.3, challenge: "bad"},
	})

	assert.InDelta(t, 92*0.7+30*0.3, res.Score, 0.01)
	require.Len(t, res.Strengths, 1)
	assert.Equal(t, domain.ImportanceCritical, res.Strengths[0].Importance)
	require.Len(t, res.Challenges, 1)
	assert.Equal(t, domain.SeverityCritical, res.Challenges[0].Severity)
	assert.NotEmpty(t, res.Challenges[0].Solutions)
}

func TestChallengeSeverity(t *testing.T) {
	assert.Equal(t, domain.SeverityCritical, challengeSeverity(34.9))
	assert.Equal(t, domain.SeverityMajor, challengeSeverity(35))
	assert.Equal(t, domain.SeverityModerate, challengeSeverity(45))
	assert.Equal(t, domain.SeverityMinor, challengeSeverity(50))
}

func TestSolutionsFor_ReturnsCopy(t *testing.T) {
	s := solutionsFor(domain.CategoryEmotional)
	require.NotEmpty(t, s)
	s[0] = "changed"
	assert.NotEqual(t, "changed", solutionsFor(domain.CategoryEmotional)[0])
}

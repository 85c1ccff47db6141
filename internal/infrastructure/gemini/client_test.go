package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
	"github.com/gdugdh24/spiritatlas-backend/internal/logging"
	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	resp   *genai.GenerateContentResponse
	err    error
	prompt string
}

func (f *fakeModel) GenerateContent(_ context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	if len(parts) > 0 {
		if txt, ok := parts[0].(genai.Text); ok {
			f.prompt = string(txt)
		}
	}
	return f.resp, f.err
}

func sampleReport() *domain.CompatibilityReport {
	return &domain.CompatibilityReport{
		ID:       "r1",
		ProfileA: domain.UserProfile{ID: "a", Name: "Luna"},
		ProfileB: domain.UserProfile{ID: "b", Name: "Theo"},
		Scores:   domain.CompatibilityScores{Numerology: 95, Astrology: 70, Tantric: 95, Energetic: 82.4, Communication: 81.2, Emotional: 91.5},
		Strengths: []domain.CompatibilityStrength{
			{Aspect: "Numerology digests", Category: domain.CategoryNumerological},
		},
	}
}

func TestExplainReport_UsesModelText(t *testing.T) {
	model := &fakeModel{resp: &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []genai.Part{genai.Text("  A bright, steady match. ")}}}},
	}}
	client := NewWithModel(model, logging.NewDiscard())

	text, err := client.ExplainReport(context.Background(), sampleReport())
	require.NoError(t, err)
	assert.Equal(t, "A bright, steady match.", text)
	assert.Contains(t, model.prompt, "Luna and Theo")
	assert.Contains(t, model.prompt, "EXCELLENT")
	assert.Contains(t, model.prompt, "Strength: Numerology digests")
}

func TestExplainReport_FallsBackToSummary(t *testing.T) {
	report := sampleReport()
	for name, model := range map[string]*fakeModel{
		"api error":      {err: errors.New("quota exceeded")},
		"empty response": {resp: &genai.GenerateContentResponse{}},
	} {
		t.Run(name, func(t *testing.T) {
			text, err := NewWithModel(model, logging.NewDiscard()).ExplainReport(context.Background(), report)
			require.NoError(t, err)
			assert.Equal(t, report.Summary(), text)
		})
	}
}

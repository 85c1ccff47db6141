package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// TextGenerator is the part of the Gemini model the client uses.
type TextGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type GeminiClient struct {
	client *genai.Client
	model  TextGenerator
	logger *slog.Logger
}

func NewGeminiClient(apiKey string, logger *slog.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-pro")
	model.SetTemperature(0.7)

	return &GeminiClient{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// NewWithModel builds a client around an existing generator.
func NewWithModel(model TextGenerator, logger *slog.Logger) *GeminiClient {
	return &GeminiClient{model: model, logger: logger}
}

func (c *GeminiClient) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// ExplainReport asks the model for a short explanation of the report. Only
// names, levels, scores and aspects are sent. When the API is unavailable
// the report summary is returned instead.
func (c *GeminiClient) ExplainReport(ctx context.Context, report *domain.CompatibilityReport) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(explanationPrompt(report)))
	if err != nil {
		c.logger.WarnContext(ctx, "gemini unavailable, using fallback explanation", "report_id", report.ID, "error", err)
		return report.Summary(), nil
	}

	text := responseText(resp)
	if text == "" {
		return report.Summary(), nil
	}
	return text, nil
}

func explanationPrompt(r *domain.CompatibilityReport) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Two people, %s and %s, have %s compatibility (%.0f/100).\n",
		r.ProfileA.Label(), r.ProfileB.Label(), r.Level(), r.OverallScore())
	sb.WriteString("Dimension scores:\n")
	for _, d := range domain.AllDimensions {
		fmt.Fprintf(&sb, "- %s: %.0f\n", d, r.Scores.Get(d))
	}
	for _, s := range r.Strengths {
		fmt.Fprintf(&sb, "Strength: %s\n", s.Aspect)
	}
	for _, ch := range r.Challenges {
		fmt.Fprintf(&sb, "Challenge: %s (%s)\n", ch.Aspect, ch.Severity)
	}
	sb.WriteString(`
Task: Write a short, warm explanation (2-3 sentences) of this match for the couple.
Mention one strength and, if present, one challenge.
Output: Just the explanation text.`)
	return sb.String()
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return strings.TrimSpace(sb.String())
}

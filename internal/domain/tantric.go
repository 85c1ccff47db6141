package domain

type TantricContentType string

const (
	ContentTantricPractices TantricContentType = "TANTRIC_PRACTICES"
	ContentKamaSutra        TantricContentType = "KAMA_SUTRA"
	ContentRobertGreene     TantricContentType = "ROBERT_GREENE"
	ContentCompatibility    TantricContentType = "COMPATIBILITY"
)

// TantricContent is an entry of the optional content catalog the engine
// matches couples against.
type TantricContent struct {
	ID          string             `json:"id" yaml:"id"`
	Title       string             `json:"title" yaml:"title"`
	ContentType TantricContentType `json:"content_type" yaml:"content_type"`
	Tags        []string           `json:"tags,omitempty" yaml:"tags,omitempty"`
}

type TantricCompatibility struct {
	ContentID          string             `json:"content_id"`
	ContentType        TantricContentType `json:"content_type"`
	CompatibilityScore float64            `json:"compatibility_score"`
	Reason             string             `json:"reason"`
	Recommendation     string             `json:"recommendation"`
}

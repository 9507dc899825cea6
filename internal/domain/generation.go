package domain

// Prompt is one rendered request to a text generation provider.
type Prompt struct {
	// TemplateID names the template the prompt was rendered from.
	TemplateID string
	System     string
	Text       string
	MaxTokens  int64
}

// Artifact is one piece of generated content. Rank is 1-based; single
// artifacts have rank 1.
type Artifact struct {
	Rank int    `json:"rank"`
	Text string `json:"text"`
}

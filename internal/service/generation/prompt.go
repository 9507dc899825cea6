package generation

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

var systemPrompts = map[string]string{
	TemplateStrategicMessage: "You are a career strategist who writes concise, credible outreach for senior technology candidates.",
	TemplateBrandVoice:       "You are a ghostwriter for a technology leader's professional brand. You never invent achievements.",
	TemplateCompanyResearch:  "You are a meticulous company researcher. Prefer primary sources and say nothing you cannot support.",
}

type promptData struct {
	Request   Request
	Narrative *domain.Narrative
	Count     int
	Fields    []string
}

func render(req Request, n *domain.Narrative, maxTokens int64) (domain.Prompt, error) {
	data := promptData{Request: req, Narrative: n, Count: 1}
	switch r := req.(type) {
	case StrategicMessageRequest:
		data.Count = r.Count
		if data.Count == 0 {
			data.Count = defaultCount
		}
	case CompanyResearchRequest:
		data.Fields = r.fields()
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, req.TemplateID(), data); err != nil {
		return domain.Prompt{}, fmt.Errorf("render %s: %w", req.TemplateID(), err)
	}

	return domain.Prompt{
		TemplateID: req.TemplateID(),
		System:     systemPrompts[req.TemplateID()],
		Text:       buf.String(),
		MaxTokens:  maxTokens,
	}, nil
}

package generation

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
)

// ResearchSource marks info fields whose model answer named no sources.
const ResearchSource = "research"

// ErrMalformedOutput is returned when a provider answer cannot be parsed.
var ErrMalformedOutput = fmt.Errorf("malformed generation output: %w", domain.ErrUnavailable)

// extractJSON returns the outermost span between lo and hi.
func extractJSON(s string, lo, hi byte) (string, error) {
	start := strings.IndexByte(s, lo)
	end := strings.LastIndexByte(s, hi)
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON %c%c found: %w", lo, hi, ErrMalformedOutput)
	}
	return s[start : end+1], nil
}

func parseSingle(text string) (domain.Artifact, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Artifact{}, fmt.Errorf("empty answer: %w", ErrMalformedOutput)
	}
	return domain.Artifact{Rank: 1, Text: text}, nil
}

// parseRanked reads a JSON array of strings, keeping the model's order and
// dropping blanks. At most limit artifacts are returned.
func parseRanked(text string, limit int) ([]domain.Artifact, error) {
	raw, err := extractJSON(text, '[', ']')
	if err != nil {
		return nil, err
	}

	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode ranked list: %w: %w", ErrMalformedOutput, err)
	}

	out := make([]domain.Artifact, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it == "" {
			continue
		}
		out = append(out, domain.Artifact{Rank: len(out) + 1, Text: it})
		if len(out) == limit {
			break
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty ranked list: %w", ErrMalformedOutput)
	}
	return out, nil
}

// parseResearch reads the research JSON object into info fields. Keys that
// were not asked for and entries without text are dropped.
func parseResearch(text string, keys []string) (map[string]domain.InfoField, error) {
	raw, err := extractJSON(text, '{', '}')
	if err != nil {
		return nil, err
	}

	var answer map[string]struct {
		Text    string   `json:"text"`
		Sources []string `json:"sources"`
	}
	if err := json.Unmarshal([]byte(raw), &answer); err != nil {
		return nil, fmt.Errorf("decode research: %w: %w", ErrMalformedOutput, err)
	}

	out := make(map[string]domain.InfoField, len(answer))
	for k, v := range answer {
		k = strings.TrimSpace(k)
		t := strings.TrimSpace(v.Text)
		if t == "" || !slices.Contains(keys, k) {
			continue
		}
		var sources []string
		for _, s := range v.Sources {
			if s = strings.TrimSpace(s); s != "" {
				sources = append(sources, s)
			}
		}
		if len(sources) == 0 {
			sources = []string{ResearchSource}
		}
		out[k] = domain.InfoField{Text: t, Source: domain.Provenance(sources)}
	}
	return out, nil
}

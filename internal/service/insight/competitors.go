package insight

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
)

// CompetitorMatch is the outcome for one name in a competitors list.
type CompetitorMatch struct {
	Token     string     `json:"token"`
	Matched   bool       `json:"matched"`
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
	Company   string     `json:"company,omitempty"`
}

// MatchCompetitors splits free text on commas and looks each name up among
// the user's companies.
//
// Matching is approximate: names are compared case-insensitively with
// punctuation stripped, then by containment, then by a small edit distance.
// Treat the result as a hint; it can both miss and mismatch.
func MatchCompetitors(text string, companies []domain.Company) []CompetitorMatch {
	var out []CompetitorMatch
	for _, raw := range strings.Split(text, ",") {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}
		m := CompetitorMatch{Token: token}
		if c, ok := bestCompany(token, companies); ok {
			id := c.ID
			m.Matched = true
			m.CompanyID = &id
			m.Company = c.Name
		}
		out = append(out, m)
	}
	return out
}

func bestCompany(token string, companies []domain.Company) (domain.Company, bool) {
	key := normalizeName(token)
	if key == "" {
		return domain.Company{}, false
	}

	best, bestScore := -1, 0
	for i, c := range companies {
		name := normalizeName(c.Name)
		if name == "" {
			continue
		}
		score := similarity(key, name)
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return domain.Company{}, false
	}
	return companies[best], true
}

// similarity ranks a candidate: 3 exact, 2 containment, 1 close spelling,
// 0 no match.
func similarity(a, b string) int {
	if a == b {
		return 3
	}
	if len(a) >= 3 && len(b) >= 3 && (strings.Contains(a, b) || strings.Contains(b, a)) {
		return 2
	}
	shorter := min(len(a), len(b))
	if shorter < 4 {
		return 0
	}
	if levenshtein.ComputeDistance(a, b) <= max(1, shorter/5) {
		return 1
	}
	return 0
}

func normalizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

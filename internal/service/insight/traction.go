package insight

import (
	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
)

// Collections is the user's data a dashboard is derived from.
type Collections struct {
	Applications []domain.Application
	Contacts     []domain.Contact
	Posts        []domain.Post
	Engagements  []domain.Engagement
}

// NarrativeTraction summarises how one positioning narrative is performing.
type NarrativeTraction struct {
	NarrativeID    uuid.UUID `json:"narrative_id"`
	Applications   int       `json:"applications"`
	MeanFit        float64   `json:"mean_fit"`
	Conversations  int       `json:"conversations"`
	MeanEngagement float64   `json:"mean_engagement"`
}

// Traction computes the metrics for a single narrative. Each metric is
// computed independently and unscored records are left out of the means.
func Traction(narrativeID uuid.UUID, c Collections) NarrativeTraction {
	t := NarrativeTraction{NarrativeID: narrativeID}

	var fits []float64
	for _, a := range c.Applications {
		if !a.HasNarrative(narrativeID) {
			continue
		}
		t.Applications++
		if a.StrategicFitScore != nil {
			fits = append(fits, *a.StrategicFitScore)
		}
	}
	t.MeanFit = mean(fits)

	for _, ct := range c.Contacts {
		if ct.Status == domain.ContactStatusInConversation && ct.HasNarrative(narrativeID) {
			t.Conversations++
		}
	}

	tagged := make(map[uuid.UUID]struct{})
	for _, p := range c.Posts {
		if p.HasNarrative(narrativeID) {
			tagged[p.ID] = struct{}{}
		}
	}
	var scores []float64
	for _, e := range c.Engagements {
		if _, ok := tagged[e.PostID]; !ok || e.StrategicScore == nil {
			continue
		}
		scores = append(scores, *e.StrategicScore)
	}
	t.MeanEngagement = mean(scores)

	return t
}

// Comparison is an A/B view of two narratives. A side is nil when no
// narrative was given for it.
type Comparison struct {
	A *NarrativeTraction `json:"a,omitempty"`
	B *NarrativeTraction `json:"b,omitempty"`
}

// CompareNarratives computes traction for up to two narratives. uuid.Nil
// leaves the side empty.
func CompareNarratives(a, b uuid.UUID, c Collections) Comparison {
	var out Comparison
	if a != uuid.Nil {
		t := Traction(a, c)
		out.A = &t
	}
	if b != uuid.Nil {
		t := Traction(b, c)
		out.B = &t
	}
	return out
}

// Package insight derives dashboard aggregates from in-memory collections.
// Every function is pure: inputs are never modified and missing optional
// values exclude a record instead of failing.
package insight

import (
	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
)

// FunnelStatuses are the networking stages shown in the funnel, in order.
var FunnelStatuses = []domain.ContactStatus{
	domain.ContactStatusToContact,
	domain.ContactStatusInitialOutreach,
	domain.ContactStatusInConversation,
	domain.ContactStatusFollowUpNeeded,
}

// FunnelBucket holds the contacts currently at one stage.
type FunnelBucket struct {
	Status   domain.ContactStatus `json:"status"`
	Contacts []domain.Contact     `json:"contacts"`
}

// Funnel buckets contacts by status.
//
// A contact that took part in any interview has graduated out of the funnel
// and is left out regardless of its stored status. Contacts whose status is
// not one of FunnelStatuses are omitted. Within a bucket input order is kept.
func Funnel(contacts []domain.Contact, apps []domain.Application) []FunnelBucket {
	interviewed := make(map[uuid.UUID]struct{})
	for _, app := range apps {
		for _, id := range app.InterviewContactIDs() {
			interviewed[id] = struct{}{}
		}
	}

	buckets := make([]FunnelBucket, len(FunnelStatuses))
	index := make(map[domain.ContactStatus]int, len(FunnelStatuses))
	for i, st := range FunnelStatuses {
		buckets[i] = FunnelBucket{Status: st, Contacts: []domain.Contact{}}
		index[st] = i
	}

	for _, c := range contacts {
		if _, ok := interviewed[c.ID]; ok {
			continue
		}
		i, ok := index[c.Status]
		if !ok {
			continue
		}
		buckets[i].Contacts = append(buckets[i].Contacts, c.Clone())
	}
	return buckets
}

// FunnelTotal counts the contacts across all buckets.
func FunnelTotal(buckets []FunnelBucket) int {
	n := 0
	for _, b := range buckets {
		n += len(b.Contacts)
	}
	return n
}

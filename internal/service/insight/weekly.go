package insight

import (
	"math"
	"time"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
)

// WeekStart returns Sunday 00:00 of the week containing now, in loc,
// converted to UTC.
func WeekStart(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	offset := int(local.Weekday())
	// AddDate keeps midnight across DST changes, Add(-24h*n) does not
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, -offset)
	return day.UTC()
}

// ParseTimezone parses a timezone string, returning UTC as fallback.
func ParseTimezone(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// GoalProgress is the progress of one weekly counter against its target.
type GoalProgress struct {
	Current    int  `json:"current"`
	Target     int  `json:"target"`
	Percentage int  `json:"percentage"`
	Met        bool `json:"met"`
}

// Progress computes the capped percentage of current against target.
// A non-positive target yields 0% and is never met.
func Progress(current, target int) GoalProgress {
	p := GoalProgress{Current: current, Target: target}
	if target <= 0 {
		return p
	}
	pct := int(math.Round(float64(current) / float64(target) * 100))
	p.Percentage = min(max(pct, 0), 100)
	p.Met = current >= target
	return p
}

// Weekly is the current week's activity against the user's goals.
type Weekly struct {
	WeekStart    time.Time    `json:"week_start"`
	Applications GoalProgress `json:"applications"`
	Contacts     GoalProgress `json:"contacts"`
	Posts        GoalProgress `json:"posts"`
}

// WeeklyProgress counts applications by applied date, contacts by creation
// date and posts by publication date. Records without the relevant date are
// not counted.
func WeeklyProgress(
	now time.Time,
	loc *time.Location,
	goals domain.WeeklyGoals,
	apps []domain.Application,
	contacts []domain.Contact,
	posts []domain.Post,
) Weekly {
	start := WeekStart(now, loc)

	var nApps, nContacts, nPosts int
	for _, a := range apps {
		if onOrAfter(a.AppliedAt, start) {
			nApps++
		}
	}
	for _, c := range contacts {
		if !c.CreatedAt.IsZero() && !c.CreatedAt.Before(start) {
			nContacts++
		}
	}
	for _, p := range posts {
		if onOrAfter(p.PublishedAt, start) {
			nPosts++
		}
	}

	return Weekly{
		WeekStart:    start,
		Applications: Progress(nApps, goals.Applications),
		Contacts:     Progress(nContacts, goals.Contacts),
		Posts:        Progress(nPosts, goals.Posts),
	}
}

func onOrAfter(t *time.Time, start time.Time) bool {
	return t != nil && !t.IsZero() && !t.Before(start)
}

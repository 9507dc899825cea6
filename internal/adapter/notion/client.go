// Package notion exports tracked applications into a Notion database.
package notion

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	gnt "github.com/dstotijn/go-notion"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/config"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
)

// Database property names.
const (
	propPosition      = "Position"
	propCompany       = "Company"
	propJobPosting    = "Job Posting"
	propStatus        = "Status"
	propFitScore      = "Fit Score"
	propApplied       = "Applied"
	propInterviews    = "Interviews"
	propNextInterview = "Next Interview"
)

// Client writes pages into one Notion database.
type Client struct {
	api        *gnt.Client
	databaseID string
	log        *slog.Logger
	now        func() time.Time
}

// New creates an exporter. httpClient may be nil.
func New(cfg config.NotionConfig, logger *slog.Logger, httpClient *http.Client) *Client {
	var opts []gnt.ClientOption
	if httpClient != nil {
		opts = append(opts, gnt.WithHTTPClient(httpClient))
	}
	return &Client{
		api:        gnt.NewClient(cfg.Token, opts...),
		databaseID: cfg.DatabaseID,
		log:        logger.With("adapter", "notion"),
		now:        time.Now,
	}
}

// Ping runs a one-row query to check the database is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.api.QueryDatabase(ctx, c.databaseID, &gnt.DatabaseQuery{PageSize: 1}); err != nil {
		return fmt.Errorf("notion: query database: %w", err)
	}
	return nil
}

// ExportApplication creates one database row for the application and
// returns the new page id.
func (c *Client) ExportApplication(ctx context.Context, app domain.Application, companyName string) (string, error) {
	props := applicationProperties(app, companyName, c.now())

	page, err := c.api.CreatePage(ctx, gnt.CreatePageParams{
		ParentType:             gnt.ParentTypeDatabase,
		ParentID:               c.databaseID,
		DatabasePageProperties: &props,
	})
	if err != nil {
		return "", fmt.Errorf("notion: create page for application %s: %w", app.ID, err)
	}

	c.log.DebugContext(ctx, "application exported",
		slog.String("application_id", app.ID.String()),
		slog.String("page_id", page.ID),
	)
	return page.ID, nil
}

func richText(s string) []gnt.RichText {
	if s == "" {
		return nil
	}
	return []gnt.RichText{{Text: &gnt.Text{Content: s}}}
}

func applicationProperties(app domain.Application, companyName string, now time.Time) gnt.DatabasePageProperties {
	props := gnt.DatabasePageProperties{
		propPosition: {Title: richText(app.JobTitle)},
	}

	if companyName != "" {
		props[propCompany] = gnt.DatabasePageProperty{RichText: richText(companyName)}
	}
	if app.JobLink != "" {
		link := app.JobLink
		props[propJobPosting] = gnt.DatabasePageProperty{URL: &link}
	}
	if app.Status != "" {
		props[propStatus] = gnt.DatabasePageProperty{Select: &gnt.SelectOptions{Name: app.Status.String()}}
	}
	if app.StrategicFitScore != nil {
		score := *app.StrategicFitScore
		props[propFitScore] = gnt.DatabasePageProperty{Number: &score}
	}
	if app.AppliedAt != nil {
		props[propApplied] = gnt.DatabasePageProperty{Date: &gnt.Date{Start: gnt.NewDateTime(*app.AppliedAt, false)}}
	}

	count := float64(len(app.Interviews))
	props[propInterviews] = gnt.DatabasePageProperty{Number: &count}

	if next := nextInterview(app.Interviews, now); next != nil {
		props[propNextInterview] = gnt.DatabasePageProperty{Date: &gnt.Date{Start: gnt.NewDateTime(*next, true)}}
	}

	return props
}

// nextInterview returns the earliest scheduled time not before now.
func nextInterview(ivs []domain.Interview, now time.Time) *time.Time {
	var next *time.Time
	for _, iv := range ivs {
		if iv.ScheduledAt == nil || iv.ScheduledAt.Before(now) {
			continue
		}
		if next == nil || iv.ScheduledAt.Before(*next) {
			t := *iv.ScheduledAt
			next = &t
		}
	}
	return next
}

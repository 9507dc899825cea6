package narrative

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/pkg/ctxutil"
)

// CreatePost records a post. Without an explicit narrative the post is
// tagged with the active one, if any.
func (s *Service) CreatePost(ctx context.Context, input CreatePostInput) (*domain.Post, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	narrativeID := input.NarrativeID
	if narrativeID == nil {
		if id, ok := ctxutil.NarrativeIDFromCtx(ctx); ok {
			narrativeID = &id
		}
	}

	p, err := s.posts.Create(ctx, &domain.Post{
		UserID:      userID,
		NarrativeID: narrativeID,
		Theme:       strings.TrimSpace(input.Theme),
		Content:     strings.TrimSpace(input.Content),
		PublishedAt: input.PublishedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.log.InfoContext(ctx, "post created",
		slog.String("user_id", userID.String()),
		slog.String("post_id", p.ID.String()),
	)
	return p, nil
}

// ListPosts returns a page of the user's posts, newest first.
func (s *Service) ListPosts(ctx context.Context, page domain.Page) ([]domain.Post, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if page.Limit < 0 || page.Limit > maxPageSize {
		return nil, domain.NewValidationError("limit", "must be between 0 and 200")
	}
	if page.Offset < 0 {
		return nil, domain.NewValidationError("offset", "must be >= 0")
	}

	list, err := s.posts.List(ctx, userID, page)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return list, nil
}

// DeletePost deletes a post together with its engagements.
func (s *Service) DeletePost(ctx context.Context, postID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.posts.Delete(ctx, userID, postID); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// CreateEngagement records an engagement on one of the user's posts.
func (s *Service) CreateEngagement(ctx context.Context, input CreateEngagementInput) (*domain.Engagement, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	e, err := s.engagements.Create(ctx, &domain.Engagement{
		UserID:         userID,
		PostID:         input.PostID,
		ContactName:    strings.TrimSpace(input.ContactName),
		ContactTitle:   strings.TrimSpace(input.ContactTitle),
		Kind:           strings.TrimSpace(input.Kind),
		StrategicScore: input.StrategicScore,
	})
	if err != nil {
		return nil, fmt.Errorf("create engagement: %w", err)
	}

	s.log.InfoContext(ctx, "engagement created",
		slog.String("user_id", userID.String()),
		slog.String("post_id", input.PostID.String()),
	)
	return e, nil
}

// ListEngagements returns the engagements on a post.
func (s *Service) ListEngagements(ctx context.Context, postID uuid.UUID) ([]domain.Engagement, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.posts.GetByID(ctx, userID, postID); err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}

	list, err := s.engagements.ListByPost(ctx, userID, postID)
	if err != nil {
		return nil, fmt.Errorf("list engagements: %w", err)
	}
	return list, nil
}

// DeleteEngagement deletes an engagement.
func (s *Service) DeleteEngagement(ctx context.Context, engagementID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.engagements.Delete(ctx, userID, engagementID); err != nil {
		return fmt.Errorf("delete engagement: %w", err)
	}
	return nil
}

package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vidtube/video-platform/internal/core/domain"
	"github.com/vidtube/video-platform/internal/core/ports"
)

// CommentService implements per-video comment CRUD. Updates and deletes are
// owner-gated via the shared ownership policy.
type CommentService struct {
	comments ports.CommentRepository
	videos   ports.VideoRepository
	logger   zerolog.Logger
}

func NewCommentService(comments ports.CommentRepository, videos ports.VideoRepository, logger zerolog.Logger) *CommentService {
	return &CommentService{comments: comments, videos: videos, logger: logger}
}

func (s *CommentService) ListByVideo(ctx context.Context, videoID string, page, limit int) (*ports.CommentPage, error) {
	if !domain.ValidID(videoID) {
		return nil, domain.ErrInvalidID
	}
	page, limit = normalizePage(page, limit)

	items, total, err := s.comments.ListByVideo(ctx, videoID, page, limit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Comment{}
	}
	return &ports.CommentPage{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *CommentService) Add(ctx context.Context, videoID, actorID, content string) (*domain.Comment, error) {
	if !domain.ValidID(videoID) {
		return nil, domain.ErrInvalidID
	}
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrMissingField
	}

	// The target video must exist; commenting on a deleted video is a 404.
	if _, err := s.videos.FindByID(ctx, videoID); err != nil {
		return nil, err
	}

	return s.comments.Create(ctx, &domain.Comment{
		Content: content,
		VideoID: videoID,
		OwnerID: actorID,
	})
}

func (s *CommentService) Update(ctx context.Context, commentID, actorID, content string) (*domain.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrMissingField
	}
	if err := s.assertOwned(ctx, commentID, actorID); err != nil {
		return nil, err
	}
	return s.comments.UpdateContent(ctx, commentID, content)
}

func (s *CommentService) Delete(ctx context.Context, commentID, actorID string) error {
	if err := s.assertOwned(ctx, commentID, actorID); err != nil {
		return err
	}
	return s.comments.Delete(ctx, commentID)
}

func (s *CommentService) assertOwned(ctx context.Context, commentID, actorID string) error {
	if !domain.ValidID(commentID) {
		return domain.ErrInvalidID
	}
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return err
	}
	return domain.AssertOwner(comment.OwnerID, actorID)
}

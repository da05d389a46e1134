package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/vidtube/video-platform/internal/core/domain"
	"github.com/vidtube/video-platform/internal/core/ports"
)

// LikeService is the single toggle-by-presence implementation shared by
// video, comment and tweet likes. The target kind travels as a tag; there is
// no per-entity copy of the toggle.
type LikeService struct {
	likes  ports.LikeRepository
	logger zerolog.Logger
}

func NewLikeService(likes ports.LikeRepository, logger zerolog.Logger) *LikeService {
	return &LikeService{likes: likes, logger: logger}
}

// Toggle deletes the (kind, target, actor) like row if present, creates it if
// absent. Correctness under concurrent duplicate toggles rests on the storage
// layer's unique pair index: a racing insert surfaces as ErrAlreadyExists and
// resolves to the "liked" state, a racing delete surfaces as ErrLikeNotFound
// and resolves to "unliked". Either way the caller sees the state it asked for.
func (s *LikeService) Toggle(ctx context.Context, kind domain.LikeKind, targetID, actorID string) (domain.ToggleState, error) {
	if !kind.Valid() || !domain.ValidID(targetID) {
		return "", domain.ErrInvalidID
	}
	if actorID == "" {
		return "", domain.ErrUnauthorized
	}

	existing, err := s.likes.Find(ctx, kind, targetID, actorID)
	switch {
	case err == nil:
		if err := s.likes.Delete(ctx, existing.ID); err != nil && !errors.Is(err, domain.ErrLikeNotFound) {
			return "", err
		}
		return domain.StateUnliked, nil
	case !errors.Is(err, domain.ErrLikeNotFound):
		return "", err
	}

	err = s.likes.Create(ctx, &domain.Like{Kind: kind, TargetID: targetID, LikedByID: actorID})
	if err != nil && !errors.Is(err, domain.ErrAlreadyExists) {
		return "", err
	}
	return domain.StateLiked, nil
}

// LikedVideos lists the actor's video likes, newest first.
func (s *LikeService) LikedVideos(ctx context.Context, actorID string) ([]domain.Like, error) {
	if actorID == "" {
		return nil, domain.ErrUnauthorized
	}
	likes, err := s.likes.ListVideoLikesByUser(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if likes == nil {
		likes = []domain.Like{}
	}
	return likes, nil
}

package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vidtube/video-platform/internal/core/domain"
	"github.com/vidtube/video-platform/internal/core/ports"
)

// TweetService implements tweet CRUD with owner-gated mutations.
type TweetService struct {
	tweets ports.TweetRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewTweetService(tweets ports.TweetRepository, users ports.UserRepository, logger zerolog.Logger) *TweetService {
	return &TweetService{tweets: tweets, users: users, logger: logger}
}

func (s *TweetService) Create(ctx context.Context, actorID, content string) (*domain.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrMissingField
	}
	return s.tweets.Create(ctx, &domain.Tweet{Content: content, OwnerID: actorID})
}

func (s *TweetService) ListByUser(ctx context.Context, userID string) ([]domain.Tweet, error) {
	if !domain.ValidID(userID) {
		return nil, domain.ErrInvalidID
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	tweets, err := s.tweets.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if tweets == nil {
		tweets = []domain.Tweet{}
	}
	return tweets, nil
}

func (s *TweetService) Update(ctx context.Context, tweetID, actorID, content string) (*domain.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrMissingField
	}
	if err := s.assertOwned(ctx, tweetID, actorID); err != nil {
		return nil, err
	}
	return s.tweets.UpdateContent(ctx, tweetID, content)
}

func (s *TweetService) Delete(ctx context.Context, tweetID, actorID string) error {
	if err := s.assertOwned(ctx, tweetID, actorID); err != nil {
		return err
	}
	return s.tweets.Delete(ctx, tweetID)
}

func (s *TweetService) assertOwned(ctx context.Context, tweetID, actorID string) error {
	if !domain.ValidID(tweetID) {
		return domain.ErrInvalidID
	}
	tweet, err := s.tweets.FindByID(ctx, tweetID)
	if err != nil {
		return err
	}
	return domain.AssertOwner(tweet.OwnerID, actorID)
}

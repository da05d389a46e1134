package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/vidtube/video-platform/internal/core/domain"
	"github.com/vidtube/video-platform/internal/core/ports"
)

// SubscriptionService implements the channel subscription toggle and the
// relationship listings.
type SubscriptionService struct {
	subs   ports.SubscriptionRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewSubscriptionService(subs ports.SubscriptionRepository, users ports.UserRepository, logger zerolog.Logger) *SubscriptionService {
	return &SubscriptionService{subs: subs, users: users, logger: logger}
}

// Toggle subscribes subscriberID to channelID, or unsubscribes when the row
// already exists. Both identities must exist; self-subscription is rejected
// because it would corrupt the channel's subscriber count.
func (s *SubscriptionService) Toggle(ctx context.Context, channelID, subscriberID string) (domain.ToggleState, error) {
	if !domain.ValidID(channelID) || !domain.ValidID(subscriberID) {
		return "", domain.ErrInvalidID
	}
	if domain.SameID(channelID, subscriberID) {
		return "", domain.ErrSelfSubscription
	}

	if _, err := s.users.FindByID(ctx, channelID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrChannelNotFound
		}
		return "", err
	}
	if _, err := s.users.FindByID(ctx, subscriberID); err != nil {
		return "", err
	}

	existing, err := s.subs.Find(ctx, subscriberID, channelID)
	switch {
	case err == nil:
		if err := s.subs.Delete(ctx, existing.ID); err != nil && !errors.Is(err, domain.ErrSubscriptionNotFound) {
			return "", err
		}
		return domain.StateUnsubscribed, nil
	case !errors.Is(err, domain.ErrSubscriptionNotFound):
		return "", err
	}

	err = s.subs.Create(ctx, &domain.Subscription{SubscriberID: subscriberID, ChannelID: channelID})
	if err != nil && !errors.Is(err, domain.ErrAlreadyExists) {
		return "", err
	}
	return domain.StateSubscribed, nil
}

// Subscribers lists the channel's subscribers with public profiles resolved.
func (s *SubscriptionService) Subscribers(ctx context.Context, channelID string) ([]domain.Subscription, error) {
	if !domain.ValidID(channelID) {
		return nil, domain.ErrInvalidID
	}
	subs, err := s.subs.ListSubscribers(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []domain.Subscription{}
	}
	return subs, nil
}

// SubscribedChannels lists the channels the user subscribes to.
func (s *SubscriptionService) SubscribedChannels(ctx context.Context, subscriberID string) ([]domain.Subscription, error) {
	if !domain.ValidID(subscriberID) {
		return nil, domain.ErrInvalidID
	}
	subs, err := s.subs.ListChannels(ctx, subscriberID)
	if err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []domain.Subscription{}
	}
	return subs, nil
}

package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/vidtube/video-platform/internal/core/domain"
	"github.com/vidtube/video-platform/internal/core/ports"
)

// DashboardService computes channel-wide stats by read-time aggregation. The
// four sub-queries are independent and fan out concurrently; the response is
// assembled only after all of them finish, never partially. Results sit
// behind a short-lived cache so the aggregation can later be replaced by
// maintained counters without touching callers.
type DashboardService struct {
	videos ports.VideoRepository
	subs   ports.SubscriptionRepository
	likes  ports.LikeRepository
	cache  ports.StatsCache
	logger zerolog.Logger
}

func NewDashboardService(videos ports.VideoRepository, subs ports.SubscriptionRepository, likes ports.LikeRepository, cache ports.StatsCache, logger zerolog.Logger) *DashboardService {
	return &DashboardService{videos: videos, subs: subs, likes: likes, cache: cache, logger: logger}
}

func (s *DashboardService) Stats(ctx context.Context, channelID string) (*domain.ChannelStats, error) {
	if cached, err := s.cache.Get(ctx, channelID); err != nil {
		s.logger.Warn().Err(err).Str("channel_id", channelID).Msg("stats cache read failed")
	} else if cached != nil {
		return cached, nil
	}

	var stats domain.ChannelStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.TotalVideos, err = s.videos.CountByOwner(gctx, channelID)
		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalViews, err = s.videos.SumViewsByOwner(gctx, channelID)
		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalSubscribers, err = s.subs.CountByChannel(gctx, channelID)
		return err
	})
	g.Go(func() error {
		ids, err := s.videos.IDsByOwner(gctx, channelID)
		if err != nil {
			return err
		}
		stats.TotalLikes, err = s.likes.CountByVideoIDs(gctx, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, channelID, &stats); err != nil {
		s.logger.Warn().Err(err).Str("channel_id", channelID).Msg("stats cache write failed")
	}
	return &stats, nil
}

// Videos lists the channel's own uploads, newest first.
func (s *DashboardService) Videos(ctx context.Context, channelID string, page, limit int) (*ports.VideoPage, error) {
	page, limit = normalizePage(page, limit)

	items, total, err := s.videos.List(ctx, ports.VideoListFilter{
		OwnerID:  channelID,
		SortDesc: true,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Video{}
	}
	return &ports.VideoPage{Items: items, Total: total, Page: page, Limit: limit}, nil
}

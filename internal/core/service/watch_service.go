package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/vidtube/video-platform/internal/core/ports"
)

// WatchService applies watch events coming off the dispatcher: it bumps the
// video's view counter and, for authenticated viewers, appends the video to
// their watch history (most recent last).
type WatchService struct {
	videos ports.VideoRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewWatchService(videos ports.VideoRepository, users ports.UserRepository, logger zerolog.Logger) *WatchService {
	return &WatchService{videos: videos, users: users, logger: logger}
}

func (s *WatchService) Process(ctx context.Context, event ports.WatchEvent) error {
	if err := s.videos.IncrementViews(ctx, event.VideoID); err != nil {
		return err
	}

	if event.ViewerID == "" {
		return nil
	}
	if err := s.users.AppendWatchHistory(ctx, event.ViewerID, event.VideoID); err != nil {
		// The view already counted; history is best effort.
		s.logger.Warn().Err(err).
			Str("viewer_id", event.ViewerID).
			Str("video_id", event.VideoID).
			Msg("failed to append watch history")
	}
	return nil
}

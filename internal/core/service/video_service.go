package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vidtube/video-platform/internal/core/domain"
	"github.com/vidtube/video-platform/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	// maxLimit caps page sizes to keep aggregation reads bounded.
	maxLimit = 100
)

// WatchEnqueuer accepts watch events for asynchronous processing.
type WatchEnqueuer interface {
	Enqueue(event ports.WatchEvent)
}

// VideoService implements the video lifecycle with ownership enforcement on
// every mutation.
type VideoService struct {
	videos ports.VideoRepository
	files  ports.FileStore
	watch  WatchEnqueuer
	logger zerolog.Logger
}

func NewVideoService(videos ports.VideoRepository, files ports.FileStore, watch WatchEnqueuer, logger zerolog.Logger) *VideoService {
	return &VideoService{videos: videos, files: files, watch: watch, logger: logger}
}

// Publish uploads the media and thumbnail, then persists the video. A failed
// insert triggers a best-effort cleanup of the uploaded blobs.
func (s *VideoService) Publish(ctx context.Context, input ports.PublishVideoInput) (*domain.Video, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, domain.ErrMissingField
	}
	if input.VideoFile == nil || input.Thumbnail == nil {
		return nil, domain.ErrMissingField
	}

	videoKey := objectKey("videos", input.VideoFile.Filename)
	videoURL, err := s.files.Put(ctx, videoKey, input.VideoFile.Reader, input.VideoFile.Size, input.VideoFile.ContentType)
	if err != nil {
		return nil, err
	}

	thumbKey := objectKey("thumbnails", input.Thumbnail.Filename)
	thumbURL, err := s.files.Put(ctx, thumbKey, input.Thumbnail.Reader, input.Thumbnail.Size, input.Thumbnail.ContentType)
	if err != nil {
		s.cleanup(ctx, videoKey)
		return nil, err
	}

	created, err := s.videos.Create(ctx, &domain.Video{
		VideoFile:   videoURL,
		Thumbnail:   thumbURL,
		Title:       input.Title,
		Description: input.Description,
		Duration:    input.Duration,
		IsPublished: true,
		OwnerID:     input.OwnerID,
	})
	if err != nil {
		s.cleanup(ctx, videoKey)
		s.cleanup(ctx, thumbKey)
		return nil, err
	}

	s.logger.Info().Str("video_id", created.ID).Str("owner_id", input.OwnerID).Msg("video published")
	return created, nil
}

// Get resolves a video with its owner populated and reports the watch to the
// asynchronous view pipeline. viewerID is empty for unauthenticated viewers.
func (s *VideoService) Get(ctx context.Context, videoID, viewerID string) (*domain.Video, error) {
	if !domain.ValidID(videoID) {
		return nil, domain.ErrInvalidID
	}

	video, err := s.videos.FindByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	s.watch.Enqueue(ports.WatchEvent{VideoID: video.ID, ViewerID: viewerID})
	return video, nil
}

func (s *VideoService) Update(ctx context.Context, input ports.UpdateVideoInput) (*domain.Video, error) {
	video, err := s.ownedVideo(ctx, input.VideoID, input.ActorID)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		video.Title = input.Title
	}
	if input.Description != "" {
		video.Description = input.Description
	}
	if input.Thumbnail != nil {
		url, err := s.files.Put(ctx, objectKey("thumbnails", input.Thumbnail.Filename), input.Thumbnail.Reader, input.Thumbnail.Size, input.Thumbnail.ContentType)
		if err != nil {
			return nil, err
		}
		video.Thumbnail = url
	}

	if err := s.videos.Update(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

// Delete hard-deletes the video row. Media blobs stay in the object store;
// the orphan is the documented trade-off of the uncompensated two-step write.
func (s *VideoService) Delete(ctx context.Context, videoID, actorID string) error {
	if _, err := s.ownedVideo(ctx, videoID, actorID); err != nil {
		return err
	}
	return s.videos.Delete(ctx, videoID)
}

func (s *VideoService) TogglePublish(ctx context.Context, videoID, actorID string) (*domain.Video, error) {
	video, err := s.ownedVideo(ctx, videoID, actorID)
	if err != nil {
		return nil, err
	}

	video.IsPublished = !video.IsPublished
	if err := s.videos.Update(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

func (s *VideoService) List(ctx context.Context, filter ports.VideoListFilter) (*ports.VideoPage, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	if filter.OwnerID != "" && !domain.ValidID(filter.OwnerID) {
		return nil, domain.ErrInvalidID
	}

	items, total, err := s.videos.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Video{}
	}
	return &ports.VideoPage{Items: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// ownedVideo loads the video and applies the ownership policy. Absence is
// checked before ownership, so a non-owner probing a missing id sees 404.
func (s *VideoService) ownedVideo(ctx context.Context, videoID, actorID string) (*domain.Video, error) {
	if !domain.ValidID(videoID) {
		return nil, domain.ErrInvalidID
	}
	video, err := s.videos.FindByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if err := domain.AssertOwner(video.OwnerID, actorID); err != nil {
		return nil, err
	}
	return video, nil
}

func (s *VideoService) cleanup(ctx context.Context, key string) {
	if err := s.files.Delete(ctx, key); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("orphaned media object left in store")
	}
}

// normalizePage applies the default page/limit and the upper bound.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

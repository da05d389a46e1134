package ports

import (
	"context"

	"github.com/vidtube/video-platform/internal/core/domain"
)

// PublishVideoInput carries a new video with its media files.
type PublishVideoInput struct {
	Title       string
	Description string
	Duration    float64
	OwnerID     string
	VideoFile   *FileUpload
	Thumbnail   *FileUpload
}

// UpdateVideoInput carries a partial video update. Empty fields are left
// unchanged; Thumbnail may be nil.
type UpdateVideoInput struct {
	VideoID     string
	ActorID     string
	Title       string
	Description string
	Thumbnail   *FileUpload
}

// VideoPage is one page of a video listing with its independent total.
type VideoPage struct {
	Items []domain.Video `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// VideoService covers the video lifecycle. Mutations enforce the ownership
// policy; reads are open.
type VideoService interface {
	Publish(ctx context.Context, input PublishVideoInput) (*domain.Video, error)
	// Get resolves a video with its owner populated and reports the watch
	// to the view-counting pipeline. viewerID may be empty.
	Get(ctx context.Context, videoID, viewerID string) (*domain.Video, error)
	Update(ctx context.Context, input UpdateVideoInput) (*domain.Video, error)
	Delete(ctx context.Context, videoID, actorID string) error
	TogglePublish(ctx context.Context, videoID, actorID string) (*domain.Video, error)
	List(ctx context.Context, filter VideoListFilter) (*VideoPage, error)
}

// WatchEvent records that a video was watched; ViewerID is empty for
// unauthenticated viewers.
type WatchEvent struct {
	VideoID  string
	ViewerID string
}

// WatchEventService applies watch events: view-counter increments and watch
// history appends.
type WatchEventService interface {
	Process(ctx context.Context, event WatchEvent) error
}

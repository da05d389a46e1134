package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/vidtube/video-platform/internal/core/domain"
	"github.com/vidtube/video-platform/internal/core/ports"
)

func TestVideoService_Get_EnqueuesWatchEvent(t *testing.T) {
	videos := &stubVideoRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Video, error) {
			return &domain.Video{ID: id, Title: "clip"}, nil
		},
	}
	watch := &stubEnqueuer{}
	svc := NewVideoService(videos, &stubFileStore{}, watch, zerolog.Nop())

	if _, err := svc.Get(context.Background(), testVideoID, testUserID); err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(watch.events) != 1 {
		t.Fatalf("expected one watch event, got %d", len(watch.events))
	}
	if watch.events[0].VideoID != testVideoID || watch.events[0].ViewerID != testUserID {
		t.Fatalf("unexpected event: %+v", watch.events[0])
	}
}

func TestVideoService_Get_InvalidID(t *testing.T) {
	svc := NewVideoService(&stubVideoRepo{}, &stubFileStore{}, &stubEnqueuer{}, zerolog.Nop())

	_, err := svc.Get(context.Background(), "not-hex", "")
	if !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestVideoService_Update_NonOwnerForbidden(t *testing.T) {
	videos := &stubVideoRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Video, error) {
			return &domain.Video{ID: id, OwnerID: testUserID}, nil
		},
	}
	svc := NewVideoService(videos, &stubFileStore{}, &stubEnqueuer{}, zerolog.Nop())

	_, err := svc.Update(context.Background(), ports.UpdateVideoInput{
		VideoID: testVideoID,
		ActorID: testChannelID,
		Title:   "hijacked",
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestVideoService_Delete_MissingVideoBeatsOwnership(t *testing.T) {
	videos := &stubVideoRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Video, error) {
			return nil, domain.ErrVideoNotFound
		},
	}
	svc := NewVideoService(videos, &stubFileStore{}, &stubEnqueuer{}, zerolog.Nop())

	err := svc.Delete(context.Background(), testVideoID, testChannelID)
	if !errors.Is(err, domain.ErrVideoNotFound) {
		t.Fatalf("expected ErrVideoNotFound, got %v", err)
	}
}

func TestVideoService_TogglePublish_Flips(t *testing.T) {
	videos := &stubVideoRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Video, error) {
			return &domain.Video{ID: id, OwnerID: testUserID, IsPublished: true}, nil
		},
		updateFn: func(ctx context.Context, video *domain.Video) error { return nil },
	}
	svc := NewVideoService(videos, &stubFileStore{}, &stubEnqueuer{}, zerolog.Nop())

	video, err := svc.TogglePublish(context.Background(), testVideoID, testUserID)
	if err != nil {
		t.Fatalf("toggle publish: %v", err)
	}
	if video.IsPublished {
		t.Fatalf("expected publish flag flipped to false")
	}
}

func TestVideoService_List_NormalizesPagination(t *testing.T) {
	var seen ports.VideoListFilter
	videos := &stubVideoRepo{
		listFn: func(ctx context.Context, filter ports.VideoListFilter) ([]domain.Video, int64, error) {
			seen = filter
			return nil, 0, nil
		},
	}
	svc := NewVideoService(videos, &stubFileStore{}, &stubEnqueuer{}, zerolog.Nop())

	page, err := svc.List(context.Background(), ports.VideoListFilter{Page: 0, Limit: 1000})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if seen.Page != 1 || seen.Limit != 100 {
		t.Fatalf("expected page=1 limit=100, got page=%d limit=%d", seen.Page, seen.Limit)
	}
	if page.Items == nil {
		t.Fatalf("expected empty items slice, got nil")
	}
}

func TestVideoService_List_LastPartialPage(t *testing.T) {
	// 25 stored videos, sliced the way the storage layer applies
	// skip=(page-1)*limit: page 3 at limit 10 holds the trailing 5.
	stored := make([]domain.Video, 25)
	for i := range stored {
		stored[i] = domain.Video{Title: "video " + strconv.Itoa(i)}
	}
	videos := &stubVideoRepo{
		listFn: func(ctx context.Context, filter ports.VideoListFilter) ([]domain.Video, int64, error) {
			skip := (filter.Page - 1) * filter.Limit
			end := skip + filter.Limit
			if end > len(stored) {
				end = len(stored)
			}
			return stored[skip:end], int64(len(stored)), nil
		},
	}
	svc := NewVideoService(videos, &stubFileStore{}, &stubEnqueuer{}, zerolog.Nop())

	page, err := svc.List(context.Background(), ports.VideoListFilter{Page: 3, Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.Items) != 5 {
		t.Fatalf("expected 5 items on the last page, got %d", len(page.Items))
	}
	if page.Total != 25 || page.Page != 3 || page.Limit != 10 {
		t.Fatalf("unexpected page envelope: total=%d page=%d limit=%d", page.Total, page.Page, page.Limit)
	}
	if page.Items[0].Title != "video 20" || page.Items[4].Title != "video 24" {
		t.Fatalf("wrong slice boundaries: first=%q last=%q", page.Items[0].Title, page.Items[4].Title)
	}
}

func TestVideoService_List_DefaultLimit(t *testing.T) {
	var seen ports.VideoListFilter
	videos := &stubVideoRepo{
		listFn: func(ctx context.Context, filter ports.VideoListFilter) ([]domain.Video, int64, error) {
			seen = filter
			return []domain.Video{{ID: testVideoID}}, 25, nil
		},
	}
	svc := NewVideoService(videos, &stubFileStore{}, &stubEnqueuer{}, zerolog.Nop())

	page, err := svc.List(context.Background(), ports.VideoListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if seen.Page != 1 || seen.Limit != 10 {
		t.Fatalf("expected defaults page=1 limit=10, got page=%d limit=%d", seen.Page, seen.Limit)
	}
	if page.Total != 25 || len(page.Items) != 1 {
		t.Fatalf("unexpected page: total=%d items=%d", page.Total, len(page.Items))
	}
}

func TestVideoService_Publish_RequiresBothFiles(t *testing.T) {
	svc := NewVideoService(&stubVideoRepo{}, &stubFileStore{}, &stubEnqueuer{}, zerolog.Nop())

	_, err := svc.Publish(context.Background(), ports.PublishVideoInput{
		Title:       "clip",
		Description: "desc",
		OwnerID:     testUserID,
		VideoFile:   upload("clip.mp4"),
		Thumbnail:   nil,
	})
	if !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}

func TestVideoService_Publish_CleansUpOnInsertFailure(t *testing.T) {
	var deleted []string
	files := &stubFileStore{
		deleteFn: func(ctx context.Context, key string) error {
			deleted = append(deleted, key)
			return nil
		},
	}
	videos := &stubVideoRepo{
		createFn: func(ctx context.Context, video *domain.Video) (*domain.Video, error) {
			return nil, errors.New("insert failed")
		},
	}
	svc := NewVideoService(videos, files, &stubEnqueuer{}, zerolog.Nop())

	_, err := svc.Publish(context.Background(), ports.PublishVideoInput{
		Title:       "clip",
		Description: "desc",
		OwnerID:     testUserID,
		VideoFile:   upload("clip.mp4"),
		Thumbnail:   upload("thumb.png"),
	})
	if err == nil {
		t.Fatalf("expected insert error")
	}
	if len(deleted) != 2 {
		t.Fatalf("expected both uploaded blobs discarded, got %v", deleted)
	}
}

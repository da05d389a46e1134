package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vidtube/video-platform/internal/core/domain"
	"github.com/vidtube/video-platform/internal/core/ports"
)

const testVideoID = "65b0c2f1a9d4e8b3c6f7a1d3"

type stubVideoService struct {
	publishFn       func(ctx context.Context, input ports.PublishVideoInput) (*domain.Video, error)
	getFn           func(ctx context.Context, videoID, viewerID string) (*domain.Video, error)
	deleteFn        func(ctx context.Context, videoID, actorID string) error
	togglePublishFn func(ctx context.Context, videoID, actorID string) (*domain.Video, error)
	listFn          func(ctx context.Context, filter ports.VideoListFilter) (*ports.VideoPage, error)
}

func (s *stubVideoService) Publish(ctx context.Context, input ports.PublishVideoInput) (*domain.Video, error) {
	return s.publishFn(ctx, input)
}

func (s *stubVideoService) Get(ctx context.Context, videoID, viewerID string) (*domain.Video, error) {
	return s.getFn(ctx, videoID, viewerID)
}

func (s *stubVideoService) Update(ctx context.Context, input ports.UpdateVideoInput) (*domain.Video, error) {
	return &domain.Video{ID: input.VideoID, Title: input.Title}, nil
}

func (s *stubVideoService) Delete(ctx context.Context, videoID, actorID string) error {
	return s.deleteFn(ctx, videoID, actorID)
}

func (s *stubVideoService) TogglePublish(ctx context.Context, videoID, actorID string) (*domain.Video, error) {
	return s.togglePublishFn(ctx, videoID, actorID)
}

func (s *stubVideoService) List(ctx context.Context, filter ports.VideoListFilter) (*ports.VideoPage, error) {
	return s.listFn(ctx, filter)
}

func TestVideoHandler_List_ForwardsQueryParams(t *testing.T) {
	e := newTestEcho()
	stub := &stubVideoService{
		listFn: func(ctx context.Context, filter ports.VideoListFilter) (*ports.VideoPage, error) {
			if filter.Query != "gopher" || filter.OwnerID != testUserID {
				t.Fatalf("unexpected filter: %+v", filter)
			}
			if filter.SortBy != "views" || filter.SortDesc {
				t.Fatalf("ascending views sort not forwarded: %+v", filter)
			}
			if filter.Page != 2 || filter.Limit != 5 {
				t.Fatalf("pagination not forwarded: %+v", filter)
			}
			return &ports.VideoPage{Items: []domain.Video{}, Page: 2, Limit: 5}, nil
		},
	}
	handler := NewVideoHandler(stub)

	q := url.Values{}
	q.Set("query", "gopher")
	q.Set("userId", testUserID)
	q.Set("sortBy", "views")
	q.Set("sortType", "asc")
	q.Set("page", "2")
	q.Set("limit", "5")
	req := httptest.NewRequest(http.MethodGet, "/videos?"+q.Encode(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestVideoHandler_List_DefaultsToDescending(t *testing.T) {
	e := newTestEcho()
	stub := &stubVideoService{
		listFn: func(ctx context.Context, filter ports.VideoListFilter) (*ports.VideoPage, error) {
			if !filter.SortDesc {
				t.Fatalf("sort must default to descending")
			}
			return &ports.VideoPage{Items: []domain.Video{}}, nil
		},
	}
	handler := NewVideoHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/videos", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestVideoHandler_Get_ForwardsAnonymousViewer(t *testing.T) {
	e := newTestEcho()
	stub := &stubVideoService{
		getFn: func(ctx context.Context, videoID, viewerID string) (*domain.Video, error) {
			if videoID != testVideoID || viewerID != "" {
				t.Fatalf("unexpected args: %q %q", videoID, viewerID)
			}
			return &domain.Video{ID: videoID}, nil
		},
	}
	handler := NewVideoHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/videos/"+testVideoID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("videoId")
	c.SetParamValues(testVideoID)

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestVideoHandler_Get_AuthenticatedViewer(t *testing.T) {
	e := newTestEcho()
	stub := &stubVideoService{
		getFn: func(ctx context.Context, videoID, viewerID string) (*domain.Video, error) {
			if viewerID != testUserID {
				t.Fatalf("viewer id not forwarded, got %q", viewerID)
			}
			return &domain.Video{ID: videoID}, nil
		},
	}
	handler := NewVideoHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/videos/"+testVideoID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("videoId")
	c.SetParamValues(testVideoID)
	c.Set("user_id", testUserID)

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestVideoHandler_Publish_RequiresSession(t *testing.T) {
	e := newTestEcho()
	handler := NewVideoHandler(&stubVideoService{})

	req := httptest.NewRequest(http.MethodPost, "/videos", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Publish(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestVideoHandler_Delete_SurfacesOwnershipError(t *testing.T) {
	e := newTestEcho()
	stub := &stubVideoService{
		deleteFn: func(ctx context.Context, videoID, actorID string) error {
			if actorID != testUserID {
				t.Fatalf("actor id not forwarded, got %q", actorID)
			}
			return domain.ErrForbidden
		},
	}
	handler := NewVideoHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/videos/"+testVideoID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("videoId")
	c.SetParamValues(testVideoID)
	c.Set("user", &domain.User{ID: testUserID})

	if err := handler.Delete(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ownership error to surface, got %v", err)
	}
}

func TestVideoHandler_TogglePublish(t *testing.T) {
	e := newTestEcho()
	stub := &stubVideoService{
		togglePublishFn: func(ctx context.Context, videoID, actorID string) (*domain.Video, error) {
			return &domain.Video{ID: videoID, IsPublished: true}, nil
		},
	}
	handler := NewVideoHandler(stub)

	req := httptest.NewRequest(http.MethodPatch, "/videos/toggle/publish/"+testVideoID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("videoId")
	c.SetParamValues(testVideoID)
	c.Set("user", &domain.User{ID: testUserID})

	if err := handler.TogglePublish(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

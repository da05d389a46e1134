package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vidtube/video-platform/internal/api/metrics"
	"github.com/vidtube/video-platform/internal/api/response"
	"github.com/vidtube/video-platform/internal/core/domain"
	"github.com/vidtube/video-platform/internal/core/ports"
)

// LikeHandler handles HTTP requests for the like toggles.
type LikeHandler struct {
	service ports.LikeService
}

func NewLikeHandler(service ports.LikeService) *LikeHandler {
	return &LikeHandler{service: service}
}

type toggleResponse struct {
	State domain.ToggleState `json:"state"`
}

func (h *LikeHandler) toggle(c echo.Context, kind domain.LikeKind, targetID string) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	state, err := h.service.Toggle(c.Request().Context(), kind, targetID, user.ID)
	if err != nil {
		return err
	}
	metrics.TogglesTotal.WithLabelValues(string(kind), string(state)).Inc()
	return response.JSON(c, http.StatusOK, toggleResponse{State: state}, "like toggled successfully")
}

// ToggleVideo flips the caller's like on a video.
//
// @Summary      Toggle a video like
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        videoId  path      string  true  "Video id"
// @Success      200      {object}  response.Response
// @Router       /likes/toggle/video/{videoId} [post]
func (h *LikeHandler) ToggleVideo(c echo.Context) error {
	return h.toggle(c, domain.LikeVideo, c.Param("videoId"))
}

// ToggleComment flips the caller's like on a comment.
//
// @Summary      Toggle a comment like
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        commentId  path      string  true  "Comment id"
// @Success      200        {object}  response.Response
// @Router       /likes/toggle/comment/{commentId} [post]
func (h *LikeHandler) ToggleComment(c echo.Context) error {
	return h.toggle(c, domain.LikeComment, c.Param("commentId"))
}

// ToggleTweet flips the caller's like on a tweet.
//
// @Summary      Toggle a tweet like
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        tweetId  path      string  true  "Tweet id"
// @Success      200      {object}  response.Response
// @Router       /likes/toggle/tweet/{tweetId} [post]
func (h *LikeHandler) ToggleTweet(c echo.Context) error {
	return h.toggle(c, domain.LikeTweet, c.Param("tweetId"))
}

// LikedVideos returns the videos the caller has liked, newest first.
//
// @Summary      List liked videos
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /likes/videos [get]
func (h *LikeHandler) LikedVideos(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	likes, err := h.service.LikedVideos(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return response.JSON(c, http.StatusOK, likes, "liked videos fetched successfully")
}

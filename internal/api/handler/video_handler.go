package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/vidtube/video-platform/internal/api/metrics"
	"github.com/vidtube/video-platform/internal/api/response"
	"github.com/vidtube/video-platform/internal/core/ports"
)

// VideoHandler handles HTTP requests for the video lifecycle.
type VideoHandler struct {
	service ports.VideoService
}

func NewVideoHandler(service ports.VideoService) *VideoHandler {
	return &VideoHandler{service: service}
}

// pageParams parses the page/limit query parameters; services apply the
// defaults and the cap.
func pageParams(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	return page, limit
}

// List returns one page of published videos.
//
// @Summary      List videos
// @Tags         videos
// @Produce      json
// @Param        page      query     int     false  "Page number (default 1)"
// @Param        limit     query     int     false  "Page size (default 10, max 100)"
// @Param        query     query     string  false  "Title substring filter"
// @Param        sortBy    query     string  false  "Sort key: created_at, views, duration, title"
// @Param        sortType  query     string  false  "asc or desc (default desc)"
// @Param        userId    query     string  false  "Filter by owner id"
// @Success      200       {object}  response.Response
// @Router       /videos [get]
func (h *VideoHandler) List(c echo.Context) error {
	page, limit := pageParams(c)
	result, err := h.service.List(c.Request().Context(), ports.VideoListFilter{
		Query:    c.QueryParam("query"),
		OwnerID:  c.QueryParam("userId"),
		SortBy:   c.QueryParam("sortBy"),
		SortDesc: c.QueryParam("sortType") != "asc",
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return err
	}
	return response.JSON(c, http.StatusOK, result, "videos fetched successfully")
}

// Publish uploads a new video with its thumbnail.
//
// @Summary      Publish a video
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title        formData  string  true  "Title"
// @Param        description  formData  string  true  "Description"
// @Param        duration     formData  number  true  "Duration in seconds"
// @Param        videoFile    formData  file    true  "Video file"
// @Param        thumbnail    formData  file    true  "Thumbnail image"
// @Success      201          {object}  response.Response
// @Failure      400          {object}  response.Error
// @Router       /videos [post]
func (h *VideoHandler) Publish(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	videoFile, vf, err := formFile(c, "videoFile")
	if err != nil {
		return err
	}
	if vf != nil {
		defer vf.Close()
	}
	thumbnail, tf, err := formFile(c, "thumbnail")
	if err != nil {
		return err
	}
	if tf != nil {
		defer tf.Close()
	}

	duration, _ := strconv.ParseFloat(c.FormValue("duration"), 64)
	video, err := h.service.Publish(c.Request().Context(), ports.PublishVideoInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Duration:    duration,
		OwnerID:     user.ID,
		VideoFile:   videoFile,
		Thumbnail:   thumbnail,
	})
	if err != nil {
		return err
	}

	metrics.UploadsTotal.WithLabelValues("video").Inc()
	metrics.UploadsTotal.WithLabelValues("thumbnail").Inc()
	return response.JSON(c, http.StatusCreated, video, "video published successfully")
}

// Get returns a video with its owner populated. The watch counts as a view.
//
// @Summary      Get a video by id
// @Tags         videos
// @Produce      json
// @Param        videoId  path      string  true  "Video id"
// @Success      200      {object}  response.Response
// @Failure      404      {object}  response.Error
// @Router       /videos/{videoId} [get]
func (h *VideoHandler) Get(c echo.Context) error {
	video, err := h.service.Get(c.Request().Context(), c.Param("videoId"), ctxUserID(c))
	if err != nil {
		return err
	}
	return response.JSON(c, http.StatusOK, video, "video fetched successfully")
}

// Update edits a video's title, description and optionally its thumbnail.
//
// @Summary      Update a video
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        videoId      path      string  true   "Video id"
// @Param        title        formData  string  false  "New title"
// @Param        description  formData  string  false  "New description"
// @Param        thumbnail    formData  file    false  "New thumbnail"
// @Success      200          {object}  response.Response
// @Failure      403          {object}  response.Error
// @Failure      404          {object}  response.Error
// @Router       /videos/{videoId} [patch]
func (h *VideoHandler) Update(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	thumbnail, tf, err := formFile(c, "thumbnail")
	if err != nil {
		return err
	}
	if tf != nil {
		defer tf.Close()
	}

	video, err := h.service.Update(c.Request().Context(), ports.UpdateVideoInput{
		VideoID:     c.Param("videoId"),
		ActorID:     user.ID,
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Thumbnail:   thumbnail,
	})
	if err != nil {
		return err
	}

	if thumbnail != nil {
		metrics.UploadsTotal.WithLabelValues("thumbnail").Inc()
	}
	return response.JSON(c, http.StatusOK, video, "video updated successfully")
}

// Delete removes a video. Owner only.
//
// @Summary      Delete a video
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        videoId  path      string  true  "Video id"
// @Success      200      {object}  response.Response
// @Failure      403      {object}  response.Error
// @Failure      404      {object}  response.Error
// @Router       /videos/{videoId} [delete]
func (h *VideoHandler) Delete(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), c.Param("videoId"), user.ID); err != nil {
		return err
	}
	return response.JSON(c, http.StatusOK, nil, "video deleted successfully")
}

// TogglePublish flips a video's publish flag. Owner only.
//
// @Summary      Toggle a video's publish flag
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        videoId  path      string  true  "Video id"
// @Success      200      {object}  response.Response
// @Failure      403      {object}  response.Error
// @Failure      404      {object}  response.Error
// @Router       /videos/toggle/publish/{videoId} [patch]
func (h *VideoHandler) TogglePublish(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	video, err := h.service.TogglePublish(c.Request().Context(), c.Param("videoId"), user.ID)
	if err != nil {
		return err
	}
	return response.JSON(c, http.StatusOK, video, "publish status toggled successfully")
}

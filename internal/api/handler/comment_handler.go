package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vidtube/video-platform/internal/api/response"
	"github.com/vidtube/video-platform/internal/core/ports"
)

// CommentHandler handles HTTP requests for per-video comments.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

type commentRequest struct {
	Content string `json:"content" validate:"required"`
}

// List returns one page of a video's comments, newest first.
//
// @Summary      List a video's comments
// @Tags         comments
// @Produce      json
// @Param        videoId  path      string  true   "Video id"
// @Param        page     query     int     false  "Page number (default 1)"
// @Param        limit    query     int     false  "Page size (default 10, max 100)"
// @Success      200      {object}  response.Response
// @Failure      404      {object}  response.Error
// @Router       /comments/{videoId} [get]
func (h *CommentHandler) List(c echo.Context) error {
	page, limit := pageParams(c)
	result, err := h.service.ListByVideo(c.Request().Context(), c.Param("videoId"), page, limit)
	if err != nil {
		return err
	}
	return response.JSON(c, http.StatusOK, result, "comments fetched successfully")
}

// Add posts a comment on a video.
//
// @Summary      Add a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        videoId  path      string          true  "Video id"
// @Param        body     body      commentRequest  true  "Comment content"
// @Success      201      {object}  response.Response
// @Failure      404      {object}  response.Error
// @Router       /comments/{videoId} [post]
func (h *CommentHandler) Add(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.Add(c.Request().Context(), c.Param("videoId"), user.ID, req.Content)
	if err != nil {
		return err
	}
	return response.JSON(c, http.StatusCreated, comment, "comment added successfully")
}

// Update edits a comment's content. Owner only.
//
// @Summary      Update a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        commentId  path      string          true  "Comment id"
// @Param        body       body      commentRequest  true  "New content"
// @Success      200        {object}  response.Response
// @Failure      403        {object}  response.Error
// @Failure      404        {object}  response.Error
// @Router       /comments/c/{commentId} [patch]
func (h *CommentHandler) Update(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.Update(c.Request().Context(), c.Param("commentId"), user.ID, req.Content)
	if err != nil {
		return err
	}
	return response.JSON(c, http.StatusOK, comment, "comment updated successfully")
}

// Delete removes a comment. Owner only.
//
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        commentId  path      string  true  "Comment id"
// @Success      200        {object}  response.Response
// @Failure      403        {object}  response.Error
// @Failure      404        {object}  response.Error
// @Router       /comments/c/{commentId} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), c.Param("commentId"), user.ID); err != nil {
		return err
	}
	return response.JSON(c, http.StatusOK, nil, "comment deleted successfully")
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vidtube/video-platform/internal/api/response"
	"github.com/vidtube/video-platform/internal/core/ports"
)

// TweetHandler handles HTTP requests for tweets.
type TweetHandler struct {
	service ports.TweetService
}

func NewTweetHandler(service ports.TweetService) *TweetHandler {
	return &TweetHandler{service: service}
}

type tweetRequest struct {
	Content string `json:"content" validate:"required,max=280"`
}

// Create posts a new tweet for the caller.
//
// @Summary      Create a tweet
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      tweetRequest  true  "Tweet content"
// @Success      201   {object}  response.Response
// @Router       /tweets [post]
func (h *TweetHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req tweetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tweet, err := h.service.Create(c.Request().Context(), user.ID, req.Content)
	if err != nil {
		return err
	}
	return response.JSON(c, http.StatusCreated, tweet, "tweet created successfully")
}

// ListByUser returns a user's tweets, newest first.
//
// @Summary      List a user's tweets
// @Tags         tweets
// @Produce      json
// @Param        userId  path      string  true  "User id"
// @Success      200     {object}  response.Response
// @Failure      404     {object}  response.Error
// @Router       /tweets/user/{userId} [get]
func (h *TweetHandler) ListByUser(c echo.Context) error {
	tweets, err := h.service.ListByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return response.JSON(c, http.StatusOK, tweets, "tweets fetched successfully")
}

// Update edits a tweet's content. Owner only.
//
// @Summary      Update a tweet
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        tweetId  path      string        true  "Tweet id"
// @Param        body     body      tweetRequest  true  "New content"
// @Success      200      {object}  response.Response
// @Failure      403      {object}  response.Error
// @Failure      404      {object}  response.Error
// @Router       /tweets/{tweetId} [patch]
func (h *TweetHandler) Update(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req tweetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tweet, err := h.service.Update(c.Request().Context(), c.Param("tweetId"), user.ID, req.Content)
	if err != nil {
		return err
	}
	return response.JSON(c, http.StatusOK, tweet, "tweet updated successfully")
}

// Delete removes a tweet. Owner only.
//
// @Summary      Delete a tweet
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        tweetId  path      string  true  "Tweet id"
// @Success      200      {object}  response.Response
// @Failure      403      {object}  response.Error
// @Failure      404      {object}  response.Error
// @Router       /tweets/{tweetId} [delete]
func (h *TweetHandler) Delete(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), c.Param("tweetId"), user.ID); err != nil {
		return err
	}
	return response.JSON(c, http.StatusOK, nil, "tweet deleted successfully")
}

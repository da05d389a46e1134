package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vidtube/video-platform/internal/api/response"
	"github.com/vidtube/video-platform/internal/core/ports"
)

// PlaylistHandler handles HTTP requests for playlists.
type PlaylistHandler struct {
	service ports.PlaylistService
}

func NewPlaylistHandler(service ports.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{service: service}
}

type playlistRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// Create starts a new playlist for the caller.
//
// @Summary      Create a playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      playlistRequest  true  "Playlist name and description"
// @Success      201   {object}  response.Response
// @Router       /playlists [post]
func (h *PlaylistHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req playlistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	playlist, err := h.service.Create(c.Request().Context(), user.ID, req.Name, req.Description)
	if err != nil {
		return err
	}
	return response.JSON(c, http.StatusCreated, playlist, "playlist created successfully")
}

// ListOwn returns the caller's playlists.
//
// @Summary      List the caller's playlists
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /playlists [get]
func (h *PlaylistHandler) ListOwn(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	playlists, err := h.service.ListOwn(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return response.JSON(c, http.StatusOK, playlists, "playlists fetched successfully")
}

// Get returns a playlist with its owner and videos populated.
//
// @Summary      Get a playlist by id
// @Tags         playlists
// @Produce      json
// @Param        playlistId  path      string  true  "Playlist id"
// @Success      200         {object}  response.Response
// @Failure      404         {object}  response.Error
// @Router       /playlists/{playlistId} [get]
func (h *PlaylistHandler) Get(c echo.Context) error {
	playlist, err := h.service.Get(c.Request().Context(), c.Param("playlistId"))
	if err != nil {
		return err
	}
	return response.JSON(c, http.StatusOK, playlist, "playlist fetched successfully")
}

// Update edits a playlist's name and description. Owner only.
//
// @Summary      Update a playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId  path      string           true  "Playlist id"
// @Param        body        body      playlistRequest  true  "New name and description"
// @Success      200         {object}  response.Response
// @Failure      403         {object}  response.Error
// @Failure      404         {object}  response.Error
// @Router       /playlists/{playlistId} [patch]
func (h *PlaylistHandler) Update(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req playlistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	playlist, err := h.service.Update(c.Request().Context(), c.Param("playlistId"), user.ID, req.Name, req.Description)
	if err != nil {
		return err
	}
	return response.JSON(c, http.StatusOK, playlist, "playlist updated successfully")
}

// Delete removes a playlist. Owner only.
//
// @Summary      Delete a playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId  path      string  true  "Playlist id"
// @Success      200         {object}  response.Response
// @Failure      403         {object}  response.Error
// @Failure      404         {object}  response.Error
// @Router       /playlists/{playlistId} [delete]
func (h *PlaylistHandler) Delete(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), c.Param("playlistId"), user.ID); err != nil {
		return err
	}
	return response.JSON(c, http.StatusOK, nil, "playlist deleted successfully")
}

// AddVideo adds a video to a playlist; adding a video already present is a
// no-op. Owner only.
//
// @Summary      Add a video to a playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId  path      string  true  "Playlist id"
// @Param        videoId     path      string  true  "Video id"
// @Success      200         {object}  response.Response
// @Failure      403         {object}  response.Error
// @Failure      404         {object}  response.Error
// @Router       /playlists/{playlistId}/videos/{videoId} [patch]
func (h *PlaylistHandler) AddVideo(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	playlist, err := h.service.AddVideo(c.Request().Context(), c.Param("playlistId"), c.Param("videoId"), user.ID)
	if err != nil {
		return err
	}
	return response.JSON(c, http.StatusOK, playlist, "video added to playlist")
}

// RemoveVideo removes a video from a playlist. Owner only.
//
// @Summary      Remove a video from a playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId  path      string  true  "Playlist id"
// @Param        videoId     path      string  true  "Video id"
// @Success      200         {object}  response.Response
// @Failure      403         {object}  response.Error
// @Failure      404         {object}  response.Error
// @Router       /playlists/{playlistId}/videos/{videoId} [delete]
func (h *PlaylistHandler) RemoveVideo(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	playlist, err := h.service.RemoveVideo(c.Request().Context(), c.Param("playlistId"), c.Param("videoId"), user.ID)
	if err != nil {
		return err
	}
	return response.JSON(c, http.StatusOK, playlist, "video removed from playlist")
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vidtube/video-platform/internal/api/response"
	"github.com/vidtube/video-platform/internal/core/ports"
)

// DashboardHandler handles HTTP requests for the channel-owner dashboard.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Stats returns the caller's channel-wide aggregates.
//
// @Summary      Get channel stats
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	stats, err := h.service.Stats(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return response.JSON(c, http.StatusOK, stats, "channel stats fetched successfully")
}

// Videos returns one page of the caller's channel videos.
//
// @Summary      List channel videos
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Page size (default 10, max 100)"
// @Success      200    {object}  response.Response
// @Router       /dashboard/videos [get]
func (h *DashboardHandler) Videos(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	page, limit := pageParams(c)
	videos, err := h.service.Videos(c.Request().Context(), user.ID, page, limit)
	if err != nil {
		return err
	}
	return response.JSON(c, http.StatusOK, videos, "channel videos fetched successfully")
}

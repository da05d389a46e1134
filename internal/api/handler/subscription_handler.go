package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vidtube/video-platform/internal/api/metrics"
	"github.com/vidtube/video-platform/internal/api/response"
	"github.com/vidtube/video-platform/internal/core/ports"
)

// SubscriptionHandler handles HTTP requests for the subscription graph.
type SubscriptionHandler struct {
	service ports.SubscriptionService
}

func NewSubscriptionHandler(service ports.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{service: service}
}

// Toggle subscribes or unsubscribes the caller to a channel.
//
// @Summary      Toggle a subscription
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        channelId  path      string  true  "Channel id"
// @Success      200        {object}  response.Response
// @Failure      400        {object}  response.Error
// @Failure      404        {object}  response.Error
// @Router       /subscriptions/c/{channelId} [post]
func (h *SubscriptionHandler) Toggle(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	state, err := h.service.Toggle(c.Request().Context(), c.Param("channelId"), user.ID)
	if err != nil {
		return err
	}
	metrics.TogglesTotal.WithLabelValues("subscription", string(state)).Inc()
	return response.JSON(c, http.StatusOK, toggleResponse{State: state}, "subscription toggled successfully")
}

// Subscribers returns a channel's subscribers.
//
// @Summary      List a channel's subscribers
// @Tags         subscriptions
// @Produce      json
// @Param        channelId  path      string  true  "Channel id"
// @Success      200        {object}  response.Response
// @Router       /subscriptions/c/{channelId} [get]
func (h *SubscriptionHandler) Subscribers(c echo.Context) error {
	subs, err := h.service.Subscribers(c.Request().Context(), c.Param("channelId"))
	if err != nil {
		return err
	}
	return response.JSON(c, http.StatusOK, subs, "subscribers fetched successfully")
}

// SubscribedChannels returns the channels a user is subscribed to.
//
// @Summary      List subscribed channels
// @Tags         subscriptions
// @Produce      json
// @Param        subscriberId  path      string  true  "Subscriber id"
// @Success      200           {object}  response.Response
// @Router       /subscriptions/u/{subscriberId} [get]
func (h *SubscriptionHandler) SubscribedChannels(c echo.Context) error {
	channels, err := h.service.SubscribedChannels(c.Request().Context(), c.Param("subscriberId"))
	if err != nil {
		return err
	}
	return response.JSON(c, http.StatusOK, channels, "subscribed channels fetched successfully")
}

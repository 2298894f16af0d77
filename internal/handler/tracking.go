package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/clinic-space-site/internal/service"
)

// TrackingHandler relays browser events.
type TrackingHandler struct {
	Relay *service.TrackingRelay
}

func NewTrackingHandler(relay *service.TrackingRelay) *TrackingHandler {
	if relay == nil {
		panic("nil relay passed to NewTrackingHandler")
	}
	return &TrackingHandler{Relay: relay}
}

// Track accepts {"event": name, "data": {...}}.
func (h *TrackingHandler) Track(c echo.Context) error {
	var in service.TrackingInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid body"})
	}
	if _, err := h.Relay.Relay(c.Request().Context(), in); err != nil {
		if errors.Is(err, service.ErrEventNameRequired) {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "event is required"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/clinic-space-site/internal/service"
)

// LeadHandler receives the contact form.
type LeadHandler struct {
	Leads *service.LeadService
}

func NewLeadHandler(leads *service.LeadService) *LeadHandler {
	if leads == nil {
		panic("nil lead service passed to NewLeadHandler")
	}
	return &LeadHandler{Leads: leads}
}

// Submit accepts JSON or a urlencoded form.  Status codes: 201 stored,
// 422 validation errors (with per-field detail), 400 unreadable body,
// 503 store failure.  Plain HTML form posts are redirected to the
// messaging link on success.
func (h *LeadHandler) Submit(c echo.Context) error {
	var in service.LeadInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, service.LeadResult{Success: false, Message: "invalid body"})
	}
	res := h.Leads.Submit(c.Request().Context(), in)
	switch {
	case res.Success:
		if res.RedirectURL != "" && isFormPost(c) {
			return c.Redirect(http.StatusSeeOther, res.RedirectURL)
		}
		return c.JSON(http.StatusCreated, res)
	case len(res.Errors) > 0:
		return c.JSON(http.StatusUnprocessableEntity, res)
	default:
		return c.JSON(http.StatusServiceUnavailable, res)
	}
}

func isFormPost(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationForm)
}

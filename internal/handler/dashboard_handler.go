package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clearskyva/backoffice/internal/dashboard"
	"github.com/clearskyva/backoffice/internal/service"
)

// DashboardHandler serves pre-filtered snapshots for the admin dashboard.
// The filter logic is the same pure functions the dashboard applies
// locally, so a server-side ?search=&status= query and a client-side
// refine produce identical results.
type DashboardHandler struct {
	moderation *service.ModerationService
}

// NewDashboardHandler constructs a handler instance.
func NewDashboardHandler(moderation *service.ModerationService) *DashboardHandler {
	return &DashboardHandler{moderation: moderation}
}

// Inquiries returns the filtered inquiry view with status counts.
func (h *DashboardHandler) Inquiries(c echo.Context) error {
	var q dashboard.Query
	if err := c.Bind(&q); err != nil {
		return Error(c, http.StatusBadRequest, "invalid query")
	}

	records, err := h.moderation.ListInquiries(c.Request().Context(), "")
	if err != nil {
		var vErr service.ValidationError
		if errors.As(err, &vErr) {
			return Error(c, http.StatusBadRequest, vErr.Message)
		}
		return Error(c, http.StatusInternalServerError, "failed to load inquiries")
	}

	return Success(c, http.StatusOK, "dashboard inquiries retrieved", dashboard.FilterInquiries(records, q))
}

// Testimonials returns the filtered testimonial view with tab counts.
func (h *DashboardHandler) Testimonials(c echo.Context) error {
	var q dashboard.Query
	if err := c.Bind(&q); err != nil {
		return Error(c, http.StatusBadRequest, "invalid query")
	}

	records, err := h.moderation.ListTestimonials(c.Request().Context())
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to load testimonials")
	}

	return Success(c, http.StatusOK, "dashboard testimonials retrieved", dashboard.FilterTestimonials(records, q))
}

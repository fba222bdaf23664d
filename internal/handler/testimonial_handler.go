package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clearskyva/backoffice/internal/dto"
	"github.com/clearskyva/backoffice/internal/repository"
	"github.com/clearskyva/backoffice/internal/service"
)

// TestimonialHandler covers the public submission and listing endpoints
// plus the admin moderation surface for testimonials.
type TestimonialHandler struct {
	submissions *service.SubmissionService
	moderation  *service.ModerationService
}

// NewTestimonialHandler constructs a handler instance.
func NewTestimonialHandler(submissions *service.SubmissionService, moderation *service.ModerationService) *TestimonialHandler {
	return &TestimonialHandler{submissions: submissions, moderation: moderation}
}

// Submit accepts a public testimonial submission.
func (h *TestimonialHandler) Submit(c echo.Context) error {
	var req dto.TestimonialSubmitRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	testimonial, err := h.submissions.SubmitTestimonial(c.Request().Context(), req)
	if err != nil {
		var vErr service.ValidationError
		if errors.As(err, &vErr) {
			return Error(c, http.StatusBadRequest, vErr.Message)
		}
		return Error(c, http.StatusInternalServerError, "failed to submit testimonial")
	}

	return Success(c, http.StatusCreated, "testimonial submitted", testimonial)
}

// ListApproved returns the publicly visible testimonials.
func (h *TestimonialHandler) ListApproved(c echo.Context) error {
	records, err := h.moderation.ListApprovedTestimonials(c.Request().Context())
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list testimonials")
	}
	return Success(c, http.StatusOK, "testimonials retrieved", records)
}

// ListAll returns every testimonial for the moderation queue.
func (h *TestimonialHandler) ListAll(c echo.Context) error {
	records, err := h.moderation.ListTestimonials(c.Request().Context())
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list testimonials")
	}
	return Success(c, http.StatusOK, "testimonials retrieved", records)
}

// Moderate applies the allow-listed approval and featured flag changes.
func (h *TestimonialHandler) Moderate(c echo.Context) error {
	var req dto.TestimonialModerationRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.moderation.ModerateTestimonial(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		var vErr service.ValidationError
		switch {
		case errors.As(err, &vErr):
			return Error(c, http.StatusBadRequest, vErr.Message)
		case errors.Is(err, repository.ErrTestimonialNotFound):
			return Error(c, http.StatusNotFound, "testimonial not found")
		default:
			return Error(c, http.StatusInternalServerError, "failed to moderate testimonial")
		}
	}

	return Success(c, http.StatusOK, "testimonial updated", updated)
}

// Delete removes a testimonial permanently.
func (h *TestimonialHandler) Delete(c echo.Context) error {
	if err := h.moderation.DeleteTestimonial(c.Request().Context(), c.Param("id")); err != nil {
		var vErr service.ValidationError
		switch {
		case errors.As(err, &vErr):
			return Error(c, http.StatusBadRequest, vErr.Message)
		case errors.Is(err, repository.ErrTestimonialNotFound):
			return Error(c, http.StatusNotFound, "testimonial not found")
		default:
			return Error(c, http.StatusInternalServerError, "failed to delete testimonial")
		}
	}
	return Success(c, http.StatusOK, "testimonial deleted", nil)
}

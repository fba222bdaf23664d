package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clearskyva/backoffice/internal/dto"
	"github.com/clearskyva/backoffice/internal/service"
)

// ContactHandler exposes the public contact form endpoint.
type ContactHandler struct {
	submissions *service.SubmissionService
}

// NewContactHandler constructs a handler instance.
func NewContactHandler(submissions *service.SubmissionService) *ContactHandler {
	return &ContactHandler{submissions: submissions}
}

// Submit accepts a contact-form submission. Store failures do not surface
// here; the service captures the payload and the form still succeeds.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req dto.ContactRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	inquiry, err := h.submissions.SubmitContact(c.Request().Context(), req)
	if err != nil {
		var vErr service.ValidationError
		if errors.As(err, &vErr) {
			return Error(c, http.StatusBadRequest, vErr.Message)
		}
		return Error(c, http.StatusInternalServerError, "failed to submit inquiry")
	}

	return Success(c, http.StatusCreated, "inquiry submitted", inquiry)
}

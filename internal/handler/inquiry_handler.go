package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clearskyva/backoffice/internal/dto"
	"github.com/clearskyva/backoffice/internal/repository"
	"github.com/clearskyva/backoffice/internal/service"
)

// InquiryHandler exposes the admin inquiry triage endpoints.
type InquiryHandler struct {
	moderation *service.ModerationService
}

// NewInquiryHandler constructs a handler instance.
func NewInquiryHandler(moderation *service.ModerationService) *InquiryHandler {
	return &InquiryHandler{moderation: moderation}
}

// List returns inquiries, optionally filtered by ?status=.
func (h *InquiryHandler) List(c echo.Context) error {
	records, err := h.moderation.ListInquiries(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		var vErr service.ValidationError
		if errors.As(err, &vErr) {
			return Error(c, http.StatusBadRequest, vErr.Message)
		}
		return Error(c, http.StatusInternalServerError, "failed to list inquiries")
	}
	return Success(c, http.StatusOK, "inquiries retrieved", records)
}

// UpdateStatus moves an inquiry through the triage workflow.
func (h *InquiryHandler) UpdateStatus(c echo.Context) error {
	var req dto.InquiryStatusRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.moderation.UpdateInquiryStatus(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		var vErr service.ValidationError
		switch {
		case errors.As(err, &vErr):
			return Error(c, http.StatusBadRequest, vErr.Message)
		case errors.Is(err, repository.ErrInquiryNotFound):
			return Error(c, http.StatusNotFound, "inquiry not found")
		default:
			return Error(c, http.StatusInternalServerError, "failed to update inquiry")
		}
	}

	return Success(c, http.StatusOK, "inquiry updated", updated)
}

// Delete removes an inquiry permanently.
func (h *InquiryHandler) Delete(c echo.Context) error {
	if err := h.moderation.DeleteInquiry(c.Request().Context(), c.Param("id")); err != nil {
		var vErr service.ValidationError
		switch {
		case errors.As(err, &vErr):
			return Error(c, http.StatusBadRequest, vErr.Message)
		case errors.Is(err, repository.ErrInquiryNotFound):
			return Error(c, http.StatusNotFound, "inquiry not found")
		default:
			return Error(c, http.StatusInternalServerError, "failed to delete inquiry")
		}
	}
	return Success(c, http.StatusOK, "inquiry deleted", nil)
}

package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clearskyva/backoffice/internal/dto"
	"github.com/clearskyva/backoffice/internal/repository"
	"github.com/clearskyva/backoffice/internal/service"
)

// UserAdminHandler exposes administrative account management endpoints.
// Role checks live at the route boundary; by the time a request reaches
// Create the caller is a verified super-admin.
type UserAdminHandler struct {
	provisioning *service.ProvisioningService
}

// NewUserAdminHandler constructs a handler instance.
func NewUserAdminHandler(provisioning *service.ProvisioningService) *UserAdminHandler {
	return &UserAdminHandler{provisioning: provisioning}
}

// List returns all operator profiles.
func (h *UserAdminHandler) List(c echo.Context) error {
	records, err := h.provisioning.ListAdmins(c.Request().Context())
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list users")
	}
	return Success(c, http.StatusOK, "users retrieved", records)
}

// Create provisions a new admin account: identity plus profile row, with
// the identity rolled back if the profile insert fails.
func (h *UserAdminHandler) Create(c echo.Context) error {
	var req dto.CreateAdminUserRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	user, err := h.provisioning.CreateAdmin(c.Request().Context(), req)
	if err != nil {
		var vErr service.ValidationError
		switch {
		case errors.As(err, &vErr):
			return Error(c, http.StatusBadRequest, vErr.Message)
		case errors.Is(err, repository.ErrEmailDuplicate):
			return Error(c, http.StatusConflict, "email already exists")
		default:
			return Error(c, http.StatusInternalServerError, "failed to create user")
		}
	}

	return Success(c, http.StatusCreated, "user created", user)
}

// Delete removes an operator profile and its linked identity.
func (h *UserAdminHandler) Delete(c echo.Context) error {
	if err := h.provisioning.DeleteAdmin(c.Request().Context(), c.Param("id")); err != nil {
		var vErr service.ValidationError
		switch {
		case errors.As(err, &vErr):
			return Error(c, http.StatusBadRequest, vErr.Message)
		case errors.Is(err, repository.ErrAdminUserNotFound):
			return Error(c, http.StatusNotFound, "user not found")
		default:
			return Error(c, http.StatusInternalServerError, "failed to delete user")
		}
	}
	return Success(c, http.StatusOK, "user deleted", nil)
}

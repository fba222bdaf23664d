package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/clearskyva/backoffice/internal/repository"
)

// TeamHandler serves the read-only team member listings.
type TeamHandler struct {
	team repository.TeamMembersRepository
}

// NewTeamHandler constructs a handler instance.
func NewTeamHandler(team repository.TeamMembersRepository) *TeamHandler {
	return &TeamHandler{team: team}
}

// List returns team members. The public site passes ?active=true to hide
// inactive profiles; the admin view omits it.
func (h *TeamHandler) List(c echo.Context) error {
	activeOnly, _ := strconv.ParseBool(c.QueryParam("active"))

	members, err := h.team.List(c.Request().Context(), activeOnly)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list team members")
	}
	return Success(c, http.StatusOK, "team members retrieved", members)
}

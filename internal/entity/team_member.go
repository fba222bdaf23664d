package entity

import (
	"time"

	"github.com/google/uuid"
)

// TeamMember is a virtual assistant profile shown on the marketing site.
// Read-only in the admin flows.
type TeamMember struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	Specialization *string   `json:"specialization,omitempty"`
	Skills         []string  `json:"skills"`
	Experience     *string   `json:"experience,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

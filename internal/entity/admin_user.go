package entity

import (
	"time"

	"github.com/google/uuid"
)

// Roles an admin profile may carry.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// AdminUser is the profile row backing a back-office operator. The
// credential itself lives in the hosted identity service; IdentityID links
// the two.
type AdminUser struct {
	ID                 uuid.UUID `json:"id"`
	IdentityID         string    `json:"identity_id"`
	Email              string    `json:"email"`
	FullName           string    `json:"full_name"`
	PasswordHash       string    `json:"-"`
	Role               string    `json:"role"`
	MustChangePassword bool      `json:"must_change_password"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ValidAdminRole reports whether the value belongs to the role enum.
func ValidAdminRole(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}

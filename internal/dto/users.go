package dto

// CreateAdminUserRequest provisions a new back-office operator. Password
// is optional; when absent a temporary one is generated and returned once.
type CreateAdminUserRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Password string `json:"password,omitempty"`
}

// AdminUserResponse represents an admin profile returned to clients.
type AdminUserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// ProvisionedUserResponse is returned once after a successful create. The
// temporary password is never persisted or logged beyond this payload.
type ProvisionedUserResponse struct {
	AdminUserResponse
	TemporaryPassword  string `json:"temporary_password,omitempty"`
	MustChangePassword bool   `json:"must_change_password"`
}

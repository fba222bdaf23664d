package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/clearskyva/backoffice/internal/dto"
	"github.com/clearskyva/backoffice/internal/entity"
	"github.com/clearskyva/backoffice/internal/identity"
	"github.com/clearskyva/backoffice/internal/repository"
)

// provisionState names the steps of the two-phase create so the
// compensating transition is explicit rather than an inline catch.
type provisionState int

const (
	stateStart provisionState = iota
	stateIdentityCreated
	stateProfileInserted
)

// ProvisioningService creates back-office operator accounts. An account is
// an identity in the hosted auth service plus a profile row here; if the
// profile insert fails the freshly created identity is deleted so no
// orphaned, unusable credential remains.
type ProvisioningService struct {
	admins     repository.AdminUsersRepository
	identities identity.Store
}

// NewProvisioningService builds a new ProvisioningService.
func NewProvisioningService(admins repository.AdminUsersRepository, identities identity.Store) *ProvisioningService {
	return &ProvisioningService{admins: admins, identities: identities}
}

// CreateAdmin provisions a new admin account. The caller's role is
// enforced at the route boundary; this method assumes an authorized
// super-admin caller.
func (s *ProvisioningService) CreateAdmin(ctx context.Context, req dto.CreateAdminUserRequest) (*dto.ProvisionedUserResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.FullName = strings.TrimSpace(req.FullName)
	req.Role = strings.TrimSpace(req.Role)

	if err := ValidateEmail(req.Email); err != nil {
		return nil, ValidationError{Message: err.Error()}
	}
	if req.FullName == "" {
		return nil, ValidationError{Message: "fullName is required"}
	}
	if !entity.ValidAdminRole(req.Role) {
		return nil, ValidationError{Message: "role must be admin or super_admin"}
	}

	// collision check before any write so a 409 has zero side effects
	if _, err := s.admins.FindByEmail(ctx, req.Email); err == nil {
		return nil, repository.ErrEmailDuplicate
	} else if !errors.Is(err, repository.ErrAdminUserNotFound) {
		return nil, err
	}

	generated := false
	password := req.Password
	if password == "" {
		var err error
		password, err = GeneratePassword(passwordLength)
		if err != nil {
			return nil, fmt.Errorf("generate password: %w", err)
		}
		generated = true
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	state := stateStart

	created, err := s.identities.CreateUser(ctx, req.Email, password, true)
	if err != nil {
		return nil, fmt.Errorf("create identity: %w", err)
	}
	state = stateIdentityCreated

	profile := &entity.AdminUser{
		IdentityID:         created.ID,
		Email:              req.Email,
		FullName:           req.FullName,
		PasswordHash:       string(hashed),
		Role:               req.Role,
		MustChangePassword: generated,
	}

	stored, err := s.admins.Insert(ctx, profile)
	if err != nil {
		s.rollbackIdentity(ctx, state, created.ID)
		if errors.Is(err, repository.ErrEmailDuplicate) {
			return nil, repository.ErrEmailDuplicate
		}
		return nil, fmt.Errorf("insert admin profile: %w", err)
	}
	state = stateProfileInserted
	_ = state

	resp := &dto.ProvisionedUserResponse{
		AdminUserResponse: dto.AdminUserResponse{
			ID:       stored.ID.String(),
			Email:    stored.Email,
			FullName: stored.FullName,
			Role:     stored.Role,
		},
		MustChangePassword: generated,
	}
	if generated {
		resp.TemporaryPassword = password
	}
	return resp, nil
}

// rollbackIdentity is the compensating transition out of
// stateIdentityCreated. A failed rollback leaves an orphan; it is logged
// loudly because it needs manual cleanup.
func (s *ProvisioningService) rollbackIdentity(ctx context.Context, state provisionState, identityID string) {
	if state != stateIdentityCreated {
		return
	}
	if err := s.identities.DeleteUser(ctx, identityID); err != nil {
		log.Printf("identity rollback failed identity_id=%s error=%v orphan=true", identityID, err)
		return
	}
	log.Printf("identity rolled back identity_id=%s", identityID)
}

// ListAdmins returns all operator profiles as DTOs.
func (s *ProvisioningService) ListAdmins(ctx context.Context) ([]dto.AdminUserResponse, error) {
	admins, err := s.admins.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AdminUserResponse, 0, len(admins))
	for _, a := range admins {
		responses = append(responses, dto.AdminUserResponse{
			ID:       a.ID.String(),
			Email:    a.Email,
			FullName: a.FullName,
			Role:     a.Role,
		})
	}
	return responses, nil
}

// DeleteAdmin removes an operator profile and best-effort deletes the
// linked identity.
func (s *ProvisioningService) DeleteAdmin(ctx context.Context, id string) error {
	adminID, err := uuid.Parse(id)
	if err != nil {
		return ValidationError{Message: "invalid admin user id"}
	}

	admin, err := s.admins.FindByID(ctx, adminID)
	if err != nil {
		return err
	}

	if err := s.admins.Delete(ctx, adminID); err != nil {
		return err
	}

	if err := s.identities.DeleteUser(ctx, admin.IdentityID); err != nil {
		log.Printf("identity cleanup failed identity_id=%s error=%v", admin.IdentityID, err)
	}
	return nil
}

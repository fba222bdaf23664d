package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/clearskyva/backoffice/internal/auth"
	"github.com/clearskyva/backoffice/internal/repository"
)

// AuthService coordinates credential validation and token issuance for
// back-office operators.
type AuthService struct {
	admins repository.AdminUsersRepository
	jwt    *auth.JWTManager
}

// NewAuthService constructs a new AuthService.
func NewAuthService(admins repository.AdminUsersRepository, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{admins: admins, jwt: jwtManager}
}

// Login validates credentials and returns a JWT carrying the operator role.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", errors.New("email and password must not be empty")
	}

	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminUserNotFound) {
			return "", errors.New("invalid credentials")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	token, err := s.jwt.GenerateToken(admin.ID.String(), admin.Email, admin.Role)
	if err != nil {
		return "", err
	}

	return token, nil
}

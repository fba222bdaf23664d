package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/clearskyva/backoffice/internal/entity"
	"github.com/clearskyva/backoffice/internal/identity"
	"github.com/clearskyva/backoffice/internal/repository"
	"github.com/clearskyva/backoffice/internal/service"
)

func newUserAdminHandler(admins *fakeAdminUsersRepo, identities *fakeIdentityStore) *UserAdminHandler {
	return NewUserAdminHandler(service.NewProvisioningService(admins, identities))
}

func postCreateUser(t *testing.T, handler *UserAdminHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/users/create", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = handler.Create(c)
	return rec
}

func TestUserAdminHandler_Create_ReturnsTemporaryPassword(t *testing.T) {
	admins := &fakeAdminUsersRepo{
		insert: func(ctx context.Context, user *entity.AdminUser) (*entity.AdminUser, error) {
			stored := *user
			stored.ID = uuid.New()
			return &stored, nil
		},
	}
	identities := &fakeIdentityStore{
		createUser: func(ctx context.Context, email, password string, autoConfirm bool) (*identity.Identity, error) {
			return &identity.Identity{ID: "ident-1", Email: email}, nil
		},
	}
	handler := newUserAdminHandler(admins, identities)

	rec := postCreateUser(t, handler, `{"email":"new@example.com","fullName":"New Admin","role":"admin"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var payload struct {
		Status string `json:"status"`
		Data   struct {
			TemporaryPassword  string `json:"temporary_password"`
			MustChangePassword bool   `json:"must_change_password"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Data.TemporaryPassword == "" || !payload.Data.MustChangePassword {
		t.Fatalf("expected one-time credential in response, got %+v", payload.Data)
	}
}

func TestUserAdminHandler_Create_DuplicateEmail(t *testing.T) {
	admins := &fakeAdminUsersRepo{
		findByEmail: func(ctx context.Context, email string) (*entity.AdminUser, error) {
			return &entity.AdminUser{Email: email}, nil
		},
	}
	identities := &fakeIdentityStore{
		createUser: func(ctx context.Context, email, password string, autoConfirm bool) (*identity.Identity, error) {
			t.Fatal("duplicate email must not create an identity")
			return nil, nil
		},
	}
	handler := newUserAdminHandler(admins, identities)

	rec := postCreateUser(t, handler, `{"email":"dup@example.com","fullName":"Dup","role":"admin"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestUserAdminHandler_Create_InvalidRole(t *testing.T) {
	handler := newUserAdminHandler(&fakeAdminUsersRepo{}, &fakeIdentityStore{})

	rec := postCreateUser(t, handler, `{"email":"x@example.com","fullName":"X","role":"owner"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserAdminHandler_Create_RollbackOnProfileFailure(t *testing.T) {
	rolledBack := ""
	admins := &fakeAdminUsersRepo{
		insert: func(ctx context.Context, user *entity.AdminUser) (*entity.AdminUser, error) {
			return nil, errors.New("insert failed")
		},
	}
	identities := &fakeIdentityStore{
		createUser: func(ctx context.Context, email, password string, autoConfirm bool) (*identity.Identity, error) {
			return &identity.Identity{ID: "ident-2", Email: email}, nil
		},
		deleteUser: func(ctx context.Context, id string) error {
			rolledBack = id
			return nil
		},
	}
	handler := newUserAdminHandler(admins, identities)

	rec := postCreateUser(t, handler, `{"email":"new@example.com","fullName":"New Admin","role":"admin"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if rolledBack != "ident-2" {
		t.Fatalf("expected orphaned identity removed, got %q", rolledBack)
	}
}

func TestUserAdminHandler_Delete_NotFound(t *testing.T) {
	admins := &fakeAdminUsersRepo{
		findByID: func(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error) {
			return nil, repository.ErrAdminUserNotFound
		},
	}
	handler := newUserAdminHandler(admins, &fakeIdentityStore{})

	e := echo.New()
	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodDelete, "/api/admin/users/"+id, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)

	_ = handler.Delete(c)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

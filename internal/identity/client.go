// Package identity wraps the hosted authentication service's admin surface.
// Credentials live there; this API only stores profile rows that reference
// identity ids.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/idtoken"
)

// ErrIdentityNotFound is returned when the service has no matching identity.
var ErrIdentityNotFound = errors.New("identity not found")

// Identity is an authentication record managed by the hosted service.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Store is the minimal identity-management surface the provisioning flow needs.
type Store interface {
	CreateUser(ctx context.Context, email, password string, autoConfirm bool) (*Identity, error)
	GetUser(ctx context.Context, token string) (*Identity, error)
	DeleteUser(ctx context.Context, id string) error
}

// RESTStore implements Store against the hosted identity admin API.
type RESTStore struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewRESTStore builds an identity client; bootstrap mirrors the mail client.
func NewRESTStore(client *http.Client, baseURL, apiKey string) *RESTStore {
	if baseURL == "" {
		panic("identity baseURL must not be empty")
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if client == nil {
		if apiKey == "" {
			if idc, err := idtoken.NewClient(context.Background(), baseURL); err == nil {
				client = idc
			}
		}
		if client == nil {
			client = &http.Client{Timeout: 10 * time.Second}
		}
	}
	return &RESTStore{client: client, baseURL: baseURL, apiKey: apiKey}
}

// CreateUser provisions an identity with an email/password credential.
func (s *RESTStore) CreateUser(ctx context.Context, email, password string, autoConfirm bool) (*Identity, error) {
	payload := map[string]any{
		"email":         email,
		"password":      password,
		"email_confirm": autoConfirm,
	}

	var identity Identity
	if err := s.do(ctx, http.MethodPost, "/admin/users", payload, &identity); err != nil {
		return nil, fmt.Errorf("create identity: %w", err)
	}
	return &identity, nil
}

// GetUser resolves the identity behind a bearer token.
func (s *RESTStore) GetUser(ctx context.Context, token string) (*Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/user", nil)
	if err != nil {
		return nil, fmt.Errorf("create identity request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrIdentityNotFound
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("identity service error: %s", extractAPIError(resp.Body))
	}

	var identity Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, fmt.Errorf("could not decode identity response: %w", err)
	}
	return &identity, nil
}

// DeleteUser removes an identity. Used as the compensating action when a
// profile insert fails after the identity was created.
func (s *RESTStore) DeleteUser(ctx context.Context, id string) error {
	if err := s.do(ctx, http.MethodDelete, "/admin/users/"+id, nil, nil); err != nil {
		return fmt.Errorf("delete identity: %w", err)
	}
	return nil
}

func (s *RESTStore) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrIdentityNotFound
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("identity service error: %s", extractAPIError(resp.Body))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func extractAPIError(body io.Reader) string {
	data, err := io.ReadAll(body)
	if err != nil || len(data) == 0 {
		return "service returned an error"
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return string(data)
}

var _ Store = (*RESTStore)(nil)

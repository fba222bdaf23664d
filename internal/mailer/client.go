package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/idtoken"
)

// Message is a single transactional email.
type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Mailer sends transactional email. Implementations must not have side
// effects beyond the send itself; callers treat failures as best-effort.
type Mailer interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// RESTClient posts messages to the hosted mail relay.
type RESTClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewRESTClient builds a mail client. With an API key the relay is called
// directly; without one an ID-token client is attempted for service-to-service
// calls, falling back to a plain timeout client.
func NewRESTClient(client *http.Client, baseURL, apiKey string) *RESTClient {
	if baseURL == "" {
		panic("mail baseURL must not be empty")
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
	return &RESTClient{client: client, baseURL: baseURL, apiKey: apiKey}
}

// Send posts the message and returns the provider-assigned message id.
func (c *RESTClient) Send(ctx context.Context, msg Message) (string, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("mail request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("mail provider error: %s", extractAPIError(resp.Body))
	}

	var sendResp struct {
		ID    string `json:"id"`
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&sendResp); err != nil && err != io.EOF {
		return "", fmt.Errorf("could not decode mail response: %w", err)
	}
	if sendResp.Error != "" {
		return "", fmt.Errorf("mail provider error: %s", sendResp.Error)
	}
	return sendResp.ID, nil
}

func extractAPIError(body io.Reader) string {
	data, err := io.ReadAll(body)
	if err != nil || len(data) == 0 {
		return "provider returned an error"
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return string(data)
}

var _ Mailer = (*RESTClient)(nil)

// Package provider implements the identity platform's administrative REST
// API: account creation, credential/metadata updates, and deletion,
// authenticated with the service-role key.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dwirez99/majunkita/internal/core/domain"
	"github.com/dwirez99/majunkita/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// Client talks to the provider's /auth/v1/admin surface.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

var _ ports.IdentityProvider = (*Client)(nil)

// NewClient builds a client for the project at baseURL authenticated with the
// service-role key.
func NewClient(baseURL, serviceKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type createAccountBody struct {
	Email        string         `json:"email"`
	Password     string         `json:"password"`
	EmailConfirm bool           `json:"email_confirm"`
	UserMetadata map[string]any `json:"user_metadata"`
}

type updateAccountBody struct {
	Email        string         `json:"email,omitempty"`
	Password     string         `json:"password,omitempty"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
}

type accountResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (c *Client) CreateAccount(ctx context.Context, input ports.CreateAccountInput) (*ports.Account, error) {
	body := createAccountBody{
		Email:        input.Email,
		Password:     input.Password,
		EmailConfirm: input.EmailConfirmed,
		UserMetadata: input.Metadata,
	}
	var resp accountResponse
	if err := c.do(ctx, http.MethodPost, "/admin/users", body, &resp, "create account"); err != nil {
		return nil, err
	}
	return &ports.Account{ID: resp.ID, Email: resp.Email}, nil
}

func (c *Client) UpdateCredentials(ctx context.Context, id, email, password string) error {
	body := updateAccountBody{Email: email, Password: password}
	return c.do(ctx, http.MethodPut, "/admin/users/"+url.PathEscape(id), body, nil, "update credentials")
}

func (c *Client) UpdateMetadata(ctx context.Context, id string, metadata map[string]any) error {
	body := updateAccountBody{UserMetadata: metadata}
	return c.do(ctx, http.MethodPut, "/admin/users/"+url.PathEscape(id), body, nil, "update metadata")
}

func (c *Client) DeleteAccount(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/users/"+url.PathEscape(id), nil, nil, "delete account")
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, op string) error {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/auth/v1"+path, payload)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("apikey", c.serviceKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return &domain.ProviderError{
			Op:      op,
			Status:  resp.StatusCode,
			Message: readErrorMessage(resp.Body),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s: decode response: %w", op, err)
		}
	}
	return nil
}

// readErrorMessage pulls a human-readable message out of the provider's
// error body, which uses "msg", "message", or "error" depending on endpoint.
func readErrorMessage(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 4096))
	var e struct {
		Message string `json:"message"`
		Msg     string `json:"msg"`
		Err     string `json:"error"`
	}
	if json.Unmarshal(b, &e) == nil {
		switch {
		case e.Message != "":
			return e.Message
		case e.Msg != "":
			return e.Msg
		case e.Err != "":
			return e.Err
		}
	}
	return strings.TrimSpace(string(b))
}

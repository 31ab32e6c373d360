// Package transport is the portal's REST client: it speaks the
// login/register/logout contract and the list pagination contract, and maps
// wire failures onto the shared error taxonomy.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/meridian-coop/backoffice/internal/rbac"
	"github.com/meridian-coop/backoffice/internal/session"
	"github.com/meridian-coop/backoffice/internal/shared"
)

// Client talks to the portal backend.
type Client struct {
	baseURL  string
	http     *http.Client
	logger   *slog.Logger
	validate *validator.Validate
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient swaps the underlying http.Client, as in tests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// NewClient constructs a Client for the backend at baseURL.
func NewClient(baseURL string, logger *slog.Logger, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: 15 * time.Second},
		logger:   logger,
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type credentialsPayload struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type identityPayload struct {
	ID    int64  `json:"id" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

type authResponse struct {
	Token    string          `json:"token" validate:"required"`
	Identity identityPayload `json:"identity"`
	Roles    []rbac.WireRole `json:"roles"`
}

// Login implements session.Transport.
func (c *Client) Login(ctx context.Context, creds session.Credentials) (session.AuthResult, error) {
	return c.authenticate(ctx, "/api/login", credentialsPayload{
		Email:    creds.Email,
		Password: creds.Password,
	})
}

// Register implements session.Transport.
func (c *Client) Register(ctx context.Context, reg session.Registration) (session.AuthResult, error) {
	return c.authenticate(ctx, "/api/register", credentialsPayload{
		Name:     reg.Name,
		Email:    reg.Email,
		Password: reg.Password,
	})
}

// Logout implements session.Transport. The caller treats failures as
// best-effort; local state is cleared regardless.
func (c *Client) Logout(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/logout", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrNetwork, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("logout: unexpected status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) authenticate(ctx context.Context, path string, payload credentialsPayload) (session.AuthResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return session.AuthResult{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return session.AuthResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return session.AuthResult{}, fmt.Errorf("%w: %v", shared.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return session.AuthResult{}, c.failureError(resp)
	}

	var decoded authResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return session.AuthResult{}, fmt.Errorf("%w: decode auth response: %v", shared.ErrValidation, err)
	}
	if err := c.validate.Struct(decoded); err != nil {
		return session.AuthResult{}, fmt.Errorf("%w: auth response: %v", shared.ErrValidation, err)
	}
	roles, err := rbac.DecodeRoles(c.validate, decoded.Roles)
	if err != nil {
		return session.AuthResult{}, err
	}
	return session.AuthResult{
		Identity: session.Identity{
			ID:    decoded.Identity.ID,
			Email: decoded.Identity.Email,
			Name:  decoded.Identity.Name,
		},
		Token: decoded.Token,
		Roles: roles,
	}, nil
}

// failureError extracts the user-facing message from a non-2xx response.
func (c *Client) failureError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	message := body.Message
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	if resp.StatusCode == http.StatusUnprocessableEntity || resp.StatusCode == http.StatusBadRequest {
		return fmt.Errorf("%w: %s", shared.ErrValidation, message)
	}
	return fmt.Errorf("%w: %s", shared.ErrAuthFailed, message)
}

// Package api is the HTTP client for the auth endpoints. Transport and
// status handling live here; callers work with users.User values and the
// sentinel errors from internal/common.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/avolkovs/vitrina/internal/common"
	"github.com/avolkovs/vitrina/internal/users"
)

const defaultTimeout = 15 * time.Second

// Client talks to the auth API of a running host.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type loginResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

func (r userResponse) toUser() *users.User {
	return &users.User{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Register creates a new account. A duplicate email surfaces as
// common.ErrEmailTaken.
func (c *Client) Register(ctx context.Context, name, email, password string) (*users.User, error) {
	var resp userResponse
	err := c.post(ctx, "/api/auth/register", registerRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}, &resp, map[int]error{
		http.StatusConflict: common.ErrEmailTaken,
	})
	if err != nil {
		return nil, err
	}
	return resp.toUser(), nil
}

// Login exchanges credentials for the user record and a session token.
// Bad credentials surface as common.ErrInvalidCredentials.
func (c *Client) Login(ctx context.Context, email, password string) (*users.User, string, error) {
	var resp loginResponse
	err := c.post(ctx, "/api/auth/login", loginRequest{
		Email:    email,
		Password: password,
	}, &resp, map[int]error{
		http.StatusUnauthorized: common.ErrInvalidCredentials,
	})
	if err != nil {
		return nil, "", err
	}
	return resp.User.toUser(), resp.Token, nil
}

// Session resolves a previously issued token to a fresh user record.
// Any rejection of the token surfaces as common.ErrTokenInvalid.
func (c *Client) Session(ctx context.Context, token string) (*users.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/auth/session", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	var resp userResponse
	if err := c.do(req, &resp, map[int]error{
		http.StatusUnauthorized: common.ErrTokenInvalid,
	}); err != nil {
		return nil, err
	}
	return resp.toUser(), nil
}

func (c *Client) post(ctx context.Context, path string, body, out any, statusErrs map[int]error) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out, statusErrs)
}

func (c *Client) do(req *http.Request, out any, statusErrs map[int]error) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		if mapped, ok := statusErrs[resp.StatusCode]; ok {
			return mapped
		}
		return fmt.Errorf("%s %s: unexpected status %s: %w",
			req.Method, req.URL.Path, resp.Status, common.ErrorInternal)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

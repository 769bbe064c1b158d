// Package services contains the client-side application services. This
// file defines the auth service: register, login, current-user lookup,
// and logout against a remote host, with the session token persisted in
// the local credential store.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/avolkovs/vitrina/internal/client/credstore"
	"github.com/avolkovs/vitrina/internal/common"
	"github.com/avolkovs/vitrina/internal/logging"
	"github.com/avolkovs/vitrina/internal/users"
)

// APIClient is the remote surface the auth service needs.
type APIClient interface {
	Register(ctx context.Context, name, email, password string) (*users.User, error)
	Login(ctx context.Context, email, password string) (*users.User, string, error)
	Session(ctx context.Context, token string) (*users.User, error)
}

// AuthService drives the client auth flows.
//
// Contract:
//   - Register: create a new account on the host.
//   - Login: authenticate and persist the session token locally.
//   - CurrentUser: resolve the stored token to a fresh user record,
//     discarding the token if it no longer resolves.
//   - Logout: drop the stored token; never fails on absence.
type AuthService struct {
	api    APIClient
	creds  credstore.Store
	logger logging.Logger
}

func NewAuthService(api APIClient, creds credstore.Store, logger logging.Logger) *AuthService {
	return &AuthService{api: api, creds: creds, logger: logger.With("module", "auth_client")}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*users.User, error) {
	user, err := s.api.Register(ctx, name, email, password)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates and stores the issued token under the credential
// key. A storage failure after a successful login is an error: a session
// that cannot be persisted would silently vanish on the next run.
func (s *AuthService) Login(ctx context.Context, email, password string) (*users.User, error) {
	user, token, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := s.creds.Store(ctx, common.AuthTokenKey, token); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return user, nil
}

// CurrentUser returns the user for the stored session token, or (nil, nil)
// when there is no usable session. A token the host no longer accepts is
// deleted so later calls start clean.
func (s *AuthService) CurrentUser(ctx context.Context) (*users.User, error) {
	token, found, err := s.creds.Retrieve(ctx, common.AuthTokenKey)
	if err != nil {
		return nil, err
	}
	if !found || token == "" {
		return nil, nil
	}

	user, err := s.api.Session(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrTokenInvalid) {
			s.logger.Debug(ctx, "stored token rejected, discarding")
			if delErr := s.creds.Delete(ctx, common.AuthTokenKey); delErr != nil {
				s.logger.Warn(ctx, "failed to discard stale token", "error", delErr)
			}
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// Logout removes the stored token. Logging out twice is fine.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.creds.Delete(ctx, common.AuthTokenKey)
}

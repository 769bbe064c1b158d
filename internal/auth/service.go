package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/avolkovs/vitrina/internal/common"
	"github.com/avolkovs/vitrina/internal/logging"
	"github.com/avolkovs/vitrina/internal/users"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt cost factor used for new accounts.
const PasswordHashCost = 12

// TokenStore persists one opaque secret per string key. Implemented by the
// credential store adapter (encrypted or plain, picked per context).
type TokenStore interface {
	Store(ctx context.Context, key, value string) error
	Retrieve(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
}

// Service composes the user store, the token service, and the credential
// store into the registration/login/session flows. All dependencies are
// injected; the service holds no process-wide state.
type Service struct {
	users  users.Repository
	tokens *TokenService
	creds  TokenStore
	logger logging.Logger
}

func NewService(repo users.Repository, tokens *TokenService, creds TokenStore, logger logging.Logger) *Service {
	return &Service{
		users:  repo,
		tokens: tokens,
		creds:  creds,
		logger: logger.With("module", "auth"),
	}
}

// Register creates a new account with a bcrypt-hashed password. Returns
// common.ErrEmailTaken when the email is already registered. The returned
// user never carries the password hash.
func (s *Service) Register(ctx context.Context, name, email, password string) (*users.User, error) {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrEmailTaken
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error checking email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &users.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return nil, common.ErrEmailTaken
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "user registered", "user_id", created.ID)
	return created.Sanitized(), nil
}

// Login verifies the password, issues a session token, and persists it
// under common.AuthTokenKey. Unknown email, missing password hash
// (external-provider accounts), and hash mismatch all come back as
// common.ErrInvalidCredentials without distinguishing the cause.
func (s *Service) Login(ctx context.Context, email, password string) (*users.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("error fetching user: %w", err)
	}

	if user.PasswordHash == "" {
		return nil, "", common.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", common.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("error issuing token: %w", err)
	}

	if err := s.creds.Store(ctx, common.AuthTokenKey, token); err != nil {
		return nil, "", fmt.Errorf("error storing token: %w", err)
	}

	s.logger.Info(ctx, "user logged in", "user_id", user.ID)
	return user.Sanitized(), token, nil
}

// ResolveSession reads the stored token and turns it into a current user.
// A missing token means no session (nil, nil). An invalid token or a user
// deleted since issuance causes the stored token to be removed, so a dead
// token is never left behind. On success the user is re-fetched from the
// store; claims are trusted only for the identity lookup.
func (s *Service) ResolveSession(ctx context.Context) (*users.User, error) {
	token, found, err := s.creds.Retrieve(ctx, common.AuthTokenKey)
	if err != nil {
		return nil, fmt.Errorf("error reading stored token: %w", err)
	}
	if !found || token == "" {
		return nil, nil
	}

	user, err := s.SessionFromToken(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrTokenInvalid) {
			if delErr := s.creds.Delete(ctx, common.AuthTokenKey); delErr != nil {
				s.logger.Warn(ctx, "failed to drop stale token", "error", delErr)
			}
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// SessionFromToken verifies an explicitly supplied token and re-fetches
// the user it names. Route middleware uses this when the token travels in
// a request header rather than through the credential store. A verified
// token naming a user that no longer exists counts as invalid.
func (s *Service) SessionFromToken(ctx context.Context, token string) (*users.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, common.ErrTokenInvalid
	}

	user, err := s.users.FindByID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrTokenInvalid
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	return user.Sanitized(), nil
}

// Logout removes the stored token. Calling it with no stored token is not
// an error.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.creds.Delete(ctx, common.AuthTokenKey); err != nil {
		return fmt.Errorf("error deleting token: %w", err)
	}
	return nil
}

package auth

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/avolkovs/vitrina/internal/common"
	"github.com/avolkovs/vitrina/internal/logging"
	"github.com/avolkovs/vitrina/internal/users"
)

// --- helpers ---

type fakeTokenStore struct {
	mu     sync.Mutex
	values map[string]string

	storeErr error
	delErr   error
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{values: make(map[string]string)}
}

func (f *fakeTokenStore) Store(ctx context.Context, key, value string) error {
	if f.storeErr != nil {
		return f.storeErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	return nil
}

func (f *fakeTokenStore) Retrieve(ctx context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *fakeTokenStore) Delete(ctx context.Context, key string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	return nil
}

func newTestService(t *testing.T) (*Service, *users.InMemoryRepository, *fakeTokenStore, *TokenService) {
	t.Helper()
	repo := users.NewInMemoryRepository()
	tokens := NewTokenService([]byte("test-secret"), time.Hour)
	creds := newFakeTokenStore()
	svc := NewService(repo, tokens, creds, logging.NewJSON(io.Discard))
	return svc, repo, creds, tokens
}

// --- tests ---

func TestService_Register(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, "Ann", "ann@x.com", "pw123456")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if u.ID == "" {
		t.Fatalf("expected generated user id")
	}
	if u.PasswordHash != "" {
		t.Fatalf("returned user must not carry the password hash")
	}
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	svc, repo, _, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Ann", "ann@x.com", "pw123456"); err != nil {
		t.Fatalf("first Register error: %v", err)
	}

	_, err := svc.Register(ctx, "Other Ann", "ann@x.com", "different")
	if !errors.Is(err, common.ErrEmailTaken) {
		t.Fatalf("expected common.ErrEmailTaken, got %v", err)
	}

	// the store still holds exactly one record for that email
	u, err := repo.FindByEmail(ctx, "ann@x.com")
	if err != nil {
		t.Fatalf("FindByEmail error: %v", err)
	}
	if u.Name != "Ann" {
		t.Fatalf("second registration must not overwrite the first: %+v", u)
	}
}

func TestService_Login_Success(t *testing.T) {
	svc, _, creds, _ := newTestService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, "Ann", "ann@x.com", "pw123456")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	u, token, err := svc.Login(ctx, "ann@x.com", "pw123456")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if u.ID != reg.ID {
		t.Fatalf("user id mismatch: got %q want %q", u.ID, reg.ID)
	}
	if u.PasswordHash != "" {
		t.Fatalf("returned user must not carry the password hash")
	}

	stored, found, _ := creds.Retrieve(ctx, common.AuthTokenKey)
	if !found || stored != token {
		t.Fatalf("token not persisted in credential store")
	}
}

func TestService_Login_Failures(t *testing.T) {
	svc, repo, _, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Ann", "ann@x.com", "pw123456"); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	// account without a password hash (external provider)
	if _, err := repo.Create(ctx, &users.User{ID: "oauth-1", Email: "oauth@x.com"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "ann@x.com", "wrongpw"},
		{"unknown email", "nobody@x.com", "pw123456"},
		{"no password hash", "oauth@x.com", "pw123456"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Login(ctx, tc.email, tc.password)
			if !errors.Is(err, common.ErrInvalidCredentials) {
				t.Fatalf("expected common.ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestService_LoginThenResolveSession(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Ann", "ann@x.com", "pw123456"); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	logged, _, err := svc.Login(ctx, "ann@x.com", "pw123456")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	current, err := svc.ResolveSession(ctx)
	if err != nil {
		t.Fatalf("ResolveSession error: %v", err)
	}
	if current == nil || current.ID != logged.ID {
		t.Fatalf("session user mismatch: got %+v want id %q", current, logged.ID)
	}
}

func TestService_ResolveSession_NoToken(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	u, err := svc.ResolveSession(context.Background())
	if err != nil {
		t.Fatalf("ResolveSession error: %v", err)
	}
	if u != nil {
		t.Fatalf("expected anonymous session, got %+v", u)
	}
}

func TestService_ResolveSession_InvalidTokenSelfHeals(t *testing.T) {
	svc, _, creds, _ := newTestService(t)
	ctx := context.Background()

	if err := creds.Store(ctx, common.AuthTokenKey, "garbage-token"); err != nil {
		t.Fatalf("Store error: %v", err)
	}

	u, err := svc.ResolveSession(ctx)
	if err != nil {
		t.Fatalf("ResolveSession error: %v", err)
	}
	if u != nil {
		t.Fatalf("expected anonymous session, got %+v", u)
	}

	if _, found, _ := creds.Retrieve(ctx, common.AuthTokenKey); found {
		t.Fatalf("invalid token must be removed from storage")
	}
}

func TestService_ResolveSession_UserDeleted(t *testing.T) {
	svc, repo, creds, _ := newTestService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, "Ann", "ann@x.com", "pw123456")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if _, _, err := svc.Login(ctx, "ann@x.com", "pw123456"); err != nil {
		t.Fatalf("Login error: %v", err)
	}

	repo.DeleteByID(reg.ID)

	u, err := svc.ResolveSession(ctx)
	if err != nil {
		t.Fatalf("ResolveSession error: %v", err)
	}
	if u != nil {
		t.Fatalf("expected anonymous session after user deletion, got %+v", u)
	}
	if _, found, _ := creds.Retrieve(ctx, common.AuthTokenKey); found {
		t.Fatalf("token for a deleted user must be removed")
	}
}

func TestService_ResolveSession_ExpiredToken(t *testing.T) {
	svc, _, creds, tokens := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Ann", "ann@x.com", "pw123456"); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if _, _, err := svc.Login(ctx, "ann@x.com", "pw123456"); err != nil {
		t.Fatalf("Login error: %v", err)
	}

	tokens.WithClock(func() time.Time { return time.Now().Add(2 * time.Hour) })

	u, err := svc.ResolveSession(ctx)
	if err != nil {
		t.Fatalf("ResolveSession error: %v", err)
	}
	if u != nil {
		t.Fatalf("expected anonymous session after expiry, got %+v", u)
	}
	if _, found, _ := creds.Retrieve(ctx, common.AuthTokenKey); found {
		t.Fatalf("expired token must be removed from storage")
	}
}

func TestService_Logout(t *testing.T) {
	svc, _, creds, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Ann", "ann@x.com", "pw123456"); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if _, _, err := svc.Login(ctx, "ann@x.com", "pw123456"); err != nil {
		t.Fatalf("Login error: %v", err)
	}

	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("Logout error: %v", err)
	}
	if _, found, _ := creds.Retrieve(ctx, common.AuthTokenKey); found {
		t.Fatalf("token must be removed on logout")
	}

	// idempotent
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("repeated Logout error: %v", err)
	}

	u, err := svc.ResolveSession(ctx)
	if err != nil {
		t.Fatalf("ResolveSession error: %v", err)
	}
	if u != nil {
		t.Fatalf("expected anonymous session after logout, got %+v", u)
	}
}

package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/avolkovs/vitrina/internal/common"
	"github.com/avolkovs/vitrina/internal/logging"
	"github.com/avolkovs/vitrina/internal/users"
)

// fakeAPI implements APIClient with canned behavior.
type fakeAPI struct {
	user       *users.User
	token      string
	loginErr   error
	sessionErr error

	sessionCalls int
}

func (f *fakeAPI) Register(ctx context.Context, name, email, password string) (*users.User, error) {
	return f.user, nil
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (*users.User, string, error) {
	if f.loginErr != nil {
		return nil, "", f.loginErr
	}
	return f.user, f.token, nil
}

func (f *fakeAPI) Session(ctx context.Context, token string) (*users.User, error) {
	f.sessionCalls++
	if f.sessionErr != nil {
		return nil, f.sessionErr
	}
	if token != f.token {
		return nil, common.ErrTokenInvalid
	}
	return f.user, nil
}

type memStore struct {
	values map[string]string
}

func newMemStore() *memStore {
	return &memStore{values: map[string]string{}}
}

func (m *memStore) Store(ctx context.Context, key, value string) error {
	m.values[key] = value
	return nil
}

func (m *memStore) Retrieve(ctx context.Context, key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memStore) Delete(ctx context.Context, key string) error {
	delete(m.values, key)
	return nil
}

func newTestService(api *fakeAPI, store *memStore) *AuthService {
	return NewAuthService(api, store, logging.NewJSON(io.Discard))
}

func TestLoginPersistsToken(t *testing.T) {
	api := &fakeAPI{user: &users.User{ID: "u1", Email: "a@example.com"}, token: "tok1"}
	store := newMemStore()
	svc := newTestService(api, store)

	user, err := svc.Login(context.Background(), "a@example.com", "pw")
	if err != nil {
		t.Fatalf("logging in: %v", err)
	}
	if user.ID != "u1" {
		t.Errorf("unexpected user %+v", user)
	}
	if got := store.values[common.AuthTokenKey]; got != "tok1" {
		t.Errorf("expected token persisted, got %q", got)
	}
}

func TestLoginFailureStoresNothing(t *testing.T) {
	api := &fakeAPI{loginErr: common.ErrInvalidCredentials}
	store := newMemStore()
	svc := newTestService(api, store)

	if _, err := svc.Login(context.Background(), "a@example.com", "bad"); !errors.Is(err, common.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(store.values) != 0 {
		t.Errorf("expected empty store, got %v", store.values)
	}
}

func TestCurrentUserNoSession(t *testing.T) {
	api := &fakeAPI{}
	svc := newTestService(api, newMemStore())

	user, err := svc.CurrentUser(context.Background())
	if err != nil || user != nil {
		t.Fatalf("expected (nil, nil), got (%v, %v)", user, err)
	}
	if api.sessionCalls != 0 {
		t.Error("expected no remote call without a stored token")
	}
}

func TestCurrentUserResolvesStoredToken(t *testing.T) {
	api := &fakeAPI{user: &users.User{ID: "u1"}, token: "tok1"}
	store := newMemStore()
	store.values[common.AuthTokenKey] = "tok1"
	svc := newTestService(api, store)

	user, err := svc.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("resolving: %v", err)
	}
	if user == nil || user.ID != "u1" {
		t.Fatalf("unexpected user %+v", user)
	}
}

func TestCurrentUserDiscardsRejectedToken(t *testing.T) {
	api := &fakeAPI{user: &users.User{ID: "u1"}, token: "tok1"}
	store := newMemStore()
	store.values[common.AuthTokenKey] = "stale"
	svc := newTestService(api, store)

	user, err := svc.CurrentUser(context.Background())
	if err != nil || user != nil {
		t.Fatalf("expected (nil, nil) for rejected token, got (%v, %v)", user, err)
	}
	if _, ok := store.values[common.AuthTokenKey]; ok {
		t.Error("expected stale token removed")
	}
}

func TestCurrentUserKeepsTokenOnTransientError(t *testing.T) {
	api := &fakeAPI{sessionErr: errors.New("network down")}
	store := newMemStore()
	store.values[common.AuthTokenKey] = "tok1"
	svc := newTestService(api, store)

	if _, err := svc.CurrentUser(context.Background()); err == nil {
		t.Fatal("expected error on transient failure")
	}
	if _, ok := store.values[common.AuthTokenKey]; !ok {
		t.Error("token must survive transient failures")
	}
}

func TestLogoutIdempotent(t *testing.T) {
	store := newMemStore()
	store.values[common.AuthTokenKey] = "tok1"
	svc := newTestService(&fakeAPI{}, store)
	ctx := context.Background()

	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("second logout: %v", err)
	}
	if len(store.values) != 0 {
		t.Errorf("expected empty store, got %v", store.values)
	}
}

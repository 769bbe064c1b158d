package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/avolkovs/vitrina/internal/common"
	"github.com/avolkovs/vitrina/internal/users"
)

func testUser() *users.User {
	return &users.User{ID: "user-123", Email: "ann@x.com", Name: "Ann"}
}

func TestTokenService_IssueVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("super-secret"), time.Hour)
	u := testUser()

	tok, err := svc.Issue(u)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.ID != u.ID || claims.Email != u.Email || claims.Name != u.Name {
		t.Fatalf("claims mismatch: got %+v want %+v", claims, u)
	}
}

func TestTokenService_Verify_Expired(t *testing.T) {
	t.Parallel()

	now := time.Now()
	svc := NewTokenService([]byte("secret"), DefaultTokenValidity).
		WithClock(func() time.Time { return now })

	tok, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// still valid just before the cutoff
	svc.WithClock(func() time.Time { return now.Add(DefaultTokenValidity - time.Minute) })
	if _, err := svc.Verify(tok); err != nil {
		t.Fatalf("expected token to still verify, got %v", err)
	}

	// invalid once the validity window has elapsed
	svc.WithClock(func() time.Time { return now.Add(DefaultTokenValidity + time.Minute) })
	_, err = svc.Verify(tok)
	if !errors.Is(err, common.ErrTokenInvalid) {
		t.Fatalf("expected common.ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenService([]byte("right-secret"), time.Hour).Issue(testUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewTokenService([]byte("wrong-secret"), time.Hour).Verify(tok)
	if !errors.Is(err, common.ErrTokenInvalid) {
		t.Fatalf("expected common.ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_Verify_Corrupted(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("k"), time.Hour)

	tok, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	for _, bad := range []string{
		"not.a.jwt",
		"",
		tok + "x",
		tok[:len(tok)-2],
	} {
		if _, err := svc.Verify(bad); !errors.Is(err, common.ErrTokenInvalid) {
			t.Fatalf("expected common.ErrTokenInvalid for %q, got %v", bad, err)
		}
	}
}

func TestTokenService_Issue_NewTokenPerLogin(t *testing.T) {
	t.Parallel()

	now := time.Now()
	svc := NewTokenService([]byte("k"), time.Hour).
		WithClock(func() time.Time { now = now.Add(time.Second); return now })

	a, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	b, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if a == b {
		t.Fatalf("expected a fresh token per issuance")
	}
}

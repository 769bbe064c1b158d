package credstore

import (
	"context"

	"github.com/avolkovs/vitrina/internal/common"
)

// SecureBridge is the subset of the bridge client the secure store needs.
type SecureBridge interface {
	SetSecureStorage(ctx context.Context, key, value string) bool
	GetSecureStorage(ctx context.Context, key string) (string, bool)
	DeleteSecureStorage(ctx context.Context, key string) bool
}

// SecureStore keeps credentials in the host's encrypted storage via the
// bridge. Writes that the host refuses (encryption unavailable, bridge
// down) surface as common.ErrStorageUnavailable so callers can fall back.
type SecureStore struct {
	bridge SecureBridge
}

func NewSecureStore(b SecureBridge) *SecureStore {
	return &SecureStore{bridge: b}
}

func (s *SecureStore) Store(ctx context.Context, key, value string) error {
	if !s.bridge.SetSecureStorage(ctx, key, value) {
		return common.ErrStorageUnavailable
	}
	return nil
}

func (s *SecureStore) Retrieve(ctx context.Context, key string) (string, bool, error) {
	value, found := s.bridge.GetSecureStorage(ctx, key)
	return value, found, nil
}

func (s *SecureStore) Delete(ctx context.Context, key string) error {
	// The bridge reports false both for "nothing stored" and for real
	// failures; deletion is treated as idempotent either way.
	s.bridge.DeleteSecureStorage(ctx, key)
	return nil
}

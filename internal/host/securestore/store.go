// Package securestore keeps secrets encrypted in host process memory.
//
// Values are AES-GCM-encrypted under a key generated at construction and
// never persisted to disk: restarting the host loses every stored secret.
// That limitation is intentional parity with the original design; session
// expiry is enforced by token verification, not by this layer.
package securestore

import (
	"context"
	"fmt"
	"sync"

	"github.com/avolkovs/vitrina/internal/common"
	"github.com/avolkovs/vitrina/internal/cryptox"
)

type entry struct {
	ciphertext []byte
	nonce      []byte
}

// Store is a concurrency-safe, in-memory, encrypted key-value store.
type Store struct {
	mu        sync.Mutex
	key       []byte
	values    map[string]entry
	available bool
}

// New returns a Store with a fresh random encryption key.
func New() (*Store, error) {
	key, err := cryptox.NewKey()
	if err != nil {
		return nil, fmt.Errorf("secure store init error: %w", err)
	}
	return &Store{key: key, values: make(map[string]entry), available: true}, nil
}

// NewUnavailable returns a Store that rejects every operation with
// common.ErrStorageUnavailable, modelling a platform without encryption
// support. Callers are expected to fall back to plain storage.
func NewUnavailable() *Store {
	return &Store{values: make(map[string]entry)}
}

// Available reports whether encryption is usable in this process.
func (s *Store) Available() bool {
	return s.available
}

// Store encrypts value and replaces any prior value under key.
func (s *Store) Store(ctx context.Context, key, value string) error {
	if !s.available {
		return common.ErrStorageUnavailable
	}

	ciphertext, nonce, err := cryptox.EncryptString(value, s.key)
	if err != nil {
		return fmt.Errorf("encrypt error: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = entry{ciphertext: ciphertext, nonce: nonce}
	return nil
}

// Retrieve decrypts and returns the most recently stored value for key.
// The second return is false when nothing is stored under key.
func (s *Store) Retrieve(ctx context.Context, key string) (string, bool, error) {
	if !s.available {
		return "", false, common.ErrStorageUnavailable
	}

	s.mu.Lock()
	e, ok := s.values[key]
	s.mu.Unlock()
	if !ok {
		return "", false, nil
	}

	value, err := cryptox.DecryptString(e.ciphertext, e.nonce, s.key)
	if err != nil {
		return "", false, fmt.Errorf("decrypt error: %w", err)
	}
	return value, true, nil
}

// Delete removes the stored value, if present.
func (s *Store) Delete(ctx context.Context, key string) error {
	if !s.available {
		return common.ErrStorageUnavailable
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

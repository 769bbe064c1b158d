// Package credstore persists the client's credentials (the auth token)
// across runs. Two backends exist: a secure one that delegates to the
// host's encrypted storage over the bridge, and a plain local SQLite one
// used when no bridge or no encryption is available.
package credstore

import "context"

// Store is the persistence contract for client credentials. Retrieve
// reports absence with found=false rather than an error.
type Store interface {
	Store(ctx context.Context, key, value string) error
	Retrieve(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
}

// Capabilities describes what the runtime environment offers. It is
// determined explicitly at startup instead of sniffed from globals, so
// tests and unusual deployments can set it directly.
type Capabilities struct {
	// HasBridge is true when a privileged host bridge is reachable.
	HasBridge bool
	// HasSecureStorage is true when the host reports OS-level
	// encryption as available. Meaningless unless HasBridge is set.
	HasSecureStorage bool
}

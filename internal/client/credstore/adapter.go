package credstore

import (
	"context"
	"errors"
	"sync"

	"github.com/avolkovs/vitrina/internal/common"
	"github.com/avolkovs/vitrina/internal/logging"
)

// Adapter routes credential operations to the secure (bridge) store when
// the environment supports it, and to the plain local store otherwise.
// If the secure store turns out to be unusable at runtime — the host may
// report encryption unavailable only when actually asked to encrypt —
// the adapter downgrades to the local store and stays there.
type Adapter struct {
	secure Store // nil when the environment has no usable bridge
	local  Store
	logger logging.Logger

	mu        sync.Mutex
	useSecure bool
}

func NewAdapter(caps Capabilities, secure Store, local Store, logger logging.Logger) *Adapter {
	use := caps.HasBridge && caps.HasSecureStorage && secure != nil
	return &Adapter{
		secure:    secure,
		local:     local,
		logger:    logger,
		useSecure: use,
	}
}

func (a *Adapter) active() Store {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.useSecure {
		return a.secure
	}
	return a.local
}

func (a *Adapter) downgrade() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.useSecure = false
}

func (a *Adapter) Store(ctx context.Context, key, value string) error {
	if err := a.active().Store(ctx, key, value); err != nil {
		if errors.Is(err, common.ErrStorageUnavailable) && a.active() != a.local {
			a.logger.Warn(ctx, "secure storage unavailable, falling back to local store")
			a.downgrade()
			return a.local.Store(ctx, key, value)
		}
		return err
	}
	return nil
}

func (a *Adapter) Retrieve(ctx context.Context, key string) (string, bool, error) {
	return a.active().Retrieve(ctx, key)
}

func (a *Adapter) Delete(ctx context.Context, key string) error {
	return a.active().Delete(ctx, key)
}

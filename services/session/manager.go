package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pawcare/models"
	"pawcare/utils"

	"go.uber.org/zap"
)

// expirySkew treats tokens about to expire as already expired, so a request
// does not leave with a token that dies in flight.
const expirySkew = 10 * time.Second

// Manager owns the canonical access/refresh token pair for the process. All
// reads and writes of token state go through it; persistence is a side
// effect it performs itself, not something call sites do independently.
type Manager struct {
	mu    sync.Mutex
	pair  models.TokenPair
	store Store

	now func() time.Time
}

// NewManager creates a Manager persisting through the given store.
func NewManager(store Store) *Manager {
	return &Manager{store: store, now: time.Now}
}

// Load restores the persisted token pair, typically at startup.
func (m *Manager) Load(ctx context.Context) error {
	pair, err := m.store.Load(ctx)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.pair = pair
	m.mu.Unlock()
	return nil
}

// Set replaces the token pair wholesale and persists both slots.
func (m *Manager) Set(ctx context.Context, pair models.TokenPair) error {
	if err := m.store.Save(ctx, pair); err != nil {
		return fmt.Errorf("failed to persist token pair: %w", err)
	}
	m.mu.Lock()
	m.pair = pair
	m.mu.Unlock()
	return nil
}

// Clear drops both tokens, in memory and in durable storage. Used on logout
// and on unrecoverable refresh failure.
func (m *Manager) Clear(ctx context.Context) error {
	m.mu.Lock()
	m.pair = models.TokenPair{}
	m.mu.Unlock()
	if err := m.store.Clear(ctx); err != nil {
		return err
	}
	utils.GetLogger().Debug("Session tokens cleared")
	return nil
}

// AccessToken returns the current access token, or "" when none is held.
func (m *Manager) AccessToken() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pair.AccessToken
}

// RefreshToken returns the current refresh token, or "" when none is held.
func (m *Manager) RefreshToken() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pair.RefreshToken
}

// IsExpired reports whether a token's expiry claim has passed. A token that
// cannot be decoded counts as expired: fail-closed, never fail-open.
func (m *Manager) IsExpired(token string) bool {
	if token == "" {
		return true
	}
	expiresAt, err := utils.TokenExpiry(token)
	if err != nil {
		utils.GetLogger().Warn("Failed to decode token expiry, treating as expired", zap.Error(err))
		return true
	}
	return !expiresAt.After(m.now().Add(expirySkew))
}

// HasUsableAccessToken reports whether an unexpired access token is held.
func (m *Manager) HasUsableAccessToken() bool {
	return !m.IsExpired(m.AccessToken())
}

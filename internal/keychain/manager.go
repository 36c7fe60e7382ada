// Copyright (c) 2025 CollabNEX
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain provides centralized, thread-safe credential storage for
// collabnex. This module manages all interactions with the OS keychain or
// credential store, providing a unified interface for the bearer tokens the
// CLI holds on behalf of the user.
//
// Native platform backends (macOS Keychain, Windows Credential Manager,
// Secret Service) are used where available, with an encrypted file backend
// in the XDG state directory as the portable fallback. Reads fail open:
// a storage failure surfaces as "no token" rather than an error, because
// the in-memory session remains authoritative for the current process.
package keychain

import (
	"errors"
	"sync"

	"collabnex/cli/internal/xdg"

	"github.com/99designs/keyring"
)

// Global keychain manager instance
var (
	globalManager *Manager
	globalError   error
	mu            sync.Mutex
)

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "collabnex"

// Keys used for storing secrets. KeyAccessToken is the single canonical
// location for the bearer token; the legacy keys below existed in earlier
// releases and are migrated on first access.
const (
	KeyAccessToken  = "auth_access_token"
	KeyRefreshToken = "auth_refresh_token"
)

// legacyTokenKeys are the storage keys older builds wrote the bearer token
// under. Migration drains them into KeyAccessToken exactly once.
var legacyTokenKeys = []string{"authToken", "token", "jwt"}

// Backend defines the interface for credential storage operations.
type Backend interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Delete(key string) error
}

// Manager provides centralized, thread-safe operations for credential storage.
type Manager struct {
	mu      sync.RWMutex
	backend Backend
}

// NewManager creates a new keychain manager backed by the OS keyring.
// Legacy token keys are migrated to the canonical key on construction.
func NewManager() (*Manager, error) {
	ring, err := openRing()
	if err != nil {
		return nil, err
	}
	m := &Manager{backend: &ringBackend{ring: ring}}
	m.migrateLegacyKeys()
	return m, nil
}

// NewManagerWithBackend creates a manager over an explicit backend.
// Tests use this with an in-memory backend.
func NewManagerWithBackend(b Backend) *Manager {
	m := &Manager{backend: b}
	m.migrateLegacyKeys()
	return m
}

// GetManager returns the global keychain manager instance.
// If not initialized, it will be created on first call.
// If initialization fails, it will retry on subsequent calls.
func GetManager() (*Manager, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalManager != nil {
		return globalManager, nil
	}

	globalManager, globalError = NewManager()
	if globalError != nil {
		return nil, globalError
	}

	return globalManager, nil
}

// openRing opens the OS keyring, falling back to an encrypted file in the
// XDG state dir when no native backend is available.
func openRing() (keyring.Keyring, error) {
	stateDir, err := xdg.StateDir()
	if err != nil {
		return nil, err
	}

	cfg := keyring.Config{
		ServiceName: ServiceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.WinCredBackend,
			keyring.SecretServiceBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		PassPrefix:       ServiceName,
		WinCredPrefix:    ServiceName,
		FileDir:          stateDir,
		FilePasswordFunc: keyring.FixedStringPrompt(ServiceName),
	}

	return keyring.Open(cfg)
}

// ringBackend adapts a keyring.Keyring to the Backend interface.
// A missing key reads as empty, not as an error.
type ringBackend struct {
	ring keyring.Keyring
}

func (r *ringBackend) Set(key, value string) error {
	return r.ring.Set(keyring.Item{Key: key, Data: []byte(value)})
}

func (r *ringBackend) Get(key string) (string, error) {
	it, err := r.ring.Get(key)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return "", nil
		}
		return "", err
	}
	return string(it.Data), nil
}

func (r *ringBackend) Delete(key string) error {
	if err := r.ring.Remove(key); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return err
	}
	return nil
}

// migrateLegacyKeys moves a token stored under any pre-canonical key into
// KeyAccessToken and removes the old entries. First non-empty value wins;
// an existing canonical token is never overwritten.
func (m *Manager) migrateLegacyKeys() {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, err := m.backend.Get(KeyAccessToken)
	if err != nil {
		return
	}

	for _, key := range legacyTokenKeys {
		v, err := m.backend.Get(key)
		if err != nil {
			continue
		}
		if v != "" && current == "" {
			if err := m.backend.Set(KeyAccessToken, v); err == nil {
				current = v
			}
		}
		_ = m.backend.Delete(key)
	}
}

// SaveTokens stores the access and refresh tokens. Empty values leave the
// corresponding entry untouched. This method is thread-safe.
func (m *Manager) SaveTokens(accessToken, refreshToken string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if accessToken != "" {
		if err := m.backend.Set(KeyAccessToken, accessToken); err != nil {
			return err
		}
	}
	if refreshToken != "" {
		if err := m.backend.Set(KeyRefreshToken, refreshToken); err != nil {
			return err
		}
	}
	return nil
}

// AccessToken retrieves the stored access token. A missing token reads as
// empty with a nil error; storage failures are returned to the caller.
func (m *Manager) AccessToken() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.backend.Get(KeyAccessToken)
}

// Token returns the stored access token, failing open to "" on any storage
// error. The request gateway uses this to decide whether to attach the
// Authorization header.
func (m *Manager) Token() string {
	t, err := m.AccessToken()
	if err != nil {
		return ""
	}
	return t
}

// RefreshToken retrieves the stored refresh token.
func (m *Manager) RefreshToken() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.backend.Get(KeyRefreshToken)
}

// ClearAuth removes all auth-related secrets. Deletes are best effort;
// the first failure is reported but remaining keys are still attempted.
func (m *Manager) ClearAuth() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var firstErr error
	for _, key := range []string{KeyAccessToken, KeyRefreshToken} {
		if err := m.backend.Delete(key); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Copyright (c) 2025 CollabNEX
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session owns the client-side authentication lifecycle: who is
// logged in, whether they have completed onboarding, and which screen a
// login or app resume should land on. It is the only writer of the
// credential store besides the store's own migration, keeping a single
// source of truth for auth state.
//
// The Manager is an explicit instance constructed by the application root
// and handed to commands; there is deliberately no package-level singleton
// so tests can build isolated managers.
package session

import (
	"context"
	"strings"
	"sync"

	"collabnex/cli/internal/api"
	"collabnex/cli/internal/apierr"
	"collabnex/cli/internal/profile"
	"collabnex/cli/internal/validate"

	"go.uber.org/zap"
)

// State is the coarse authentication state of the process.
type State int

const (
	Anonymous State = iota
	Authenticating
	Authenticated
)

func (s State) String() string {
	switch s {
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// NavTarget is where a screen should route after an auth operation.
type NavTarget string

const (
	NavHome          NavTarget = "Home"
	NavCreateProfile NavTarget = "CreateProfile"
	NavLogin         NavTarget = "Login"
)

// User-visible messages for the failure classes login and signup surface.
const (
	msgInvalidCredentials = "Invalid email or password"
	msgUserNotFound       = "User not found"
	msgUnreachable        = "Server not reachable. Check your connection."
	msgLoginFallback      = "Login failed. Please try again."
	msgEmailRegistered    = "Email already registered."
	msgSignupFallback     = "Signup failed. Please try again."
)

// CredentialStore is the slice of the keychain manager the session needs.
type CredentialStore interface {
	SaveTokens(accessToken, refreshToken string) error
	Token() string
	RefreshToken() (string, error)
	ClearAuth() error
}

// Gateway is the slice of the request gateway the session needs.
type Gateway interface {
	Post(ctx context.Context, path string, body any) (*api.Response, error)
}

// ProfileSource fetches the current user's profile record.
type ProfileSource interface {
	Fetch(ctx context.Context) (*profile.Record, error)
}

// Manager is the auth session state machine.
type Manager struct {
	gw       Gateway
	store    CredentialStore
	profiles ProfileSource
	log      *zap.Logger

	mu           sync.Mutex
	state        State
	profileState profile.State
	// gen increases on every logout; async completions captured under an
	// older generation are discarded instead of resurrecting a session.
	gen uint64
}

// NewManager constructs a session manager in the Anonymous state.
func NewManager(gw Gateway, store CredentialStore, profiles ProfileSource, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		gw:       gw,
		store:    store,
		profiles: profiles,
		log:      log,
		state:    Anonymous,
	}
}

// State returns the current session and profile state.
func (m *Manager) State() (State, profile.State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, m.profileState
}

// IsAuthenticated reports whether a user is logged in.
func (m *Manager) IsAuthenticated() bool {
	s, _ := m.State()
	return s == Authenticated
}

// navFor maps a profile state to the screen it should land on.
func navFor(ps profile.State) NavTarget {
	switch ps {
	case profile.BasicUser, profile.ArtistComplete:
		return NavHome
	default:
		return NavCreateProfile
	}
}

// loginResponse covers both token shapes the backend has shipped:
// a single {token} and the later {accessToken, refreshToken} pair.
type loginResponse struct {
	Token        string `json:"token"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func (r loginResponse) access() string {
	if r.AccessToken != "" {
		return r.AccessToken
	}
	return r.Token
}

// Login validates credentials locally, authenticates against the backend,
// persists the issued token, resolves profile completion, and reports the
// navigation target. Local validation failures never reach the network.
func (m *Manager) Login(ctx context.Context, email, password string) (NavTarget, error) {
	email = validate.NormalizeEmail(email)
	password = strings.TrimSpace(password)
	if !validate.IsValidEmail(email) {
		return NavLogin, apierr.New(apierr.InvalidInputLocal, "Invalid email format")
	}
	if !validate.IsValidPassword(password) {
		return NavLogin, apierr.New(apierr.InvalidInputLocal, "Password must be 6+ characters")
	}

	m.mu.Lock()
	gen := m.gen
	m.state = Authenticating
	m.mu.Unlock()

	resp, err := m.gw.Post(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		m.revert(gen)
		return NavLogin, loginError(err)
	}

	var tokens loginResponse
	if err := resp.Decode(&tokens); err != nil || tokens.access() == "" {
		m.revert(gen)
		return NavLogin, apierr.Wrap(apierr.Unknown, msgLoginFallback, err)
	}

	// The generation check and the persist happen under one lock so a
	// concurrent Logout cannot clear the store between them and leave
	// this stale token written back afterwards.
	m.mu.Lock()
	if m.gen != gen {
		m.mu.Unlock()
		return NavLogin, apierr.New(apierr.Unknown, "login superseded by logout")
	}
	// Best effort: the in-memory session stays authoritative even when
	// persistence fails.
	if err := m.store.SaveTokens(tokens.access(), tokens.RefreshToken); err != nil {
		m.log.Warn("persisting credentials failed", zap.Error(err))
	}
	m.mu.Unlock()

	ps := m.resolveProfile(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gen != gen {
		return NavLogin, apierr.New(apierr.Unknown, "login superseded by logout")
	}
	m.state = Authenticated
	m.profileState = ps
	return navFor(ps), nil
}

// revert returns to Anonymous after a failed login, unless a newer
// generation already took over.
func (m *Manager) revert(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gen == gen && m.state == Authenticating {
		m.state = Anonymous
		m.profileState = profile.Unknown
	}
}

// loginError maps a gateway classification to the message the login screen
// shows.
func loginError(err error) error {
	switch apierr.KindOf(err) {
	case apierr.Unauthorized:
		return apierr.Wrap(apierr.Unauthorized, msgInvalidCredentials, err)
	case apierr.NotFound:
		return apierr.Wrap(apierr.NotFound, msgUserNotFound, err)
	case apierr.NetworkUnreachable:
		return apierr.Wrap(apierr.NetworkUnreachable, msgUnreachable, err)
	default:
		if msg := apierr.MessageOf(err); msg != "" {
			return err
		}
		return apierr.Wrap(apierr.Unknown, msgLoginFallback, err)
	}
}

// Signup registers a new account. Success does not authenticate; the
// caller navigates to the login screen.
func (m *Manager) Signup(ctx context.Context, fullName, email, password string) error {
	fullName = strings.TrimSpace(validate.FilterFullName(fullName))
	email = validate.NormalizeEmail(email)
	password = strings.TrimSpace(password)

	if !validate.IsValidFullName(fullName) {
		return apierr.New(apierr.InvalidInputLocal, "Full name must be at least 3 characters")
	}
	if !validate.IsValidEmail(email) {
		return apierr.New(apierr.InvalidInputLocal, "Invalid email format")
	}
	if !validate.IsValidPassword(password) {
		return apierr.New(apierr.InvalidInputLocal, "Minimum 6 characters required")
	}

	_, err := m.gw.Post(ctx, "/auth/register", map[string]string{
		"fullName": fullName,
		"email":    email,
		"password": password,
	})
	if err == nil {
		return nil
	}

	switch apierr.KindOf(err) {
	case apierr.Conflict:
		return apierr.Wrap(apierr.Conflict, msgEmailRegistered, err)
	case apierr.NetworkUnreachable:
		return apierr.Wrap(apierr.NetworkUnreachable, msgUnreachable, err)
	default:
		if msg := apierr.MessageOf(err); msg != "" {
			return err
		}
		return apierr.Wrap(apierr.Unknown, msgSignupFallback, err)
	}
}

// Resume restores the session at process start. A stored token means
// authenticated-but-possibly-needing-onboarding, whatever the resolver
// says; no stored token stays Anonymous.
func (m *Manager) Resume(ctx context.Context) NavTarget {
	token := m.store.Token()
	if token == "" {
		m.mu.Lock()
		m.state = Anonymous
		m.profileState = profile.Unknown
		m.mu.Unlock()
		return NavLogin
	}

	m.mu.Lock()
	gen := m.gen
	m.mu.Unlock()

	ps := m.resolveProfile(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gen != gen {
		return NavLogin
	}
	m.state = Authenticated
	m.profileState = ps
	return navFor(ps)
}

// resolveProfile classifies the current profile, attempting one token
// refresh when the stored access token has expired but a refresh token is
// on hand. Failures fall back to Missing, never to a logout.
func (m *Manager) resolveProfile(ctx context.Context) profile.State {
	rec, err := m.profiles.Fetch(ctx)
	if err == nil {
		return profile.Classify(rec)
	}

	if apierr.Is(err, apierr.Unauthorized) {
		if refreshed := m.tryRefresh(ctx); refreshed {
			if rec, err := m.profiles.Fetch(ctx); err == nil {
				return profile.Classify(rec)
			}
		}
	}
	return profile.Missing
}

// tryRefresh exchanges the stored refresh token for a new access token.
func (m *Manager) tryRefresh(ctx context.Context) bool {
	refresh, err := m.store.RefreshToken()
	if err != nil || refresh == "" {
		return false
	}

	resp, err := m.gw.Post(ctx, "/auth/refresh", map[string]string{
		"refreshToken": refresh,
	})
	if err != nil {
		return false
	}
	var tokens loginResponse
	if err := resp.Decode(&tokens); err != nil || tokens.access() == "" {
		return false
	}
	if err := m.store.SaveTokens(tokens.access(), tokens.RefreshToken); err != nil {
		m.log.Warn("persisting refreshed token failed", zap.Error(err))
	}
	return true
}

// Logout clears stored credentials and unconditionally returns the session
// to Anonymous, even when the clear fails: the in-memory state is
// authoritative and must not remain authenticated after a user-initiated
// logout.
func (m *Manager) Logout(ctx context.Context) {
	// The clear runs under the same lock as the generation bump so an
	// in-flight login cannot persist its token between the two.
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.store.ClearAuth(); err != nil {
		m.log.Warn("clearing credentials failed", zap.Error(err))
	}
	m.gen++
	m.state = Anonymous
	m.profileState = profile.Unknown
}

// HandleUnauthorized is the forced-logout transition: any authenticated
// call that classifies Unauthorized funnels here. Idempotent.
func (m *Manager) HandleUnauthorized() {
	m.Logout(context.Background())
}

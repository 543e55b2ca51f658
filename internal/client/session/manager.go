package session

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/mkazantsev/jobdeck/internal/client/api"
	"github.com/mkazantsev/jobdeck/internal/client/models"
	"github.com/mkazantsev/jobdeck/internal/client/tokenstore"
	"github.com/mkazantsev/jobdeck/internal/client/validate"
	"github.com/mkazantsev/jobdeck/internal/logging"
)

// AuthError is a displayable failure from a credential or profile
// operation. Message carries the server-supplied detail when available,
// otherwise a generic fallback.
type AuthError struct {
	Message string
	cause   error
}

func (e *AuthError) Error() string { return e.Message }
func (e *AuthError) Unwrap() error { return e.cause }

// authErr wraps err into an AuthError, preferring the server's own message.
func authErr(err error, fallback string) *AuthError {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && (apiErr.Detail != "" || len(apiErr.Fields) > 0) {
		return &AuthError{Message: apiErr.Error(), cause: err}
	}
	return &AuthError{Message: fallback, cause: err}
}

// Manager is the sole owner and mutator of the session State. All
// credential and profile operations go through it; everything else reads
// snapshots or subscribes to changes.
type Manager struct {
	client api.Client
	tokens tokenstore.Store
	logger logging.Logger
	now    func() time.Time

	mu    sync.Mutex
	state State
	subs  []func(State)
}

// NewManager builds a Manager whose session starts empty and loading: the
// loading flag resolves when Reconcile completes.
func NewManager(client api.Client, tokens tokenstore.Store, logger logging.Logger) *Manager {
	return &Manager{
		client: client,
		tokens: tokens,
		logger: logger,
		now:    time.Now,
		state:  State{Loading: true},
	}
}

// Snapshot returns a copy of the current session state.
func (m *Manager) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.clone()
}

// Subscribe registers fn to be called with a snapshot after every state
// change. Callbacks run on the mutating goroutine and must not block.
func (m *Manager) Subscribe(fn func(State)) {
	m.mu.Lock()
	m.subs = append(m.subs, fn)
	m.mu.Unlock()
}

// Login authenticates against the API. On success the token is persisted,
// the bearer token installed on the API client, and the session populated,
// all before Login returns. On failure the session is left untouched and an
// *AuthError is returned.
func (m *Manager) Login(ctx context.Context, creds models.Credentials) error {
	if err := validate.Struct(creds); err != nil {
		return &AuthError{Message: err.Error(), cause: err}
	}

	resp, err := m.client.Login(ctx, creds)
	if err != nil {
		m.logger.Info(ctx, "login failed", "username", creds.Username, "error", err)
		return authErr(err, "Login failed")
	}
	return m.establish(ctx, resp, "Login failed")
}

// Register creates an account. Same side effects and failure contract as
// Login.
func (m *Manager) Register(ctx context.Context, reg models.Registration) error {
	if err := validate.Struct(reg); err != nil {
		return &AuthError{Message: err.Error(), cause: err}
	}

	resp, err := m.client.Register(ctx, reg)
	if err != nil {
		m.logger.Info(ctx, "registration failed", "username", reg.Username, "error", err)
		return authErr(err, "Registration failed")
	}
	return m.establish(ctx, resp, "Registration failed")
}

// establish persists the token and swaps the session to the authenticated
// tuple in one step. fallback names the operation for the error message.
func (m *Manager) establish(ctx context.Context, resp *api.AuthResponse, fallback string) error {
	if err := m.tokens.Save(ctx, resp.Access); err != nil {
		return &AuthError{Message: fallback, cause: fmt.Errorf("saving token: %w", err)}
	}
	m.client.SetToken(resp.Access)
	m.setSession(resp.User, resp.Access)
	return nil
}

// Logout clears the stored token, the API client's bearer token, and the
// session, in that order. Safe to call when already logged out.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.tokens.Clear(ctx); err != nil {
		m.logger.Warn(ctx, "failed to clear stored token", "error", err)
	}
	m.client.ClearToken()
	m.setSession(nil, "")
}

// UpdateProfile sends a partial profile change and, on success, replaces
// the session's user with the server's response. On failure the previous
// user value is retained.
func (m *Manager) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) error {
	if !m.Snapshot().IsAuthenticated() {
		return &AuthError{Message: "not logged in"}
	}
	if err := validate.Struct(upd); err != nil {
		return &AuthError{Message: err.Error(), cause: err}
	}

	user, err := m.client.UpdateProfile(ctx, upd)
	if err != nil {
		return authErr(err, "Update failed")
	}
	m.setUser(user)
	return nil
}

// Reconcile turns a previously persisted token into a live session or
// discards it. It runs once at startup; the loading flag resolves to false
// exactly once regardless of the branch taken.
//
// The expiry check is a local decode only. An expired or unreadable token
// is cleaned up without contacting the server.
func (m *Manager) Reconcile(ctx context.Context) {
	defer m.finishLoading()

	token, err := m.tokens.Read(ctx)
	if err != nil {
		m.logger.Error(ctx, "failed to read stored token", "error", err)
		return
	}
	if token == "" {
		return
	}

	expiry, err := tokenExpiry(token)
	if err != nil || !expiry.After(m.now()) {
		m.logger.Info(ctx, "stored token expired or unreadable, discarding", "error", err)
		m.Logout(ctx)
		return
	}

	m.client.SetToken(token)
	user, err := m.client.Profile(ctx)
	if err != nil {
		m.logger.Error(ctx, "failed to load user", "error", err)
		m.Logout(ctx)
		return
	}

	// The fetch may have raced a deliberate logout or a fresh login. Apply
	// the result only if the stored token is still the one we started with;
	// otherwise re-sync the client so its bearer token matches whatever won.
	current, rerr := m.tokens.Read(ctx)
	if rerr != nil || current != token {
		if rerr == nil {
			if current == "" {
				m.client.ClearToken()
			} else {
				m.client.SetToken(current)
			}
		}
		return
	}
	m.setSession(user, token)
}

// setSession atomically replaces the (user, token) tuple, preserving the
// loading flag, and notifies subscribers.
func (m *Manager) setSession(user *models.User, token string) {
	m.mu.Lock()
	m.state.User = user
	m.state.Token = token
	m.notifyLocked()
}

// setUser replaces only the user, keeping the current token.
func (m *Manager) setUser(user *models.User) {
	m.mu.Lock()
	m.state.User = user
	m.notifyLocked()
}

// finishLoading resolves the loading flag. Subsequent calls are no-ops so
// the flag transitions true to false at most once.
func (m *Manager) finishLoading() {
	m.mu.Lock()
	if !m.state.Loading {
		m.mu.Unlock()
		return
	}
	m.state.Loading = false
	m.notifyLocked()
}

// notifyLocked snapshots state and subscribers, releases the lock, and runs
// the callbacks. Must be called with m.mu held; it unlocks.
func (m *Manager) notifyLocked() {
	st := m.state.clone()
	subs := slices.Clone(m.subs)
	m.mu.Unlock()
	for _, fn := range subs {
		fn(st)
	}
}

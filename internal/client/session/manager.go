// Package session owns the client-side authentication state: the access token
// and the optional user profile. The manager hydrates from the credential
// store at startup and is the store's sole writer afterwards.
//
// Storage failures are logged and swallowed: losing persistence must not block
// an otherwise successful in-memory auth transition. In-memory state is
// authoritative for the lifetime of the process.
package session

import (
	"context"
	"encoding/json"

	"custdesk/internal/client/api"
	"custdesk/internal/client/credstore"
	"custdesk/internal/logging"
)

// Manager holds the session. It imposes no internal locking: callers are
// expected to serialize operations (the UI disables its trigger control while
// a call is outstanding), and overlapping calls race last-write-wins.
type Manager struct {
	api    api.Client
	store  credstore.Store
	logger logging.Logger

	token string
	user  map[string]any

	subs    map[int]func()
	nextSub int
}

func NewManager(client api.Client, store credstore.Store, logger logging.Logger) *Manager {
	return &Manager{
		api:    client,
		store:  store,
		logger: logger.With("module", "session"),
		subs:   make(map[int]func()),
	}
}

// IsAuthenticated reports whether a token is present. A token-only session
// with no user profile is valid; some backends omit profile data.
func (m *Manager) IsAuthenticated() bool {
	return m.token != ""
}

func (m *Manager) Token() string {
	return m.token
}

func (m *Manager) User() map[string]any {
	return m.user
}

// EmployeeID returns the identifier field of the user profile, or "" when the
// profile is absent or carries no usable identifier.
func (m *Manager) EmployeeID() string {
	if m.user == nil {
		return ""
	}
	if id, ok := m.user["employee_id"].(string); ok {
		return id
	}
	return ""
}

// Subscribe registers fn to be called after every state change and returns
// the matching unsubscribe function. The hook serves event-driven frontends;
// the synchronous REPL instead re-reads IsAuthenticated before each command.
func (m *Manager) Subscribe(fn func()) func() {
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	return func() { delete(m.subs, id) }
}

func (m *Manager) notify() {
	for _, fn := range m.subs {
		fn()
	}
}

// Hydrate restores the session from the credential store. It runs once,
// before the first dependent view. A present token with an undecodable user
// blob still yields an authenticated session with no profile.
func (m *Manager) Hydrate(ctx context.Context) {
	token, err := m.store.Get(ctx, credstore.TokenKey)
	if err != nil {
		m.logger.Warn(ctx, "credential store read failed", "key", credstore.TokenKey, "error", err.Error())
		return
	}
	if token == "" {
		return
	}
	m.token = token

	blob, err := m.store.Get(ctx, credstore.UserKey)
	if err != nil {
		m.logger.Warn(ctx, "credential store read failed", "key", credstore.UserKey, "error", err.Error())
	} else if blob != "" {
		var user map[string]any
		if err := json.Unmarshal([]byte(blob), &user); err != nil {
			m.logger.Warn(ctx, "stored user profile is not valid JSON, ignoring", "error", err.Error())
		} else {
			m.user = user
		}
	}

	m.notify()
}

// Login authenticates against the backend. On success the token and profile
// are set in memory and persisted best-effort. On failure the session is
// unchanged and the collaborator's error is returned unmodified so callers
// can branch on its status.
func (m *Manager) Login(ctx context.Context, creds api.Credentials) error {
	result, err := m.api.Authenticate(ctx, creds)
	if err != nil {
		return err
	}

	m.token = result.AccessToken
	m.user = result.User

	if err := m.store.Set(ctx, credstore.TokenKey, result.AccessToken); err != nil {
		m.logger.Warn(ctx, "failed to persist token", "error", err.Error())
	}
	if result.User != nil {
		blob, err := json.Marshal(result.User)
		if err != nil {
			m.logger.Warn(ctx, "failed to encode user profile", "error", err.Error())
		} else if err := m.store.Set(ctx, credstore.UserKey, string(blob)); err != nil {
			m.logger.Warn(ctx, "failed to persist user profile", "error", err.Error())
		}
	} else if err := m.store.Remove(ctx, credstore.UserKey); err != nil {
		m.logger.Warn(ctx, "failed to remove user profile", "error", err.Error())
	}

	m.notify()
	return nil
}

// Logout clears both credential slots independently and then the in-memory
// session. A failure clearing one slot does not prevent attempting the other,
// and the caller never sees an error. Idempotent.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.store.Remove(ctx, credstore.TokenKey); err != nil {
		m.logger.Warn(ctx, "failed to remove token", "error", err.Error())
	}
	if err := m.store.Remove(ctx, credstore.UserKey); err != nil {
		m.logger.Warn(ctx, "failed to remove user profile", "error", err.Error())
	}

	m.token = ""
	m.user = nil
	m.notify()
}

// Signup delegates to the backend without touching the session.
func (m *Manager) Signup(ctx context.Context, req api.SignupRequest) (*api.SignupResult, error) {
	return m.api.Register(ctx, req)
}

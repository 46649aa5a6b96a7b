// Package session owns the authentication session of the running client:
// exactly one token and the account it belongs to. The token is the only
// process-wide shared state; it is mutated by Login, Logout, Restore and
// the expiry watcher, and read when outgoing requests are built.
package session

import (
	"context"
	"sync"

	"cotizador/internal/common"
	"cotizador/internal/localdata"
	"cotizador/internal/logging"
	"cotizador/internal/models"
)

// APIClient is the slice of the REST client the session manager needs.
type APIClient interface {
	IssueToken(ctx context.Context, username, password string) (string, error)
	CurrentAccount(ctx context.Context) (*models.Account, error)
}

// Manager maintains the session lifecycle:
//
//	LoggedOut → (login success) → LoggedIn → (logout | expiry | failed restore) → LoggedOut
//
// There is no refresh state: once the server rejects the token, the next
// authenticated call forces a logout.
type Manager struct {
	api    APIClient
	store  localdata.Repository
	log    logging.Logger
	notify func(ctx context.Context)

	mu      sync.RWMutex
	token   string
	account *models.Account
}

// NewManager builds a session manager persisting tokens in store.
func NewManager(api APIClient, store localdata.Repository, log logging.Logger) *Manager {
	return &Manager{api: api, store: store, log: log}
}

// OnExpired registers fn to run when the session is forcibly terminated by
// a rejected token. The CLI uses it to alert the user and fall back to the
// login prompt.
func (m *Manager) OnExpired(fn func(ctx context.Context)) {
	m.notify = fn
}

// Token implements api.TokenSource. It returns "" when logged out.
func (m *Manager) Token(ctx context.Context) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// Account returns the current account, or nil when logged out.
func (m *Manager) Account() *models.Account {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.account
}

// IsAuthenticated reports whether a validated session exists.
func (m *Manager) IsAuthenticated() bool {
	return m.Account() != nil
}

// Restore rehydrates the session at startup: if a token was persisted, it is
// revalidated against the account-lookup endpoint. Any failure (network,
// rejection, malformed response) clears the persisted token and leaves the
// session empty. Restore never fails outward; it reports whether a session
// was restored.
func (m *Manager) Restore(ctx context.Context) bool {
	saved, err := m.store.Get(ctx, common.TokenKey)
	if err != nil || len(saved) == 0 {
		return false
	}

	m.setToken(string(saved))

	account, err := m.api.CurrentAccount(ctx)
	if err != nil {
		m.log.Warn(ctx, "saved token rejected, clearing session", "error", err)
		m.clear(ctx)
		return false
	}

	m.setAccount(account)
	m.log.Info(ctx, "session restored", "username", account.Username)
	return true
}

// Login exchanges credentials for a token, persists it, and loads the
// owning account. It reports success only when both steps succeed; on any
// failure the partial token is cleared and false is returned. Which step
// failed is not surfaced.
func (m *Manager) Login(ctx context.Context, username, password string) bool {
	token, err := m.api.IssueToken(ctx, username, password)
	if err != nil {
		m.log.Warn(ctx, "login failed", "username", username, "error", err)
		m.clear(ctx)
		return false
	}

	// Replace drops any stale persisted state along with writing the
	// fresh token, in one step.
	if err := m.store.Replace(ctx, common.TokenKey, []byte(token)); err != nil {
		m.log.Error(ctx, "failed to persist token", "error", err)
		m.clear(ctx)
		return false
	}
	m.setToken(token)

	account, err := m.api.CurrentAccount(ctx)
	if err != nil {
		m.log.Warn(ctx, "account lookup after login failed", "error", err)
		m.clear(ctx)
		return false
	}

	m.setAccount(account)
	m.log.Info(ctx, "logged in", "username", account.Username, "role", account.Role)
	return true
}

// Logout clears the persisted token and the in-memory account. No network
// call is made.
func (m *Manager) Logout(ctx context.Context) {
	m.clear(ctx)
	m.log.Info(ctx, "logged out")
}

// expire is the 401-triggered termination path; it additionally runs the
// notify hook so the UI can react.
func (m *Manager) expire(ctx context.Context) {
	m.clear(ctx)
	m.log.Warn(ctx, "session expired")
	if m.notify != nil {
		m.notify(ctx)
	}
}

// hasPersistedToken reports whether a token is currently in durable storage.
func (m *Manager) hasPersistedToken(ctx context.Context) bool {
	saved, err := m.store.Get(ctx, common.TokenKey)
	return err == nil && len(saved) > 0
}

func (m *Manager) setToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
}

func (m *Manager) setAccount(account *models.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.account = account
}

func (m *Manager) clear(ctx context.Context) {
	_ = m.store.Delete(ctx, common.TokenKey)
	m.mu.Lock()
	m.token = ""
	m.account = nil
	m.mu.Unlock()
}

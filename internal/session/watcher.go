package session

import (
	"context"
	"net/http"
)

// ExpiryWatcher terminates the session when the server rejects its token.
// It subscribes to the HTTP client and inspects every response: a 401 while
// a token is persisted means the session is stale and is forcibly cleared.
// A 401 with no persisted token passes through untouched, so failed login
// attempts and public endpoints never bounce the user around.
type ExpiryWatcher struct {
	session *Manager
}

// NewExpiryWatcher builds the watcher for m.
func NewExpiryWatcher(m *Manager) *ExpiryWatcher {
	return &ExpiryWatcher{session: m}
}

// OnResponse implements api.ResponseObserver.
func (w *ExpiryWatcher) OnResponse(ctx context.Context, status int) {
	if status != http.StatusUnauthorized {
		return
	}
	if !w.session.hasPersistedToken(ctx) {
		return
	}
	w.session.expire(ctx)
}

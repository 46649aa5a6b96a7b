package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cotizador/internal/api"
	"cotizador/internal/config"
	"cotizador/internal/logging"
	"cotizador/internal/session"
)

// memStore is an in-memory localdata.Repository so app tests do not touch
// the filesystem.
type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (s *memStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data[key], nil
}

func (s *memStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *memStore) Replace(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = map[string][]byte{key: append([]byte(nil), value...)}
	return nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *memStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = map[string][]byte{}
	return nil
}

// newTestApp wires a full App over an httptest backend, with the shell
// reading from the scripted input and writing to the returned buffer.
func newTestApp(t *testing.T, handler http.Handler, input string) (*App, *bytes.Buffer) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := logging.NewTextLogger(io.Discard, slog.LevelError)
	apiClient := api.NewHTTPClient(srv.URL, api.WithLogger(log))
	sess := session.NewManager(apiClient, newMemStore(), log)
	apiClient.SetTokenSource(sess)
	apiClient.Subscribe(session.NewExpiryWatcher(sess))

	out := &bytes.Buffer{}
	app := &App{
		config:  &config.Config{APIBaseURL: srv.URL, DownloadsDir: t.TempDir()},
		log:     log,
		api:     apiClient,
		session: sess,
		reader:  bufio.NewReader(strings.NewReader(input)),
		out:     out,
	}
	sess.OnExpired(func(ctx context.Context) {
		fmt.Fprintln(app.out, "Your session has expired. Please log in again.")
	})
	return app, out
}

func TestUserMessage(t *testing.T) {
	a := &App{}

	assert.Equal(t, "The server could not be reached. Please try again later.",
		a.userMessage(api.ErrUnavailable))
	assert.Equal(t, "You are not authorized to perform this action.",
		a.userMessage(api.ErrUnauthorized))
	assert.Equal(t, "client not found",
		a.userMessage(&api.APIError{Status: 404, Detail: "client not found"}))
	assert.Equal(t, "The operation failed. Please try again.",
		a.userMessage(io.EOF))
	assert.Equal(t, "", a.userMessage(nil))
}

func TestNewTestApp_Smoke(t *testing.T) {
	app, out := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}), "")
	require.NotNil(t, app)
	require.NotNil(t, out)
	assert.False(t, app.session.IsAuthenticated())
}

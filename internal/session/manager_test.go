package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cotizador/internal/common"
	"cotizador/internal/logging"
	"cotizador/internal/models"
)

// ---- fakes ----

// memStore is an in-memory localdata.Repository.
type memStore struct {
	data   map[string][]byte
	getErr error
}

func newMemStore() *memStore { return &memStore{data: map[string][]byte{}} }

func (s *memStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.data[key], nil
}

func (s *memStore) Set(ctx context.Context, key string, value []byte) error {
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *memStore) Replace(ctx context.Context, key string, value []byte) error {
	s.data = map[string][]byte{key: append([]byte(nil), value...)}
	return nil
}

func (s *memStore) Delete(ctx context.Context, key string) error {
	delete(s.data, key)
	return nil
}

func (s *memStore) Clear(ctx context.Context) error {
	s.data = map[string][]byte{}
	return nil
}

// fakeAPI implements APIClient for unit tests.
type fakeAPI struct {
	IssueTokenRet string
	IssueTokenErr error

	CurrentAccountRet *models.Account
	CurrentAccountErr error

	LastUsername string
	LastPassword string
}

func (f *fakeAPI) IssueToken(ctx context.Context, username, password string) (string, error) {
	f.LastUsername = username
	f.LastPassword = password
	return f.IssueTokenRet, f.IssueTokenErr
}

func (f *fakeAPI) CurrentAccount(ctx context.Context) (*models.Account, error) {
	return f.CurrentAccountRet, f.CurrentAccountErr
}

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelError)
}

// ---- TESTS ----

func TestLogin_Success(t *testing.T) {
	store := newMemStore()
	store.data["stale"] = []byte("leftover")
	api := &fakeAPI{
		IssueTokenRet:     "tok-1",
		CurrentAccountRet: &models.Account{ID: 1, Username: "admin", Role: models.RoleAdmin},
	}
	m := NewManager(api, store, testLogger())
	ctx := context.Background()

	ok := m.Login(ctx, "admin", "secret")
	require.True(t, ok)

	assert.Equal(t, "admin", api.LastUsername)
	assert.Equal(t, "secret", api.LastPassword)
	assert.Equal(t, "tok-1", m.Token(ctx), "token must be attachable immediately after login")
	assert.Equal(t, []byte("tok-1"), store.data[common.TokenKey])
	assert.NotContains(t, store.data, "stale", "login must drop previously persisted state")
	require.NotNil(t, m.Account())
	assert.True(t, m.IsAuthenticated())
}

func TestLogin_WrongCredentials(t *testing.T) {
	store := newMemStore()
	api := &fakeAPI{IssueTokenErr: errors.New("unauthorized")}
	m := NewManager(api, store, testLogger())
	ctx := context.Background()

	ok := m.Login(ctx, "admin", "wrong")
	require.False(t, ok)

	assert.Empty(t, m.Token(ctx))
	assert.Nil(t, store.data[common.TokenKey], "no token may be left behind")
	assert.False(t, m.IsAuthenticated())
}

func TestLogin_AccountLookupFails(t *testing.T) {
	store := newMemStore()
	api := &fakeAPI{
		IssueTokenRet:     "tok-1",
		CurrentAccountErr: errors.New("boom"),
	}
	m := NewManager(api, store, testLogger())
	ctx := context.Background()

	ok := m.Login(ctx, "admin", "secret")
	require.False(t, ok)

	assert.Nil(t, store.data[common.TokenKey], "partial token must be cleared")
	assert.Empty(t, m.Token(ctx))
}

func TestRestore_NoSavedToken(t *testing.T) {
	m := NewManager(&fakeAPI{}, newMemStore(), testLogger())

	assert.False(t, m.Restore(context.Background()))
	assert.False(t, m.IsAuthenticated())
}

func TestRestore_Success(t *testing.T) {
	store := newMemStore()
	store.data[common.TokenKey] = []byte("saved-tok")
	api := &fakeAPI{CurrentAccountRet: &models.Account{ID: 2, Username: "maria", Role: models.RoleUser}}
	m := NewManager(api, store, testLogger())
	ctx := context.Background()

	require.True(t, m.Restore(ctx))
	assert.Equal(t, "saved-tok", m.Token(ctx))
	assert.Equal(t, "maria", m.Account().Username)
}

func TestRestore_RejectedTokenIsRemoved(t *testing.T) {
	store := newMemStore()
	store.data[common.TokenKey] = []byte("stale-tok")
	api := &fakeAPI{CurrentAccountErr: errors.New("401")}
	m := NewManager(api, store, testLogger())
	ctx := context.Background()

	require.False(t, m.Restore(ctx))
	assert.Nil(t, store.data[common.TokenKey], "stale token must be removed from persistence")
	assert.Empty(t, m.Token(ctx))
	assert.False(t, m.IsAuthenticated())
}

func TestRestore_StoreReadErrorLeavesSessionEmpty(t *testing.T) {
	store := newMemStore()
	store.getErr = errors.New("disk gone")
	m := NewManager(&fakeAPI{}, store, testLogger())

	assert.False(t, m.Restore(context.Background()))
	assert.False(t, m.IsAuthenticated())
}

func TestLogout_ClearsEverything(t *testing.T) {
	store := newMemStore()
	api := &fakeAPI{
		IssueTokenRet:     "tok-1",
		CurrentAccountRet: &models.Account{ID: 1, Username: "admin"},
	}
	m := NewManager(api, store, testLogger())
	ctx := context.Background()

	require.True(t, m.Login(ctx, "admin", "secret"))
	m.Logout(ctx)

	assert.Empty(t, m.Token(ctx))
	assert.Nil(t, m.Account())
	assert.Nil(t, store.data[common.TokenKey])
}

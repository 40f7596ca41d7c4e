package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mvachon/userd/internal/domain"
	"github.com/mvachon/userd/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager() *session.Manager {
	return session.NewManager(session.NewMemoryStore(), []byte("test-session-secret"), time.Hour, false)
}

// requestWithCookies returns a request carrying the cookies a client would
// have retained from the recorded response.
func requestWithCookies(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/users/list", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestCreateAndIdentity(t *testing.T) {
	m := newManager()
	rec := httptest.NewRecorder()

	require.NoError(t, m.Create(context.Background(), rec, "alice"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	// The cookie wraps an opaque ID, never the principal itself.
	assert.NotContains(t, cookies[0].Value, "alice")

	principal, err := m.Identity(requestWithCookies(rec))
	require.NoError(t, err)
	assert.Equal(t, "alice", principal)
}

func TestIdentityWithoutCookie(t *testing.T) {
	m := newManager()

	req := httptest.NewRequest(http.MethodGet, "/users/list", nil)
	_, err := m.Identity(req)
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestIdentityRejectsTamperedCookie(t *testing.T) {
	m := newManager()
	rec := httptest.NewRecorder()
	require.NoError(t, m.Create(context.Background(), rec, "alice"))

	req := httptest.NewRequest(http.MethodGet, "/users/list", nil)
	req.AddCookie(&http.Cookie{
		Name:  session.CookieName,
		Value: rec.Result().Cookies()[0].Value + "x",
	})

	_, err := m.Identity(req)
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestIdentityRejectsForeignSignature(t *testing.T) {
	// A token minted under a different secret must not resolve.
	other := session.NewManager(session.NewMemoryStore(), []byte("other-secret"), time.Hour, false)
	rec := httptest.NewRecorder()
	require.NoError(t, other.Create(context.Background(), rec, "mallory"))

	m := newManager()
	_, err := m.Identity(requestWithCookies(rec))
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestEnd(t *testing.T) {
	m := newManager()
	rec := httptest.NewRecorder()
	require.NoError(t, m.Create(context.Background(), rec, "alice"))

	req := requestWithCookies(rec)
	endRec := httptest.NewRecorder()
	require.NoError(t, m.End(context.Background(), endRec, req))

	// Cookie is expired on the response.
	cookies := endRec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)

	// The server-side session is gone even if the client replays the old cookie.
	_, err := m.Identity(req)
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestEndWithoutSession(t *testing.T) {
	m := newManager()
	req := httptest.NewRequest(http.MethodPost, "/users/logout", nil)
	rec := httptest.NewRecorder()

	assert.NoError(t, m.End(context.Background(), rec, req))
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "sid", "alice", -time.Second))

	_, err := store.Get(ctx, "sid")
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/giannisdak1992/bookshelf/accounts"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func testAccount() *accounts.Account {
	return &accounts.Account{ID: 42, Email: "a@x.com", PasswordHash: "$2a$10$opaque"}
}

func establish(t *testing.T, m *Manager) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, m.Establish(rec, testAccount()))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func resolveWith(m *Manager, cookie *http.Cookie) *Principal {
	req := httptest.NewRequest("GET", "/books", nil)
	req.AddCookie(cookie)
	return m.Resolve(req)
}

func TestEstablishResolveRoundTrip(t *testing.T) {
	m := NewManager(testKey, time.Hour, true, InMemoryTokenSet(time.Hour))
	cookie := establish(t, m)
	require.Equal(t, CookieName, cookie.Name)
	require.True(t, cookie.HttpOnly)
	require.NotContains(t, cookie.Value, "$2a$", "the digest must never reach the cookie")

	p := resolveWith(m, cookie)
	require.NotNil(t, p)
	require.Equal(t, int64(42), p.AccountID)
	require.Equal(t, "a@x.com", p.Email)
}

func TestResolveMissingCookie(t *testing.T) {
	m := NewManager(testKey, time.Hour, true, InMemoryTokenSet(time.Hour))
	require.Nil(t, m.Resolve(httptest.NewRequest("GET", "/books", nil)))
}

func TestResolveTamperedCookie(t *testing.T) {
	m := NewManager(testKey, time.Hour, true, InMemoryTokenSet(time.Hour))
	cookie := establish(t, m)
	// flip the last byte of the signature
	last := cookie.Value[len(cookie.Value)-1]
	flipped := "A"
	if last == 'A' {
		flipped = "B"
	}
	cookie.Value = cookie.Value[:len(cookie.Value)-1] + flipped
	require.Nil(t, resolveWith(m, cookie))
}

func TestResolveForeignKey(t *testing.T) {
	m := NewManager(testKey, time.Hour, true, InMemoryTokenSet(time.Hour))
	other := NewManager([]byte(strings.Repeat("x", 32)), time.Hour, true, InMemoryTokenSet(time.Hour))
	cookie := establish(t, other)
	require.Nil(t, resolveWith(m, cookie))
}

func TestResolveExpiredCookie(t *testing.T) {
	m := NewManager(testKey, time.Millisecond, true, InMemoryTokenSet(time.Hour))
	cookie := establish(t, m)
	time.Sleep(20 * time.Millisecond)
	require.Nil(t, resolveWith(m, cookie), "expiry is detected lazily on resolve")
}

func TestLogoutRevokesAndClearsCookie(t *testing.T) {
	m := NewManager(testKey, time.Hour, true, InMemoryTokenSet(time.Hour))
	cookie := establish(t, m)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/logout", nil)
	req.AddCookie(cookie)
	m.Logout(rec, req)

	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	require.Empty(t, cleared[0].Value)
	require.Negative(t, cleared[0].MaxAge)

	// a replayed copy of the old cookie must be dead as well
	require.Nil(t, resolveWith(m, cookie))
}

func TestLogoutWithoutCookie(t *testing.T) {
	m := NewManager(testKey, time.Hour, true, InMemoryTokenSet(time.Hour))
	rec := httptest.NewRecorder()
	m.Logout(rec, httptest.NewRequest("GET", "/logout", nil))
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	require.Negative(t, cleared[0].MaxAge)
}

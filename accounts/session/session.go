// Package session converts an authenticated account into a
// cookie-backed session and reconstructs the identity on later
// requests. The cookie is an HMAC-signed token carrying the account's
// surrogate id and email plus an absolute expiry; the password digest
// is never serialized into it.
package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/giannisdak1992/bookshelf/accounts"
	"github.com/giannisdak1992/bookshelf/internal/logutil"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the name of the session cookie.
const CookieName = "bookshelf_session"

// DefaultTTL is the absolute session lifetime from issuance. Expiry
// is not sliding: a session issued at T dies at T+TTL no matter how
// active the client is.
const DefaultTTL = time.Hour

type (
	// Principal is the minimal identity embedded in a session. It is
	// everything the rest of the system may learn from a cookie.
	Principal struct {
		AccountID int64
		Email     string
	}

	claims struct {
		jwt.RegisteredClaims
		AccountID int64  `json:"uid"`
		Email     string `json:"eml"`
	}

	// Manager owns the session cookie lifecycle. One instance is
	// shared by all requests; it holds no per-session state beyond
	// the revocation set.
	Manager struct {
		key            []byte
		ttl            time.Duration
		insecureCookie bool
		revoked        TokenSet
	}
)

func NewManager(key []byte, ttl time.Duration, allowHTTPCookie bool, revoked TokenSet) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		key:            key,
		ttl:            ttl,
		insecureCookie: allowHTTPCookie,
		revoked:        revoked,
	}
}

// Establish issues a fresh session for acct and sets it on the
// response. Each session carries its own uuid so a later logout can
// revoke exactly this token.
func (m *Manager) Establish(w http.ResponseWriter, acct *accounts.Account) error {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		AccountID: acct.ID,
		Email:     acct.Email,
	})
	signed, err := tok.SignedString(m.key)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   !m.insecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Resolve reconstructs the principal attached to the request cookie.
// Missing, tampered, expired or revoked cookies all resolve to nil;
// a request never fails because its session is bad. Expiry is checked
// here lazily, there is no background sweep.
func (m *Manager) Resolve(r *http.Request) *Principal {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}
	var cl claims
	tok, err := jwt.ParseWithClaims(cookie.Value, &cl, m.keyfunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return nil
	}
	gone, err := m.revoked.Contains(r.Context(), cl.ID)
	if err != nil {
		logger := logutil.GetOrDefault(r.Context())
		logger.Error().Err(err).Msg("Revocation check failed, treating session as revoked")
		return nil
	}
	if gone {
		return nil
	}
	return &Principal{AccountID: cl.AccountID, Email: cl.Email}
}

// Logout terminates the session on the request. The revocation record
// is best effort; the cookie is cleared unconditionally so the client
// acts logged-out even when the revocation set is unreachable.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) {
	if id := m.tokenID(r); id != "" {
		if err := m.revoked.Save(r.Context(), id); err != nil {
			logger := logutil.GetOrDefault(r.Context())
			logger.Error().Err(err).Msg("Unable to record session revocation")
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   !m.insecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// tokenID extracts the session uuid even from an expired token, so
// that logging out with a stale cookie still records the revocation.
func (m *Manager) tokenID(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	var cl claims
	_, err = jwt.ParseWithClaims(cookie.Value, &cl, m.keyfunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation())
	if err != nil {
		return ""
	}
	return cl.ID
}

func (m *Manager) keyfunc(*jwt.Token) (interface{}, error) {
	if len(m.key) == 0 {
		return nil, errors.New("session: signing key not configured")
	}
	return m.key, nil
}

package api

import (
	"net/http"

	"github.com/giannisdak1992/bookshelf/accounts/session"
)

type (
	// SecurityRealm is the sole enforcement point for protected
	// resources: every handler behind Protect sees a resolved
	// principal on its context, everything else is bounced to the
	// login page.
	SecurityRealm struct {
		sessions *session.Manager
	}
)

const loginPath = "/login"

func NewRealm(sessions *session.Manager) *SecurityRealm {
	return &SecurityRealm{sessions: sessions}
}

func (s *SecurityRealm) Protect(sensitive http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := s.sessions.Resolve(r)
		if p == nil {
			http.Redirect(w, r, loginPath, http.StatusSeeOther)
			return
		}
		sensitive.ServeHTTP(w, r.WithContext(session.WithPrincipal(r.Context(), p)))
	})
}

// Package api exposes registration, login and logout over HTTP and
// hosts the authorization gate used by the rest of the site.
package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/giannisdak1992/bookshelf/accounts"
	"github.com/giannisdak1992/bookshelf/accounts/session"
	"github.com/giannisdak1992/bookshelf/internal/logutil"
	"github.com/giannisdak1992/bookshelf/internal/webui"
	"github.com/giannisdak1992/bookshelf/shelf"
	"github.com/julienschmidt/httprouter"
)

type (
	Handler struct {
		verifier  *accounts.Verifier
		registrar *accounts.Registrar
		sessions  *session.Manager
		books     *shelf.Store
		views     *webui.Renderer
	}
)

func NewHandler(verifier *accounts.Verifier, registrar *accounts.Registrar, sessions *session.Manager, books *shelf.Store, views *webui.Renderer) *Handler {
	return &Handler{
		verifier:  verifier,
		registrar: registrar,
		sessions:  sessions,
		books:     books,
		views:     views,
	}
}

func (h *Handler) Mount(router *httprouter.Router) {
	router.HandlerFunc("GET", "/register", h.registerForm)
	router.HandlerFunc("POST", "/register", h.register)
	router.HandlerFunc("GET", "/login", h.loginForm)
	router.HandlerFunc("POST", "/login", h.login)
	// logout accepts any method so a plain link works as well as a form
	router.HandlerFunc("GET", "/logout", h.logout)
	router.HandlerFunc("POST", "/logout", h.logout)
}

func (h *Handler) registerForm(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, r, "register", webui.FormData{})
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, r, "login", webui.FormData{})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	email, secret, ok := h.formCredentials(w, r)
	if !ok {
		h.views.Render(w, r, "register", webui.FormData{Message: "email and password are required"})
		return
	}
	acct, err := h.registrar.Register(r.Context(), email, secret)
	var taken accounts.EmailTaken
	switch {
	case errors.As(err, &taken):
		// the one failure that is safe to show verbatim
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "Email already exists. Try logging in.")
		return
	case err != nil:
		http.Error(w, "unable to register right now, try again later", http.StatusInternalServerError)
		return
	}
	h.establishAndRedirect(w, r, acct)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logutil.GetOrDefault(r.Context())
	email, secret, ok := h.formCredentials(w, r)
	if !ok {
		http.Redirect(w, r, loginPath, http.StatusSeeOther)
		return
	}
	acct, err := h.verifier.Verify(r.Context(), email, secret)
	if err != nil {
		// unknown email, wrong password and internal faults all look
		// the same from outside, to avoid identity enumeration
		log.Info().Err(err).Msg("Login rejected")
		http.Redirect(w, r, loginPath, http.StatusSeeOther)
		return
	}
	h.establishAndRedirect(w, r, acct)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout(w, r)
	books, err := h.books.List(r.Context())
	if err != nil {
		logger := logutil.GetOrDefault(r.Context())
		logger.Error().Err(err).Msg("Unable to list books for logout view")
		// the session is already gone, still show the anonymous page
	}
	h.views.Render(w, r, "index", webui.BookListData{Books: books})
}

func (h *Handler) establishAndRedirect(w http.ResponseWriter, r *http.Request, acct *accounts.Account) {
	if err := h.sessions.Establish(w, acct); err != nil {
		logger := logutil.GetOrDefault(r.Context())
		logger.Error().Err(err).Msg("Unable to establish session")
		http.Error(w, "unable to establish session", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/books", http.StatusSeeOther)
}

func (h *Handler) formCredentials(w http.ResponseWriter, r *http.Request) (email, secret string, ok bool) {
	if err := r.ParseForm(); err != nil {
		return "", "", false
	}
	email = r.FormValue("username")
	secret = r.FormValue("password")
	return email, secret, email != "" && secret != ""
}

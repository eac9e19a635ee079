// Package site wires the account, session and catalog components into
// the single HTTP handler served by the process.
package site

import (
	"net/http"

	"github.com/giannisdak1992/bookshelf/accounts"
	authapi "github.com/giannisdak1992/bookshelf/accounts/api"
	"github.com/giannisdak1992/bookshelf/accounts/session"
	"github.com/giannisdak1992/bookshelf/internal/webui"
	"github.com/giannisdak1992/bookshelf/shelf"
	shelfapi "github.com/giannisdak1992/bookshelf/shelf/api"
	"github.com/julienschmidt/httprouter"
)

// AsHandler builds the full route table of the site.
func AsHandler(store *accounts.Store, books *shelf.Store, sessions *session.Manager) (http.Handler, error) {
	views, err := webui.NewRenderer()
	if err != nil {
		return nil, err
	}
	hasher := accounts.NewHasher()
	router := httprouter.New()
	authapi.NewHandler(
		accounts.NewVerifier(store, hasher),
		accounts.NewRegistrar(store, hasher),
		sessions, books, views).Mount(router)
	shelfapi.NewHandler(books, views).Mount(router, authapi.NewRealm(sessions))
	router.Handler("GET", "/static/*filepath", http.StripPrefix("/static/", webui.StaticHandler()))
	return router, nil
}

// Package api exposes the catalog views and book mutations over HTTP.
package api

import (
	"net/http"
	"strconv"

	authapi "github.com/giannisdak1992/bookshelf/accounts/api"
	"github.com/giannisdak1992/bookshelf/accounts/session"
	"github.com/giannisdak1992/bookshelf/internal/logutil"
	"github.com/giannisdak1992/bookshelf/internal/webui"
	"github.com/giannisdak1992/bookshelf/shelf"
	"github.com/julienschmidt/httprouter"
)

type (
	Handler struct {
		books *shelf.Store
		views *webui.Renderer
	}
)

func NewHandler(books *shelf.Store, views *webui.Renderer) *Handler {
	return &Handler{books: books, views: views}
}

// Mount registers the catalog routes. The listing at /books, the book
// form and every mutation sit behind realm; the index stays public.
func (h *Handler) Mount(router *httprouter.Router, realm *authapi.SecurityRealm) {
	router.Handler("GET", "/", http.HandlerFunc(h.index))
	router.Handler("GET", "/books", realm.Protect(http.HandlerFunc(h.listBooks)))
	router.Handler("GET", "/new", realm.Protect(http.HandlerFunc(h.newBookForm)))
	router.Handler("POST", "/add", realm.Protect(http.HandlerFunc(h.addBook)))
	router.Handler("POST", "/edit", realm.Protect(http.HandlerFunc(h.editRating)))
	router.Handler("POST", "/delete", realm.Protect(http.HandlerFunc(h.deleteBook)))
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	books, ok := h.fetch(w, r)
	if !ok {
		return
	}
	h.views.Render(w, r, "index", webui.BookListData{Books: books})
}

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	books, ok := h.fetch(w, r)
	if !ok {
		return
	}
	var email string
	if p := session.FromContext(r.Context()); p != nil {
		email = p.Email
	}
	h.views.Render(w, r, "books", webui.BookListData{Books: books, Email: email})
}

func (h *Handler) newBookForm(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, r, "modify", webui.ModifyData{
		Heading: "My Favorite book",
		Submit:  "Post It!",
	})
}

func (h *Handler) addBook(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	title := r.FormValue("title")
	author := r.FormValue("author")
	if title == "" || author == "" {
		http.Error(w, "title and author are required", http.StatusBadRequest)
		return
	}
	// cover id and rating are optional, junk parses to zero
	coverID, _ := strconv.ParseInt(r.FormValue("cover_id"), 10, 64)
	rating, _ := strconv.ParseFloat(r.FormValue("rating"), 64)
	if _, err := h.books.Add(r.Context(), title, author, coverID, rating); err != nil {
		logger := logutil.GetOrDefault(r.Context())
		logger.Error().Err(err).Msg("Unable to add book")
		http.Error(w, "unable to add book", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/books", http.StatusSeeOther)
}

func (h *Handler) editRating(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseInt(r.FormValue("updatedBookId"), 10, 64)
	if err != nil {
		http.Error(w, "invalid book id", http.StatusBadRequest)
		return
	}
	rating, err := strconv.ParseFloat(r.FormValue("rating"), 64)
	if err != nil {
		http.Error(w, "invalid rating", http.StatusBadRequest)
		return
	}
	if err := h.books.SetRating(r.Context(), id, rating); err != nil {
		logger := logutil.GetOrDefault(r.Context())
		logger.Error().Err(err).Msg("Unable to update rating")
		http.Error(w, "unable to update rating", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/books", http.StatusSeeOther)
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseInt(r.FormValue("deleteBookId"), 10, 64)
	if err != nil {
		http.Error(w, "invalid book id", http.StatusBadRequest)
		return
	}
	if err := h.books.Delete(r.Context(), id); err != nil {
		logger := logutil.GetOrDefault(r.Context())
		logger.Error().Err(err).Msg("Unable to delete book")
		http.Error(w, "unable to delete book", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/books", http.StatusSeeOther)
}

func (h *Handler) fetch(w http.ResponseWriter, r *http.Request) ([]shelf.Book, bool) {
	books, err := h.books.List(r.Context())
	if err != nil {
		logger := logutil.GetOrDefault(r.Context())
		logger.Error().Err(err).Msg("Unable to list books")
		http.Error(w, "unable to list books", http.StatusInternalServerError)
		return nil, false
	}
	return books, true
}

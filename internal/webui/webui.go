// Package webui renders the HTML views of the catalog and serves the
// embedded static assets.
package webui

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/giannisdak1992/bookshelf/internal/logutil"
)

//go:embed templates static
var content embed.FS

type (
	Renderer struct {
		tmpl *template.Template
	}
)

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(content, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("unable to parse templates, cause %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the named view to w. The view is rendered to memory
// first so a template fault turns into a clean 500 instead of a
// half-written page.
func (re *Renderer) Render(w http.ResponseWriter, r *http.Request, name string, data interface{}) {
	var buf bytes.Buffer
	if err := re.tmpl.ExecuteTemplate(&buf, name+".tmpl", data); err != nil {
		logger := logutil.GetOrDefault(r.Context())
		logger.Error().Err(err).Str("view", name).Msg("Unable to render view")
		http.Error(w, "unable to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Write(buf.Bytes())
}

// StaticHandler serves the embedded static assets. Assets never change
// within one build, so each one gets a content-derived ETag.
func StaticHandler() http.Handler {
	type asset struct {
		body []byte
		mime string
		etag string
	}
	assets := map[string]asset{}
	fs.WalkDir(content, "static", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		body, err := content.ReadFile(p)
		if err != nil {
			return err
		}
		mt := mime.TypeByExtension(path.Ext(p))
		if mt == "" {
			mt = "application/octet-stream"
		}
		assets[path.Base(p)] = asset{
			body: body,
			mime: mt,
			etag: fmt.Sprintf(`"%x"`, xxhash.Sum64(body)),
		}
		return nil
	})
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a, ok := assets[path.Base(path.Clean(r.URL.Path))]
		if !ok {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("If-None-Match") == a.etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("Content-Type", a.mime)
		w.Header().Set("ETag", a.etag)
		w.Header().Set("Content-Length", strconv.Itoa(len(a.body)))
		w.Write(a.body)
	})
}

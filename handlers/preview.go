package handlers

import (
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/burrow-io/burrow-site/config"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

// NewPreviewRouter serves the built site in outDir the way it will be hosted:
// mounted under the configured base path.
func NewPreviewRouter(cfg config.BuildConfiguration, outDir string) (*mux.Router, error) {
	info, err := os.Stat(outDir)
	if err != nil {
		return nil, errors.Wrap(err, "preview output directory")
	}
	if !info.IsDir() {
		return nil, errors.Errorf("preview output %s is not a directory", outDir)
	}

	router := mux.NewRouter()
	router.NotFoundHandler = Custom404Handler(outDir)

	// Match the base as whole path segments: "/docs" must not serve "/docsfoo/".
	trimmed := strings.TrimSuffix(cfg.Base(), "/")
	mount := trimmed + "/"
	if trimmed != "" {
		router.Path(trimmed).Handler(http.RedirectHandler(mount, http.StatusMovedPermanently)).Methods("GET", "HEAD")
	}

	files := &notFoundFallback{
		root:     http.Dir(outDir),
		notFound: router.NotFoundHandler,
	}
	router.PathPrefix(mount).Handler(http.StripPrefix(trimmed, files)).Methods("GET", "HEAD")

	return router, nil
}

// notFoundFallback serves files from root and hands missing paths, and
// directories without an index.html, to notFound instead of the stock file
// server 404 or directory listing.
type notFoundFallback struct {
	root     http.FileSystem
	notFound http.Handler
}

func (h *notFoundFallback) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Path
	if !strings.HasPrefix(name, "/") {
		name = "/" + name
	}
	if !h.servable(name) {
		h.notFound.ServeHTTP(w, r)
		return
	}

	http.FileServer(h.root).ServeHTTP(w, r)
}

func (h *notFoundFallback) servable(name string) bool {
	f, err := h.root.Open(name)
	if err != nil {
		return false
	}
	info, err := f.Stat()
	f.Close()
	if err != nil {
		return false
	}
	if !info.IsDir() {
		return true
	}

	index, err := h.root.Open(path.Join(name, "index.html"))
	if err != nil {
		return false
	}
	index.Close()
	return true
}

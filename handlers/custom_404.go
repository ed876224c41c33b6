package handlers

import (
	"net/http"
	"os"
	"path/filepath"
)

// Custom404Handler answers with the site's own 404.html from outDir, or a
// plain not-found body when the build did not emit one.
func Custom404Handler(outDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := os.ReadFile(filepath.Join(outDir, "404.html"))
		if err != nil {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		if r.Method != http.MethodHead {
			w.Write(page)
		}
	}
}

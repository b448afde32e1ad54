package nethttp

import (
	"io/fs"
	"net/http"

	"github.com/barisgit/compgen/internal/static"
)

// StaticHandler serves files from assets using the shared static logic
func StaticHandler(assets fs.FS, config static.StaticConfig) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := static.ServeStaticFile(assets, config, r.URL.Path)

		if response.NotFound {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", response.ContentType)
		w.Header().Set("Cache-Control", response.CacheControl)
		w.WriteHeader(response.StatusCode)
		w.Write(response.Body)
	})
}

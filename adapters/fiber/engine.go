// Package fiber hosts the API on a fiber app.
package fiber

import (
	"context"
	"io"
	"io/fs"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humafiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/barisgit/compgen/internal/static"
)

type Engine struct {
	app *fiber.App
	api huma.API
}

func New(config huma.Config) *Engine {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	return &Engine{app: app, api: humafiber.New(app, config)}
}

func (e *Engine) Name() string  { return "fiber" }
func (e *Engine) API() huma.API { return e.api }

// Handler serves requests in memory through app.Test. adaptor.FiberApp runs
// behind a fake connection without read deadlines, which humafiber needs to
// read request bodies.
func (e *Engine) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp, err := e.app.Test(r, -1)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		defer resp.Body.Close()

		for key, values := range resp.Header {
			for _, value := range values {
				w.Header().Add(key, value)
			}
		}
		w.WriteHeader(resp.StatusCode)
		io.Copy(w, resp.Body) //nolint:errcheck
	})
}

func (e *Engine) Handle(path string, h http.Handler) {
	e.app.Get(path, adaptor.HTTPHandler(h))
}

// Static must be called after the API routes are registered; fiber matches in
// registration order so this acts as the fallback.
func (e *Engine) Static(assets fs.FS, config static.StaticConfig) {
	e.app.Use(StaticHandler(assets, config))
}

func (e *Engine) Listen(addr string) error {
	return e.app.Listen(addr)
}

func (e *Engine) Shutdown(ctx context.Context) error {
	return e.app.ShutdownWithContext(ctx)
}

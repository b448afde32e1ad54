// Package nethttp hosts the API on the standard library mux.
package nethttp

import (
	"context"
	"errors"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"

	"github.com/barisgit/compgen/internal/static"
)

type Engine struct {
	mux *http.ServeMux
	api huma.API
	srv *http.Server
}

func New(config huma.Config) *Engine {
	mux := http.NewServeMux()
	return &Engine{
		mux: mux,
		api: humago.New(mux, config),
		srv: &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second},
	}
}

func (e *Engine) Name() string           { return "nethttp" }
func (e *Engine) API() huma.API          { return e.api }
func (e *Engine) Handler() http.Handler { return e.mux }

func (e *Engine) Handle(path string, h http.Handler) {
	e.mux.Handle("GET "+path, h)
}

// Static mounts assets as the fallback for every unmatched path
func (e *Engine) Static(assets fs.FS, config static.StaticConfig) {
	e.mux.Handle("/", StaticHandler(assets, config))
}

// Listen blocks until the server stops. A graceful shutdown returns nil.
func (e *Engine) Listen(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	if err := e.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (e *Engine) Shutdown(ctx context.Context) error {
	return e.srv.Shutdown(ctx)
}

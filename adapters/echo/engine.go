// Package echo hosts the API on an echo server.
package echo

import (
	"context"
	"errors"
	"io/fs"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"

	"github.com/barisgit/compgen/internal/static"
)

type Engine struct {
	echo *echo.Echo
	api  huma.API
}

func New(config huma.Config) *Engine {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	return &Engine{echo: e, api: humaecho.New(e, config)}
}

func (e *Engine) Name() string           { return "echo" }
func (e *Engine) API() huma.API          { return e.api }
func (e *Engine) Handler() http.Handler { return e.echo }

func (e *Engine) Handle(path string, h http.Handler) {
	e.echo.GET(path, echo.WrapHandler(h))
}

func (e *Engine) Static(assets fs.FS, config static.StaticConfig) {
	e.echo.GET("/*", StaticHandler(assets, config))
}

func (e *Engine) Listen(addr string) error {
	if err := e.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (e *Engine) Shutdown(ctx context.Context) error {
	return e.echo.Shutdown(ctx)
}

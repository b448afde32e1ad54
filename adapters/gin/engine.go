// Package gin hosts the API on a gin router.
package gin

import (
	"context"
	"errors"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humagin"
	"github.com/gin-gonic/gin"

	"github.com/barisgit/compgen/internal/static"
)

type Engine struct {
	router *gin.Engine
	api    huma.API
	srv    *http.Server
}

func New(config huma.Config) *Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	return &Engine{
		router: router,
		api:    humagin.New(router, config),
		srv:    &http.Server{Handler: router, ReadHeaderTimeout: 10 * time.Second},
	}
}

func (e *Engine) Name() string           { return "gin" }
func (e *Engine) API() huma.API          { return e.api }
func (e *Engine) Handler() http.Handler { return e.router }

func (e *Engine) Handle(path string, h http.Handler) {
	e.router.GET(path, gin.WrapH(h))
}

func (e *Engine) Static(assets fs.FS, config static.StaticConfig) {
	e.router.NoRoute(StaticHandler(assets, config))
}

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

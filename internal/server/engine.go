package server

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	echoadapter "github.com/barisgit/compgen/adapters/echo"
	fiberadapter "github.com/barisgit/compgen/adapters/fiber"
	ginadapter "github.com/barisgit/compgen/adapters/gin"
	"github.com/barisgit/compgen/adapters/nethttp"
	"github.com/barisgit/compgen/internal/static"
)

// Engine is a router hosting the huma API
type Engine interface {
	Name() string
	API() huma.API
	// Handler exposes the router as a net/http handler for tests
	Handler() http.Handler
	// Handle mounts a plain handler for GET requests on path
	Handle(path string, h http.Handler)
	// Static mounts assets for every path no other route matched
	Static(assets fs.FS, config static.StaticConfig)
	Listen(addr string) error
	Shutdown(ctx context.Context) error
}

// Routers lists the supported router names
func Routers() []string {
	return []string{"nethttp", "gin", "fiber", "echo"}
}

// APIConfig builds the huma config shared by every engine
func APIConfig(version, docsPath string) huma.Config {
	config := huma.DefaultConfig("React Component Generator API", version)
	config.Info.Description = "Generate React component source, tests, styles and stories."
	if docsPath != "" {
		config.DocsPath = docsPath
	}
	return config
}

// NewEngine builds the engine for router
func NewEngine(router string, config huma.Config) (Engine, error) {
	switch router {
	case "", "nethttp":
		return nethttp.New(config), nil
	case "gin":
		return ginadapter.New(config), nil
	case "fiber":
		return fiberadapter.New(config), nil
	case "echo":
		return echoadapter.New(config), nil
	default:
		return nil, fmt.Errorf("unsupported router '%s' (supported: nethttp, gin, fiber, echo)", router)
	}
}

// Package static resolves embedded UI files independently of the router that
// serves them. Each adapter turns a StaticResponse into its own response type.
package static

import (
	"embed"
	"io/fs"
	"path"
	"strings"
)

// UI is the generator form served at the site root
//
//go:embed ui/*
var UI embed.FS

// StaticConfig configures static file serving behavior
type StaticConfig struct {
	// AssetsDir is the subdirectory within the FS (e.g. "ui", "dist")
	AssetsDir string
	// SPAMode serves index.html for routes that don't look like files
	SPAMode bool
	// DevMode disables static serving
	DevMode bool
	// APIPrefix excludes matching paths from static serving. "none" serves everything.
	APIPrefix string
}

// UIConfig is the configuration the server uses for the embedded form
func UIConfig() StaticConfig {
	return StaticConfig{AssetsDir: "ui", SPAMode: true, APIPrefix: "/api/"}
}

// StaticResponse is a router independent static file result
type StaticResponse struct {
	StatusCode   int
	ContentType  string
	CacheControl string
	Body         []byte
	NotFound     bool
}

var notFound = StaticResponse{StatusCode: 404, NotFound: true}

// ServeStaticFile resolves urlPath against assets
func ServeStaticFile(assets fs.FS, config StaticConfig, urlPath string) StaticResponse {
	if config.DevMode {
		return notFound
	}

	prefix := config.APIPrefix
	if prefix == "" {
		prefix = "/api/"
	}
	if prefix != "none" && strings.HasPrefix(urlPath, prefix) {
		return notFound
	}

	root := assets
	if config.AssetsDir != "" {
		sub, err := fs.Sub(assets, config.AssetsDir)
		if err != nil {
			return notFound
		}
		root = sub
	}

	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" {
		name = "index.html"
	}

	body, err := fs.ReadFile(root, name)
	if err != nil {
		// SPA routes have no extension; missing files with one stay 404
		if !config.SPAMode || strings.Contains(path.Base(name), ".") {
			return notFound
		}
		name = "index.html"
		if body, err = fs.ReadFile(root, name); err != nil {
			return notFound
		}
	}

	return StaticResponse{
		StatusCode:   200,
		ContentType:  getContentType(name),
		CacheControl: getCacheControl(name),
		Body:         body,
	}
}

var contentTypes = map[string]string{
	".html":  "text/html; charset=utf-8",
	".css":   "text/css; charset=utf-8",
	".js":    "application/javascript; charset=utf-8",
	".json":  "application/json; charset=utf-8",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".svg":   "image/svg+xml",
	".ico":   "image/x-icon",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".ttf":   "font/ttf",
}

func getContentType(name string) string {
	if contentType, ok := contentTypes[path.Ext(name)]; ok {
		return contentType
	}
	return "application/octet-stream"
}

// Long cache for scripts and stylesheets, short cache for everything else
func getCacheControl(name string) string {
	ext := path.Ext(name)
	if strings.HasPrefix(name, "assets/") || ext == ".css" || ext == ".js" {
		return "public, max-age=31536000"
	}
	return "public, max-age=300"
}

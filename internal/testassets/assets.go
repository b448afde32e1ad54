// Package testassets provides in-memory file trees for static serving tests.
package testassets

import "testing/fstest"

// TestFS mirrors the layout of a built UI bundle
var TestFS = fstest.MapFS{
	"index.html": {Data: []byte(`<!doctype html>
<html><head><title>Test Static App</title></head>
<body><div id="root"></div><script src="/app.js"></script></body></html>
`)},
	"app.js":           {Data: []byte("console.log('Hello from test app.js');\n")},
	"styles.css":       {Data: []byte("body { font-family: Arial, sans-serif; }\n")},
	"data.json":        {Data: []byte(`{"title": "Test Data", "items": [1, 2, 3]}` + "\n")},
	"images/icon.svg":  {Data: []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="16" height="16"></svg>` + "\n")},
	"assets/bundle.js": {Data: []byte("export const bundled = true;\n")},
}

// EmptyFS has no files at all
var EmptyFS = fstest.MapFS{}

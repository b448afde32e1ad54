package testutil

import (
	"context"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"

	"github.com/barisgit/compgen/internal/static"
	"github.com/barisgit/compgen/internal/testassets"
)

// Engine is the part of a router adapter the shared engine test drives
type Engine interface {
	API() huma.API
	Handler() http.Handler
	Handle(path string, h http.Handler)
	Static(assets fs.FS, config static.StaticConfig)
}

type pingOutput struct {
	Body struct {
		Message string `json:"message"`
	}
}

type echoInput struct {
	Body struct {
		Message string `json:"message"`
	}
}

// TestConfig returns a minimal huma config for adapter tests
func TestConfig() huma.Config {
	return huma.DefaultConfig("Test API", "1.0.0")
}

// ExerciseEngine registers an operation, a raw handler and the test assets on
// engine, then checks each is routed correctly.
func ExerciseEngine(t *testing.T, engine Engine) {
	t.Helper()

	huma.Get(engine.API(), "/api/ping", func(ctx context.Context, _ *struct{}) (*pingOutput, error) {
		out := &pingOutput{}
		out.Body.Message = "pong"
		return out, nil
	})
	huma.Post(engine.API(), "/api/echo", func(ctx context.Context, in *echoInput) (*pingOutput, error) {
		out := &pingOutput{}
		out.Body.Message = "echo:" + in.Body.Message
		return out, nil
	})
	engine.Handle("/metrics", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		io.WriteString(w, "compgen_up 1\n")
	}))
	engine.Static(testassets.TestFS, static.StaticConfig{SPAMode: true, APIPrefix: "/api/"})

	handler := engine.Handler()
	get := func(path string) *http.Response {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec.Result()
	}

	t.Run("api operation", func(t *testing.T) {
		resp := get("/api/ping")
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), `"pong"`) {
			t.Errorf("Expected pong, got %d %s", resp.StatusCode, body)
		}
	})

	t.Run("api operation with body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/echo", strings.NewReader(`{"message":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		handler.ServeHTTP(rec, req)

		resp := rec.Result()
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), `"echo:hi"`) {
			t.Errorf("Expected echoed body, got %d %s", resp.StatusCode, body)
		}
	})

	t.Run("raw handler", func(t *testing.T) {
		resp := get("/metrics")
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		if !strings.Contains(string(body), "compgen_up 1") {
			t.Errorf("Expected metrics body, got %d %s", resp.StatusCode, body)
		}
	})

	t.Run("unknown api path is not served as a file", func(t *testing.T) {
		resp := get("/api/missing")
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", resp.StatusCode)
		}
	})

	for _, tt := range GetBasicFileServingTests() {
		t.Run(tt.Name, func(t *testing.T) {
			ValidateHTTPResponse(t, tt, get(tt.Path))
		})
	}
}

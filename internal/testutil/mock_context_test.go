package testutil

import (
	"context"
	"io"
	"testing"

	"github.com/danielgtaylor/huma/v2"
)

var _ huma.Context = (*MockContext)(nil)

func TestMockContextDefaults(t *testing.T) {
	ctx := NewMockContext()

	if ctx.Method() != "GET" {
		t.Errorf("Expected default method GET, got %s", ctx.Method())
	}
	if ctx.RemoteAddr() != "127.0.0.1:12345" {
		t.Errorf("Expected default remote addr, got %s", ctx.RemoteAddr())
	}
	if ctx.Context() == nil {
		t.Error("Expected a non-nil context")
	}
}

func TestMockContextBuilder(t *testing.T) {
	type key struct{}
	parent := context.WithValue(context.Background(), key{}, "v")

	ctx := NewMockContext().
		WithContext(parent).
		WithMethod("POST").
		WithPath("/api/generate").
		WithParam("slug", "react-component-generator").
		WithQuery("page", "1").
		WithHeader("x-session-id", "abc").
		WithRemoteAddr("10.0.0.5:443").
		WithJSONBody(`{"config": {}}`)

	if ctx.Context().Value(key{}) != "v" {
		t.Error("Expected the configured context")
	}
	if ctx.Param("slug") != "react-component-generator" {
		t.Errorf("Expected slug param, got %s", ctx.Param("slug"))
	}
	if ctx.URL().String() != "/api/generate?page=1" {
		t.Errorf("Unexpected URL %s", ctx.URL().String())
	}
	if ctx.Header("X-Session-ID") != "abc" {
		t.Errorf("Expected case-insensitive header lookup, got %q", ctx.Header("X-Session-ID"))
	}
	if ctx.Header("Content-Type") != "application/json" {
		t.Errorf("Expected JSON content type, got %s", ctx.Header("Content-Type"))
	}

	body, _ := io.ReadAll(ctx.BodyReader())
	if string(body) != `{"config": {}}` {
		t.Errorf("Unexpected body %s", body)
	}
}

func TestMockContextResponse(t *testing.T) {
	ctx := NewMockContext()
	ctx.SetStatus(202)
	ctx.SetHeader("X-Session-ID", "abc")
	ctx.AppendHeader("Vary", "Origin")
	ctx.BodyWriter().Write([]byte("ok"))

	if ctx.Status() != 202 {
		t.Errorf("Expected status 202, got %d", ctx.Status())
	}
	if ctx.ResponseHeader("x-session-id") != "abc" {
		t.Error("Expected response header to be recorded")
	}
	if ctx.ResponseBody() != "ok" {
		t.Errorf("Unexpected body %q", ctx.ResponseBody())
	}
}

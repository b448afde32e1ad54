// Package testutil holds helpers shared by the adapter and server tests.
package testutil

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

// StaticTestCase represents a test case for static file serving
type StaticTestCase struct {
	Name                string
	Path                string
	ExpectedStatus      int
	ExpectedBodyContent string
	ExpectedContentType string
	ExpectCacheControl  bool
}

// GetBasicFileServingTests returns test cases matching testassets.TestFS
func GetBasicFileServingTests() []StaticTestCase {
	return []StaticTestCase{
		{"serve index.html", "/index.html", 200, "Test Static App", "text/html", true},
		{"serve root path as index.html", "/", 200, "Test Static App", "text/html", true},
		{"serve JavaScript file", "/app.js", 200, "Hello from test app.js", "application/javascript", true},
		{"serve CSS file", "/styles.css", 200, "font-family: Arial", "text/css", true},
		{"serve JSON file", "/data.json", 200, "Test Data", "application/json", true},
		{"serve SVG file", "/images/icon.svg", 200, "<svg xmlns", "image/svg+xml", true},
		{"SPA route falls back to index.html", "/users/123/profile", 200, "Test Static App", "text/html", true},
	}
}

// ValidateStaticResponse validates common aspects of static file responses
func ValidateStaticResponse(t *testing.T, testCase StaticTestCase, statusCode int, contentType, cacheControl, body string) {
	t.Helper()

	if statusCode != testCase.ExpectedStatus {
		t.Errorf("Expected status %d, got %d", testCase.ExpectedStatus, statusCode)
	}
	if !strings.Contains(contentType, testCase.ExpectedContentType) {
		t.Errorf("Expected Content-Type to contain '%s', got '%s'", testCase.ExpectedContentType, contentType)
	}
	if testCase.ExpectCacheControl && cacheControl == "" {
		t.Errorf("Expected Cache-Control header to be set, got empty")
	}
	if !strings.Contains(body, testCase.ExpectedBodyContent) {
		t.Errorf("Expected body to contain '%s', got '%s'", testCase.ExpectedBodyContent, body)
	}
}

// ValidateHTTPResponse reads resp and validates it against testCase
func ValidateHTTPResponse(t *testing.T, testCase StaticTestCase, resp *http.Response) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}
	ValidateStaticResponse(t, testCase, resp.StatusCode,
		resp.Header.Get("Content-Type"),
		resp.Header.Get("Cache-Control"),
		string(body))
}

package nethttp

import (
	"context"
	"testing"
	"time"

	"github.com/barisgit/compgen/internal/testutil"
)

func TestEngine(t *testing.T) {
	testutil.ExerciseEngine(t, New(testutil.TestConfig()))
}

func TestEngineShutdown(t *testing.T) {
	engine := New(testutil.TestConfig())

	done := make(chan error, 1)
	go func() { done <- engine.Listen("127.0.0.1:0") }()

	// Shutdown before or during Serve both end Listen without an error
	time.Sleep(20 * time.Millisecond)
	if err := engine.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected clean stop, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Listen did not return after Shutdown")
	}
}

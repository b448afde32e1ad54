package runner

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func requirePTY(t *testing.T) {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pseudo-terminals unavailable: %v", err)
	}
	ptmx.Close()
	tty.Close()
}

func TestRunStreamsOutput(t *testing.T) {
	requirePTY(t)
	var out syncBuffer

	err := Run(context.Background(), `sh -c 'echo "2 tests passed"'`, t.TempDir(), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "2 tests passed")
}

func TestRunReportsExitStatus(t *testing.T) {
	requirePTY(t)
	var out syncBuffer

	err := Run(context.Background(), `sh -c 'echo failing; exit 3'`, t.TempDir(), &out)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "got %v", err)
	assert.Equal(t, 3, exitErr.Code)
	assert.Contains(t, out.String(), "failing")
}

func TestRunCancelled(t *testing.T) {
	requirePTY(t)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := Run(ctx, "sleep 5", t.TempDir(), &syncBuffer{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		command string
		dir     string
	}{
		{"empty command", "  ", t.TempDir()},
		{"unterminated quote", `npx "vitest`, t.TempDir()},
		{"missing directory", "npx vitest run", "/nonexistent/compgen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, Run(context.Background(), tt.command, tt.dir, &syncBuffer{}))
		})
	}
}

package usage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestActionValid(t *testing.T) {
	tests := []struct {
		action Action
		want   bool
	}{
		{ActionView, true},
		{ActionGenerate, true},
		{ActionCopy, true},
		{ActionDownload, true},
		{"share", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.action.Valid())
		})
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), "mysql", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mysql")
}

// exerciseStore runs the same scenario against any Store
func exerciseStore(t *testing.T, store Store) Tool {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.Migrate(ctx), "migrate must be idempotent")

	_, err := store.ToolBySlug(ctx, "missing")
	assert.ErrorIs(t, err, ErrToolNotFound)

	tool, err := store.ToolBySlug(ctx, GeneratorTool.Slug)
	require.NoError(t, err)
	assert.Equal(t, GeneratorTool.Name, tool.Name)
	assert.Zero(t, tool.UsageCount)

	user := "user-1"
	require.NoError(t, store.InsertEvent(ctx, Event{
		ToolID:    tool.ID,
		UserID:    &user,
		SessionID: "session-1",
		Action:    ActionGenerate,
		Metadata:  map[string]any{"componentName": "Greeting"},
		IPAddress: "10.0.0.1",
		UserAgent: "test",
	}))
	require.NoError(t, store.InsertEvent(ctx, Event{ToolID: tool.ID, SessionID: "session-2", Action: ActionView}))

	require.NoError(t, store.IncrementUsage(ctx, tool.ID))
	require.NoError(t, store.IncrementUsage(ctx, tool.ID))
	assert.ErrorIs(t, store.IncrementUsage(ctx, tool.ID+1000), ErrToolNotFound)

	tool, err = store.ToolBySlug(ctx, GeneratorTool.Slug)
	require.NoError(t, err)
	assert.Equal(t, int64(2), tool.UsageCount)
	return tool
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	exerciseStore(t, store)

	events := store.Events()
	require.Len(t, events, 2)
	assert.Equal(t, ActionGenerate, events[0].Action)
	assert.Nil(t, events[1].UserID)
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "usage.db")

	store, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer store.Close()

	tool := exerciseStore(t, store)

	n, err := store.CountEvents(ctx, tool.ID, ActionGenerate)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = store.CountEvents(ctx, tool.ID, ActionCopy)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSQLiteStoreRequiresPath(t *testing.T) {
	_, err := OpenSQLite(context.Background(), "")
	assert.Error(t, err)
}

func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("COMPGEN_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("COMPGEN_TEST_DATABASE_URL not set")
	}
	store, err := OpenPostgres(context.Background(), dsn)
	require.NoError(t, err)
	defer store.Close()

	// usage counts persist between runs, so only check the schema round trip
	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx))
	tool, err := store.ToolBySlug(ctx, GeneratorTool.Slug)
	require.NoError(t, err)
	require.NoError(t, store.InsertEvent(ctx, Event{ToolID: tool.ID, SessionID: "s", Action: ActionView}))
}

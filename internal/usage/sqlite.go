package usage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS tools (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	slug TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	meta_title TEXT NOT NULL DEFAULT '',
	meta_description TEXT NOT NULL DEFAULT '',
	usage_count INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS usage_events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	tool_id INTEGER NOT NULL REFERENCES tools(id),
	user_id TEXT,
	session_id TEXT NOT NULL,
	action TEXT NOT NULL,
	metadata TEXT NOT NULL DEFAULT '{}',
	ip_address TEXT NOT NULL DEFAULT '',
	user_agent TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS usage_events_tool_action ON usage_events(tool_id, action);
`

// SQLiteStore persists usage in a local SQLite database file
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and creates when missing) the database at path
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite usage store requires a database path")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}
	// one writer keeps SQLite from reporting busy under the recorder
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to sqlite database %s: %w", path, err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("failed to create usage schema: %w", err)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tools (slug, name, description, meta_title, meta_description)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (slug) DO NOTHING`,
		GeneratorTool.Slug, GeneratorTool.Name, GeneratorTool.Description,
		GeneratorTool.MetaTitle, GeneratorTool.MetaDescription,
	)
	if err != nil {
		return fmt.Errorf("failed to seed generator tool: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ToolBySlug(ctx context.Context, slug string) (Tool, error) {
	var tool Tool
	err := s.db.QueryRowContext(ctx, `
		SELECT id, slug, name, description, meta_title, meta_description, usage_count
		FROM tools WHERE slug = ?`, slug,
	).Scan(&tool.ID, &tool.Slug, &tool.Name, &tool.Description, &tool.MetaTitle, &tool.MetaDescription, &tool.UsageCount)
	if errors.Is(err, sql.ErrNoRows) {
		return Tool{}, ErrToolNotFound
	}
	if err != nil {
		return Tool{}, fmt.Errorf("failed to load tool %s: %w", slug, err)
	}
	return tool, nil
}

func (s *SQLiteStore) InsertEvent(ctx context.Context, event Event) error {
	metadata, err := encodeMetadata(event.Metadata)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO usage_events (tool_id, user_id, session_id, action, metadata, ip_address, user_agent, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		event.ToolID, event.UserID, event.SessionID, string(event.Action),
		metadata, event.IPAddress, event.UserAgent, event.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert %s event: %w", event.Action, err)
	}
	return nil
}

func (s *SQLiteStore) IncrementUsage(ctx context.Context, toolID int64) error {
	res, err := s.db.ExecContext(ctx, `UPDATE tools SET usage_count = usage_count + 1 WHERE id = ?`, toolID)
	if err != nil {
		return fmt.Errorf("failed to increment usage of tool %d: %w", toolID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrToolNotFound
	}
	return nil
}

// CountEvents returns the number of stored events for a tool and action
func (s *SQLiteStore) CountEvents(ctx context.Context, toolID int64, action Action) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM usage_events WHERE tool_id = ? AND action = ?`, toolID, string(action),
	).Scan(&n)
	return n, err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func encodeMetadata(metadata map[string]any) (string, error) {
	if len(metadata) == 0 {
		return "{}", nil
	}
	data, err := json.Marshal(metadata)
	if err != nil {
		return "", fmt.Errorf("failed to encode event metadata: %w", err)
	}
	return string(data), nil
}

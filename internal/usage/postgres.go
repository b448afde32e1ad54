package usage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS tools (
	id BIGSERIAL PRIMARY KEY,
	slug TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	meta_title TEXT NOT NULL DEFAULT '',
	meta_description TEXT NOT NULL DEFAULT '',
	usage_count BIGINT NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS usage_events (
	id BIGSERIAL PRIMARY KEY,
	tool_id BIGINT NOT NULL REFERENCES tools(id),
	user_id TEXT,
	session_id TEXT NOT NULL,
	action TEXT NOT NULL,
	metadata JSONB NOT NULL DEFAULT '{}',
	ip_address TEXT NOT NULL DEFAULT '',
	user_agent TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS usage_events_tool_action ON usage_events(tool_id, action);
`

// PostgresStore persists usage in PostgreSQL through a pgx pool
type PostgresStore struct {
	pool *pgxpool.Pool
}

func OpenPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres usage store requires a connection string")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("failed to create usage schema: %w", err)
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO tools (slug, name, description, meta_title, meta_description)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (slug) DO NOTHING`,
		GeneratorTool.Slug, GeneratorTool.Name, GeneratorTool.Description,
		GeneratorTool.MetaTitle, GeneratorTool.MetaDescription,
	)
	if err != nil {
		return fmt.Errorf("failed to seed generator tool: %w", err)
	}
	return nil
}

func (s *PostgresStore) ToolBySlug(ctx context.Context, slug string) (Tool, error) {
	var tool Tool
	err := s.pool.QueryRow(ctx, `
		SELECT id, slug, name, description, meta_title, meta_description, usage_count
		FROM tools WHERE slug = $1`, slug,
	).Scan(&tool.ID, &tool.Slug, &tool.Name, &tool.Description, &tool.MetaTitle, &tool.MetaDescription, &tool.UsageCount)
	if errors.Is(err, pgx.ErrNoRows) {
		return Tool{}, ErrToolNotFound
	}
	if err != nil {
		return Tool{}, fmt.Errorf("failed to load tool %s: %w", slug, err)
	}
	return tool, nil
}

func (s *PostgresStore) InsertEvent(ctx context.Context, event Event) error {
	metadata := event.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO usage_events (tool_id, user_id, session_id, action, metadata, ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		event.ToolID, event.UserID, event.SessionID, string(event.Action),
		metadata, event.IPAddress, event.UserAgent, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert %s event: %w", event.Action, err)
	}
	return nil
}

func (s *PostgresStore) IncrementUsage(ctx context.Context, toolID int64) error {
	tag, err := s.pool.Exec(ctx, `UPDATE tools SET usage_count = usage_count + 1 WHERE id = $1`, toolID)
	if err != nil {
		return fmt.Errorf("failed to increment usage of tool %d: %w", toolID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrToolNotFound
	}
	return nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

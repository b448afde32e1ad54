// Package usage records how the generator tool is used and serves the tool
// catalog entry that hosts it.
package usage

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Action is what the user did with the tool
type Action string

const (
	ActionView     Action = "view"
	ActionGenerate Action = "generate"
	ActionCopy     Action = "copy"
	ActionDownload Action = "download"
)

func Actions() []Action {
	return []Action{ActionView, ActionGenerate, ActionCopy, ActionDownload}
}

func (a Action) Valid() bool {
	for _, known := range Actions() {
		if a == known {
			return true
		}
	}
	return false
}

// ErrToolNotFound is returned for unknown catalog slugs
var ErrToolNotFound = errors.New("tool not found")

// Event is one usage record. UserID is nil for anonymous visitors.
type Event struct {
	ToolID    int64
	UserID    *string
	SessionID string
	Action    Action
	Metadata  map[string]any
	IPAddress string
	UserAgent string
	CreatedAt time.Time
}

// Tool is a catalog entry
type Tool struct {
	ID              int64  `json:"id"`
	Slug            string `json:"slug"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	UsageCount      int64  `json:"usageCount"`
}

// GeneratorTool is the catalog entry seeded by Migrate
var GeneratorTool = Tool{
	Slug:            "react-component-generator",
	Name:            "React Component Generator",
	Description:     "Generate React components with tests, styles and stories from a single configuration.",
	MetaTitle:       "React Component Generator",
	MetaDescription: "Configure properties, hooks and styling, then download a component with matching tests, styles and stories.",
}

// Store persists tools and usage events
type Store interface {
	// Migrate creates the schema and seeds the generator tool
	Migrate(ctx context.Context) error
	ToolBySlug(ctx context.Context, slug string) (Tool, error)
	InsertEvent(ctx context.Context, event Event) error
	IncrementUsage(ctx context.Context, toolID int64) error
	Close() error
}

// Open returns the store for a configured driver
func Open(ctx context.Context, driver, dsn string) (Store, error) {
	switch driver {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return OpenSQLite(ctx, dsn)
	case "postgres":
		return OpenPostgres(ctx, dsn)
	default:
		return nil, fmt.Errorf("unsupported usage store driver '%s'", driver)
	}
}

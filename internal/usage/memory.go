package usage

import (
	"context"
	"sync"
)

// MemoryStore keeps everything in process memory
type MemoryStore struct {
	mu     sync.RWMutex
	nextID int64
	tools  map[string]*Tool
	events []Event
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tools: make(map[string]*Tool)}
}

func (s *MemoryStore) Migrate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tools[GeneratorTool.Slug]; ok {
		return nil
	}
	s.nextID++
	tool := GeneratorTool
	tool.ID = s.nextID
	s.tools[tool.Slug] = &tool
	return nil
}

func (s *MemoryStore) ToolBySlug(ctx context.Context, slug string) (Tool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tool, ok := s.tools[slug]
	if !ok {
		return Tool{}, ErrToolNotFound
	}
	return *tool, nil
}

func (s *MemoryStore) InsertEvent(ctx context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *MemoryStore) IncrementUsage(ctx context.Context, toolID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tool := range s.tools {
		if tool.ID == toolID {
			tool.UsageCount++
			return nil
		}
	}
	return ErrToolNotFound
}

// Events returns a copy of the recorded events
func (s *MemoryStore) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Event(nil), s.events...)
}

func (s *MemoryStore) Close() error {
	return nil
}

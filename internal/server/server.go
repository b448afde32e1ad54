// Package server exposes component generation over HTTP. Operations are
// registered on a huma API hosted by any of the router adapters.
package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/barisgit/compgen/internal/metrics"
	"github.com/barisgit/compgen/internal/static"
	"github.com/barisgit/compgen/internal/usage"
)

const DefaultShutdownTimeout = 10 * time.Second

// Recorder accepts usage events without blocking
type Recorder interface {
	Record(event usage.Event) bool
}

// Config wires a Server. Metrics and Recorder are optional.
type Config struct {
	Engine   Engine
	Store    usage.Store
	Recorder Recorder
	Metrics  *metrics.Metrics
	Logger   *zap.Logger
	Version  string
	ToolSlug string
	UI       bool

	ShutdownTimeout time.Duration
}

type Server struct {
	engine   Engine
	store    usage.Store
	recorder Recorder
	metrics  *metrics.Metrics
	logger   *zap.Logger
	version  string
	toolSlug string
	timeout  time.Duration

	mu   sync.Mutex
	tool *usage.Tool
}

// New registers every operation on the engine
func New(cfg Config) *Server {
	s := &Server{
		engine:   cfg.Engine,
		store:    cfg.Store,
		recorder: cfg.Recorder,
		metrics:  cfg.Metrics,
		logger:   cfg.Logger,
		version:  cfg.Version,
		toolSlug: cfg.ToolSlug,
		timeout:  cfg.ShutdownTimeout,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.store == nil {
		s.store = usage.NewMemoryStore()
	}
	if s.toolSlug == "" {
		s.toolSlug = usage.GeneratorTool.Slug
	}
	if s.timeout <= 0 {
		s.timeout = DefaultShutdownTimeout
	}

	api := s.engine.API()
	api.UseMiddleware(s.logRequests)
	s.registerOperations(api)

	if s.metrics != nil {
		s.engine.Handle("/metrics", s.metrics.Handler())
	}
	// mounted last so it only sees unmatched paths
	if cfg.UI {
		s.engine.Static(static.UI, static.UIConfig())
	}
	return s
}

func (s *Server) Engine() Engine {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts the engine down
func (s *Server) Run(ctx context.Context, addr string) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("server listening",
			zap.String("addr", addr),
			zap.String("router", s.engine.Name()))
		return s.engine.Listen(addr)
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		s.logger.Info("shutting down server")
		return s.engine.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (s *Server) logRequests(ctx huma.Context, next func(huma.Context)) {
	start := time.Now()
	next(ctx)
	s.logger.Debug("request",
		zap.String("method", ctx.Method()),
		zap.String("path", ctx.URL().Path),
		zap.Int("status", ctx.Status()),
		zap.Duration("duration", time.Since(start)))
}

// lookupTool returns the hosted tool, cached after the first successful lookup
func (s *Server) lookupTool(ctx context.Context, slug string) (usage.Tool, error) {
	if slug != s.toolSlug {
		return s.store.ToolBySlug(ctx, slug)
	}

	s.mu.Lock()
	cached := s.tool
	s.mu.Unlock()
	if cached != nil {
		return *cached, nil
	}

	tool, err := s.store.ToolBySlug(ctx, slug)
	if err != nil {
		return usage.Tool{}, err
	}
	s.mu.Lock()
	s.tool = &tool
	s.mu.Unlock()
	return tool, nil
}

func (s *Server) record(event usage.Event) {
	if s.recorder == nil {
		return
	}
	s.recorder.Record(event)
}

// recordHosted records an event against the hosted tool, logging lookup failures
func (s *Server) recordHosted(ctx context.Context, meta *RequestMeta, action usage.Action, metadata map[string]any) {
	if s.recorder == nil {
		return
	}
	tool, err := s.lookupTool(ctx, s.toolSlug)
	if err != nil {
		s.logger.Warn("usage event not recorded",
			zap.String("action", string(action)),
			zap.String("tool", s.toolSlug),
			zap.Error(err))
		return
	}
	s.record(meta.Event(tool.ID, action, metadata))
}

func toolError(slug string, err error) error {
	if errors.Is(err, usage.ErrToolNotFound) {
		return huma.Error404NotFound("tool '" + slug + "' not found")
	}
	return huma.Error500InternalServerError("failed to load tool", err)
}

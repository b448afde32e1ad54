package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/barisgit/compgen/internal/logging"
	"github.com/barisgit/compgen/internal/metrics"
	"github.com/barisgit/compgen/internal/server"
	"github.com/barisgit/compgen/internal/usage"
)

func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generator over HTTP",
		Long: `Start the HTTP API (and the embedded form unless disabled) on the router
configured in compgen.yaml. Usage events are stored in the configured
database.`,
		RunE: runServe,
	}

	cmd.Flags().String("host", "", "Host to bind (default: server.host)")
	cmd.Flags().IntP("port", "p", 0, "Port to listen on (default: server.port)")
	cmd.Flags().StringP("router", "r", "", fmt.Sprintf("Router to host the API on %v", server.Routers()))
	cmd.Flags().Bool("no-ui", false, "Do not serve the embedded form")
	cmd.Flags().Bool("no-metrics", false, "Do not expose /metrics")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	project, err := loadProject(cmd)
	if err != nil {
		return err
	}

	cfg := project.Server
	if host, _ := cmd.Flags().GetString("host"); host != "" {
		cfg.Host = host
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Port = port
	}
	if router, _ := cmd.Flags().GetString("router"); router != "" {
		cfg.Router = router
	}
	if noUI, _ := cmd.Flags().GetBool("no-ui"); noUI {
		cfg.UI = false
	}
	noMetrics, _ := cmd.Flags().GetBool("no-metrics")

	debug, _ := cmd.Flags().GetBool("debug")
	logger, err := logging.New(debug)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signalContext(cmd)
	defer stop()

	store, err := usage.Open(ctx, project.Database.Driver, project.Database.DSN)
	if err != nil {
		return fmt.Errorf("failed to open usage store: %w", err)
	}
	defer store.Close()
	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate usage store: %w", err)
	}

	var m *metrics.Metrics
	recorderOpts := []usage.RecorderOption{}
	if !noMetrics {
		m = metrics.New()
		recorderOpts = append(recorderOpts, usage.WithObserver(m))
	}
	recorder := usage.NewAsyncRecorder(store, logger, recorderOpts...)

	version := cmd.Root().Version
	engine, err := server.NewEngine(cfg.Router, server.APIConfig(version, cfg.DocsPath))
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Engine:   engine,
		Store:    store,
		Recorder: recorder,
		Metrics:  m,
		Logger:   logger,
		Version:  version,
		ToolSlug: project.Database.ToolSlug,
		UI:       cfg.UI,
	})

	if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
		server.Greet(cmd.OutOrStdout(), server.GreetOptions{
			ServiceName: project.Name,
			Version:     version,
			Router:      engine.Name(),
			Host:        cfg.Host,
			Port:        cfg.Port,
			DocsPath:    cfg.DocsPath,
			UI:          cfg.UI,
			Metrics:     m != nil,
			Store:       project.Database.Driver,
		})
	}

	runErr := srv.Run(ctx, cfg.Address())

	// flush queued events before the store closes
	closeCtx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
	defer cancel()
	if err := recorder.Close(closeCtx); err != nil {
		logger.Warn("usage events dropped on shutdown", zap.Error(err))
	}

	return runErr
}

// Package cmd holds the compgen subcommands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/barisgit/compgen/config"
	"github.com/barisgit/compgen/internal/component"
	"github.com/barisgit/compgen/internal/logging"
	"github.com/barisgit/compgen/internal/output"
)

// AddGlobalFlags registers the flags every subcommand reads
func AddGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().StringP("config", "c", config.DefaultConfigFile, "Project configuration file")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress status output")
	root.PersistentFlags().Bool("debug", false, "Show debug output")
}

func printerFor(cmd *cobra.Command) *logging.Printer {
	quiet, _ := cmd.Flags().GetBool("quiet")
	debug, _ := cmd.Flags().GetBool("debug")
	p := logging.NewPrinter(quiet, debug)
	p.Out = cmd.OutOrStdout()
	return p
}

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.DefaultConfigFile
	}
	return path
}

// loadProject loads the project configuration, falling back to defaults when
// the file does not exist
func loadProject(cmd *cobra.Command) (*config.ProjectConfig, error) {
	quiet, _ := cmd.Flags().GetBool("quiet")
	return config.LoadConfigWithDefaults(configPath(cmd), quiet)
}

// signalContext is cancelled on SIGINT or SIGTERM
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// componentDir is where a component's artifacts are written
func componentDir(outputDir, componentName string) string {
	return filepath.Join(outputDir, componentName)
}

// generateAndWrite runs the generator and writes the artifacts into dir
func generateAndWrite(ctx context.Context, p *logging.Printer, spec component.GenerationConfig, dir string, opts output.Options) error {
	artifacts, err := component.Generate(spec)
	if err != nil {
		return err
	}

	paths, err := output.Write(ctx, dir, artifacts, opts)
	if err != nil {
		return err
	}

	verb := "wrote"
	if opts.DryRun {
		verb = "would write"
	}
	for _, path := range paths {
		p.Log(fmt.Sprintf("  %s %s", verb, path), logging.Detail)
	}
	p.Log(fmt.Sprintf("Generated %s (%d files)", spec.ComponentName, len(paths)), logging.Success)
	return nil
}

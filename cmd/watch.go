package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/barisgit/compgen/config"
	"github.com/barisgit/compgen/internal/logging"
	"github.com/barisgit/compgen/internal/output"
	"github.com/barisgit/compgen/internal/watch"
)

func WatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <spec.yaml>",
		Short: "Regenerate a component whenever its spec changes",
		Long: `Generate the component described by a spec file, then keep regenerating
it whenever the spec or compgen.yaml changes. Invalid specs are reported
and the previous files are left in place.`,
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
	}

	cmd.Flags().StringP("out", "o", "", "Output directory (default: output_dir from compgen.yaml)")
	cmd.Flags().Duration("debounce", watch.DefaultDebounce, "Wait this long after a change before regenerating")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	p := printerFor(cmd)
	specPath := args[0]

	ctx, stop := signalContext(cmd)
	defer stop()

	regenerate := func(ctx context.Context) error {
		project, err := config.LoadConfigWithDefaults(configPath(cmd), true)
		if err != nil {
			return err
		}
		spec, err := config.LoadComponentSpec(specPath, project.Defaults)
		if err != nil {
			return err
		}

		outputDir := project.OutputDir
		if out, _ := cmd.Flags().GetString("out"); out != "" {
			outputDir = out
		}
		// each run replaces the previous one
		return generateAndWrite(ctx, p, spec, componentDir(outputDir, spec.ComponentName), output.Options{Force: true})
	}

	if err := regenerate(ctx); err != nil {
		p.Log(fmt.Sprintf("Generation failed: %v", err), logging.Failure)
	}

	debounce, _ := cmd.Flags().GetDuration("debounce")
	w := watch.New([]string{specPath, configPath(cmd)}, func(ctx context.Context, path string) {
		p.Log(fmt.Sprintf("🔄 %s changed, regenerating...", filepath.Base(path)), logging.Info)
		if err := regenerate(ctx); err != nil {
			p.Log(fmt.Sprintf("Generation failed: %v", err), logging.Failure)
		}
	}, watch.WithDebounce(debounce))

	p.Log(fmt.Sprintf("👀 Watching %s (Ctrl+C to stop)", specPath), logging.Info)
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	p.Log("Stopped watching", logging.Detail)
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barisgit/compgen/config"
	"github.com/barisgit/compgen/internal/component"
	"github.com/barisgit/compgen/internal/logging"
	"github.com/barisgit/compgen/internal/output"
)

func GenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [component-spec.yaml]",
		Short: "Generate a component from a spec file",
		Long: `Generate a React component with its test, style and story files.

The spec file is decoded over the 'defaults' section of compgen.yaml, so it only
needs the keys that differ. Without a spec file the defaults are used as is.`,
		Example: `  compgen generate button.yaml
  compgen generate --name UserCard --out src/widgets
  compgen generate button.yaml --stdout`,
		Args: cobra.MaximumNArgs(1),
		RunE: runGenerate,
	}

	cmd.Flags().StringP("name", "n", "", "Component name (overrides the spec)")
	cmd.Flags().StringP("out", "o", "", "Output directory (default: output_dir from compgen.yaml)")
	cmd.Flags().BoolP("force", "f", false, "Overwrite existing files")
	cmd.Flags().Bool("dry-run", false, "Show which files would be written")
	cmd.Flags().Bool("stdout", false, "Print the generated files instead of writing them")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	p := printerFor(cmd)

	project, err := loadProject(cmd)
	if err != nil {
		return err
	}

	spec := project.Defaults
	if len(args) == 1 {
		spec, err = config.LoadComponentSpec(args[0], project.Defaults)
		if err != nil {
			return err
		}
		p.Debugf("loaded component spec %s", args[0])
	}

	if name, _ := cmd.Flags().GetString("name"); name != "" {
		spec.ComponentName = name
	}
	if spec.ComponentName == "" {
		return fmt.Errorf("no component name given (set component_name in the spec or pass --name)")
	}

	if toStdout, _ := cmd.Flags().GetBool("stdout"); toStdout {
		artifacts, err := component.Generate(spec)
		if err != nil {
			return err
		}
		for _, artifact := range artifacts.Ordered() {
			fmt.Fprintf(cmd.OutOrStdout(), "// ===== %s =====\n%s\n", artifact.Filename, artifact.Content)
		}
		return nil
	}

	outputDir := project.OutputDir
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		outputDir = out
	}
	force, _ := cmd.Flags().GetBool("force")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	p.Log(fmt.Sprintf("Generating %s...", spec.ComponentName), logging.Info)
	return generateAndWrite(cmd.Context(), p, spec, componentDir(outputDir, spec.ComponentName), output.Options{
		Force:  force,
		DryRun: dryRun,
	})
}

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barisgit/compgen/internal/logging"
	"github.com/barisgit/compgen/internal/runner"
)

func VerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Run the generated tests",
		Long: `Run the project's test command inside the output directory so the
generated test files can be checked against the generated components.`,
		RunE: runVerify,
	}

	cmd.Flags().String("command", "", "Test command (default: runner.command from compgen.yaml)")
	cmd.Flags().StringP("dir", "d", "", "Directory to run in (default: output_dir)")

	return cmd
}

func runVerify(cmd *cobra.Command, args []string) error {
	p := printerFor(cmd)

	project, err := loadProject(cmd)
	if err != nil {
		return err
	}

	command := project.Runner.Command
	if c, _ := cmd.Flags().GetString("command"); c != "" {
		command = c
	}
	dir := project.OutputDir
	if d, _ := cmd.Flags().GetString("dir"); d != "" {
		dir = d
	}

	ctx, stop := signalContext(cmd)
	defer stop()

	p.Log(fmt.Sprintf("🧪 Running '%s' in %s", command, dir), logging.Info)
	if err := runner.Run(ctx, command, dir, cmd.OutOrStdout()); err != nil {
		var exitErr *runner.ExitError
		if errors.As(err, &exitErr) {
			p.Log(fmt.Sprintf("Tests failed with status %d", exitErr.Code), logging.Failure)
		}
		return err
	}

	p.Log("All generated tests passed", logging.Success)
	return nil
}

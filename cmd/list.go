package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/barisgit/compgen/internal/component"
	"github.com/barisgit/compgen/internal/server"
)

func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the supported generator options",
		Long:  "Display the hooks, property kinds, styling approaches, test frameworks and routers compgen supports",
		RunE:  runList,
	}

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	section(out, "Component kinds", component.ComponentKinds())
	section(out, "Hooks", component.Hooks())
	section(out, "Property kinds", component.PropKinds())
	section(out, "Styling approaches", component.StylingApproaches())
	section(out, "Test frameworks", component.TestFrameworks())
	section(out, "Routers", server.Routers())

	return nil
}

func section[T ~string](out io.Writer, title string, values []T) {
	fmt.Fprintf(out, "%s:\n", title)
	for _, v := range values {
		fmt.Fprintf(out, "  • %s\n", v)
	}
	fmt.Fprintln(out)
}

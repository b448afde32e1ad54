package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/barisgit/compgen/cmd"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "compgen",
		Short: "compgen - React component generator",
		Long: `compgen generates React components together with their tests, styles
and stories from a single configuration, on the command line or over HTTP.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(cmd.GenerateCmd())
	rootCmd.AddCommand(cmd.NewCmd())
	rootCmd.AddCommand(cmd.WatchCmd())
	rootCmd.AddCommand(cmd.ServeCmd())
	rootCmd.AddCommand(cmd.VerifyCmd())
	rootCmd.AddCommand(cmd.ConfigCmd())
	rootCmd.AddCommand(cmd.OpenAPICmd())
	rootCmd.AddCommand(cmd.ListCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barisgit/compgen/internal/logging"
	"github.com/barisgit/compgen/internal/server"
	"github.com/barisgit/compgen/internal/usage"
	"github.com/barisgit/compgen/openapi"
)

func OpenAPICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Export the HTTP API's OpenAPI document",
		Long:  "Write the OpenAPI document served by 'compgen serve' without starting a server. The format follows the file extension.",
		RunE:  runOpenAPI,
	}

	cmd.Flags().StringP("output", "o", "openapi.json", "Output file (.json, .yaml or .yml)")

	return cmd
}

func runOpenAPI(cmd *cobra.Command, args []string) error {
	p := printerFor(cmd)
	outputPath, _ := cmd.Flags().GetString("output")

	engine, err := server.NewEngine("nethttp", server.APIConfig(cmd.Root().Version, ""))
	if err != nil {
		return err
	}
	srv := server.New(server.Config{
		Engine:  engine,
		Store:   usage.NewMemoryStore(),
		Version: cmd.Root().Version,
	})
	api := srv.Engine().API()

	if err := openapi.GenerateSpecToFile(api, outputPath); err != nil {
		return err
	}

	p.Log(fmt.Sprintf("📄 Wrote %s (%d operations)", outputPath, openapi.OperationCount(api)), logging.Success)
	return nil
}

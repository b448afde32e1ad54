package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/barisgit/compgen/config"
	"github.com/barisgit/compgen/internal/component"
	"github.com/barisgit/compgen/internal/server"
)

func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage project configuration",
		Long:  "Validate, view, and manage your compgen.yaml project configuration",
	}

	cmd.AddCommand(configValidateCmd())
	cmd.AddCommand(configShowCmd())
	cmd.AddCommand(configInitCmd())
	cmd.AddCommand(configUpgradeCmd())

	return cmd
}

func configValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [config-file]",
		Short: "Validate configuration file",
		Long:  "Validate the syntax, form defaults and server settings of a configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConfigValidate,
	}

	cmd.Flags().Bool("strict", false, "Enable strict validation (fail on warnings)")

	return cmd
}

func configShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [config-file]",
		Short: "Show configuration information",
		Long:  "Display a summary of the configuration, with defaults applied",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConfigShow,
	}

	cmd.Flags().Bool("verbose", false, "Show the full configuration as YAML")

	return cmd
}

func configInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new configuration file",
		Long:  "Create a new compgen.yaml configuration file with default values",
		RunE:  runConfigInit,
	}

	cmd.Flags().BoolP("force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().String("name", "", "Project name (default: current directory name)")
	cmd.Flags().String("router", "nethttp", fmt.Sprintf("Router for 'compgen serve' %v", server.Routers()))
	cmd.Flags().String("driver", "memory", "Usage store driver (memory, sqlite, postgres)")
	cmd.Flags().String("dsn", "", "Usage store data source (file path or postgres URL)")

	return cmd
}

func configUpgradeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upgrade [config-file]",
		Short: "Add missing defaults to a configuration file",
		Long:  "Rewrite an existing configuration file with every missing field filled with its default",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConfigUpgrade,
	}

	cmd.Flags().Bool("backup", true, "Create backup of original file")

	return cmd
}

// configArg prefers a positional path over the --config flag
func configArg(cmd *cobra.Command, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return configPath(cmd)
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	path := configArg(cmd, args)
	strict, _ := cmd.Flags().GetBool("strict")

	fmt.Fprintf(out, "🔍 Validating configuration file: %s\n", path)

	cm := config.NewConfigManager(config.ConfigLoadOptions{
		Path:              path,
		EnvFile:           ".env",
		AllowMissing:      false,
		ValidateStructure: true,
		ApplyDefaults:     true,
		Quiet:             true,
	})
	cfg, err := cm.LoadConfigFromPath(path)
	if err != nil {
		fmt.Fprintf(out, "❌ Configuration validation failed:\n%v\n", err)
		return err
	}

	fmt.Fprintf(out, "✅ Configuration is valid!\n")

	if info, err := config.GetConfigInfo(path); err == nil {
		fmt.Fprintf(out, "\n%s\n", info.String())
	}

	if strict {
		issues := checkConfigIssues(cfg)
		if len(issues) > 0 {
			fmt.Fprintf(out, "\n⚠️  Potential issues found:\n")
			for i, issue := range issues {
				fmt.Fprintf(out, "  %d. %s\n", i+1, issue)
			}
			return fmt.Errorf("strict validation failed due to %d issue(s)", len(issues))
		}
	}

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	path := configArg(cmd, args)
	verbose, _ := cmd.Flags().GetBool("verbose")

	info, err := config.GetConfigInfo(path)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	fmt.Fprintf(out, "%s\n", info.String())

	if verbose {
		fmt.Fprintf(out, "\n📝 Detailed Configuration:\n")

		cfg, err := config.LoadConfigWithDefaults(path, true)
		if err != nil {
			return fmt.Errorf("failed to load full configuration: %w", err)
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal configuration: %w", err)
		}
		fmt.Fprintf(out, "```yaml\n%s```\n", string(data))
	}

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	path := configPath(cmd)

	force, _ := cmd.Flags().GetBool("force")
	projectName, _ := cmd.Flags().GetString("name")
	router, _ := cmd.Flags().GetString("router")
	driver, _ := cmd.Flags().GetString("driver")
	dsn, _ := cmd.Flags().GetString("dsn")

	if projectName == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		projectName = filepath.Base(wd)
	}
	if driver == "sqlite" && dsn == "" {
		dsn = "compgen.db"
	}

	cfg := &config.ProjectConfig{
		Name:      projectName,
		OutputDir: "src/components",
		Defaults:  config.DefaultGenerationConfig(),
		Server: config.ServerConfig{
			Router:   router,
			Host:     "localhost",
			Port:     3000,
			DocsPath: "/docs",
			UI:       true,
		},
		Database: config.DatabaseConfig{
			Driver:   driver,
			DSN:      dsn,
			ToolSlug: config.DefaultToolSlug,
		},
		Runner: config.RunnerConfig{
			Command: config.DefaultRunnerCommand(component.Jest),
		},
	}

	if err := config.WriteConfig(path, cfg, force); err != nil {
		return err
	}

	// catch bad flag values before anyone relies on the file
	if err := config.ValidateConfigFile(path); err != nil {
		fmt.Fprintf(out, "⚠️  Created %s, but it does not validate:\n%v\n", path, err)
		return err
	}

	fmt.Fprintf(out, "✅ Created configuration file: %s\n", path)
	fmt.Fprintf(out, "   Project: %s\n", projectName)
	fmt.Fprintf(out, "   Router: %s\n", router)
	fmt.Fprintf(out, "   Usage store: %s\n", driver)

	return nil
}

func runConfigUpgrade(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	path := configArg(cmd, args)
	backup, _ := cmd.Flags().GetBool("backup")

	fmt.Fprintf(out, "🔄 Upgrading configuration file: %s\n", path)

	if backup {
		backupPath := path + ".backup"
		if err := copyFile(path, backupPath); err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}
		fmt.Fprintf(out, "📋 Created backup: %s\n", backupPath)
	}

	// older files may not validate yet, so only defaults are applied here
	cm := config.NewConfigManager(config.ConfigLoadOptions{
		Path:              path,
		AllowMissing:      false,
		ValidateStructure: false,
		ApplyDefaults:     true,
		Quiet:             true,
	})
	cfg, err := cm.LoadConfigFromPath(path)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := config.WriteConfig(path, cfg, true); err != nil {
		return err
	}
	fmt.Fprintf(out, "✅ Configuration upgraded successfully\n")

	fmt.Fprintf(out, "🔍 Validating upgraded configuration...\n")
	if err := config.ValidateConfigFile(path); err != nil {
		fmt.Fprintf(out, "⚠️  Warning: Upgraded configuration has validation issues:\n%v\n", err)
	} else {
		fmt.Fprintf(out, "✅ Upgraded configuration is valid\n")
	}

	return nil
}

func checkConfigIssues(cfg *config.ProjectConfig) []string {
	var issues []string

	if cfg.Database.Driver == "memory" {
		issues = append(issues, "Usage events are kept in memory and lost when 'compgen serve' stops")
	}

	if cfg.Server.Host == "0.0.0.0" && cfg.Server.UI {
		issues = append(issues, "The form is exposed on every interface")
	}

	if cfg.Defaults.GenerateTests && cfg.Runner.Command != config.DefaultRunnerCommand(cfg.Defaults.TestFramework) {
		issues = append(issues, fmt.Sprintf("Runner command '%s' does not match the %s test framework default", cfg.Runner.Command, cfg.Defaults.TestFramework))
	}

	if !cfg.Defaults.UseStaticTyping && cfg.Defaults.ExportTypesSeparately {
		issues = append(issues, "export_types_separately has no effect without use_static_typing")
	}

	return issues
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0644)
}

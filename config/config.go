package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/barisgit/compgen/internal/component"
)

const (
	DefaultConfigFile = "compgen.yaml"
	DefaultToolSlug   = "react-component-generator"
)

// Environment variables that override file values
const (
	EnvDatabaseURL = "COMPGEN_DATABASE_URL"
	EnvPort        = "COMPGEN_PORT"
	EnvRouter      = "COMPGEN_ROUTER"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config validation error in field '%s': %s (value: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	if len(errs) == 0 {
		return "no validation errors"
	}

	var messages []string
	for _, err := range errs {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

func (errs ValidationErrors) HasErrors() bool {
	return len(errs) > 0
}

// ConfigLoadOptions provides options for loading configuration
type ConfigLoadOptions struct {
	Path              string
	EnvFile           string
	AllowMissing      bool
	ValidateStructure bool
	ApplyDefaults     bool
	Quiet             bool
}

// DefaultLoadOptions returns sensible defaults for config loading
func DefaultLoadOptions() ConfigLoadOptions {
	return ConfigLoadOptions{
		Path:              DefaultConfigFile,
		EnvFile:           ".env",
		AllowMissing:      false,
		ValidateStructure: true,
		ApplyDefaults:     true,
		Quiet:             false,
	}
}

// ConfigManager handles configuration loading, validation, and management
type ConfigManager struct {
	options  ConfigLoadOptions
	validate *validator.Validate
}

// NewConfigManager creates a new configuration manager
func NewConfigManager(options ConfigLoadOptions) *ConfigManager {
	v := validator.New()
	// report fields by their yaml names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &ConfigManager{
		options:  options,
		validate: v,
	}
}

// LoadConfig loads and validates the configuration with comprehensive error handling
func (cm *ConfigManager) LoadConfig() (*ProjectConfig, error) {
	return cm.LoadConfigFromPath(cm.options.Path)
}

// LoadConfigFromPath loads configuration from a specific path
func (cm *ConfigManager) LoadConfigFromPath(path string) (*ProjectConfig, error) {
	if err := cm.loadEnvFile(); err != nil {
		return nil, err
	}

	var config ProjectConfig
	if cm.options.ApplyDefaults {
		config = *cm.createDefaultConfig()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if !cm.options.AllowMissing {
			return nil, fmt.Errorf("configuration file not found: %s\n\nRun 'compgen config init' to create one", path)
		}
		if !cm.options.Quiet {
			fmt.Printf("⚠️  Configuration file not found at %s, using defaults\n", path)
		}
		config = *cm.createDefaultConfig()
		cm.applyDefaults(&config)
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file %s: %w", path, err)
		}

		// decoded over the defaults so omitted keys keep their default values
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %s: %w\n\nPlease check your YAML syntax", path, err)
		}
	}

	if err := cm.applyEnv(&config); err != nil {
		return nil, err
	}

	if cm.options.ApplyDefaults {
		cm.applyDefaults(&config)
	}

	if cm.options.ValidateStructure {
		if errs := cm.validateConfig(&config); errs.HasErrors() {
			return nil, fmt.Errorf("configuration validation failed:\n%s", cm.formatValidationErrors(errs))
		}
	}

	return &config, nil
}

// loadEnvFile loads the .env file when one exists. Variables already set in
// the environment win.
func (cm *ConfigManager) loadEnvFile() error {
	if cm.options.EnvFile == "" {
		return nil
	}
	if err := godotenv.Load(cm.options.EnvFile); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load environment file %s: %w", cm.options.EnvFile, err)
	}
	return nil
}

// applyEnv overrides file values with COMPGEN_* environment variables
func (cm *ConfigManager) applyEnv(config *ProjectConfig) error {
	if url := os.Getenv(EnvDatabaseURL); url != "" {
		config.Database.DSN = url
		if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
			config.Database.Driver = "postgres"
		} else if config.Database.Driver == "" || config.Database.Driver == "memory" {
			config.Database.Driver = "sqlite"
		}
	}

	if port := os.Getenv(EnvPort); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return ValidationError{Field: EnvPort, Value: port, Message: "port must be a number"}
		}
		config.Server.Port = p
	}

	if router := os.Getenv(EnvRouter); router != "" {
		config.Server.Router = router
	}

	return nil
}

// validateConfig performs comprehensive validation on the configuration
func (cm *ConfigManager) validateConfig(config *ProjectConfig) ValidationErrors {
	var errs ValidationErrors

	if config.Name == "" {
		errs = append(errs, ValidationError{
			Field:   "name",
			Value:   config.Name,
			Message: "project name cannot be empty",
		})
	}

	if config.OutputDir == "" {
		errs = append(errs, ValidationError{
			Field:   "output_dir",
			Value:   config.OutputDir,
			Message: "output directory cannot be empty",
		})
	}

	errs = append(errs, validateDefaults(config.Defaults)...)

	if config.Runner.Command == "" {
		errs = append(errs, ValidationError{
			Field:   "runner.command",
			Value:   config.Runner.Command,
			Message: "runner command cannot be empty",
		})
	}

	// server and database sections are checked through struct tags
	if err := cm.validate.Struct(config); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			errs = append(errs, ValidationError{Field: "config", Value: nil, Message: err.Error()})
			return errs
		}
		for _, fe := range fieldErrs {
			errs = append(errs, ValidationError{
				Field:   trimNamespace(fe.Namespace()),
				Value:   fe.Value(),
				Message: tagMessage(fe),
			})
		}
	}

	return errs
}

// validateDefaults checks the form defaults. An empty component name is
// allowed since the user always supplies one.
func validateDefaults(defaults component.GenerationConfig) ValidationErrors {
	var errs ValidationErrors

	if defaults.ComponentName != "" {
		if err := component.ValidateComponentName(defaults.ComponentName); err != nil {
			errs = append(errs, ValidationError{Field: "defaults.component_name", Value: defaults.ComponentName, Message: err.Error()})
		}
	}
	if err := component.ValidateCombination(defaults); err != nil {
		errs = append(errs, ValidationError{Field: "defaults.component_kind", Value: defaults.ComponentKind, Message: err.Error()})
	}

	if !defaults.ComponentKind.Valid() {
		errs = append(errs, ValidationError{
			Field:   "defaults.component_kind",
			Value:   defaults.ComponentKind,
			Message: fmt.Sprintf("valid options are: %v", component.ComponentKinds()),
		})
	}
	if !defaults.TestFramework.Valid() {
		errs = append(errs, ValidationError{
			Field:   "defaults.test_framework",
			Value:   defaults.TestFramework,
			Message: fmt.Sprintf("valid options are: %v", component.TestFrameworks()),
		})
	}
	if !defaults.StylingApproach.Valid() {
		errs = append(errs, ValidationError{
			Field:   "defaults.styling_approach",
			Value:   defaults.StylingApproach,
			Message: fmt.Sprintf("valid options are: %v", component.StylingApproaches()),
		})
	}

	return errs
}

// trimNamespace drops the root struct name from a validator namespace
func trimNamespace(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "required_unless":
		return fmt.Sprintf("field is required unless %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("valid options are: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "startswith":
		return fmt.Sprintf("must start with '%s'", fe.Param())
	default:
		return fmt.Sprintf("failed '%s' check", fe.Tag())
	}
}

// applyDefaults sets default values for missing configuration fields
func (cm *ConfigManager) applyDefaults(config *ProjectConfig) {
	if config.Name == "" {
		config.Name = "my-components"
	}
	if config.OutputDir == "" {
		config.OutputDir = "src/components"
	}

	if config.Defaults.ComponentKind == "" {
		config.Defaults.ComponentKind = component.Functional
	}
	if config.Defaults.TestFramework == "" {
		config.Defaults.TestFramework = component.Jest
	}
	if config.Defaults.StylingApproach == "" {
		config.Defaults.StylingApproach = component.UtilityClasses
	}

	if config.Server.Router == "" {
		config.Server.Router = "nethttp"
	}
	if config.Server.Host == "" {
		config.Server.Host = "localhost"
	}
	if config.Server.Port == 0 {
		config.Server.Port = 3000
	}
	if config.Server.DocsPath == "" {
		config.Server.DocsPath = "/docs"
	}

	if config.Database.Driver == "" {
		config.Database.Driver = "memory"
	}
	if config.Database.ToolSlug == "" {
		config.Database.ToolSlug = DefaultToolSlug
	}

	if config.Runner.Command == "" {
		config.Runner.Command = DefaultRunnerCommand(config.Defaults.TestFramework)
	}
}

// DefaultRunnerCommand is the command that runs generated tests for a framework
func DefaultRunnerCommand(framework component.TestFramework) string {
	if framework == component.Vitest {
		return "npx vitest run"
	}
	return "npx jest"
}

// DefaultGenerationConfig returns the form defaults used when compgen.yaml
// does not provide any
func DefaultGenerationConfig() component.GenerationConfig {
	return component.GenerationConfig{
		ComponentKind:        component.Functional,
		IncludeProperties:    true,
		UseStaticTyping:      true,
		GenerateTests:        true,
		TestFramework:        component.Jest,
		GenerateSnapshotTest: false,
		StylingApproach:      component.UtilityClasses,
		IncludeComments:      true,
		UseNamedExport:       false,
	}
}

// createDefaultConfig creates a default configuration when no config file
// exists. The runner command is left to applyDefaults since it follows the
// configured test framework.
func (cm *ConfigManager) createDefaultConfig() *ProjectConfig {
	return &ProjectConfig{
		Name:      "my-components",
		OutputDir: "src/components",
		Defaults:  DefaultGenerationConfig(),
		Server: ServerConfig{
			Router:   "nethttp",
			Host:     "localhost",
			Port:     3000,
			DocsPath: "/docs",
			UI:       true,
		},
		Database: DatabaseConfig{
			Driver:   "memory",
			ToolSlug: DefaultToolSlug,
		},
	}
}

// formatValidationErrors formats validation errors in a user-friendly way
func (cm *ConfigManager) formatValidationErrors(errors ValidationErrors) string {
	var lines []string
	for i, err := range errors {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, err.Error()))
	}
	return strings.Join(lines, "\n")
}

// ValidateConfigFile validates a configuration file as it would be loaded
func ValidateConfigFile(path string) error {
	cm := NewConfigManager(ConfigLoadOptions{
		Path:              path,
		AllowMissing:      false,
		ValidateStructure: true,
		ApplyDefaults:     true,
		Quiet:             true,
	})

	_, err := cm.LoadConfigFromPath(path)
	return err
}

// WriteConfig writes a configuration file, refusing to overwrite unless force is set
func WriteConfig(path string, config *ProjectConfig, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("configuration file %s already exists (use --force to overwrite)", path)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file %s: %w", path, err)
	}
	return nil
}

// GetConfigInfo returns information about the current configuration
func GetConfigInfo(path string) (*ConfigInfo, error) {
	options := DefaultLoadOptions()
	options.Quiet = true
	cm := NewConfigManager(options)
	config, err := cm.LoadConfigFromPath(path)
	if err != nil {
		return nil, err
	}

	absPath, _ := filepath.Abs(path)

	return &ConfigInfo{
		Path:            absPath,
		ProjectName:     config.Name,
		OutputDir:       config.OutputDir,
		Router:          config.Server.Router,
		Address:         config.Server.Address(),
		DatabaseDriver:  config.Database.Driver,
		TestFramework:   string(config.Defaults.TestFramework),
		StylingApproach: string(config.Defaults.StylingApproach),
		RunnerCommand:   config.Runner.Command,
	}, nil
}

// ConfigInfo contains summary information about a configuration
type ConfigInfo struct {
	Path            string
	ProjectName     string
	OutputDir       string
	Router          string
	Address         string
	DatabaseDriver  string
	TestFramework   string
	StylingApproach string
	RunnerCommand   string
}

// String returns a formatted string representation of config info
func (info *ConfigInfo) String() string {
	var lines []string
	lines = append(lines, "📋 Configuration Summary")
	lines = append(lines, fmt.Sprintf("   Path: %s", info.Path))
	lines = append(lines, fmt.Sprintf("   Project: %s", info.ProjectName))
	lines = append(lines, fmt.Sprintf("   Output: %s", info.OutputDir))
	lines = append(lines, fmt.Sprintf("   Server: %s on %s", info.Router, info.Address))
	lines = append(lines, fmt.Sprintf("   Usage store: %s", info.DatabaseDriver))
	lines = append(lines, fmt.Sprintf("   Defaults: %s tests, %s styling", info.TestFramework, info.StylingApproach))
	lines = append(lines, fmt.Sprintf("   Runner: %s", info.RunnerCommand))

	return strings.Join(lines, "\n")
}

// LoadConfig loads configuration using default options
func LoadConfig() (*ProjectConfig, error) {
	cm := NewConfigManager(DefaultLoadOptions())
	return cm.LoadConfig()
}

// LoadConfigWithDefaults loads configuration, creating defaults if missing
func LoadConfigWithDefaults(path string, quiet bool) (*ProjectConfig, error) {
	options := DefaultLoadOptions()
	options.Path = path
	options.AllowMissing = true
	options.Quiet = quiet

	cm := NewConfigManager(options)
	return cm.LoadConfig()
}

type ProjectConfig struct {
	Name      string                     `yaml:"name"`
	OutputDir string                     `yaml:"output_dir"`
	Defaults  component.GenerationConfig `yaml:"defaults"`
	Server    ServerConfig               `yaml:"server"`
	Database  DatabaseConfig             `yaml:"database"`
	Runner    RunnerConfig               `yaml:"runner"`
}

type ServerConfig struct {
	Router   string `yaml:"router" validate:"oneof=nethttp gin fiber echo"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port" validate:"min=1,max=65535"`
	DocsPath string `yaml:"docs_path" validate:"omitempty,startswith=/"`
	UI       bool   `yaml:"ui"` // serve the embedded form at /
}

// Address is the listen address of the HTTP server
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Driver   string `yaml:"driver" validate:"oneof=memory sqlite postgres"`
	DSN      string `yaml:"dsn,omitempty" validate:"required_unless=Driver memory"`
	ToolSlug string `yaml:"tool_slug" validate:"required"`
}

type RunnerConfig struct {
	Command string `yaml:"command"`
}

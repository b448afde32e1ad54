package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/barisgit/compgen/internal/component"
)

func TestLoadComponentSpecOverDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	specPath := filepath.Join(tmpDir, "button.yaml")

	spec := `
component_name: Button
use_named_export: true
properties:
  - name: label
    kind: string
    required: true
  - name: onPress
    kind: function
    function_signature: "(event: MouseEvent) => void"
`
	if err := os.WriteFile(specPath, []byte(spec), 0644); err != nil {
		t.Fatalf("Failed to create spec file: %v", err)
	}

	defaults := DefaultGenerationConfig()
	config, err := LoadComponentSpec(specPath, defaults)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if config.ComponentName != "Button" {
		t.Errorf("Expected component name 'Button', got '%s'", config.ComponentName)
	}
	if !config.UseNamedExport {
		t.Error("Expected use_named_export from the spec")
	}
	if !config.UseStaticTyping {
		t.Error("Expected use_static_typing to keep its default")
	}
	if len(config.Properties) != 2 {
		t.Fatalf("Expected 2 properties, got %d", len(config.Properties))
	}
	if config.Properties[1].Kind != component.KindFunction {
		t.Errorf("Expected function kind, got '%s'", config.Properties[1].Kind)
	}
	if config.Properties[1].FunctionSignature != "(event: MouseEvent) => void" {
		t.Errorf("Unexpected signature '%s'", config.Properties[1].FunctionSignature)
	}
	if len(defaults.Properties) != 0 {
		t.Error("Expected defaults to be left untouched")
	}
}

func TestLoadComponentSpecRejectsUnknownKind(t *testing.T) {
	tmpDir := t.TempDir()
	specPath := filepath.Join(tmpDir, "bad.yaml")

	spec := "component_name: Bad\nproperties:\n  - name: when\n    kind: date\n"
	if err := os.WriteFile(specPath, []byte(spec), 0644); err != nil {
		t.Fatalf("Failed to create spec file: %v", err)
	}

	if _, err := LoadComponentSpec(specPath, DefaultGenerationConfig()); err == nil {
		t.Error("Expected error for unknown property kind")
	}
}

func TestWriteComponentSpecRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	specPath := filepath.Join(tmpDir, "card.yaml")

	original := DefaultGenerationConfig()
	original.ComponentName = "Card"
	original.EnabledHooks = []component.Hook{component.HookState, component.HookRef}

	if err := WriteComponentSpec(specPath, original, false); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := WriteComponentSpec(specPath, original, false); err == nil {
		t.Error("Expected error when overwriting without force")
	}

	loaded, err := LoadComponentSpec(specPath, component.GenerationConfig{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if loaded.ComponentName != "Card" || len(loaded.EnabledHooks) != 2 {
		t.Errorf("Unexpected round trip result: %+v", loaded)
	}
}

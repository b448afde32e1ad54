// Package openapi exports the OpenAPI document of a huma API.
package openapi

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// Format is the encoding of an exported document
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatFor picks the format from a file extension, JSON unless it is .yaml or .yml
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// GenerateSpec encodes the API's OpenAPI document
func GenerateSpec(api huma.API, format Format) ([]byte, error) {
	switch format {
	case YAML:
		return api.OpenAPI().YAML()
	case JSON, "":
		return api.OpenAPI().MarshalJSON()
	default:
		return nil, fmt.Errorf("unsupported OpenAPI format '%s'", format)
	}
}

// GenerateSpecToFile writes the document to outputPath, encoded by its extension
func GenerateSpecToFile(api huma.API, outputPath string) error {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	spec, err := GenerateSpec(api, FormatFor(outputPath))
	if err != nil {
		return fmt.Errorf("failed to generate OpenAPI document: %w", err)
	}

	if err := os.WriteFile(outputPath, spec, 0644); err != nil {
		return fmt.Errorf("failed to save OpenAPI document to %s: %w", outputPath, err)
	}
	return nil
}

// OperationCount returns the number of operations in the document
func OperationCount(api huma.API) int {
	doc := api.OpenAPI()
	if doc == nil {
		return 0
	}

	count := 0
	for _, item := range doc.Paths {
		if item == nil {
			continue
		}
		for _, op := range []*huma.Operation{item.Get, item.Post, item.Put, item.Delete, item.Patch, item.Head, item.Options} {
			if op != nil {
				count++
			}
		}
	}
	return count
}

// OperationIDs lists operation IDs in the document, unordered
func OperationIDs(api huma.API) []string {
	var ids []string
	for _, item := range api.OpenAPI().Paths {
		if item == nil {
			continue
		}
		for _, op := range []*huma.Operation{item.Get, item.Post, item.Put, item.Delete, item.Patch, item.Head, item.Options} {
			if op != nil {
				ids = append(ids, op.OperationID)
			}
		}
	}
	return ids
}

package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/barisgit/compgen/internal/component"
	"github.com/barisgit/compgen/internal/metrics"
	"github.com/barisgit/compgen/internal/usage"
)

type HealthOutput struct {
	Body struct {
		Status  string `json:"status" example:"ok" doc:"Service status"`
		Version string `json:"version,omitempty" example:"1.0.0"`
		Router  string `json:"router" example:"nethttp"`
	}
}

type ToolInput struct {
	RequestMeta
	Slug string `path:"slug" maxLength:"100" example:"react-component-generator"`
}

type ToolOutput struct {
	SessionID string `header:"X-Session-ID"`
	Body      usage.Tool
}

type GenerateInput struct {
	RequestMeta
	Body struct {
		Config component.GenerationConfig `json:"config"`
	}
}

type GenerateOutput struct {
	SessionID string `header:"X-Session-ID"`
	Body      struct {
		Artifacts map[string]component.Artifact `json:"artifacts" doc:"Generated files keyed by artifact kind"`
		Order     []component.ArtifactKind      `json:"order" doc:"Artifact kinds in canonical order"`
		Filenames []string                      `json:"filenames"`
	}
}

type PropertyCheckInput struct {
	Body struct {
		Name          string   `json:"name" maxLength:"200"`
		ExistingNames []string `json:"existingNames,omitempty" required:"false"`
	}
}

type PropertyCheckOutput struct {
	Body struct {
		Valid   bool   `json:"valid"`
		Kind    string `json:"kind,omitempty" enum:"EmptyName,InvalidCase,TooLong,DuplicateName"`
		Message string `json:"message,omitempty"`
	}
}

type EventInput struct {
	RequestMeta
	Slug string `path:"slug" maxLength:"100"`
	Body struct {
		Action   usage.Action   `json:"action" enum:"copy,download"`
		Metadata map[string]any `json:"metadata,omitempty" required:"false"`
	}
}

type AcceptedOutput struct {
	SessionID string `header:"X-Session-ID"`
}

func (s *Server) registerOperations(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/api/health",
		Summary:     "Health Check",
		Tags:        []string{"Health"},
	}, func(ctx context.Context, input *struct{}) (*HealthOutput, error) {
		resp := &HealthOutput{}
		resp.Body.Status = "ok"
		resp.Body.Version = s.version
		resp.Body.Router = s.engine.Name()
		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-tool",
		Method:      http.MethodGet,
		Path:        "/api/tools/{slug}",
		Summary:     "Get tool metadata",
		Description: "Returns the catalog entry for the hosting page and records a view.",
		Tags:        []string{"Tools"},
	}, s.getTool)

	huma.Register(api, huma.Operation{
		OperationID: "generate-component",
		Method:      http.MethodPost,
		Path:        "/api/generate",
		Summary:     "Generate a component",
		Description: "Validates the configuration and returns the component with its test, style and story files.",
		Tags:        []string{"Generator"},
	}, s.generate)

	huma.Register(api, huma.Operation{
		OperationID: "validate-property-name",
		Method:      http.MethodPost,
		Path:        "/api/properties/validate",
		Summary:     "Check a property name",
		Description: "Checks a new property name against the naming rules and the names already in use.",
		Tags:        []string{"Generator"},
	}, s.validateProperty)

	huma.Register(api, huma.Operation{
		OperationID:   "record-tool-event",
		Method:        http.MethodPost,
		Path:          "/api/tools/{slug}/events",
		Summary:       "Record a copy or download",
		Tags:          []string{"Tools"},
		DefaultStatus: http.StatusAccepted,
	}, s.recordEvent)
}

func (s *Server) getTool(ctx context.Context, input *ToolInput) (*ToolOutput, error) {
	tool, err := s.lookupTool(ctx, input.Slug)
	if err != nil {
		return nil, toolError(input.Slug, err)
	}

	s.record(input.Event(tool.ID, usage.ActionView, nil))
	return &ToolOutput{SessionID: input.SessionID, Body: tool}, nil
}

func (s *Server) generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	config := input.Body.Config
	start := time.Now()

	artifacts, err := component.Generate(config)
	if err != nil {
		var verr *component.ValidationError
		if errors.As(err, &verr) {
			s.observe(metrics.OutcomeInvalid, start, nil)
			return nil, validationProblem(verr)
		}
		s.observe(metrics.OutcomeError, start, nil)
		s.logger.Error("generation failed",
			zap.String("component", config.ComponentName),
			zap.Error(err))
		return nil, huma.Error500InternalServerError("failed to generate component", err)
	}

	kinds := artifacts.Kinds()
	kindNames := make([]string, len(kinds))
	for i, kind := range kinds {
		kindNames[i] = string(kind)
	}
	s.observe(metrics.OutcomeSuccess, start, kindNames)

	resp := &GenerateOutput{SessionID: input.SessionID}
	resp.Body.Artifacts = make(map[string]component.Artifact, len(artifacts))
	resp.Body.Order = kinds
	for _, artifact := range artifacts.Ordered() {
		resp.Body.Artifacts[string(artifact.Kind)] = artifact
		resp.Body.Filenames = append(resp.Body.Filenames, artifact.Filename)
	}

	s.recordHosted(ctx, &input.RequestMeta, usage.ActionGenerate, map[string]any{
		"componentName":   config.ComponentName,
		"componentKind":   string(config.ComponentKind),
		"stylingApproach": string(config.StylingApproach),
		"artifacts":       kindNames,
	})
	return resp, nil
}

func (s *Server) validateProperty(ctx context.Context, input *PropertyCheckInput) (*PropertyCheckOutput, error) {
	resp := &PropertyCheckOutput{}
	err := component.ValidatePropertyName(input.Body.Name, input.Body.ExistingNames, true)
	if err == nil {
		resp.Body.Valid = true
		return resp, nil
	}

	var verr *component.ValidationError
	if !errors.As(err, &verr) {
		return nil, huma.Error500InternalServerError("failed to validate property name", err)
	}
	resp.Body.Kind = string(verr.Kind)
	resp.Body.Message = verr.Message
	return resp, nil
}

func (s *Server) recordEvent(ctx context.Context, input *EventInput) (*AcceptedOutput, error) {
	tool, err := s.lookupTool(ctx, input.Slug)
	if err != nil {
		return nil, toolError(input.Slug, err)
	}

	s.record(input.Event(tool.ID, input.Body.Action, input.Body.Metadata))
	return &AcceptedOutput{SessionID: input.SessionID}, nil
}

func (s *Server) observe(outcome string, start time.Time, kinds []string) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveGeneration(outcome, time.Since(start), kinds)
}

// validationProblem maps an engine error onto the request body location
func validationProblem(err *component.ValidationError) error {
	location := "body.config"
	if err.Field != "" {
		location += "." + strings.TrimPrefix(err.Field, ".")
	}
	return huma.Error422UnprocessableEntity(err.Message, &huma.ErrorDetail{
		Location: location,
		Message:  err.Message,
		Value:    err.Value,
	})
}

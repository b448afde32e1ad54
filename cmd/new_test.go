package cmd

import (
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barisgit/compgen/config"
	"github.com/barisgit/compgen/internal/component"
)

// scriptedAnswers plays queued answers per prompt message. Like a terminal
// session, an answer rejected by a validator is reported and the next queued
// answer is tried.
type scriptedAnswers struct {
	answers  map[string][]interface{}
	asked    []string
	rejected map[string][]error
}

func newScriptedAnswers(answers map[string][]interface{}) *scriptedAnswers {
	return &scriptedAnswers{answers: answers, rejected: map[string][]error{}}
}

func promptMessage(p survey.Prompt) string {
	switch p := p.(type) {
	case *survey.Input:
		return p.Message
	case *survey.Select:
		return p.Message
	case *survey.MultiSelect:
		return p.Message
	case *survey.Confirm:
		return p.Message
	default:
		return fmt.Sprintf("%T", p)
	}
}

func (s *scriptedAnswers) askOne(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
	var options survey.AskOptions
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return err
		}
	}

	message := promptMessage(p)
	s.asked = append(s.asked, message)

	for {
		queue := s.answers[message]
		if len(queue) == 0 {
			return fmt.Errorf("no answer left for %q", message)
		}
		answer := queue[0]
		s.answers[message] = queue[1:]

		var rejected error
		for _, validate := range options.Validators {
			if err := validate(answer); err != nil {
				rejected = err
				break
			}
		}
		if rejected != nil {
			s.rejected[message] = append(s.rejected[message], rejected)
			continue
		}

		switch r := response.(type) {
		case *string:
			*r = answer.(string)
		case *bool:
			*r = answer.(bool)
		case *[]string:
			*r = answer.([]string)
		default:
			return fmt.Errorf("unsupported response type %T", response)
		}
		return nil
	}
}

func TestAskComponentFunctional(t *testing.T) {
	script := newScriptedAnswers(map[string][]interface{}{
		"Component name:":             {"userCard", "UserCard"},
		"Component kind:":             {"functional"},
		"Hooks:":                      {[]string{"useState", "useEffect"}},
		"Wrap with React.memo?":       {true},
		"Forward a ref?":              {false},
		"Add properties?":             {true},
		"Add a property?":             {true, true, false},
		"Property name:":              {"title", "title", "onSelect"},
		"Property kind:":              {"string", "function"},
		"Function signature:":         {"(id: string) => void"},
		"Required?":                   {true, false},
		"Styling approach:":           {"styled-components"},
		"Use TypeScript?":             {true},
		"Generate tests?":             {true},
		"Test framework:":             {"vitest"},
		"Include a snapshot test?":    {false},
		"Generate Storybook stories?": {true},
		"Use a named export?":         {true},
	})

	spec := config.DefaultGenerationConfig()
	require.NoError(t, askComponent(&prompter{askOne: script.askOne}, &spec))

	assert.Equal(t, "UserCard", spec.ComponentName)
	assert.Equal(t, component.Functional, spec.ComponentKind)
	assert.Equal(t, []component.Hook{component.HookState, component.HookEffect}, spec.EnabledHooks)
	assert.True(t, spec.WrapWithMemo)
	assert.Equal(t, []component.PropertySpec{
		{Name: "title", Kind: component.KindString, Required: true},
		{Name: "onSelect", Kind: component.KindFunction, FunctionSignature: "(id: string) => void"},
	}, spec.Properties)
	assert.Equal(t, component.StyledComponents, spec.StylingApproach)
	assert.Equal(t, component.Vitest, spec.TestFramework)
	assert.True(t, spec.GenerateDocStories)
	assert.True(t, spec.UseNamedExport)

	require.Len(t, script.rejected["Component name:"], 1)
	assert.ErrorIs(t, script.rejected["Component name:"][0], component.ErrInvalidCase)
	require.Len(t, script.rejected["Property name:"], 1, "a repeated property name must be rejected while typing")
	assert.ErrorIs(t, script.rejected["Property name:"][0], component.ErrDuplicateName)

	_, err := component.Generate(spec)
	require.NoError(t, err)
}

func TestAskComponentClassSkipsFunctionalOptions(t *testing.T) {
	script := newScriptedAnswers(map[string][]interface{}{
		"Component name:":             {"Legacy"},
		"Component kind:":             {"class"},
		"Add properties?":             {false},
		"Styling approach:":           {"css-modules"},
		"Use TypeScript?":             {false},
		"Generate tests?":             {false},
		"Generate Storybook stories?": {false},
		"Use a named export?":         {false},
	})

	spec := config.DefaultGenerationConfig()
	spec.EnabledHooks = []component.Hook{component.HookRef}
	spec.WrapWithMemo = true
	require.NoError(t, askComponent(&prompter{askOne: script.askOne}, &spec))

	assert.Equal(t, component.Class, spec.ComponentKind)
	assert.Empty(t, spec.EnabledHooks)
	assert.False(t, spec.WrapWithMemo)
	assert.NotContains(t, script.asked, "Hooks:")
	assert.NotContains(t, script.asked, "Test framework:")

	_, err := component.Generate(spec)
	require.NoError(t, err)
}

func TestAskComponentKeepsDefaultProperties(t *testing.T) {
	script := newScriptedAnswers(map[string][]interface{}{
		"Component name:":                {"Tag"},
		"Component kind:":                {"functional"},
		"Hooks:":                         {[]string{}},
		"Wrap with React.memo?":          {false},
		"Forward a ref?":                 {false},
		"Add properties?":                {true},
		"Keep the 1 default properties?": {true},
		"Add a property?":                {true, false},
		"Property name:":                 {"label", "tone"},
		"Property kind:":                 {"string"},
		"Required?":                      {false},
		"Styling approach:":              {"tailwind"},
		"Use TypeScript?":                {true},
		"Generate tests?":                {false},
		"Generate Storybook stories?":    {false},
		"Use a named export?":            {false},
	})

	spec := config.DefaultGenerationConfig()
	spec.Properties = []component.PropertySpec{{Name: "label", Kind: component.KindString, Required: true}}
	require.NoError(t, askComponent(&prompter{askOne: script.askOne}, &spec))

	require.Len(t, spec.Properties, 2)
	assert.Equal(t, "tone", spec.Properties[1].Name)
	require.Len(t, script.rejected["Property name:"], 1)
	assert.ErrorIs(t, script.rejected["Property name:"][0], component.ErrDuplicateName)
}

package component

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func greetingConfig() GenerationConfig {
	return GenerationConfig{
		ComponentName:     "Greeting",
		ComponentKind:     Functional,
		IncludeProperties: true,
		Properties: []PropertySpec{
			{Name: "label", Kind: KindString, Required: true},
		},
		StylingApproach: UtilityClasses,
		TestFramework:   Jest,
	}
}

// everyKindConfig exercises every property kind, hook and artifact
func everyKindConfig() GenerationConfig {
	return GenerationConfig{
		ComponentName:     "UserCard",
		ComponentKind:     Functional,
		EnabledHooks:      Hooks(),
		IncludeProperties: true,
		Properties: []PropertySpec{
			{Name: "title", Kind: KindString, Required: true},
			{Name: "count", Kind: KindNumber},
			{Name: "isActive", Kind: KindBoolean},
			{Name: "tags", Kind: KindList, ListElementKind: KindString},
			{Name: "entries", Kind: KindList, ListElementKind: KindRecord},
			{Name: "settings", Kind: KindRecord},
			{Name: "onSelect", Kind: KindFunction, FunctionSignature: "(id: string) => void"},
		},
		UseStaticTyping:       true,
		GenerateTests:         true,
		TestFramework:         Vitest,
		GenerateSnapshotTest:  true,
		StylingApproach:       StyledComponents,
		IncludeComments:       true,
		UseNamedExport:        true,
		ExportTypesSeparately: true,
		WrapWithMemo:          true,
		UseForwardedRef:       true,
		GenerateDocStories:    true,
		GenerateDocComments:   true,
	}
}

func TestGenerateStringPropertyWithoutTyping(t *testing.T) {
	artifacts, err := Generate(greetingConfig())
	require.NoError(t, err)

	component := artifacts[ArtifactComponent]
	assert.Equal(t, "Greeting.jsx", component.Filename)
	assert.Contains(t, component.Content, `<p className="text-gray-700 mb-2">{label}</p>`)
	assert.NotContains(t, component.Content, "interface")
	assert.Contains(t, component.Content, "label: PropTypes.string.isRequired,")
	assert.Contains(t, component.Content, "export default Greeting;")

	assert.Equal(t, []ArtifactKind{ArtifactComponent}, artifacts.Kinds(), "utility classes need no style artifact")
}

func TestGenerateStringPropertyWithTyping(t *testing.T) {
	config := greetingConfig()
	config.UseStaticTyping = true

	artifacts, err := Generate(config)
	require.NoError(t, err)

	component := artifacts[ArtifactComponent]
	assert.Equal(t, "Greeting.tsx", component.Filename)
	assert.Contains(t, component.Content, "interface GreetingProps {\n  label: string;\n}")
	assert.Contains(t, component.Content, "const Greeting = ({ label }: GreetingProps) => {")
	assert.NotContains(t, component.Content, "prop-types")
	assert.NotContains(t, component.Content, "export interface", "types are only exported when requested")
}

func TestGenerateRejectsClassWithMemo(t *testing.T) {
	config := greetingConfig()
	config.ComponentKind = Class
	config.WrapWithMemo = true

	artifacts, err := Generate(config)
	assert.ErrorIs(t, err, ErrIncompatibleClassOptions)
	assert.Nil(t, artifacts)
}

func TestGenerateRequiredPropertyWarningCase(t *testing.T) {
	config := GenerationConfig{
		ComponentName:     "Counter",
		ComponentKind:     Functional,
		IncludeProperties: true,
		Properties:        []PropertySpec{{Name: "count", Kind: KindNumber, Required: true}},
		GenerateTests:     true,
		TestFramework:     Jest,
		StylingApproach:   PlainStylesheet,
	}

	artifacts, err := Generate(config)
	require.NoError(t, err)
	test := artifacts[ArtifactTest].Content
	assert.Contains(t, test, "expect(container.textContent).toContain('42');")
	assert.Contains(t, test, "it('warns when required props are missing'")
	assert.Contains(t, test, "jest.spyOn(console, 'error')")

	config.UseStaticTyping = true
	artifacts, err = Generate(config)
	require.NoError(t, err)
	test = artifacts[ArtifactTest].Content
	assert.Contains(t, test, "expect(container.textContent).toContain('42');")
	assert.NotContains(t, test, "warns when required props are missing")
	assert.Equal(t, "Counter.test.tsx", artifacts[ArtifactTest].Filename)
}

func TestGenerateStyledComponentsBindings(t *testing.T) {
	artifacts, err := Generate(everyKindConfig())
	require.NoError(t, err)

	style := artifacts[ArtifactStyle]
	component := artifacts[ArtifactComponent].Content
	assert.Equal(t, "UserCard.styles.ts", style.Filename)

	defined := regexp.MustCompile(`export const (\w+) = styled\.`).FindAllStringSubmatch(style.Content, -1)
	var names []string
	for _, match := range defined {
		names = append(names, match[1])
	}
	want := []string{"Container", "Title", "Text", "Button", "List", "ListItem", "Pre"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("styled bindings mismatch (-want +got):\n%s", diff)
	}

	assert.Contains(t, component, "import { Container, Title, Text, Button, List, ListItem, Pre } from './UserCard.styles';")
	for _, binding := range want {
		assert.Contains(t, component, "<"+binding, "markup should use %s", binding)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	configs := []GenerationConfig{greetingConfig(), everyKindConfig()}
	for _, config := range configs {
		first, err := Generate(config)
		require.NoError(t, err)
		second, err := Generate(config)
		require.NoError(t, err)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("%s: artifacts differ between runs (-first +second):\n%s", config.ComponentName, diff)
		}
	}
}

func TestGenerateExportStyleConsistency(t *testing.T) {
	for _, named := range []bool{true, false} {
		t.Run(fmt.Sprintf("named=%v", named), func(t *testing.T) {
			config := everyKindConfig()
			config.UseNamedExport = named

			artifacts, err := Generate(config)
			require.NoError(t, err)

			component := artifacts[ArtifactComponent].Content
			test := artifacts[ArtifactTest].Content
			docs := artifacts[ArtifactDocs].Content

			if named {
				assert.Contains(t, component, "export const UserCard = ")
				assert.NotContains(t, component, "export default")
				assert.Contains(t, test, "import { UserCard } from './UserCard';")
				assert.Contains(t, docs, "import { UserCard } from './UserCard';")
			} else {
				assert.Contains(t, component, "export default UserCard;")
				assert.Contains(t, test, "import UserCard from './UserCard';")
				assert.Contains(t, docs, "import UserCard from './UserCard';")
			}
		})
	}
}

func TestGeneratePropertyCoverage(t *testing.T) {
	config := everyKindConfig()
	artifacts, err := Generate(config)
	require.NoError(t, err)

	component := artifacts[ArtifactComponent].Content
	body := component[strings.Index(component, "return ("):]
	test := artifacts[ArtifactTest].Content
	for _, prop := range config.Properties {
		assert.Contains(t, body, prop.Name, "component body should render %s", prop.Name)
		assert.Contains(t, test, prop.Name, "tests should cover %s", prop.Name)
	}
}

func TestGeneratePropertiesIgnoredWhenExcluded(t *testing.T) {
	config := greetingConfig()
	config.IncludeProperties = false
	config.UseStaticTyping = true

	artifacts, err := Generate(config)
	require.NoError(t, err)

	component := artifacts[ArtifactComponent].Content
	assert.NotContains(t, component, "label")
	assert.NotContains(t, component, "GreetingProps")
	assert.Contains(t, component, "const Greeting = () => {")
}

func TestGenerateMemoAndForwardRefCompose(t *testing.T) {
	artifacts, err := Generate(everyKindConfig())
	require.NoError(t, err)
	component := artifacts[ArtifactComponent].Content

	assert.Contains(t, component, "import React, { useState, useEffect, useContext, useReducer, useCallback, useMemo, useRef } from 'react';")
	assert.Contains(t, component, "export const UserCard = React.memo(React.forwardRef(({ title, count, isActive, tags, entries, settings, onSelect }: UserCardProps, ref: React.ForwardedRef<HTMLDivElement>) => {")
	assert.Contains(t, component, "\n}));\n")
	assert.Contains(t, component, "UserCard.displayName = 'UserCard';")
	assert.Contains(t, component, "<Container ref={ref}>")
	assert.Contains(t, component, "<input ref={inputRef} type=\"text\" style={{ marginTop: '0.5rem' }} />")
	assert.Contains(t, component, "export interface UserCardProps {")
	assert.Contains(t, component, "onSelect?: (id: string) => void;")
	assert.Contains(t, component, "entries?: Record<string, unknown>[];")
	assert.Contains(t, component, "function reducer(state: ReducerState, action: ReducerAction): ReducerState {")
}

func TestGenerateWrapperVariants(t *testing.T) {
	tests := []struct {
		name     string
		memo     bool
		ref      bool
		contains string
	}{
		{"memo only", true, false, "const Box = React.memo(() => {"},
		{"ref only", false, true, "const Box = React.forwardRef((_props, ref) => {"},
		{"neither", false, false, "const Box = () => {"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := GenerationConfig{
				ComponentName:   "Box",
				ComponentKind:   Functional,
				StylingApproach: UtilityClasses,
				WrapWithMemo:    tt.memo,
				UseForwardedRef: tt.ref,
			}
			artifacts, err := Generate(config)
			require.NoError(t, err)

			component := artifacts[ArtifactComponent].Content
			assert.Contains(t, component, tt.contains)
			assert.Equal(t, tt.memo || tt.ref, strings.Contains(component, "Box.displayName = 'Box';"))
			assert.Contains(t, component, "import React from 'react';")
		})
	}
}

func TestGenerateClassComponent(t *testing.T) {
	config := GenerationConfig{
		ComponentName:     "Panel",
		ComponentKind:     Class,
		IncludeProperties: true,
		Properties: []PropertySpec{
			{Name: "heading", Kind: KindString, Required: true},
			{Name: "items", Kind: KindList, ListElementKind: KindNumber},
		},
		UseStaticTyping: true,
		StylingApproach: PlainStylesheet,
		IncludeComments: true,
	}

	artifacts, err := Generate(config)
	require.NoError(t, err)
	component := artifacts[ArtifactComponent].Content

	assert.Contains(t, component, "import React, { Component } from 'react';")
	assert.Contains(t, component, "import styles from './Panel.module.css';")
	assert.Contains(t, component, "class Panel extends Component<PanelProps> {")
	assert.Contains(t, component, "constructor(props: PanelProps) {\n    super(props);")
	for _, method := range []string{"componentDidMount()", "shouldComponentUpdate()", "componentDidUpdate()", "componentWillUnmount()"} {
		assert.Contains(t, component, method)
	}
	assert.Contains(t, component, "const { heading, items } = this.props;")
	assert.Contains(t, component, "<h2 className={styles.title}>Panel</h2>")
	assert.NotContains(t, component, "useState")
	assert.NotContains(t, component, "displayName")
	assert.Contains(t, component, "// Runs once after the first render")

	config.IncludeProperties = false
	artifacts, err = Generate(config)
	require.NoError(t, err)
	assert.NotContains(t, artifacts[ArtifactComponent].Content, "constructor", "constructor is only emitted with properties")
}

func TestGenerateStylesheetCoversMarkupClasses(t *testing.T) {
	config := everyKindConfig()
	config.StylingApproach = PlainStylesheet

	artifacts, err := Generate(config)
	require.NoError(t, err)

	style := artifacts[ArtifactStyle]
	assert.Equal(t, "UserCard.module.css", style.Filename)

	used := regexp.MustCompile(`styles\.(\w+)`).FindAllStringSubmatch(artifacts[ArtifactComponent].Content, -1)
	require.NotEmpty(t, used)
	for _, match := range used {
		assert.Contains(t, style.Content, "."+match[1]+" {", "stylesheet should define %s", match[1])
	}
}

func TestGenerateStory(t *testing.T) {
	artifacts, err := Generate(everyKindConfig())
	require.NoError(t, err)

	docs := artifacts[ArtifactDocs]
	assert.Equal(t, "UserCard.stories.tsx", docs.Filename)
	assert.Contains(t, docs.Content, "const meta: Meta<typeof UserCard> = {")
	assert.Contains(t, docs.Content, "title: 'Components/UserCard',")
	assert.Contains(t, docs.Content, "title: { control: 'text' },")
	assert.Contains(t, docs.Content, "onSelect: { action: 'onSelect' },")
	assert.Contains(t, docs.Content, "count: 42,")
	assert.Contains(t, docs.Content, "isActive: true,")
	assert.Contains(t, docs.Content, "tags: ['Item 1', 'Item 2', 'Item 3'],")
	assert.Contains(t, docs.Content, "settings: { key: 'value' },")
	assert.Contains(t, docs.Content, "onSelect: () => console.log('onSelect'),")
}

func TestGenerateTestFrameworkImports(t *testing.T) {
	config := everyKindConfig()
	artifacts, err := Generate(config)
	require.NoError(t, err)
	test := artifacts[ArtifactTest].Content

	assert.Contains(t, test, "import { render, screen, fireEvent } from '@testing-library/react';")
	assert.Contains(t, test, "import { describe, it, expect, vi } from 'vitest';")
	assert.Contains(t, test, "const onSelect = vi.fn();")
	assert.Contains(t, test, "expect(asFragment()).toMatchSnapshot();")
	assert.Contains(t, test, "expect(container.textContent).toContain('first');")

	config.TestFramework = Jest
	config.GenerateSnapshotTest = false
	artifacts, err = Generate(config)
	require.NoError(t, err)
	test = artifacts[ArtifactTest].Content
	assert.NotContains(t, test, "vitest")
	assert.Contains(t, test, "const onSelect = jest.fn();")
	assert.NotContains(t, test, "toMatchSnapshot")
}

func TestArtifactsOrdered(t *testing.T) {
	artifacts, err := Generate(everyKindConfig())
	require.NoError(t, err)

	assert.Equal(t, ArtifactKinds(), artifacts.Kinds())
	for i, artifact := range artifacts.Ordered() {
		assert.Equal(t, ArtifactKinds()[i], artifact.Kind)
	}
}

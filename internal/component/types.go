package component

import "fmt"

// PropKind is the value type of a generated component property
type PropKind string

const (
	KindString   PropKind = "string"
	KindNumber   PropKind = "number"
	KindBoolean  PropKind = "boolean"
	KindList     PropKind = "list"
	KindRecord   PropKind = "record"
	KindFunction PropKind = "function"
)

// PropKinds returns every property kind in declaration order
func PropKinds() []PropKind {
	return []PropKind{KindString, KindNumber, KindBoolean, KindList, KindRecord, KindFunction}
}

func (k PropKind) Valid() bool {
	for _, known := range PropKinds() {
		if k == known {
			return true
		}
	}
	return false
}

func (k *PropKind) UnmarshalText(text []byte) error {
	v := PropKind(text)
	if !v.Valid() {
		return fmt.Errorf("unknown property kind %q, valid options are: %v", text, PropKinds())
	}
	*k = v
	return nil
}

// ComponentKind selects between function and class components
type ComponentKind string

const (
	Functional ComponentKind = "functional"
	Class      ComponentKind = "class"
)

func ComponentKinds() []ComponentKind {
	return []ComponentKind{Functional, Class}
}

func (k ComponentKind) Valid() bool {
	return k == Functional || k == Class
}

func (k *ComponentKind) UnmarshalText(text []byte) error {
	v := ComponentKind(text)
	if !v.Valid() {
		return fmt.Errorf("unknown component kind %q, valid options are: %v", text, ComponentKinds())
	}
	*k = v
	return nil
}

// Hook names a functional-component capability
type Hook string

const (
	HookState    Hook = "useState"
	HookEffect   Hook = "useEffect"
	HookContext  Hook = "useContext"
	HookReducer  Hook = "useReducer"
	HookCallback Hook = "useCallback"
	HookMemo     Hook = "useMemo"
	HookRef      Hook = "useRef"
)

// Hooks returns every hook in the order snippets are emitted
func Hooks() []Hook {
	return []Hook{HookState, HookEffect, HookContext, HookReducer, HookCallback, HookMemo, HookRef}
}

func (h Hook) Valid() bool {
	for _, known := range Hooks() {
		if h == known {
			return true
		}
	}
	return false
}

func (h *Hook) UnmarshalText(text []byte) error {
	v := Hook(text)
	if !v.Valid() {
		return fmt.Errorf("unknown hook %q, valid options are: %v", text, Hooks())
	}
	*h = v
	return nil
}

// TestFramework picks the runner the test artifact targets
type TestFramework string

const (
	Jest   TestFramework = "jest"
	Vitest TestFramework = "vitest"
)

func TestFrameworks() []TestFramework {
	return []TestFramework{Jest, Vitest}
}

func (f TestFramework) Valid() bool {
	return f == Jest || f == Vitest
}

func (f *TestFramework) UnmarshalText(text []byte) error {
	v := TestFramework(text)
	if !v.Valid() {
		return fmt.Errorf("unknown test framework %q, valid options are: %v", text, TestFrameworks())
	}
	*f = v
	return nil
}

// StylingApproach is one of the mutually exclusive ways markup gets styled
type StylingApproach string

const (
	PlainStylesheet  StylingApproach = "css-modules"
	StyledComponents StylingApproach = "styled-components"
	UtilityClasses   StylingApproach = "tailwind"
)

func StylingApproaches() []StylingApproach {
	return []StylingApproach{PlainStylesheet, StyledComponents, UtilityClasses}
}

func (s StylingApproach) Valid() bool {
	return s == PlainStylesheet || s == StyledComponents || s == UtilityClasses
}

func (s *StylingApproach) UnmarshalText(text []byte) error {
	v := StylingApproach(text)
	if !v.Valid() {
		return fmt.Errorf("unknown styling approach %q, valid options are: %v", text, StylingApproaches())
	}
	*s = v
	return nil
}

// PropertySpec describes one property accepted by the generated component
type PropertySpec struct {
	Name              string   `yaml:"name" json:"name" doc:"camelCase property name"`
	Kind              PropKind `yaml:"kind" json:"kind" enum:"string,number,boolean,list,record,function"`
	Required          bool     `yaml:"required" json:"required"`
	ListElementKind   PropKind `yaml:"list_element_kind,omitempty" json:"listElementKind,omitempty" enum:"string,number,boolean,list,record,function" required:"false"`
	FunctionSignature string   `yaml:"function_signature,omitempty" json:"functionSignature,omitempty" required:"false" doc:"TypeScript signature used for function properties"`
}

// elementKind is the list element kind, string when unset
func (p PropertySpec) elementKind() PropKind {
	if p.ListElementKind == "" {
		return KindString
	}
	return p.ListElementKind
}

// GenerationConfig fully determines every artifact produced by Generate
type GenerationConfig struct {
	ComponentName         string          `yaml:"component_name" json:"componentName" doc:"PascalCase component name"`
	ComponentKind         ComponentKind   `yaml:"component_kind" json:"componentKind" enum:"functional,class"`
	EnabledHooks          []Hook          `yaml:"enabled_hooks,omitempty" json:"enabledHooks,omitempty" required:"false"`
	IncludeProperties     bool            `yaml:"include_properties" json:"includeProperties"`
	Properties            []PropertySpec  `yaml:"properties,omitempty" json:"properties,omitempty" required:"false"`
	UseStaticTyping       bool            `yaml:"use_static_typing" json:"useStaticTyping"`
	GenerateTests         bool            `yaml:"generate_tests" json:"generateTests"`
	TestFramework         TestFramework   `yaml:"test_framework" json:"testFramework" enum:"jest,vitest"`
	GenerateSnapshotTest  bool            `yaml:"generate_snapshot_test" json:"generateSnapshotTest"`
	StylingApproach       StylingApproach `yaml:"styling_approach" json:"stylingApproach" enum:"css-modules,styled-components,tailwind"`
	IncludeComments       bool            `yaml:"include_comments" json:"includeComments"`
	UseNamedExport        bool            `yaml:"use_named_export" json:"useNamedExport"`
	ExportTypesSeparately bool            `yaml:"export_types_separately" json:"exportTypesSeparately"`
	WrapWithMemo          bool            `yaml:"wrap_with_memo" json:"wrapWithMemo"`
	UseForwardedRef       bool            `yaml:"use_forwarded_ref" json:"useForwardedRef"`
	GenerateDocStories    bool            `yaml:"generate_doc_stories" json:"generateDocStories"`
	GenerateDocComments   bool            `yaml:"generate_doc_comments" json:"generateDocComments"`
}

// ArtifactKind keys the outputs of one generation
type ArtifactKind string

const (
	ArtifactComponent ArtifactKind = "component"
	ArtifactTest      ArtifactKind = "test"
	ArtifactStyle     ArtifactKind = "style"
	ArtifactDocs      ArtifactKind = "docs"
)

// ArtifactKinds returns the canonical artifact order
func ArtifactKinds() []ArtifactKind {
	return []ArtifactKind{ArtifactComponent, ArtifactTest, ArtifactStyle, ArtifactDocs}
}

// Artifact is one synthesized source file
type Artifact struct {
	Kind     ArtifactKind `json:"kind"`
	Filename string       `json:"filename"`
	Content  string       `json:"content"`
}

// Artifacts holds between one and four outputs keyed by kind
type Artifacts map[ArtifactKind]Artifact

// Ordered returns the artifacts in canonical order
func (a Artifacts) Ordered() []Artifact {
	ordered := make([]Artifact, 0, len(a))
	for _, kind := range ArtifactKinds() {
		if artifact, ok := a[kind]; ok {
			ordered = append(ordered, artifact)
		}
	}
	return ordered
}

// Kinds lists the produced artifact kinds in canonical order
func (a Artifacts) Kinds() []ArtifactKind {
	var kinds []ArtifactKind
	for _, artifact := range a.Ordered() {
		kinds = append(kinds, artifact.Kind)
	}
	return kinds
}

package component

import (
	"fmt"
	"strings"
)

// plan holds the naming and typing decisions derived once from a validated
// configuration. Every artifact synthesizer reads these instead of the raw
// configuration so the outputs cannot disagree on filenames or export style.
type plan struct {
	config GenerationConfig
	name   string
	typed  bool
	named  bool
	props  []PropertySpec
	hooks  []Hook
}

func newPlan(config GenerationConfig) plan {
	p := plan{
		config: config,
		name:   config.ComponentName,
		typed:  config.UseStaticTyping,
		named:  config.UseNamedExport,
	}

	if config.IncludeProperties {
		p.props = config.Properties
	}

	if config.ComponentKind != Class {
		enabled := make(map[Hook]bool, len(config.EnabledHooks))
		for _, hook := range config.EnabledHooks {
			enabled[hook] = true
		}
		// canonical order, duplicates collapse
		for _, hook := range Hooks() {
			if enabled[hook] {
				p.hooks = append(p.hooks, hook)
			}
		}
	}

	return p
}

func (p plan) functional() bool {
	return p.config.ComponentKind != Class
}

func (p plan) styling() StylingApproach {
	return p.config.StylingApproach
}

func (p plan) hasProps() bool {
	return len(p.props) > 0
}

func (p plan) hasHook(hook Hook) bool {
	for _, h := range p.hooks {
		if h == hook {
			return true
		}
	}
	return false
}

func (p plan) wrapped() bool {
	return p.functional() && (p.config.WrapWithMemo || p.config.UseForwardedRef)
}

func (p plan) forwardsRef() bool {
	return p.functional() && p.config.UseForwardedRef
}

func (p plan) hasRequiredProps() bool {
	for _, prop := range p.props {
		if prop.Required {
			return true
		}
	}
	return false
}

func (p plan) propNames() []string {
	names := make([]string, 0, len(p.props))
	for _, prop := range p.props {
		names = append(names, prop.Name)
	}
	return names
}

func (p plan) propsTypeName() string {
	return p.name + "Props"
}

// markupExt is the extension of files containing JSX
func (p plan) markupExt() string {
	if p.typed {
		return "tsx"
	}
	return "jsx"
}

// scriptExt is the extension of plain script files
func (p plan) scriptExt() string {
	if p.typed {
		return "ts"
	}
	return "js"
}

func (p plan) filename(kind ArtifactKind) string {
	switch kind {
	case ArtifactTest:
		return fmt.Sprintf("%s.test.%s", p.name, p.markupExt())
	case ArtifactStyle:
		if p.styling() == StyledComponents {
			return fmt.Sprintf("%s.styles.%s", p.name, p.scriptExt())
		}
		return p.name + ".module.css"
	case ArtifactDocs:
		return fmt.Sprintf("%s.stories.%s", p.name, p.markupExt())
	default:
		return fmt.Sprintf("%s.%s", p.name, p.markupExt())
	}
}

// styleModule is the import specifier of the style artifact
func (p plan) styleModule() string {
	if p.styling() == StyledComponents {
		return "./" + p.name + ".styles"
	}
	return "./" + p.name + ".module.css"
}

// importStatement imports the component the way the component file exports it
func (p plan) importStatement() string {
	if p.named {
		return fmt.Sprintf("import { %s } from './%s';", p.name, p.name)
	}
	return fmt.Sprintf("import %s from './%s';", p.name, p.name)
}

func (p plan) destructuredProps() string {
	return "{ " + strings.Join(p.propNames(), ", ") + " }"
}

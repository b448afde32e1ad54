package component

import (
	"fmt"
	"strings"
)

// kindTyping maps a property kind onto each type system the generator targets
type kindTyping struct {
	tsType    func(prop PropertySpec) string
	propType  func(prop PropertySpec) string
	docType   string
	control   string
	sample    func(prop PropertySpec) string
	listItems []string // sample list elements when used as a list element kind
	listTexts []string // text each sample element renders as
}

// kindTypings is filled in init because list typing looks up its element kind
var kindTypings map[PropKind]kindTyping

func init() {
	kindTypings = map[PropKind]kindTyping{
		KindString: {
			tsType:    func(PropertySpec) string { return "string" },
			propType:  func(PropertySpec) string { return "PropTypes.string" },
			docType:   "string",
			control:   "{ control: 'text' }",
			sample:    func(prop PropertySpec) string { return fmt.Sprintf("'Sample %s'", prop.Name) },
			listItems: []string{"'Item 1'", "'Item 2'", "'Item 3'"},
			listTexts: []string{"Item 1", "Item 2", "Item 3"},
		},
		KindNumber: {
			tsType:    func(PropertySpec) string { return "number" },
			propType:  func(PropertySpec) string { return "PropTypes.number" },
			docType:   "number",
			control:   "{ control: 'number' }",
			sample:    func(PropertySpec) string { return "42" },
			listItems: []string{"1", "2", "3"},
			listTexts: []string{"1", "2", "3"},
		},
		KindBoolean: {
			tsType:    func(PropertySpec) string { return "boolean" },
			propType:  func(PropertySpec) string { return "PropTypes.bool" },
			docType:   "boolean",
			control:   "{ control: 'boolean' }",
			sample:    func(PropertySpec) string { return "true" },
			listItems: []string{"true", "false", "true"},
			listTexts: []string{"true", "false"},
		},
		KindList: {
			tsType: func(prop PropertySpec) string {
				elem := prop.elementKind()
				if elem == KindList {
					return "unknown[][]"
				}
				inner := kindTypings[elem].tsType(PropertySpec{})
				if elem == KindFunction {
					inner = "(" + inner + ")"
				}
				return inner + "[]"
			},
			propType: func(prop PropertySpec) string {
				elem := prop.elementKind()
				if elem == KindList {
					return "PropTypes.arrayOf(PropTypes.array)"
				}
				return fmt.Sprintf("PropTypes.arrayOf(%s)", kindTypings[elem].propType(PropertySpec{}))
			},
			docType: "Array",
			control: "{ control: 'object' }",
			sample: func(prop PropertySpec) string {
				return "[" + strings.Join(kindTypings[prop.elementKind()].listItems, ", ") + "]"
			},
			listItems: []string{"['a']", "['b']", "['c']"},
			listTexts: []string{"a", "b", "c"},
		},
		KindRecord: {
			tsType:    func(PropertySpec) string { return "Record<string, unknown>" },
			propType:  func(PropertySpec) string { return "PropTypes.object" },
			docType:   "Object",
			control:   "{ control: 'object' }",
			sample:    func(PropertySpec) string { return "{ key: 'value' }" },
			listItems: []string{"{ id: 'first' }", "{ id: 'second' }", "{ id: 'third' }"},
			listTexts: []string{"first", "second", "third"},
		},
		KindFunction: {
			tsType: func(prop PropertySpec) string {
				if strings.TrimSpace(prop.FunctionSignature) != "" {
					return strings.TrimSpace(prop.FunctionSignature)
				}
				return "() => void"
			},
			propType:  func(PropertySpec) string { return "PropTypes.func" },
			docType:   "Function",
			control:   "{ action: '%s' }",
			sample:    func(prop PropertySpec) string { return fmt.Sprintf("() => console.log('%s')", prop.Name) },
			listItems: []string{"() => {}", "() => {}", "() => {}"},
		},
	}
}

// typingFor falls back to string typing for kinds outside the table
func typingFor(kind PropKind) kindTyping {
	if t, ok := kindTypings[kind]; ok {
		return t
	}
	return kindTypings[KindString]
}

func tsType(prop PropertySpec) string {
	return typingFor(prop.Kind).tsType(prop)
}

func propTypeDecl(prop PropertySpec) string {
	decl := typingFor(prop.Kind).propType(prop)
	if prop.Required {
		decl += ".isRequired"
	}
	return decl
}

func controlDescriptor(prop PropertySpec) string {
	control := typingFor(prop.Kind).control
	if prop.Kind == KindFunction {
		return fmt.Sprintf(control, prop.Name)
	}
	return control
}

func sampleValue(prop PropertySpec) string {
	return typingFor(prop.Kind).sample(prop)
}

// docParam renders one JSDoc @param line body for a property
func docParam(prop PropertySpec) string {
	name := "props." + prop.Name
	if !prop.Required {
		name = "[" + name + "]"
	}
	return fmt.Sprintf("@param {%s} %s - The %s property", typingFor(prop.Kind).docType, name, prop.Name)
}

// writePropsInterface emits the properties type declaration
func (p plan) writePropsInterface(s *source) {
	prefix := ""
	if p.config.ExportTypesSeparately {
		prefix = "export "
	}
	s.line(0, "%sinterface %s {", prefix, p.propsTypeName())
	for _, prop := range p.props {
		optional := "?"
		if prop.Required {
			optional = ""
		}
		s.line(1, "%s%s: %s;", prop.Name, optional, tsType(prop))
	}
	s.line(0, "}")
	s.blank()
}

// writePropTypes emits the runtime property checks used without static typing
func (p plan) writePropTypes(s *source) {
	s.line(0, "%s.propTypes = {", p.name)
	for _, prop := range p.props {
		s.line(1, "%s: %s,", prop.Name, propTypeDecl(prop))
	}
	s.line(0, "};")
	s.blank()
}

// writeDocHeader emits the file documentation header, if any
func (p plan) writeDocHeader(s *source) {
	switch {
	case p.config.GenerateDocComments:
		s.line(0, "/**")
		s.line(0, " * %s component.", p.name)
		if p.hasProps() {
			s.line(0, " *")
			s.line(0, " * @param {Object} props - Component properties")
			for _, prop := range p.props {
				s.line(0, " * %s", docParam(prop))
			}
		}
		s.line(0, " * @returns {JSX.Element} The rendered %s", p.name)
		s.line(0, " */")
	case p.config.IncludeComments:
		s.line(0, "// %s component", p.name)
	default:
		return
	}
}

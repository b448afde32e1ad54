package component

import (
	"fmt"
	"strings"
)

// role is the semantic part a markup element plays. The same table feeds the
// component markup, the styled-components bindings and the stylesheet classes.
type role int

const (
	roleContainer role = iota
	roleTitle
	roleText
	roleButton
	roleList
	roleListItem
	rolePre
	roleInput
)

type roleStyle struct {
	Tag     string // HTML element
	Binding string // styled-components binding name, empty when not styled
	Class   string // stylesheet class name
	Utility string // utility classes
	CSS     []string
}

var roleStyles = []roleStyle{
	roleContainer: {
		Tag: "div", Binding: "Container", Class: "container",
		Utility: "p-4 rounded-lg border border-gray-200",
		CSS:     []string{"padding: 1rem;", "border: 1px solid #e5e7eb;", "border-radius: 0.5rem;"},
	},
	roleTitle: {
		Tag: "h2", Binding: "Title", Class: "title",
		Utility: "text-xl font-bold mb-2",
		CSS:     []string{"margin: 0 0 0.5rem;", "font-size: 1.25rem;", "font-weight: 700;"},
	},
	roleText: {
		Tag: "p", Binding: "Text", Class: "text",
		Utility: "text-gray-700 mb-2",
		CSS:     []string{"margin: 0 0 0.5rem;", "color: #374151;"},
	},
	roleButton: {
		Tag: "button", Binding: "Button", Class: "button",
		Utility: "px-4 py-2 bg-blue-600 text-white rounded hover:bg-blue-700",
		CSS:     []string{"padding: 0.5rem 1rem;", "border: none;", "border-radius: 0.25rem;", "background: #2563eb;", "color: #ffffff;", "cursor: pointer;"},
	},
	roleList: {
		Tag: "ul", Binding: "List", Class: "list",
		Utility: "list-disc pl-5 mb-2",
		CSS:     []string{"margin: 0 0 0.5rem;", "padding-left: 1.25rem;"},
	},
	roleListItem: {
		Tag: "li", Binding: "ListItem", Class: "listItem",
		Utility: "py-1",
		CSS:     []string{"padding: 0.25rem 0;"},
	},
	rolePre: {
		Tag: "pre", Binding: "Pre", Class: "pre",
		Utility: "bg-gray-100 p-2 rounded text-sm overflow-auto",
		CSS:     []string{"padding: 0.5rem;", "border-radius: 0.25rem;", "background: #f3f4f6;", "font-size: 0.875rem;", "overflow: auto;"},
	},
	roleInput: {
		Tag: "input", Class: "input",
		Utility: "mt-2 px-2 py-1 border rounded",
		CSS:     []string{"margin-top: 0.5rem;", "padding: 0.25rem 0.5rem;", "border: 1px solid #d1d5db;", "border-radius: 0.25rem;"},
	},
}

// styledRoles are the roles that get a styled-components binding
func styledRoles() []roleStyle {
	var styled []roleStyle
	for _, rs := range roleStyles {
		if rs.Binding != "" {
			styled = append(styled, rs)
		}
	}
	return styled
}

func styledBindingNames() []string {
	var names []string
	for _, rs := range styledRoles() {
		names = append(names, rs.Binding)
	}
	return names
}

// element returns the opening and closing tags for a role under the plan's
// styling approach. Extra attributes come before the styling attribute.
func (p plan) element(r role, attrs ...string) (string, string) {
	rs := roleStyles[r]
	tag := rs.Tag
	all := append([]string{}, attrs...)

	switch p.styling() {
	case StyledComponents:
		if rs.Binding != "" {
			tag = rs.Binding
		} else {
			all = append(all, "style={{ marginTop: '0.5rem' }}")
		}
	case PlainStylesheet:
		all = append(all, fmt.Sprintf("className={styles.%s}", rs.Class))
	default:
		all = append(all, fmt.Sprintf("className=\"%s\"", rs.Utility))
	}

	open := "<" + tag
	if len(all) > 0 {
		open += " " + strings.Join(all, " ")
	}
	return open + ">", "</" + tag + ">"
}

// wrap renders a single-line element around inner content
func (p plan) wrap(r role, inner string, attrs ...string) string {
	open, close := p.element(r, attrs...)
	return open + inner + close
}

// fragmentFunc writes the representative markup for one property
type fragmentFunc func(p plan, prop PropertySpec, s *source, indent int)

var propertyFragments = map[PropKind]fragmentFunc{
	KindString: func(p plan, prop PropertySpec, s *source, indent int) {
		s.raw(indent, p.wrap(roleText, "{"+prop.Name+"}"))
	},
	KindNumber: func(p plan, prop PropertySpec, s *source, indent int) {
		s.raw(indent, p.wrap(roleText, prop.Name+": {"+prop.Name+"}"))
	},
	KindBoolean: func(p plan, prop PropertySpec, s *source, indent int) {
		s.line(indent, "{%s && %s}", prop.Name, p.wrap(roleText, prop.Name+" is enabled"))
	},
	KindFunction: func(p plan, prop PropertySpec, s *source, indent int) {
		s.raw(indent, p.wrap(roleButton, prop.Name, `type="button"`, "onClick={"+prop.Name+"}"))
	},
	KindList: func(p plan, prop PropertySpec, s *source, indent int) {
		open, close := p.element(roleList)
		s.raw(indent, open)
		s.line(indent+1, "{%s?.map((item, index) => (", prop.Name)
		switch prop.elementKind() {
		case KindRecord, KindList:
			s.raw(indent+2, p.wrap(roleListItem, "{JSON.stringify(item)}", "key={index}"))
		default:
			s.raw(indent+2, p.wrap(roleListItem, "{String(item)}", "key={index}"))
		}
		s.line(indent+1, "))}")
		s.raw(indent, close)
	},
	KindRecord: func(p plan, prop PropertySpec, s *source, indent int) {
		s.raw(indent, p.wrap(rolePre, "{JSON.stringify("+prop.Name+", null, 2)}"))
	},
}

// writeMarkup emits the return statement shared by both component kinds
func (p plan) writeMarkup(s *source, indent int) {
	var containerAttrs []string
	if p.forwardsRef() {
		containerAttrs = append(containerAttrs, "ref={ref}")
	}
	open, close := p.element(roleContainer, containerAttrs...)

	s.line(indent, "return (")
	s.raw(indent+1, open)
	s.raw(indent+2, p.wrap(roleTitle, p.name))
	for _, prop := range p.props {
		if fragment, ok := propertyFragments[prop.Kind]; ok {
			fragment(p, prop, s, indent+2)
		} else {
			propertyFragments[KindString](p, prop, s, indent+2)
		}
	}
	if p.hasHook(HookRef) {
		input, _ := p.element(roleInput, "ref={inputRef}", `type="text"`)
		s.raw(indent+2, strings.TrimSuffix(input, ">")+" />")
	}
	s.raw(indent+1, close)
	s.line(indent, ");")
}

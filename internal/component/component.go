package component

import (
	"fmt"
	"strings"
)

// lifecycle stubs emitted on every class component, in order
var lifecycleStubs = []struct {
	signature string
	comment   string
	body      string
}{
	{"componentDidMount()", "Runs once after the first render", ""},
	{"shouldComponentUpdate()", "Return false to skip a re-render", "return true;"},
	{"componentDidUpdate()", "Runs after every update", ""},
	{"componentWillUnmount()", "Release subscriptions and timers here", ""},
}

func synthesizeComponent(p plan) string {
	var s source
	p.writeDocHeader(&s)
	p.writeComponentImports(&s)
	s.blank()

	p.writeHookPreambles(&s)
	if p.typed && p.hasProps() {
		p.writePropsInterface(&s)
	}

	if p.functional() {
		p.writeFunctional(&s)
	} else {
		p.writeClass(&s)
	}

	if !p.typed && p.hasProps() {
		p.writePropTypes(&s)
	}
	if !p.named {
		s.line(0, "export default %s;", p.name)
	}
	return strings.TrimRight(s.String(), "\n") + "\n"
}

// reactImport builds the framework import line
func (p plan) reactImport() string {
	var named []string
	withDefault := false
	if p.functional() {
		named = p.hookNames()
		withDefault = p.wrapped()
	} else {
		named = []string{"Component"}
		withDefault = true
	}

	switch {
	case len(named) == 0:
		return "import React from 'react';"
	case withDefault:
		return fmt.Sprintf("import React, { %s } from 'react';", strings.Join(named, ", "))
	default:
		return fmt.Sprintf("import { %s } from 'react';", strings.Join(named, ", "))
	}
}

func (p plan) writeComponentImports(s *source) {
	s.raw(0, p.reactImport())
	if !p.typed && p.hasProps() {
		s.line(0, "import PropTypes from 'prop-types';")
	}
	switch p.styling() {
	case StyledComponents:
		s.line(0, "import { %s } from '%s';", strings.Join(styledBindingNames(), ", "), p.styleModule())
	case PlainStylesheet:
		s.line(0, "import styles from '%s';", p.styleModule())
	}
}

// functionParams renders the parameter list of the functional component
func (p plan) functionParams() string {
	var params []string
	switch {
	case p.hasProps() && p.typed:
		params = append(params, p.destructuredProps()+": "+p.propsTypeName())
	case p.hasProps():
		params = append(params, p.destructuredProps())
	case p.forwardsRef() && p.typed:
		params = append(params, "_props: Record<string, never>")
	case p.forwardsRef():
		params = append(params, "_props")
	}

	if p.forwardsRef() {
		if p.typed {
			params = append(params, "ref: React.ForwardedRef<HTMLDivElement>")
		} else {
			params = append(params, "ref")
		}
	}
	return "(" + strings.Join(params, ", ") + ")"
}

func (p plan) writeFunctional(s *source) {
	export := ""
	if p.named {
		export = "export "
	}

	// memo wraps outermost, forwardRef innermost
	open, close := "", ""
	if p.forwardsRef() {
		open, close = "React.forwardRef(", ")"
	}
	if p.config.WrapWithMemo {
		open, close = "React.memo("+open, close+")"
	}

	s.line(0, "%sconst %s = %s%s => {", export, p.name, open, p.functionParams())
	p.writeHookBodies(s, 1)
	p.writeMarkup(s, 1)
	s.line(0, "}%s;", close)
	s.blank()

	if p.wrapped() {
		s.line(0, "%s.displayName = '%s';", p.name, p.name)
		s.blank()
	}
}

func (p plan) writeClass(s *source) {
	export := ""
	if p.named {
		export = "export "
	}
	base := "Component"
	if p.typed && p.hasProps() {
		base = fmt.Sprintf("Component<%s>", p.propsTypeName())
	}

	s.line(0, "%sclass %s extends %s {", export, p.name, base)
	if p.hasProps() {
		if p.typed {
			s.line(1, "constructor(props: %s) {", p.propsTypeName())
		} else {
			s.line(1, "constructor(props) {")
		}
		s.line(2, "super(props);")
		s.line(1, "}")
		s.blank()
	}

	for _, stub := range lifecycleStubs {
		if !p.config.IncludeComments && stub.body == "" {
			s.line(1, "%s {}", stub.signature)
			s.blank()
			continue
		}
		s.line(1, "%s {", stub.signature)
		if p.config.IncludeComments {
			s.line(2, "// %s", stub.comment)
		}
		if stub.body != "" {
			s.raw(2, stub.body)
		}
		s.line(1, "}")
		s.blank()
	}

	s.line(1, "render() {")
	if p.hasProps() {
		s.line(2, "const %s = this.props;", p.destructuredProps())
		s.blank()
	}
	p.writeMarkup(s, 2)
	s.line(1, "}")
	s.line(0, "}")
	s.blank()
}

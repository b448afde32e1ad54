package component

import "strings"

// testCaseFunc writes the kind-specific test case for one property
type testCaseFunc func(p plan, prop PropertySpec, s *source)

var propertyTestCases = map[PropKind]testCaseFunc{
	KindString: func(p plan, prop PropertySpec, s *source) {
		s.line(1, "it('renders the %s text', () => {", prop.Name)
		s.line(2, "render(<%s {...defaultProps} />);", p.name)
		s.line(2, "expect(screen.getByText(%s)).toBeInTheDocument();", sampleValue(prop))
		s.line(1, "});")
	},
	KindNumber: func(p plan, prop PropertySpec, s *source) {
		s.line(1, "it('renders the %s value', () => {", prop.Name)
		s.line(2, "const { container } = render(<%s {...defaultProps} %s={42} />);", p.name, prop.Name)
		s.line(2, "expect(container.textContent).toContain('42');")
		s.line(1, "});")
	},
	KindBoolean: func(p plan, prop PropertySpec, s *source) {
		s.line(1, "it('renders differently when %s toggles', () => {", prop.Name)
		s.line(2, "const { container: enabled } = render(<%s {...defaultProps} %s={true} />);", p.name, prop.Name)
		s.line(2, "const { container: disabled } = render(<%s {...defaultProps} %s={false} />);", p.name, prop.Name)
		s.line(2, "expect(enabled.innerHTML).not.toEqual(disabled.innerHTML);")
		s.line(1, "});")
	},
	KindList: func(p plan, prop PropertySpec, s *source) {
		s.line(1, "it('renders every %s element', () => {", prop.Name)
		s.line(2, "const { container } = render(<%s {...defaultProps} />);", p.name)
		s.line(2, "expect(container.querySelectorAll('li').length).toBeGreaterThanOrEqual(3);")
		for _, text := range typingFor(prop.elementKind()).listTexts {
			s.line(2, "expect(container.textContent).toContain('%s');", text)
		}
		s.line(1, "});")
	},
	KindRecord: func(p plan, prop PropertySpec, s *source) {
		s.line(1, "it('renders the %s entries', () => {", prop.Name)
		s.line(2, "const { container } = render(<%s {...defaultProps} />);", p.name)
		s.line(2, "expect(container.textContent).toContain('key');")
		s.line(2, "expect(container.textContent).toContain('value');")
		s.line(1, "});")
	},
	KindFunction: func(p plan, prop PropertySpec, s *source) {
		s.line(1, "it('calls %s when triggered', () => {", prop.Name)
		s.line(2, "const %s = %s;", prop.Name, p.mockFn())
		s.line(2, "render(<%s {...defaultProps} %s={%s} />);", p.name, prop.Name, prop.Name)
		s.line(2, "const trigger = screen.queryByRole('button', { name: '%s' });", prop.Name)
		s.line(2, "if (trigger) {")
		s.line(3, "fireEvent.click(trigger);")
		s.line(3, "expect(%s).toHaveBeenCalled();", prop.Name)
		s.line(2, "}")
		s.line(1, "});")
	},
}

// mocker is the namespace providing mocks and spies
func (p plan) mocker() string {
	if p.config.TestFramework == Vitest {
		return "vi"
	}
	return "jest"
}

func (p plan) mockFn() string {
	return p.mocker() + ".fn()"
}

func (p plan) hasKind(kind PropKind) bool {
	for _, prop := range p.props {
		if prop.Kind == kind {
			return true
		}
	}
	return false
}

// warnsOnMissingProps reports whether the runtime checks can be exercised.
// Static typing catches missing properties before the tests run.
func (p plan) warnsOnMissingProps() bool {
	return !p.typed && p.hasRequiredProps()
}

func (p plan) writeTestImports(s *source) {
	testing := []string{"render", "screen"}
	if p.hasKind(KindFunction) {
		testing = append(testing, "fireEvent")
	}

	s.line(0, "import React from 'react';")
	s.line(0, "import { %s } from '@testing-library/react';", strings.Join(testing, ", "))
	if p.config.TestFramework == Vitest {
		globals := []string{"describe", "it", "expect"}
		if p.hasKind(KindFunction) || p.warnsOnMissingProps() {
			globals = append(globals, "vi")
		}
		s.line(0, "import { %s } from 'vitest';", strings.Join(globals, ", "))
		s.line(0, "import '@testing-library/jest-dom/vitest';")
	} else {
		s.line(0, "import '@testing-library/jest-dom';")
	}
	s.raw(0, p.importStatement())
	s.blank()
}

func synthesizeTest(p plan) string {
	var s source
	p.writeTestImports(&s)

	s.line(0, "const defaultProps = {")
	for _, prop := range p.props {
		s.line(1, "%s: %s,", prop.Name, sampleValue(prop))
	}
	s.line(0, "};")
	s.blank()

	s.line(0, "describe('%s', () => {", p.name)
	s.line(1, "it('renders without crashing', () => {")
	s.line(2, "render(<%s {...defaultProps} />);", p.name)
	s.line(2, "expect(screen.getByText('%s')).toBeInTheDocument();", p.name)
	s.line(1, "});")

	for _, prop := range p.props {
		s.blank()
		write, ok := propertyTestCases[prop.Kind]
		if !ok {
			write = propertyTestCases[KindString]
		}
		write(p, prop, &s)
	}

	if p.warnsOnMissingProps() {
		s.blank()
		s.line(1, "it('warns when required props are missing', () => {")
		s.line(2, "const consoleError = %s.spyOn(console, 'error').mockImplementation(() => {});", p.mocker())
		s.line(2, "render(<%s />);", p.name)
		s.line(2, "expect(consoleError).toHaveBeenCalled();")
		s.line(2, "consoleError.mockRestore();")
		s.line(1, "});")
	}

	if p.config.GenerateSnapshotTest {
		s.blank()
		s.line(1, "it('matches the snapshot', () => {")
		s.line(2, "const { asFragment } = render(<%s {...defaultProps} />);", p.name)
		s.line(2, "expect(asFragment()).toMatchSnapshot();")
		s.line(1, "});")
	}

	s.line(0, "});")
	return s.String()
}


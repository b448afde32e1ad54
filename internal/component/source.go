package component

import (
	"fmt"
	"strings"
)

const indentUnit = "  "

// source accumulates generated lines with two-space indentation
type source struct {
	b strings.Builder
}

func (s *source) line(indent int, format string, args ...interface{}) {
	s.raw(indent, fmt.Sprintf(format, args...))
}

// raw writes text verbatim; generated code may contain '%'
func (s *source) raw(indent int, text string) {
	s.b.WriteString(strings.Repeat(indentUnit, indent))
	s.b.WriteString(text)
	s.b.WriteByte('\n')
}

// lines writes pre-indented snippet lines below the given indent level
func (s *source) lines(indent int, snippet []string) {
	for _, l := range snippet {
		if l == "" {
			s.blank()
			continue
		}
		s.raw(indent, l)
	}
}

func (s *source) blank() {
	s.b.WriteByte('\n')
}

func (s *source) String() string {
	return s.b.String()
}

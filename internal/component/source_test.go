package component

import "testing"

func TestSourceRawKeepsText(t *testing.T) {
	var s source
	s.raw(1, "width: 100%;")
	s.line(0, "const %s = %d;", "n", 2)
	s.lines(1, []string{"a %d b", "", "c"})

	want := "  width: 100%;\nconst n = 2;\n  a %d b\n\n  c\n"
	if got := s.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

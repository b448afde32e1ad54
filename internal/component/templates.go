package component

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/stylesheet.module.css.tmpl
var stylesheetTemplate string

//go:embed templates/styled.tmpl
var styledTemplate string

//go:embed templates/story.tmpl
var storyTemplate string

var (
	stylesheetTmpl = template.Must(template.New("stylesheet").Parse(stylesheetTemplate))
	styledTmpl     = template.Must(template.New("styled").Parse(styledTemplate))
	storyTmpl      = template.Must(template.New("story").Parse(storyTemplate))
)

// styleTemplateData feeds both style templates
type styleTemplateData struct {
	Name     string
	Comments bool
	Roles    []roleStyle
}

// storyArg is one property rendered into the story
type storyArg struct {
	Name    string
	Control string
	Sample  string
}

// storyTemplateData feeds the story template
type storyTemplateData struct {
	Name   string
	Typed  bool
	Import string
	Args   []storyArg
}

// executeTemplate renders a parsed template into a string
func executeTemplate(tmpl *template.Template, data interface{}) (string, error) {
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute %s template: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

// synthesizeStyle returns false for approaches that style inline
func synthesizeStyle(p plan) (string, bool, error) {
	data := styleTemplateData{Name: p.name, Comments: p.config.IncludeComments}

	switch p.styling() {
	case PlainStylesheet:
		data.Roles = roleStyles
		content, err := executeTemplate(stylesheetTmpl, data)
		return content, true, err
	case StyledComponents:
		data.Roles = styledRoles()
		content, err := executeTemplate(styledTmpl, data)
		return content, true, err
	default:
		return "", false, nil
	}
}

func synthesizeStory(p plan) (string, error) {
	data := storyTemplateData{
		Name:   p.name,
		Typed:  p.typed,
		Import: p.importStatement(),
	}
	for _, prop := range p.props {
		data.Args = append(data.Args, storyArg{
			Name:    prop.Name,
			Control: controlDescriptor(prop),
			Sample:  sampleValue(prop),
		})
	}
	return executeTemplate(storyTmpl, data)
}

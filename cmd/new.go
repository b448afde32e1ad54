package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/barisgit/compgen/config"
	"github.com/barisgit/compgen/internal/component"
	"github.com/barisgit/compgen/internal/logging"
	"github.com/barisgit/compgen/internal/output"
)

func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new [component-name]",
		Short: "Create a component interactively",
		Long:  "Answer a few questions and generate a React component. Answers start from the project defaults.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runNew,
	}

	cmd.Flags().String("save", "", "Also save the answers as a component spec file")
	cmd.Flags().StringP("out", "o", "", "Output directory (default: output_dir from compgen.yaml)")
	cmd.Flags().BoolP("force", "f", false, "Overwrite existing files")
	cmd.Flags().Bool("dry-run", false, "Show which files would be written")

	return cmd
}

func runNew(cmd *cobra.Command, args []string) error {
	p := printerFor(cmd)

	project, err := loadProject(cmd)
	if err != nil {
		return err
	}

	spec := project.Defaults
	if len(args) == 1 {
		spec.ComponentName = args[0]
	}

	if err := askComponent(newPrompter(cmd, survey.AskOne), &spec); err != nil {
		return err
	}

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		force, _ := cmd.Flags().GetBool("force")
		if err := config.WriteComponentSpec(savePath, spec, force); err != nil {
			return err
		}
		p.Log(fmt.Sprintf("Saved spec to %s", savePath), logging.Info)
	}

	outputDir := project.OutputDir
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		outputDir = out
	}
	force, _ := cmd.Flags().GetBool("force")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	return generateAndWrite(cmd.Context(), p, spec, componentDir(outputDir, spec.ComponentName), output.Options{
		Force:  force,
		DryRun: dryRun,
	})
}

// askFunc matches survey.AskOne
type askFunc func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// prompter asks every question of the form through one askFunc
type prompter struct {
	askOne askFunc
	opts   []survey.AskOpt
}

// newPrompter binds prompts to the command's terminal when it has one
func newPrompter(cmd *cobra.Command, ask askFunc) *prompter {
	pr := &prompter{askOne: ask}
	in, inOK := cmd.InOrStdin().(*os.File)
	out, outOK := cmd.OutOrStdout().(*os.File)
	if inOK && outOK {
		pr.opts = append(pr.opts, survey.WithStdio(in, out, os.Stderr))
	}
	return pr
}

func (pr *prompter) ask(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
	return pr.askOne(p, response, append(opts, pr.opts...)...)
}

// askComponent fills spec from prompts, using its current values as defaults
func askComponent(pr *prompter, spec *component.GenerationConfig) error {
	namePrompt := &survey.Input{
		Message: "Component name:",
		Default: spec.ComponentName,
		Help:    "PascalCase, e.g. UserCard",
	}
	if err := pr.ask(namePrompt, &spec.ComponentName, survey.WithValidator(func(ans interface{}) error {
		return component.ValidateComponentName(ans.(string))
	})); err != nil {
		return err
	}

	var kind string
	if err := pr.ask(&survey.Select{
		Message: "Component kind:",
		Options: enumStrings(component.ComponentKinds()),
		Default: string(orDefault(spec.ComponentKind, component.Functional)),
	}, &kind); err != nil {
		return err
	}
	spec.ComponentKind = component.ComponentKind(kind)

	if spec.ComponentKind == component.Class {
		// options only functional components support
		spec.EnabledHooks = nil
		spec.WrapWithMemo = false
		spec.UseForwardedRef = false
	} else if err := askFunctionalOptions(pr, spec); err != nil {
		return err
	}

	if err := pr.ask(&survey.Confirm{
		Message: "Add properties?",
		Default: spec.IncludeProperties,
	}, &spec.IncludeProperties); err != nil {
		return err
	}
	if spec.IncludeProperties {
		if err := askProperties(pr, spec); err != nil {
			return err
		}
	}

	var styling string
	if err := pr.ask(&survey.Select{
		Message: "Styling approach:",
		Options: enumStrings(component.StylingApproaches()),
		Default: string(orDefault(spec.StylingApproach, component.PlainStylesheet)),
	}, &styling); err != nil {
		return err
	}
	spec.StylingApproach = component.StylingApproach(styling)

	if err := pr.ask(&survey.Confirm{Message: "Use TypeScript?", Default: spec.UseStaticTyping}, &spec.UseStaticTyping); err != nil {
		return err
	}

	if err := pr.ask(&survey.Confirm{Message: "Generate tests?", Default: spec.GenerateTests}, &spec.GenerateTests); err != nil {
		return err
	}
	if spec.GenerateTests {
		var framework string
		if err := pr.ask(&survey.Select{
			Message: "Test framework:",
			Options: enumStrings(component.TestFrameworks()),
			Default: string(orDefault(spec.TestFramework, component.Jest)),
		}, &framework); err != nil {
			return err
		}
		spec.TestFramework = component.TestFramework(framework)

		if err := pr.ask(&survey.Confirm{Message: "Include a snapshot test?", Default: spec.GenerateSnapshotTest}, &spec.GenerateSnapshotTest); err != nil {
			return err
		}
	}

	if err := pr.ask(&survey.Confirm{Message: "Generate Storybook stories?", Default: spec.GenerateDocStories}, &spec.GenerateDocStories); err != nil {
		return err
	}
	return pr.ask(&survey.Confirm{Message: "Use a named export?", Default: spec.UseNamedExport}, &spec.UseNamedExport)
}

func askFunctionalOptions(pr *prompter, spec *component.GenerationConfig) error {
	var hooks []string
	if err := pr.ask(&survey.MultiSelect{
		Message: "Hooks:",
		Options: enumStrings(component.Hooks()),
		Default: enumStrings(spec.EnabledHooks),
	}, &hooks); err != nil {
		return err
	}
	spec.EnabledHooks = spec.EnabledHooks[:0]
	for _, h := range hooks {
		spec.EnabledHooks = append(spec.EnabledHooks, component.Hook(h))
	}

	if err := pr.ask(&survey.Confirm{Message: "Wrap with React.memo?", Default: spec.WrapWithMemo}, &spec.WrapWithMemo); err != nil {
		return err
	}
	return pr.ask(&survey.Confirm{Message: "Forward a ref?", Default: spec.UseForwardedRef}, &spec.UseForwardedRef)
}

func askProperties(pr *prompter, spec *component.GenerationConfig) error {
	var names []string
	for _, prop := range spec.Properties {
		names = append(names, prop.Name)
	}
	if len(spec.Properties) > 0 {
		keep := true
		if err := pr.ask(&survey.Confirm{
			Message: fmt.Sprintf("Keep the %d default properties?", len(spec.Properties)),
			Default: true,
		}, &keep); err != nil {
			return err
		}
		if !keep {
			spec.Properties = nil
			names = nil
		}
	}

	for {
		more := len(spec.Properties) == 0
		if err := pr.ask(&survey.Confirm{Message: "Add a property?", Default: more}, &more); err != nil {
			return err
		}
		if !more {
			return nil
		}

		var prop component.PropertySpec
		if err := pr.ask(&survey.Input{Message: "Property name:", Help: "camelCase, e.g. userName"}, &prop.Name,
			survey.WithValidator(func(ans interface{}) error {
				return component.ValidatePropertyName(ans.(string), names, true)
			})); err != nil {
			return err
		}

		var kind string
		if err := pr.ask(&survey.Select{
			Message: "Property kind:",
			Options: enumStrings(component.PropKinds()),
		}, &kind); err != nil {
			return err
		}
		prop.Kind = component.PropKind(kind)

		switch prop.Kind {
		case component.KindList:
			var element string
			if err := pr.ask(&survey.Select{
				Message: "List element kind:",
				Options: enumStrings(component.PropKinds()),
				Default: string(component.KindString),
			}, &element); err != nil {
				return err
			}
			prop.ListElementKind = component.PropKind(element)
		case component.KindFunction:
			if err := pr.ask(&survey.Input{
				Message: "Function signature:",
				Default: "() => void",
			}, &prop.FunctionSignature); err != nil {
				return err
			}
		}

		if err := pr.ask(&survey.Confirm{Message: "Required?", Default: true}, &prop.Required); err != nil {
			return err
		}

		spec.Properties = append(spec.Properties, prop)
		names = append(names, prop.Name)
	}
}

func enumStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func orDefault[T ~string](value, fallback T) T {
	if value == "" {
		return fallback
	}
	return value
}

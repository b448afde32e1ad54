package component

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MaxComponentNameLength = 50
	MaxPropertyNameLength  = 30
)

var (
	pascalCasePattern = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)
	camelCasePattern  = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)
)

// ValidateComponentName checks a component name is a PascalCase identifier.
// Length is counted in characters and checked before case, so an overlong
// name always reports TooLong.
func ValidateComponentName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{
			Kind:    KindEmptyName,
			Field:   "componentName",
			Value:   name,
			Message: "component name cannot be empty",
		}
	}

	if utf8.RuneCountInString(name) > MaxComponentNameLength {
		return &ValidationError{
			Kind:    KindTooLong,
			Field:   "componentName",
			Value:   name,
			Message: fmt.Sprintf("component name must be at most %d characters", MaxComponentNameLength),
		}
	}

	if !pascalCasePattern.MatchString(name) {
		return &ValidationError{
			Kind:    KindInvalidCase,
			Field:   "componentName",
			Value:   name,
			Message: "component name must be PascalCase (e.g. UserCard)",
		}
	}

	return nil
}

// ValidatePropertyName checks a property name is a camelCase identifier.
// The duplicate check only runs when checkDuplicate is set, which is the case
// when a property is added interactively; validating an already accepted set
// never flags a name against itself.
func ValidatePropertyName(name string, existingNames []string, checkDuplicate bool) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{
			Kind:    KindEmptyName,
			Field:   "properties.name",
			Value:   name,
			Message: "property name cannot be empty",
		}
	}

	if utf8.RuneCountInString(name) > MaxPropertyNameLength {
		return &ValidationError{
			Kind:    KindTooLong,
			Field:   "properties.name",
			Value:   name,
			Message: fmt.Sprintf("property name must be at most %d characters", MaxPropertyNameLength),
		}
	}

	if !camelCasePattern.MatchString(name) {
		return &ValidationError{
			Kind:    KindInvalidCase,
			Field:   "properties.name",
			Value:   name,
			Message: "property name must be camelCase (e.g. userName)",
		}
	}

	if checkDuplicate && contains(existingNames, name) {
		return &ValidationError{
			Kind:    KindDuplicateName,
			Field:   "properties.name",
			Value:   name,
			Message: fmt.Sprintf("a property named '%s' already exists", name),
		}
	}

	return nil
}

// ValidateCombination rejects functional-only options on class components
func ValidateCombination(config GenerationConfig) error {
	if config.ComponentKind != Class {
		return nil
	}

	var offending []string
	if config.WrapWithMemo {
		offending = append(offending, "wrapWithMemo")
	}
	if config.UseForwardedRef {
		offending = append(offending, "useForwardedRef")
	}
	if len(config.EnabledHooks) > 0 {
		offending = append(offending, "enabledHooks")
	}

	if len(offending) == 0 {
		return nil
	}

	return &ValidationError{
		Kind:    KindIncompatibleClassOptions,
		Field:   offending[0],
		Value:   strings.Join(offending, ", "),
		Message: "class components cannot use hooks, memo or ref forwarding",
	}
}

// Validate runs every check that must pass before synthesis, returning the
// first failure. Property names are validated without the duplicate check.
func Validate(config GenerationConfig) error {
	if err := ValidateComponentName(config.ComponentName); err != nil {
		return err
	}

	for i, prop := range config.Properties {
		if err := ValidatePropertyName(prop.Name, nil, false); err != nil {
			if ve, ok := err.(*ValidationError); ok {
				ve.Field = fmt.Sprintf("properties[%d].name", i)
			}
			return err
		}
	}

	return ValidateCombination(config)
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

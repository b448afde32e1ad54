package component

import "fmt"

// ErrorKind discriminates configuration validation failures
type ErrorKind string

const (
	KindEmptyName                ErrorKind = "EmptyName"
	KindInvalidCase              ErrorKind = "InvalidCase"
	KindTooLong                  ErrorKind = "TooLong"
	KindDuplicateName            ErrorKind = "DuplicateName"
	KindIncompatibleClassOptions ErrorKind = "IncompatibleClassOptions"
)

// ValidationError represents a rejected generation configuration.
// Errors compare equal under errors.Is when their kinds match, so callers
// can test against the Err* sentinels below.
type ValidationError struct {
	Kind    ErrorKind
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("invalid %s: %s (value: %v)", e.Field, e.Message, e.Value)
}

func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrEmptyName                = &ValidationError{Kind: KindEmptyName, Message: "name cannot be empty"}
	ErrInvalidCase              = &ValidationError{Kind: KindInvalidCase, Message: "name has the wrong case"}
	ErrTooLong                  = &ValidationError{Kind: KindTooLong, Message: "name is too long"}
	ErrDuplicateName            = &ValidationError{Kind: KindDuplicateName, Message: "name is already used"}
	ErrIncompatibleClassOptions = &ValidationError{Kind: KindIncompatibleClassOptions, Message: "option requires a functional component"}
)

package noarg

import (
	"errors"
	"fmt"
)

// Sentinel results that are not failures.
var (
	// ErrHelpShown is returned after the help screen has been rendered.
	ErrHelpShown = errors.New("help shown")
	// ErrUsageShown is returned after the usage screen has been rendered.
	ErrUsageShown = errors.New("usage shown")
	// ErrDelegated is returned by Parse when the first token selected a sub-program
	// and that sub-program ran successfully.
	ErrDelegated = errors.New("delegated to sub-program")
)

// ErrorKind categorizes parse failures. It drives exit-code mapping (see
// ExitCodeManager) and errors.Is matching against the Err* kind sentinels.
type ErrorKind string

const (
	ErrorKindUnknownOption       ErrorKind = "unknown_option"
	ErrorKindDuplicateOption     ErrorKind = "duplicate_option"
	ErrorKindMissingRequired     ErrorKind = "missing_required"
	ErrorKindInvalidValue        ErrorKind = "invalid_value"
	ErrorKindMissingValue        ErrorKind = "missing_value"
	ErrorKindMultipleValues      ErrorKind = "multiple_values"
	ErrorKindArgumentCount       ErrorKind = "argument_count"
	ErrorKindInvalidNegation     ErrorKind = "invalid_negation"
	ErrorKindEqualAssignDisabled ErrorKind = "equal_assign_disabled"
	ErrorKindInternal            ErrorKind = "internal_error"
)

// Kind sentinels for errors.Is.
var (
	ErrUnknownOption       = &ParseError{Kind: ErrorKindUnknownOption}
	ErrDuplicateOption     = &ParseError{Kind: ErrorKindDuplicateOption}
	ErrMissingRequired     = &ParseError{Kind: ErrorKindMissingRequired}
	ErrInvalidValue        = &ParseError{Kind: ErrorKindInvalidValue}
	ErrMissingValue        = &ParseError{Kind: ErrorKindMissingValue}
	ErrMultipleValues      = &ParseError{Kind: ErrorKindMultipleValues}
	ErrArgumentCount       = &ParseError{Kind: ErrorKindArgumentCount}
	ErrInvalidNegation     = &ParseError{Kind: ErrorKindInvalidNegation}
	ErrEqualAssignDisabled = &ParseError{Kind: ErrorKindEqualAssignDisabled}
	ErrInternal            = &ParseError{Kind: ErrorKindInternal}
)

// ParseError is the single error type produced while parsing. Any ParseError aborts
// the whole parse call.
type ParseError struct {
	Kind    ErrorKind
	Message string
	// Option is the token that caused the error, e.g. "--name" or "-n".
	Option string
	// Suggestion is a close declared option for unknown option errors.
	Suggestion string
	// Err is the underlying cause, usually a *schema.TypeError.
	Err error
}

func (e *ParseError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s. Did you mean %s?", e.Message, e.Suggestion)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is matches kind sentinels: a target without a message matches any ParseError of
// the same kind.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok || t.Message != "" {
		return false
	}
	return t.Kind == e.Kind
}

// IsInternal reports whether err is a library bug rather than a user input error.
func IsInternal(err error) bool {
	return errors.Is(err, ErrInternal)
}

func newError(kind ErrorKind, option, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Option: option, Message: fmt.Sprintf(format, args...)}
}

const reportIssue = "This should never happen, please report this issue."

func internalError(format string, args ...any) *ParseError {
	return &ParseError{
		Kind:    ErrorKindInternal,
		Message: fmt.Sprintf(format, args...) + " " + reportIssue,
	}
}

package noarg

import (
	"errors"
)

// ExitError requests a specific exit code from inside an action.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCodeDefaults holds the codes used when no specific mapping matches.
type ExitCodeDefaults struct {
	Success         int // default: 0
	GeneralError    int // default: 1
	MisusageError   int // default: 2
	ValidationError int // default: 3
	InternalError   int // default: 70
}

func defaultExitDefaults() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1, MisusageError: 2, ValidationError: 3, InternalError: 70}
}

// ExitCodeManager maps errors to process exit codes.
type ExitCodeManager struct {
	codesByKind map[ErrorKind]int
	defaults    ExitCodeDefaults
}

func newExitCodeManager() *ExitCodeManager {
	m := &ExitCodeManager{codesByKind: make(map[ErrorKind]int)}
	m.Default(defaultExitDefaults())
	return m
}

// ExitCodes returns the exit-code manager of p, creating it on first use.
func (p *Program) ExitCodes() *ExitCodeManager {
	if p.exitCodes == nil {
		p.exitCodes = newExitCodeManager()
	}
	return p.exitCodes
}

// DefineKind overrides the exit code of one parse error kind.
func (e *ExitCodeManager) DefineKind(kind ErrorKind, code int) *ExitCodeManager {
	e.codesByKind[kind] = code
	return e
}

// Default replaces the default codes. Kind mappings set with DefineKind are kept.
func (e *ExitCodeManager) Default(d ExitCodeDefaults) *ExitCodeManager {
	e.defaults = d
	return e
}

// Resolve converts the result of a run into an exit code.
// Precedence:
//  1. nil and help, usage or delegation sentinels: Success
//  2. ExitError: the requested code
//  3. ParseError: DefineKind mapping, then validation, internal or misusage default
//  4. GeneralError
func (e *ExitCodeManager) Resolve(err error) int {
	if err == nil || errors.Is(err, ErrHelpShown) || errors.Is(err, ErrUsageShown) || errors.Is(err, ErrDelegated) {
		return e.defaults.Success
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var perr *ParseError
	if errors.As(err, &perr) {
		if code, ok := e.codesByKind[perr.Kind]; ok {
			return code
		}
		switch perr.Kind {
		case ErrorKindInvalidValue:
			return e.defaults.ValidationError
		case ErrorKindInternal:
			return e.defaults.InternalError
		default:
			return e.defaults.MisusageError
		}
	}
	return e.defaults.GeneralError
}

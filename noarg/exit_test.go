package noarg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodes(t *testing.T) {
	t.Parallel()

	m := New("app", "").ExitCodes()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, 0},
		{"help", ErrHelpShown, 0},
		{"usage", fmt.Errorf("wrapped: %w", ErrUsageShown), 0},
		{"delegated", ErrDelegated, 0},
		{"unknown option", newError(ErrorKindUnknownOption, "--x", "Unknown option --x entered"), 2},
		{"argument count", newError(ErrorKindArgumentCount, "", "Expected 1 arguments, missing: 1, [a]"), 2},
		{"invalid value", &ParseError{Kind: ErrorKindInvalidValue, Message: "bad"}, 3},
		{"internal", internalError("broken."), 70},
		{"exit error", &ExitError{Code: 42, Err: errors.New("custom")}, 42},
		{"general", errors.New("boom"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Resolve(tt.err))
		})
	}
}

func TestExitCodeOverrides(t *testing.T) {
	t.Parallel()

	p := New("app", "")
	p.ExitCodes().DefineKind(ErrorKindUnknownOption, 64)
	assert.Equal(t, 64, p.ExitCodes().Resolve(ErrUnknownOption))
	assert.Equal(t, 2, p.ExitCodes().Resolve(ErrDuplicateOption))

	p.ExitCodes().Default(ExitCodeDefaults{GeneralError: 9, MisusageError: 8})
	assert.Equal(t, 64, p.ExitCodes().Resolve(ErrUnknownOption))
	assert.Equal(t, 8, p.ExitCodes().Resolve(ErrDuplicateOption))
	assert.Equal(t, 9, p.ExitCodes().Resolve(errors.New("boom")))
}

func TestExitErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "exit", (&ExitError{Code: 3}).Error())
	inner := errors.New("inner")
	err := &ExitError{Code: 3, Err: inner}
	assert.Equal(t, "inner", err.Error())
	assert.ErrorIs(t, err, inner)
}

func TestParseErrorIs(t *testing.T) {
	t.Parallel()

	err := newError(ErrorKindDuplicateOption, "--a", "Duplicate option --a entered")
	assert.ErrorIs(t, err, ErrDuplicateOption)
	assert.NotErrorIs(t, err, ErrUnknownOption)
	assert.NotErrorIs(t, err, newError(ErrorKindDuplicateOption, "--a", "Duplicate option --a entered"))
	assert.False(t, IsInternal(err))
	assert.True(t, IsInternal(fmt.Errorf("wrap: %w", internalError("x."))))
}

package noarg

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"
)

// Middleware wraps the action of a program.
type Middleware func(next ActionFunc) ActionFunc

// Use adds middleware around the action of p and of every sub-program below it.
// The first middleware is the outermost.
func (p *Program) Use(mw ...Middleware) *Program {
	p.middleware = append(p.middleware, mw...)
	return p
}

// wrap applies the middleware of every ancestor, root first, then the middleware of p.
func (p *Program) wrap(action ActionFunc) ActionFunc {
	var chain []Middleware
	for q := p; q != nil; q = q.parent {
		chain = append(append([]Middleware(nil), q.middleware...), chain...)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		action = chain[i](action)
	}
	return action
}

// RecoveryError is returned by Recovery when an action panics.
type RecoveryError struct {
	Panic   any
	Program string
	Stack   []byte
}

func (e *RecoveryError) Error() string {
	return fmt.Sprintf("program '%s' panicked: %v", e.Program, e.Panic)
}

// Recovery turns a panicking action into a *RecoveryError carrying the stack.
func Recovery() Middleware {
	return func(next ActionFunc) ActionFunc {
		return func(ctx context.Context, out *Output) (err error) {
			defer func() {
				if r := recover(); r != nil {
					stack := make([]byte, 8<<10)
					stack = stack[:runtime.Stack(stack, false)]
					err = &RecoveryError{Panic: r, Program: programName(ctx), Stack: stack}
				}
			}()
			return next(ctx, out)
		}
	}
}

// TimeoutError is returned by Timeout when the action outlives its deadline.
type TimeoutError struct {
	Duration time.Duration
	Program  string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("program '%s' timed out after %s", e.Program, e.Duration)
}

// Timeout cancels the action context after d. An action that returns
// context.DeadlineExceeded is reported as a *TimeoutError.
func Timeout(d time.Duration) Middleware {
	return func(next ActionFunc) ActionFunc {
		return func(ctx context.Context, out *Output) error {
			ctx, cancel := context.WithTimeout(ctx, d)
			defer cancel()

			err := next(ctx, out)
			if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return &TimeoutError{Duration: d, Program: programName(ctx)}
			}
			return err
		}
	}
}

// LogActions logs the start and the outcome of every action through the program
// logger at debug level.
func (p *Program) LogActions() *Program {
	return p.Use(func(next ActionFunc) ActionFunc {
		return func(ctx context.Context, out *Output) error {
			name := programName(ctx)
			start := time.Now()
			p.logger.Debug("%s: running", name)
			err := next(ctx, out)
			if err != nil {
				p.logger.Debug("%s: failed after %s: %v", name, time.Since(start).Round(time.Microsecond), err)
				return err
			}
			p.logger.Debug("%s: done in %s", name, time.Since(start).Round(time.Microsecond))
			return nil
		}
	})
}

type programKey struct{}

// ProgramFromContext returns the program whose action is running.
func ProgramFromContext(ctx context.Context) (*Program, bool) {
	p, ok := ctx.Value(programKey{}).(*Program)
	return p, ok
}

func programName(ctx context.Context) string {
	if p, ok := ProgramFromContext(ctx); ok {
		return p.Path()
	}
	return ""
}

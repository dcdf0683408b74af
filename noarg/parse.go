package noarg

import (
	"context"
	"errors"
	"os"
)

type helpRequest int

const (
	noHelp helpRequest = iota
	helpRequested
	usageRequested
)

// detectHelp returns the first help or usage marker in tokens.
func detectHelp(tokens []string) helpRequest {
	for _, tok := range tokens {
		switch tok {
		case "--help", "-h":
			return helpRequested
		case "--usage", "-u":
			return usageRequested
		}
	}
	return noHelp
}

// Parse resolves tokens against p. When the first token names a sub-program the
// sub-program is started with the remaining tokens and ErrDelegated is returned on
// success. Help and usage markers render to the IO output and return ErrHelpShown or
// ErrUsageShown. Any other failure is a *ParseError and no partial output is returned.
func (p *Program) Parse(tokens []string) (*Output, error) {
	return p.parse(context.Background(), tokens)
}

func (p *Program) parse(ctx context.Context, tokens []string) (*Output, error) {
	if len(tokens) > 0 {
		if sub, ok := p.Lookup(tokens[0]); ok {
			if err := sub.start(ctx, tokens[1:]); err != nil {
				return nil, err
			}
			return nil, ErrDelegated
		}
	}

	if !p.config.DisableHelp {
		switch detectHelp(tokens) {
		case helpRequested:
			if err := p.renderer.RenderHelp(p.ioManager.Out(), p); err != nil {
				return nil, err
			}
			return nil, ErrHelpShown
		case usageRequested:
			if err := p.renderer.RenderUsages(p.ioManager.Out(), p); err != nil {
				return nil, err
			}
			return nil, ErrUsageShown
		}
	}

	sys := p.system
	positional, flagTokens, err := Divide(tokens, sys)
	if err != nil {
		return nil, err
	}

	args, optArgs, listArgs, err := p.resolvePositional(positional)
	if err != nil {
		return nil, err
	}

	table := p.flagTable()
	agg := acquireAggregator(sys, table, p.tracef())
	defer releaseAggregator(agg)
	accs, err := agg.run(flagTokens)
	if err != nil {
		return nil, err
	}
	flags, err := p.resolveFlags(accs, table)
	if err != nil {
		return nil, err
	}

	return &Output{Flags: flags, Args: args, OptArgs: optArgs, ListArgs: listArgs}, nil
}

// Start parses tokens and runs the action of the program that handled them. A
// successful delegation returns nil; help and usage return their sentinels.
func (p *Program) Start(tokens []string) error {
	return p.start(context.Background(), tokens)
}

func (p *Program) start(ctx context.Context, tokens []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	out, err := p.parse(ctx, tokens)
	switch {
	case errors.Is(err, ErrDelegated):
		return nil
	case err != nil:
		return err
	}
	if p.action == nil {
		return nil
	}
	ctx = context.WithValue(ctx, programKey{}, p)
	return p.wrap(p.action)(ctx, out)
}

// Run starts p with os.Args[1:]. Help and usage are not errors. Parse errors are
// reported through the logger before being returned.
func (p *Program) Run(ctx context.Context) error {
	return p.RunWithArgs(ctx, os.Args[1:])
}

// RunWithArgs is Run with explicit tokens.
func (p *Program) RunWithArgs(ctx context.Context, tokens []string) error {
	err := p.start(ctx, tokens)
	if errors.Is(err, ErrHelpShown) || errors.Is(err, ErrUsageShown) {
		return nil
	}
	if err != nil {
		p.report(err)
	}
	return err
}

func (p *Program) report(err error) {
	var perr *ParseError
	if errors.As(err, &perr) {
		p.logger.Error("%s", perr.Error())
		if !p.config.DisableHelp && perr.Kind != ErrorKindInternal {
			p.logger.Info("Run '%s --help' for usage.", p.Path())
		}
		return
	}
	p.logger.Error("%s", err.Error())
}

// RunAndGetExitCode runs p and maps the result through ExitCodes.
func (p *Program) RunAndGetExitCode(ctx context.Context) int {
	return p.ExitCodes().Resolve(p.RunWithArgs(ctx, os.Args[1:]))
}

// RunAndExit runs p and terminates the process with the mapped exit code.
func (p *Program) RunAndExit() {
	os.Exit(p.RunAndGetExitCode(context.Background()))
}

package noarg

import (
	"context"
	"fmt"
	"regexp"

	noargio "github.com/dzonerzy/go-noarg/io"
	"github.com/dzonerzy/go-noarg/schema"
)

// ActionFunc runs a program after a successful parse.
type ActionFunc func(ctx context.Context, out *Output) error

var nameRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_\-]*$`)

// Program is a command with positional slots, flags and sub-programs. Declaration
// methods are not safe for concurrent use with parsing.
type Program struct {
	name        string
	description string
	parent      *Program

	system System
	config Config

	arguments         []Argument
	optionalArguments []Argument
	listArgument      *ListArgument

	flags       []FlagSpec
	globalFlags []FlagSpec

	programs   []*Program
	action     ActionFunc
	middleware []Middleware

	ioManager *noargio.IOManager
	logger    *noargio.Logger
	prompter  noargio.Prompter
	renderer  Renderer
	exitCodes *ExitCodeManager
	trace     bool
}

// New creates a root program with DefaultSystem options.
func New(name, description string) *Program {
	validateName("program", name)
	io := noargio.New()
	return &Program{
		name:        name,
		description: description,
		system:      DefaultSystem(),
		ioManager:   io,
		logger:      noargio.NewLogger(io),
		renderer:    TextRenderer{},
	}
}

func validateName(what, name string) {
	if !nameRe.MatchString(name) {
		panic(fmt.Sprintf("noarg: invalid %s name %q", what, name))
	}
}

// System replaces the parsing options. Sub-programs created afterwards inherit them.
func (p *Program) System(sys System) *Program {
	p.system = sys
	return p
}

// DisableHelp turns off --help/-h and --usage/-u handling.
func (p *Program) DisableHelp() *Program {
	p.config.DisableHelp = true
	return p
}

// Argument declares the next required positional slot.
func (p *Program) Argument(name string, typ schema.Primitive, description string) *Program {
	validateName("argument", name)
	p.arguments = append(p.arguments, Argument{Name: name, Type: typ, Description: description})
	return p
}

// OptionalArgument declares the next optional positional slot.
func (p *Program) OptionalArgument(name string, typ schema.Primitive, description string) *Program {
	validateName("argument", name)
	p.optionalArguments = append(p.optionalArguments, Argument{Name: name, Type: typ, Description: description})
	return p
}

// ListArgument declares the trailing variadic slot, replacing any previous one.
func (p *Program) ListArgument(name string, typ schema.Primitive, description string, minLength, maxLength int) *Program {
	validateName("argument", name)
	p.listArgument = &ListArgument{
		Argument:  Argument{Name: name, Type: typ, Description: description},
		MinLength: minLength,
		MaxLength: maxLength,
	}
	return p
}

// Flag declares a flag accepted as --name or through the schema aliases.
func (p *Program) Flag(name string, s schema.Schema) *Program {
	validateName("flag", name)
	p.flags = append(p.flags, FlagSpec{Name: name, Schema: s})
	return p
}

// GlobalFlag declares a flag also accepted by every sub-program.
func (p *Program) GlobalFlag(name string, s schema.Schema) *Program {
	validateName("flag", name)
	p.globalFlags = append(p.globalFlags, FlagSpec{Name: name, Schema: s, Global: true})
	return p
}

// Action sets the function run by Start after a successful parse.
func (p *Program) Action(fn ActionFunc) *Program {
	p.action = fn
	return p
}

// Program registers a sub-program selected when it is the first token. The child
// takes a snapshot of the current System, Config, IO, prompter and renderer, so
// settings changed on p afterwards do not reach it. It gets its own copy of the
// logger and sees every global flag of its ancestors.
func (p *Program) Program(name, description string) *Program {
	validateName("program", name)
	child := &Program{
		name:        name,
		description: description,
		parent:      p,
		system:      p.system,
		config:      p.config,
		ioManager:   p.ioManager,
		logger:      p.logger.Clone(),
		prompter:    p.prompter,
		renderer:    p.renderer,
		trace:       p.trace,
	}
	for i, existing := range p.programs {
		if existing.name == name {
			p.programs[i] = child
			return child
		}
	}
	p.programs = append(p.programs, child)
	return child
}

// Parent returns the program that registered p, or nil for a root.
func (p *Program) Parent() *Program { return p.parent }

// WithIO replaces the IO manager and the logger bound to it. Sub-programs
// registered before the call keep their own IO.
func (p *Program) WithIO(m *noargio.IOManager) *Program {
	p.ioManager = m
	p.logger = noargio.NewLogger(m)
	if p.trace {
		p.logger.WithLevel(noargio.LevelDebug)
	}
	return p
}

// WithPrompter sets the Prompter used for flags declared with Ask.
func (p *Program) WithPrompter(pr noargio.Prompter) *Program {
	p.prompter = pr
	return p
}

// WithRenderer replaces the help and usage renderer.
func (p *Program) WithRenderer(r Renderer) *Program {
	p.renderer = r
	return p
}

// Trace logs every aggregator transition at debug level.
func (p *Program) Trace(enabled bool) *Program {
	p.trace = enabled
	if enabled {
		p.logger.WithLevel(noargio.LevelDebug)
	} else {
		p.logger.WithLevel(noargio.LevelInfo)
	}
	return p
}

// IO returns the IO manager.
func (p *Program) IO() *noargio.IOManager { return p.ioManager }

// Logger returns the logger used for prompt feedback and traces.
func (p *Program) Logger() *noargio.Logger { return p.logger }

// Name returns the program name.
func (p *Program) Name() string { return p.name }

// Description returns the program description.
func (p *Program) Description() string { return p.description }

// Path returns the names from the root program down to p, space separated.
func (p *Program) Path() string {
	if p.parent == nil {
		return p.name
	}
	return p.parent.Path() + " " + p.name
}

// Arguments returns the required positional slots.
func (p *Program) Arguments() []Argument { return append([]Argument(nil), p.arguments...) }

// OptionalArguments returns the optional positional slots.
func (p *Program) OptionalArguments() []Argument {
	return append([]Argument(nil), p.optionalArguments...)
}

// ListArgumentSpec returns the variadic slot, if any.
func (p *Program) ListArgumentSpec() (ListArgument, bool) {
	if p.listArgument == nil {
		return ListArgument{}, false
	}
	return *p.listArgument, true
}

// Flags returns every flag accepted by p, inherited global flags first.
func (p *Program) Flags() []FlagSpec {
	return append([]FlagSpec(nil), p.flagTable().specs...)
}

// Programs returns the registered sub-programs in registration order.
func (p *Program) Programs() []*Program { return append([]*Program(nil), p.programs...) }

// Lookup returns the sub-program registered under name.
func (p *Program) Lookup(name string) (*Program, bool) {
	for _, child := range p.programs {
		if child.name == name {
			return child, true
		}
	}
	return nil, false
}

func (p *Program) flagTable() *flagTable {
	var chain []*Program
	for q := p.parent; q != nil; q = q.parent {
		chain = append([]*Program{q}, chain...)
	}
	t := newFlagTable()
	for _, q := range chain {
		for _, spec := range q.globalFlags {
			t.add(spec)
		}
	}
	for _, spec := range p.globalFlags {
		t.add(spec)
	}
	for _, spec := range p.flags {
		t.add(spec)
	}
	return t
}

func (p *Program) asker() asker {
	pr := p.prompter
	if pr == nil {
		pr = noargio.NewPrompter(p.ioManager)
	}
	return asker{prompter: pr, io: p.ioManager, log: p.logger}
}

func (p *Program) tracef() func(string, ...any) {
	if !p.trace {
		return nil
	}
	return func(format string, args ...any) {
		p.logger.Debug("%s: "+format, append([]any{p.Path()}, args...)...)
	}
}

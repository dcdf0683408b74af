// Package schema validates and converts raw command-line strings into typed values.
//
// A Schema is one of a closed set of kinds: Boolean, String, Number, Array and Tuple.
// Schemas are immutable values: every builder method returns an updated copy, so a
// schema can be declared once and reused for several flags or arguments without
// aliasing.
//
//	port := schema.NewNumber().Integer().Min(1).Max(65535).Aliases("p").Default(8080.0)
//	tags := schema.NewArray(schema.NewString().ToCase(schema.Lower)).MinLength(1)
package schema

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Kind identifies the variant of a Schema.
type Kind int

const (
	KindBoolean Kind = iota + 1
	KindString
	KindNumber
	KindArray
	KindTuple
)

// String returns the display name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindArray:
		return "array"
	case KindTuple:
		return "tuple"
	default:
		return "unknown"
	}
}

// Schema is implemented by Boolean, String, Number, Array and Tuple only.
type Schema interface {
	// Kind reports the variant.
	Kind() Kind
	// Name is the human readable type name used in prompts and help.
	Name() string
	// Config returns a copy of the common configuration.
	Config() Config
	// CheckType validates raw and returns the decoded value or a *TypeError.
	CheckType(raw Raw) (any, error)
	// Parse is CheckType folded into a Parsed record.
	Parse(raw Raw) Parsed

	sealed()
}

// Primitive is a Schema decoding exactly one string: Boolean, String or Number.
type Primitive interface {
	Schema
	primitive()
}

// Config is the configuration shared by every schema kind.
type Config struct {
	Aliases     []string
	Description string
	Required    bool
	Default     any
	HasDefault  bool
	Ask         string
}

// clone copies the slices of c. List defaults hold scalars, so a shallow copy
// keeps callers from writing through to the schema.
func (c Config) clone() Config {
	c.Aliases = slices.Clone(c.Aliases)
	if d, ok := c.Default.([]any); ok {
		c.Default = slices.Clone(d)
	}
	return c
}

// HasAlias reports whether alias is in the alias set.
func (c Config) HasAlias(alias string) bool {
	return slices.Contains(c.Aliases, alias)
}

// DefaultQuestion is used by Ask when no question is given.
const DefaultQuestion = "Enter a value:"

var optionNameRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_\-]*$`)

// withAliases deduplicates aliases and sorts them ascending by length, keeping the
// declaration order between aliases of equal length.
func (c Config) withAliases(aliases []string) Config {
	out := make([]string, 0, len(aliases))
	for _, a := range aliases {
		if !optionNameRe.MatchString(a) {
			panic(fmt.Sprintf("schema: invalid alias name %q", a))
		}
		if !slices.Contains(out, a) {
			out = append(out, a)
		}
	}
	slices.SortStableFunc(out, func(a, b string) int { return len(a) - len(b) })
	c.Aliases = out
	return c
}

func (c Config) withAsk(question []string) Config {
	c.Ask = DefaultQuestion
	if len(question) > 0 && strings.TrimSpace(question[0]) != "" {
		c.Ask = question[0]
	}
	return c
}

func (c Config) withDefault(v any) Config {
	c.Default = v
	c.HasDefault = true
	return c
}

// Raw is the input of a schema: either a single value or a sequence.
type Raw struct {
	values []string
	list   bool
}

// Value wraps a single raw string.
func Value(s string) Raw { return Raw{values: []string{s}} }

// List wraps a sequence of raw strings.
func List(values ...string) Raw {
	return Raw{values: slices.Clone(values), list: true}
}

// IsList reports whether the raw input is a sequence.
func (r Raw) IsList() bool { return r.list }

// Values returns the raw strings.
func (r Raw) Values() []string { return slices.Clone(r.values) }

// single returns the single raw string, or false if r is a sequence.
func (r Raw) single() (string, bool) {
	if r.list || len(r.values) != 1 {
		return "", false
	}
	return r.values[0], true
}

// Parsed is the outcome of Schema.Parse.
type Parsed struct {
	Value any
	Error string
	Valid bool
}

// TypeError is returned by CheckType when a value does not satisfy its schema.
type TypeError struct {
	Kind    Kind
	Message string
}

func (e *TypeError) Error() string { return e.Message }

func typeErrorf(kind Kind, format string, args ...any) error {
	return &TypeError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func parse(s Schema, raw Raw) Parsed {
	v, err := s.CheckType(raw)
	if err != nil {
		return Parsed{Error: err.Error()}
	}
	return Parsed{Value: v, Valid: true}
}

func expectSingle(kind Kind, raw Raw) (string, error) {
	s, ok := raw.single()
	if !ok {
		return "", typeErrorf(kind, "Expected a single %s value", kind)
	}
	return s, nil
}

// IsList reports whether s decodes a sequence (Array or Tuple).
func IsList(s Schema) bool {
	k := s.Kind()
	return k == KindArray || k == KindTuple
}

// IsPrimitive reports whether s decodes a single value.
func IsPrimitive(s Schema) bool {
	_, ok := s.(Primitive)
	return ok
}

package schema

import (
	"slices"
	"strings"
)

// Tuple is a fixed-length sequence where every position has its own schema.
type Tuple struct {
	config Config
	elems  []Primitive
}

// NewTuple returns a Tuple of the given element schemas.
func NewTuple(elems ...Primitive) Tuple { return Tuple{elems: slices.Clone(elems)} }

func (Tuple) Kind() Kind       { return KindTuple }
func (Tuple) Name() string     { return KindTuple.String() }
func (t Tuple) Config() Config { return t.config.clone() }
func (Tuple) sealed()          {}

// Elems returns the element schemas in order.
func (t Tuple) Elems() []Primitive { return slices.Clone(t.elems) }

// CheckType validates a sequence of exactly len(Elems()) values.
func (t Tuple) CheckType(raw Raw) (any, error) {
	if !raw.IsList() {
		return nil, typeErrorf(KindTuple, "Expected a tuple of (%s)", t.signature())
	}
	if len(raw.values) != len(t.elems) {
		return nil, typeErrorf(KindTuple, "Expected %d items (%s), got %d", len(t.elems), t.signature(), len(raw.values))
	}

	out := make([]any, 0, len(t.elems))
	for i, elem := range t.elems {
		decoded, err := elem.CheckType(Value(raw.values[i]))
		if err != nil {
			return nil, err
		}
		out = append(out, decoded)
	}
	return out, nil
}

// Parse decodes raw into a Parsed record.
func (t Tuple) Parse(raw Raw) Parsed { return parse(t, raw) }

func (t Tuple) signature() string {
	names := make([]string, len(t.elems))
	for i, e := range t.elems {
		names[i] = e.Name()
	}
	return strings.Join(names, ", ")
}

// Default sets the elements used when the flag is absent. v is copied.
func (t Tuple) Default(v []any) Tuple {
	t.config = t.config.withDefault(slices.Clone(v))
	return t
}

// Ask prompts once per element when the flag is absent.
func (t Tuple) Ask(question ...string) Tuple {
	t.config = t.config.withAsk(question)
	return t
}

// Aliases sets the short names of the flag.
func (t Tuple) Aliases(aliases ...string) Tuple {
	t.config = t.config.withAliases(aliases)
	return t
}

// Required marks the flag as mandatory.
func (t Tuple) Required() Tuple {
	t.config.Required = true
	return t
}

// Optional clears Required.
func (t Tuple) Optional() Tuple {
	t.config.Required = false
	return t
}

// Description sets the help text.
func (t Tuple) Description(text string) Tuple {
	t.config.Description = text
	return t
}

package schema

import "slices"

// Array is a homogeneous sequence validated element by element.
type Array struct {
	config    Config
	elem      Primitive
	minLength int
	maxLength int
}

// NewArray returns an Array whose elements are validated by elem.
func NewArray(elem Primitive) Array { return Array{elem: elem} }

func (Array) Kind() Kind       { return KindArray }
func (Array) Name() string     { return KindArray.String() }
func (a Array) Config() Config { return a.config.clone() }
func (Array) sealed()          {}

// Elem returns the element schema.
func (a Array) Elem() Primitive { return a.elem }

// Bounds returns the length constraints; zero means unbounded.
func (a Array) Bounds() (minLength, maxLength int) { return a.minLength, a.maxLength }

// CheckType validates a sequence. The length bounds are checked before any element,
// and the first element failure is returned as is.
func (a Array) CheckType(raw Raw) (any, error) {
	if !raw.IsList() {
		return nil, typeErrorf(KindArray, "Expected an array of %s", a.elem.Name())
	}
	if a.minLength > 0 && len(raw.values) < a.minLength {
		return nil, typeErrorf(KindArray, "Minimum %d items expected", a.minLength)
	}
	if a.maxLength > 0 && len(raw.values) > a.maxLength {
		return nil, typeErrorf(KindArray, "Maximum %d items expected", a.maxLength)
	}

	out := make([]any, 0, len(raw.values))
	for _, v := range raw.values {
		decoded, err := a.elem.CheckType(Value(v))
		if err != nil {
			return nil, err
		}
		out = append(out, decoded)
	}
	return out, nil
}

// Parse decodes raw into a Parsed record.
func (a Array) Parse(raw Raw) Parsed { return parse(a, raw) }

// MinLength sets the minimum number of items.
func (a Array) MinLength(n int) Array {
	a.minLength = n
	return a
}

// MaxLength sets the maximum number of items.
func (a Array) MaxLength(n int) Array {
	a.maxLength = n
	return a
}

// Default sets the items used when the flag is absent. v is copied.
func (a Array) Default(v []any) Array {
	a.config = a.config.withDefault(slices.Clone(v))
	return a
}

// Ask prompts for each item in turn when the flag is absent, until an empty
// answer once MinLength items were given.
func (a Array) Ask(question ...string) Array {
	a.config = a.config.withAsk(question)
	return a
}

// Aliases sets the short names of the flag.
func (a Array) Aliases(aliases ...string) Array {
	a.config = a.config.withAliases(aliases)
	return a
}

// Required marks the flag as mandatory.
func (a Array) Required() Array {
	a.config.Required = true
	return a
}

// Optional clears Required.
func (a Array) Optional() Array {
	a.config.Required = false
	return a
}

// Description sets the help text.
func (a Array) Description(text string) Array {
	a.config.Description = text
	return a
}

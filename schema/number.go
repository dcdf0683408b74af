package schema

import (
	"math"
	"strconv"
	"strings"
)

// Number decodes a decimal or floating point number into a float64.
type Number struct {
	config  Config
	min     *float64
	max     *float64
	integer bool
}

// NewNumber returns an unconstrained Number schema.
func NewNumber() Number { return Number{} }

func (Number) Kind() Kind       { return KindNumber }
func (Number) Name() string     { return KindNumber.String() }
func (n Number) Config() Config { return n.config.clone() }
func (Number) sealed()          {}
func (Number) primitive()       {}

// CheckType decodes raw into a float64.
func (n Number) CheckType(raw Raw) (any, error) {
	s, err := expectSingle(KindNumber, raw)
	if err != nil {
		return nil, err
	}
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, typeErrorf(KindNumber, "`%s` is not a valid number", s)
	}
	if n.integer && v != math.Trunc(v) {
		return nil, typeErrorf(KindNumber, "`%s` is not an integer", s)
	}
	if n.min != nil && v < *n.min {
		return nil, typeErrorf(KindNumber, "Minimum value %s expected", formatFloat(*n.min))
	}
	if n.max != nil && v > *n.max {
		return nil, typeErrorf(KindNumber, "Maximum value %s expected", formatFloat(*n.max))
	}
	return v, nil
}

// Parse decodes raw into a Parsed record.
func (n Number) Parse(raw Raw) Parsed { return parse(n, raw) }

// Min sets the smallest accepted value.
func (n Number) Min(v float64) Number {
	n.min = &v
	return n
}

// Max sets the largest accepted value.
func (n Number) Max(v float64) Number {
	n.max = &v
	return n
}

// Integer rejects values with a fractional part.
func (n Number) Integer() Number {
	n.integer = true
	return n
}

// Default sets the value used when the flag is absent.
func (n Number) Default(v float64) Number {
	n.config = n.config.withDefault(v)
	return n
}

// Ask prompts interactively when the flag is absent.
func (n Number) Ask(question ...string) Number {
	n.config = n.config.withAsk(question)
	return n
}

// Aliases sets the short names of the flag.
func (n Number) Aliases(aliases ...string) Number {
	n.config = n.config.withAliases(aliases)
	return n
}

// Required marks the flag as mandatory.
func (n Number) Required() Number {
	n.config.Required = true
	return n
}

// Optional clears Required.
func (n Number) Optional() Number {
	n.config.Required = false
	return n
}

// Description sets the help text.
func (n Number) Description(text string) Number {
	n.config.Description = text
	return n
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package schema

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

// Case is a case transform applied by String before the enum check.
type Case int

const (
	NoCase Case = iota
	Lower
	Upper
)

// String accepts any text, optionally constrained by a regular expression, length
// bounds and an enum. Input is trimmed before validation.
type String struct {
	config    Config
	regex     *regexp.Regexp
	minLength int
	maxLength int
	toCase    Case
	enum      []string
}

// NewString returns an unconstrained String schema.
func NewString() String { return String{} }

func (String) Kind() Kind       { return KindString }
func (String) Name() string     { return KindString.String() }
func (s String) Config() Config { return s.config.clone() }
func (String) sealed()          {}
func (String) primitive()       {}

// CheckType validates raw and returns the (possibly case-transformed) string.
func (s String) CheckType(raw Raw) (any, error) {
	v, err := expectSingle(KindString, raw)
	if err != nil {
		return nil, err
	}
	v = strings.TrimSpace(v)

	if s.regex != nil && !s.regex.MatchString(v) {
		return nil, typeErrorf(KindString, "`%s` doesn't match regex `%s`", v, s.regex)
	}
	n := utf8.RuneCountInString(v)
	if s.minLength > 0 && n < s.minLength {
		return nil, typeErrorf(KindString, "Minimum %d characters expected", s.minLength)
	}
	if s.maxLength > 0 && n > s.maxLength {
		return nil, typeErrorf(KindString, "Maximum %d characters expected", s.maxLength)
	}

	switch s.toCase {
	case Lower:
		v = strings.ToLower(v)
	case Upper:
		v = strings.ToUpper(v)
	}

	if len(s.enum) > 0 && !slices.Contains(s.enum, v) {
		return nil, typeErrorf(KindString, "%q is not in enum [%s]", v, strings.Join(s.enum, ", "))
	}
	return v, nil
}

// Parse decodes raw into a Parsed record.
func (s String) Parse(raw Raw) Parsed { return parse(s, raw) }

// Regex requires the trimmed input to match re.
func (s String) Regex(re *regexp.Regexp) String {
	s.regex = re
	return s
}

// MustRegex compiles pattern and calls Regex. It panics if the pattern is invalid.
func (s String) MustRegex(pattern string) String {
	return s.Regex(regexp.MustCompile(pattern))
}

// MinLength sets the minimum number of characters.
func (s String) MinLength(n int) String {
	s.minLength = n
	return s
}

// MaxLength sets the maximum number of characters.
func (s String) MaxLength(n int) String {
	s.maxLength = n
	return s
}

// ToCase converts the value before the enum check.
func (s String) ToCase(c Case) String {
	s.toCase = c
	return s
}

// Enum restricts the value to one of values.
func (s String) Enum(values ...string) String {
	s.enum = slices.Clone(values)
	return s
}

// EnumValues returns the allowed values, if any.
func (s String) EnumValues() []string { return slices.Clone(s.enum) }

// Default sets the value used when the flag is absent. It is not validated.
func (s String) Default(v string) String {
	s.config = s.config.withDefault(v)
	return s
}

// Ask prompts for the value when the flag is absent. An empty question uses
// DefaultQuestion.
func (s String) Ask(question ...string) String {
	s.config = s.config.withAsk(question)
	return s
}

// Aliases sets the short names, matched with a single dash.
func (s String) Aliases(aliases ...string) String {
	s.config = s.config.withAliases(aliases)
	return s
}

// Required fails the parse when the flag is absent and has no default.
func (s String) Required() String {
	s.config.Required = true
	return s
}

// Optional clears Required.
func (s String) Optional() String {
	s.config.Required = false
	return s
}

// Description sets the help text.
func (s String) Description(text string) String {
	s.config.Description = text
	return s
}

package schema

import "strings"

// Boolean accepts "true"/"yes" and "false"/"no", case-insensitively.
type Boolean struct {
	config Config
}

// NewBoolean returns a Boolean schema.
func NewBoolean() Boolean { return Boolean{} }

func (Boolean) Kind() Kind       { return KindBoolean }
func (Boolean) Name() string     { return KindBoolean.String() }
func (b Boolean) Config() Config { return b.config.clone() }
func (Boolean) sealed()          {}
func (Boolean) primitive()       {}

// CheckType decodes raw into a bool.
func (b Boolean) CheckType(raw Raw) (any, error) {
	s, err := expectSingle(KindBoolean, raw)
	if err != nil {
		return nil, err
	}
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "true", "yes":
		return true, nil
	case "false", "no":
		return false, nil
	}
	return nil, typeErrorf(KindBoolean, "`%s` is not a valid boolean", s)
}

// Parse decodes raw into a Parsed record.
func (b Boolean) Parse(raw Raw) Parsed { return parse(b, raw) }

// Default sets the value used when the flag is absent.
func (b Boolean) Default(v bool) Boolean {
	b.config = b.config.withDefault(v)
	return b
}

// Ask prompts interactively when the flag is absent.
func (b Boolean) Ask(question ...string) Boolean {
	b.config = b.config.withAsk(question)
	return b
}

// Aliases sets the short names of the flag.
func (b Boolean) Aliases(aliases ...string) Boolean {
	b.config = b.config.withAliases(aliases)
	return b
}

// Required marks the flag as mandatory.
func (b Boolean) Required() Boolean {
	b.config.Required = true
	return b
}

// Optional clears Required.
func (b Boolean) Optional() Boolean {
	b.config.Required = false
	return b
}

// Description sets the help text.
func (b Boolean) Description(text string) Boolean {
	b.config.Description = text
	return b
}

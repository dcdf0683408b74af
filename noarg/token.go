package noarg

import "strings"

// TokenKind is the lexical category of a command-line token.
type TokenKind int

const (
	// TokenValue is any token that is neither a flag nor an alias.
	TokenValue TokenKind = iota
	// TokenFlag is "--name", "--name=value" or "--name\no".
	TokenFlag
	// TokenAlias is "-n", "-n=value" or "-n\no".
	TokenAlias
)

func (k TokenKind) String() string {
	switch k {
	case TokenFlag:
		return "flag"
	case TokenAlias:
		return "alias"
	default:
		return "value"
	}
}

// Token is one classified command-line token.
type Token struct {
	// Arg is the token exactly as received.
	Arg  string
	Kind TokenKind
	// Key is the flag name or alias without prefix. Empty for values.
	Key string
	// Value is the inline "=value" part when HasValue is set.
	Value    string
	HasValue bool
	// Negated marks a key that carried the negation suffix.
	Negated bool
}

// IsOption reports whether t is a flag or an alias.
func (t Token) IsOption() bool { return t.Kind != TokenValue }

// Classify turns one raw token into a Token under the given options. It only fails
// for "key=value" tokens when sys.AllowEqualAssign is off.
func Classify(arg string, sys System) (Token, error) {
	tok := Token{Arg: arg}

	var rest string
	switch {
	case len(arg) > 2 && arg[0] == '-' && arg[1] == '-' && arg[2] != '-':
		tok.Kind = TokenFlag
		rest = arg[2:]
	case len(arg) > 1 && arg[0] == '-' && arg[1] != '-':
		tok.Kind = TokenAlias
		rest = arg[1:]
	default:
		return tok, nil
	}

	if key, value, ok := strings.Cut(rest, "="); ok && key != "" && value != "" {
		if !sys.AllowEqualAssign {
			return Token{}, newError(ErrorKindEqualAssignDisabled, arg,
				"Equal assignment is not allowed %s", arg)
		}
		tok.Key = key
		tok.Value = value
		tok.HasValue = true
		return tok, nil
	}

	if suffix := sys.BooleanNotSyntaxEnding; suffix != "" && len(rest) > len(suffix) &&
		strings.HasSuffix(rest, suffix) {
		tok.Key = strings.TrimSuffix(rest, suffix)
		tok.Negated = true
		return tok, nil
	}

	tok.Key = rest
	return tok, nil
}

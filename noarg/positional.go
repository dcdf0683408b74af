package noarg

import (
	"strings"

	"github.com/dzonerzy/go-noarg/schema"
)

// Argument is a positional slot. A nil Type passes the raw string through.
type Argument struct {
	Name        string
	Type        schema.Primitive
	Description string
}

// ListArgument is the trailing variadic slot. Its values are validated together as
// an array of Type bounded by MinLength and MaxLength (0 means unbounded).
type ListArgument struct {
	Argument
	MinLength int
	MaxLength int
}

func (l ListArgument) schema() schema.Array {
	elem := l.Type
	if elem == nil {
		elem = schema.NewString()
	}
	return schema.NewArray(elem).MinLength(l.MinLength).MaxLength(l.MaxLength)
}

func decodeArgument(a Argument, raw string) (any, error) {
	if a.Type == nil {
		return raw, nil
	}
	v, err := a.Type.CheckType(schema.Value(raw))
	if err != nil {
		return nil, &ParseError{
			Kind:    ErrorKindInvalidValue,
			Option:  a.Name,
			Message: err.Error() + " for argument: " + a.Name,
			Err:     err,
		}
	}
	return v, nil
}

// resolvePositional consumes tokens left to right: required slots, then optional
// slots, then the list slot. Surplus tokens are ignored when no list slot exists.
func (p *Program) resolvePositional(tokens []string) (args, optArgs, listArgs []any, err error) {
	if len(tokens) < len(p.arguments) {
		missing := make([]string, 0, len(p.arguments)-len(tokens))
		for _, a := range p.arguments[len(tokens):] {
			missing = append(missing, a.Name)
		}
		return nil, nil, nil, newError(ErrorKindArgumentCount, "",
			"Expected %d arguments, missing: %d, [%s]",
			len(p.arguments), len(missing), strings.Join(missing, ", "))
	}

	args = make([]any, 0, len(p.arguments))
	for i, a := range p.arguments {
		v, err := decodeArgument(a, tokens[i])
		if err != nil {
			return nil, nil, nil, err
		}
		args = append(args, v)
	}
	rest := tokens[len(p.arguments):]

	optArgs = make([]any, len(p.optionalArguments))
	for i, a := range p.optionalArguments {
		if len(rest) == 0 {
			break
		}
		v, err := decodeArgument(a, rest[0])
		if err != nil {
			return nil, nil, nil, err
		}
		optArgs[i] = v
		rest = rest[1:]
	}

	listArgs = []any{}
	if p.listArgument != nil {
		v, err := p.listArgument.schema().CheckType(schema.List(rest...))
		if err != nil {
			return nil, nil, nil, &ParseError{
				Kind:    ErrorKindInvalidValue,
				Option:  p.listArgument.Name,
				Message: err.Error() + " for list argument: " + p.listArgument.Name,
				Err:     err,
			}
		}
		listArgs = v.([]any)
	}
	return args, optArgs, listArgs, nil
}

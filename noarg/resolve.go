package noarg

import (
	"github.com/dzonerzy/go-noarg/schema"
)

// resolveFlags decodes the accumulations, then fills absent flags by asking, by
// default or fails when they are required.
func (p *Program) resolveFlags(accs []*accumulation, flags *flagTable) (map[string]any, error) {
	out := make(map[string]any, len(flags.specs))
	for _, acc := range accs {
		v, err := decodeAccumulation(acc)
		if err != nil {
			return nil, err
		}
		out[acc.key] = v
	}

	ask := p.asker()
	for _, spec := range flags.specs {
		if _, ok := out[spec.Name]; ok {
			continue
		}
		cfg := spec.Schema.Config()
		switch {
		case cfg.Ask != "":
			v, err := ask.ask(spec.Name, spec.Schema)
			if err != nil {
				return nil, err
			}
			out[spec.Name] = v
		case cfg.HasDefault:
			out[spec.Name] = cfg.Default
		case cfg.Required:
			return nil, newError(ErrorKindMissingRequired, "--"+spec.Name, "Option --%s is required", spec.Name)
		}
	}
	return out, nil
}

func decodeAccumulation(acc *accumulation) (any, error) {
	if len(acc.values) == 0 {
		if acc.schema.Kind() == schema.KindBoolean {
			return true, nil
		}
		return nil, newError(ErrorKindMissingValue, acc.arg, "No value given for option: %s", acc.arg)
	}

	var raw schema.Raw
	if schema.IsList(acc.schema) {
		raw = schema.List(acc.values...)
	} else {
		if len(acc.values) > 1 {
			return nil, newError(ErrorKindMultipleValues, acc.arg,
				"Multiple value entered %s for option %s", quoteValues(acc.values), acc.arg)
		}
		raw = schema.Value(acc.values[0])
	}

	v, err := acc.schema.CheckType(raw)
	if err != nil {
		return nil, &ParseError{
			Kind:    ErrorKindInvalidValue,
			Option:  acc.arg,
			Message: err.Error() + " for option: " + acc.arg,
			Err:     err,
		}
	}
	return v, nil
}

package noarg

import (
	"fmt"

	noargio "github.com/dzonerzy/go-noarg/io"
	"github.com/dzonerzy/go-noarg/schema"
)

// asker fills flags declared with Ask through a Prompter. Feedback goes to the logger.
type asker struct {
	prompter noargio.Prompter
	io       *noargio.IOManager
	log      *noargio.Logger
}

func (a asker) ask(name string, s schema.Schema) (any, error) {
	question := s.Config().Ask
	fmt.Fprintf(a.io.Out(), "--%s %s\n", a.io.Yellow(name), a.io.Cyan(question))

	var (
		v   any
		err error
	)
	switch s := s.(type) {
	case schema.Array:
		v, err = a.askArray(s)
	case schema.Tuple:
		v, err = a.askTuple(s)
	case schema.Primitive:
		v, err = a.askPrimitive(s, s.Name(), defaultInput(s.Config()), true)
	default:
		return nil, internalError("Cannot ask a value of type %s.", s.Name())
	}
	if err != nil {
		return nil, fmt.Errorf("ask --%s: %w", name, err)
	}
	return v, nil
}

func defaultInput(cfg schema.Config) string {
	if !cfg.HasDefault || cfg.Default == nil {
		return ""
	}
	return fmt.Sprint(cfg.Default)
}

// askPrimitive prompts until the answer decodes.
func (a asker) askPrimitive(s schema.Primitive, title, def string, required bool) (any, error) {
	for {
		in, err := a.prompter.Question(title+": ", noargio.QuestionOptions{DefaultInput: def})
		if err != nil {
			return nil, err
		}
		if in == "" {
			if s.Kind() == schema.KindBoolean {
				a.log.Info("Empty value is considered as false")
				return false, nil
			}
			if required {
				a.log.Error("Empty input isn't acceptable")
				continue
			}
		}
		parsed := s.Parse(schema.Value(in))
		if parsed.Valid {
			return parsed.Value, nil
		}
		a.log.Error("%s", parsed.Error)
	}
}

// askArray prompts one element at a time. An empty answer ends the input once the
// minimum is reached.
func (a asker) askArray(s schema.Array) (any, error) {
	elem := s.Elem()
	minLength, maxLength := s.Bounds()
	out := []any{}
	for maxLength == 0 || len(out) < maxLength {
		title := fmt.Sprintf("%s[%d]: ", elem.Name(), len(out)+1)
		in, err := a.prompter.Question(title, noargio.QuestionOptions{})
		if err != nil {
			return nil, err
		}
		if in == "" {
			if len(out) >= minLength {
				break
			}
			a.log.Error("Minimum %d items required for %s", minLength, elem.Name())
			continue
		}
		parsed := elem.Parse(schema.Value(in))
		if !parsed.Valid {
			a.log.Error("%s", parsed.Error)
			continue
		}
		out = append(out, parsed.Value)
	}
	return out, nil
}

func (a asker) askTuple(s schema.Tuple) (any, error) {
	elems := s.Elems()
	out := make([]any, 0, len(elems))
	for i, elem := range elems {
		v, err := a.askPrimitive(elem, fmt.Sprintf("%s[%d]", elem.Name(), i+1), "", true)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

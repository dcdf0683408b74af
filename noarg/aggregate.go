package noarg

import (
	"fmt"
	"strings"

	"github.com/dzonerzy/go-noarg/internal/pool"
	"github.com/dzonerzy/go-noarg/schema"
)

// aggState is the aggregator state. Pending and Collecting refer to aggregator.key.
type aggState int

const (
	stateIdle aggState = iota
	statePendingValue
	stateCollecting
)

func (s aggState) String() string {
	switch s {
	case statePendingValue:
		return "pending"
	case stateCollecting:
		return "collecting"
	default:
		return "idle"
	}
}

// accumulation holds the raw values gathered for one flag.
type accumulation struct {
	key    string
	arg    string
	schema schema.Schema
	values []string
}

type aggregator struct {
	sys   System
	flags *flagTable
	trace func(format string, args ...any)

	state aggState
	key   string
	order []*accumulation
	byKey map[string]*accumulation
}

var aggregators = pool.New(
	func() *aggregator {
		return &aggregator{byKey: make(map[string]*accumulation)}
	},
	resetAggregator,
)

func resetAggregator(a *aggregator) {
	a.flags, a.trace = nil, nil
	a.state, a.key = stateIdle, ""
	clear(a.order)
	a.order = a.order[:0]
	clear(a.byKey)
}

// acquireAggregator returns a clean aggregator. The accumulations it produces are
// valid until releaseAggregator.
func acquireAggregator(sys System, flags *flagTable, trace func(string, ...any)) *aggregator {
	a := aggregators.Get()
	a.sys = sys
	a.flags = flags
	a.trace = trace
	return a
}

func releaseAggregator(a *aggregator) { aggregators.Put(a) }

// run folds the flag stream into per-key accumulations in first-seen order.
func (a *aggregator) run(tokens []Token) ([]*accumulation, error) {
	for _, tok := range tokens {
		if err := a.step(tok); err != nil {
			return nil, err
		}
	}
	if err := a.flush(); err != nil {
		return nil, err
	}
	return a.order, nil
}

func (a *aggregator) transition(next aggState, key string, tok Token) {
	if a.trace != nil {
		a.trace("aggregate %q: %s -> %s (%s)", tok.Arg, a.state, next, key)
	}
	a.state = next
	a.key = key
}

func (a *aggregator) step(tok Token) error {
	if !tok.IsOption() {
		return a.value(tok)
	}
	return a.option(tok)
}

func (a *aggregator) value(tok Token) error {
	if a.state == stateIdle {
		return internalError("Received a value: %s. Expected an option.", tok.Arg)
	}
	acc := a.byKey[a.key]
	acc.values = append(acc.values, tok.Arg)
	a.transition(stateCollecting, a.key, tok)
	return nil
}

func (a *aggregator) option(tok Token) error {
	spec, ok := a.flags.lookup(tok)
	if !ok {
		err := newError(ErrorKindUnknownOption, tok.Arg, "Unknown option %s entered", tok.Arg)
		err.Suggestion = a.flags.suggest(tok)
		return err
	}
	if err := a.flush(); err != nil {
		return err
	}

	acc, seen := a.byKey[spec.Name]
	if seen {
		switch {
		case schema.IsList(spec.Schema) && a.sys.AllowDuplicateFlagForList:
		case a.sys.AllowDuplicateFlagForPrimitive:
			acc.values = nil
			acc.arg = tok.Arg
		default:
			return newError(ErrorKindDuplicateOption, tok.Arg, "Duplicate option %s entered", tok.Arg)
		}
	} else {
		acc = &accumulation{key: spec.Name, arg: tok.Arg, schema: spec.Schema}
	}

	if tok.Negated {
		if spec.Schema.Kind() != schema.KindBoolean {
			return newError(ErrorKindInvalidNegation, tok.Arg,
				"Only boolean types accept `%s` assignment for option: %s",
				a.sys.BooleanNotSyntaxEnding, tok.Arg)
		}
		tok.Value, tok.HasValue = "false", true
	}

	if !seen {
		a.byKey[spec.Name] = acc
		a.order = append(a.order, acc)
	}
	if tok.HasValue {
		acc.values = append(acc.values, tok.Value)
		a.transition(stateCollecting, spec.Name, tok)
		return nil
	}
	a.transition(statePendingValue, spec.Name, tok)
	return nil
}

// flush completes a flag still waiting for its first value: booleans become true,
// anything else is missing its value.
func (a *aggregator) flush() error {
	if a.state != statePendingValue {
		return nil
	}
	acc := a.byKey[a.key]
	if acc.schema.Kind() != schema.KindBoolean {
		return newError(ErrorKindMissingValue, acc.arg, "No value given for option: %s", acc.arg)
	}
	acc.values = append(acc.values, "true")
	a.transition(stateIdle, "", Token{Arg: acc.arg})
	return nil
}

func quoteValues(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("`%s`", v)
	}
	return strings.Join(quoted, " ")
}

package noarg

// Output is the result of a successful parse.
type Output struct {
	// Flags holds decoded flag values by flag name. Absent flags without default
	// or ask are missing from the map.
	Flags map[string]any
	// Args holds the required positional values in declaration order.
	Args []any
	// OptArgs has one entry per optional slot, nil when not supplied.
	OptArgs []any
	// ListArgs holds the decoded variadic values.
	ListArgs []any
}

// Get returns the value of a flag.
func (o *Output) Get(name string) (any, bool) {
	v, ok := o.Flags[name]
	return v, ok
}

// Has reports whether a flag has a value.
func (o *Output) Has(name string) bool {
	_, ok := o.Flags[name]
	return ok
}

// FlagAs returns the flag value as T. It reports false when the flag is absent or
// holds another type.
func FlagAs[T any](o *Output, name string) (T, bool) {
	v, ok := o.Flags[name].(T)
	return v, ok
}

// GetString returns a String flag.
func (o *Output) GetString(name string) (string, bool) { return FlagAs[string](o, name) }

// GetBool returns a Boolean flag.
func (o *Output) GetBool(name string) (bool, bool) { return FlagAs[bool](o, name) }

// GetNumber returns a Number flag.
func (o *Output) GetNumber(name string) (float64, bool) { return FlagAs[float64](o, name) }

// GetList returns an Array or Tuple flag.
func (o *Output) GetList(name string) ([]any, bool) { return FlagAs[[]any](o, name) }

// MustGetString returns a String flag or def.
func (o *Output) MustGetString(name, def string) string {
	if v, ok := o.GetString(name); ok {
		return v
	}
	return def
}

// MustGetBool returns a Boolean flag or def.
func (o *Output) MustGetBool(name string, def bool) bool {
	if v, ok := o.GetBool(name); ok {
		return v
	}
	return def
}

// MustGetNumber returns a Number flag or def.
func (o *Output) MustGetNumber(name string, def float64) float64 {
	if v, ok := o.GetNumber(name); ok {
		return v
	}
	return def
}

// Arg returns the i-th required positional value.
func (o *Output) Arg(i int) (any, bool) {
	if i < 0 || i >= len(o.Args) {
		return nil, false
	}
	return o.Args[i], true
}

// OptArg returns the i-th optional positional value; false when unfilled.
func (o *Output) OptArg(i int) (any, bool) {
	if i < 0 || i >= len(o.OptArgs) || o.OptArgs[i] == nil {
		return nil, false
	}
	return o.OptArgs[i], true
}

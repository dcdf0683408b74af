// Package noarg parses command-line tokens against declared schemas.
//
// A Program declares required, optional and variadic positional slots, flags keyed
// by name with schema aliases, and sub-programs selected by the first token:
//
//	prog := noarg.New("deploy", "Deploy a service").
//		Argument("service", schema.NewString(), "service name").
//		Flag("replicas", schema.NewNumber().Integer().Min(1).Aliases("r").Default(1)).
//		Flag("tags", schema.NewArray(schema.NewString())).
//		Flag("dry-run", schema.NewBoolean())
//
//	out, err := prog.Parse([]string{"api", "--tags", "a", "b", "-r=3", "--dry-run"})
//
// Tokens before the first flag or alias are positional. After it every value token
// belongs to the most recent flag: "--tags a b" collects two values. Booleans take
// no value ("--dry-run"), an explicit one ("--dry-run=no") or the negation suffix
// ("--dry-run\no"). Flags absent from the command line fall back to an interactive
// question (schema Ask), then the schema default, and fail when Required.
package noarg

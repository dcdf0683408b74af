package noarg

// System holds the parsing options of a program. It is copied into every parse call
// and inherited by sub-programs created after it is set.
type System struct {
	// AllowEqualAssign permits "--name=value". When false such a token is an error.
	AllowEqualAssign bool
	// AllowDuplicateFlagForList lets an array or tuple flag repeat, appending values.
	AllowDuplicateFlagForList bool
	// AllowDuplicateFlagForPrimitive lets any flag repeat; the last occurrence wins.
	AllowDuplicateFlagForPrimitive bool
	// BooleanNotSyntaxEnding is the suffix turning "--name<suffix>" into name=false.
	// Empty disables negation.
	BooleanNotSyntaxEnding string
}

// DefaultNegationSuffix is the negation suffix of DefaultSystem: "--color\no".
const DefaultNegationSuffix = `\no`

// DefaultSystem returns the options used by New.
func DefaultSystem() System {
	return System{
		AllowEqualAssign:          true,
		AllowDuplicateFlagForList: true,
		BooleanNotSyntaxEnding:    DefaultNegationSuffix,
	}
}

// Config holds program level presentation options.
type Config struct {
	// DisableHelp turns off --help/-h and --usage/-u detection.
	DisableHelp bool
}

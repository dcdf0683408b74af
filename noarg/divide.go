package noarg

// Divide classifies every token and splits the stream at the first flag or alias.
// Tokens before it are positional, the rest (values included) go to the flag stream.
func Divide(args []string, sys System) (positional []string, flags []Token, err error) {
	positional = []string{}
	inFlags := false
	for _, arg := range args {
		tok, err := Classify(arg, sys)
		if err != nil {
			return nil, nil, err
		}
		if !inFlags && tok.IsOption() {
			inFlags = true
		}
		if inFlags {
			flags = append(flags, tok)
			continue
		}
		positional = append(positional, arg)
	}
	return positional, flags, nil
}

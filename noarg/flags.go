package noarg

import (
	"github.com/dzonerzy/go-noarg/internal/fuzzy"
	"github.com/dzonerzy/go-noarg/schema"
)

// FlagSpec is a declared flag as seen by a parse call.
type FlagSpec struct {
	Name   string
	Schema schema.Schema
	// Global flags are inherited by sub-programs.
	Global bool
}

// flagTable is the flag view of one program: inherited globals, own globals, then
// own flags. A later declaration with the same name replaces the earlier one in place.
type flagTable struct {
	specs  []FlagSpec
	byName map[string]int
}

func newFlagTable() *flagTable {
	return &flagTable{byName: make(map[string]int)}
}

func (t *flagTable) add(spec FlagSpec) {
	if i, ok := t.byName[spec.Name]; ok {
		t.specs[i] = spec
		return
	}
	t.byName[spec.Name] = len(t.specs)
	t.specs = append(t.specs, spec)
}

// lookup finds the schema for a flag or alias token. Aliases resolve to the first
// flag in declaration order whose alias set contains the key.
func (t *flagTable) lookup(tok Token) (FlagSpec, bool) {
	switch tok.Kind {
	case TokenFlag:
		if i, ok := t.byName[tok.Key]; ok {
			return t.specs[i], true
		}
	case TokenAlias:
		for _, spec := range t.specs {
			if spec.Schema.Config().HasAlias(tok.Key) {
				return spec, true
			}
		}
	}
	return FlagSpec{}, false
}

// suggest returns the closest declared option for an unknown token, with prefix.
// An alias token spelling a flag name ("-name") points at the flag.
func (t *flagTable) suggest(tok Token) string {
	if _, ok := t.byName[tok.Key]; ok && tok.Kind == TokenAlias {
		return "--" + tok.Key
	}
	var candidates []string
	prefix := "--"
	for _, spec := range t.specs {
		if tok.Kind == TokenAlias {
			candidates = append(candidates, spec.Schema.Config().Aliases...)
			continue
		}
		candidates = append(candidates, spec.Name)
	}
	if tok.Kind == TokenAlias {
		prefix = "-"
	}
	if s := fuzzy.Suggest(tok.Key, candidates); s != "" {
		return prefix + s
	}
	return ""
}

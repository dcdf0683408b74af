//nolint:testpackage // internal packages are only importable from inside the module
package benchmark

import (
	"testing"

	"github.com/dzonerzy/go-noarg/internal/fuzzy"
)

// Category: fuzzy

var flagNames = []string{
	"help", "version", "verbose", "config", "output", "input",
	"force", "debug", "port", "host", "timeout", "retry",
}

func BenchmarkMatcher_FindBest(b *testing.B) {
	matcher := fuzzy.NewMatcher(2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matcher.FindBest("hep", flagNames)
	}
}

func BenchmarkMatcher_FindMatches(b *testing.B) {
	matcher := fuzzy.NewMatcher(2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matcher.FindMatches("ver", flagNames)
	}
}

func BenchmarkSuggest(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		fuzzy.Suggest("timout", flagNames)
	}
}

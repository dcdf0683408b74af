// Package fuzzy ranks option names by similarity to a mistyped one.
// Used by noarg to add "did you mean" hints to unknown option errors.
package fuzzy

import (
	"sort"
	"strings"
)

// Matcher provides fuzzy matching functionality for CLI suggestions
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a new fuzzy matcher with the given max edit distance
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   1,
	}
}

// Match represents a fuzzy match result
type Match struct {
	Value    string
	Distance int
	Score    float64 // 0.0 to 1.0, higher is better
}

// FindBest returns the best candidate, or "" if none is close enough.
func (m *Matcher) FindBest(input string, candidates []string) string {
	matches := m.FindMatches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// FindMatches returns every candidate within the edit distance, best first. Exact
// matches are not suggestions and are skipped. Comparison ignores case, so a
// candidate differing only in case is the best possible match. The allowed
// distance never reaches the input length: "x" only matches "X".
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	if len(input) < m.minLength {
		return nil
	}
	limit := min(m.maxDistance, len(input)-1)

	var matches []Match
	original := input
	input = strings.ToLower(input)
	for _, candidate := range candidates {
		if candidate == original {
			continue
		}
		lower := strings.ToLower(candidate)
		distance := m.distance(input, lower)
		if distance > limit {
			continue
		}
		matches = append(matches, Match{
			Value:    candidate,
			Distance: distance,
			Score:    score(input, lower, distance),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score == matches[j].Score {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// score combines edit distance with a bonus for a shared prefix.
func score(input, candidate string, distance int) float64 {
	maxLen := max(len(input), len(candidate))
	if maxLen == 0 {
		return 1.0
	}
	s := 1.0 - float64(distance)/float64(maxLen)

	prefix := 0
	for prefix < min(len(input), len(candidate)) && input[prefix] == candidate[prefix] {
		prefix++
	}
	if prefix > 0 {
		s += float64(prefix) / float64(min(len(input), len(candidate))) * 0.3
	}
	return min(s, 1.0)
}

// distance is the Levenshtein distance, cut short at maxDistance+1.
func (m *Matcher) distance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if diff := len(a) - len(b); diff > m.maxDistance || -diff > m.maxDistance {
		return m.maxDistance + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}
	for i := 1; i <= len(b); i++ {
		curr[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
			rowMin = min(rowMin, curr[j])
		}
		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

// Suggest returns the closest option name within an edit distance of 2.
func Suggest(input string, candidates []string) string {
	return NewMatcher(2).FindBest(input, candidates)
}

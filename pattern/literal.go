package pattern

import (
	"strings"
)

// Literal matches every non-overlapping occurrence of an exact substring,
// left to right, via standard substring search.
type Literal string

// FindAll implements Pattern. An empty Literal never matches: a
// zero-length Match is invalid.
func (l Literal) FindAll(haystack string) []Match {
	if len(l) == 0 {
		return nil
	}
	var out []Match
	off := 0
	for {
		i := strings.Index(haystack[off:], string(l))
		if i < 0 {
			break
		}
		start := off + i
		end := start + len(l)
		out = append(out, NewMatch(haystack, start, end))
		off = end
	}
	return out
}

// LiteralSet matches the union of its members' occurrences, member-major
// like CharSet.
type LiteralSet []string

// FindAll implements Pattern.
func (s LiteralSet) FindAll(haystack string) []Match {
	var out []Match
	for _, l := range s {
		out = append(out, Literal(l).FindAll(haystack)...)
	}
	return out
}

package pattern

import (
	"strings"
	"unicode/utf8"
)

// Char matches every occurrence of a single character, left to right.
type Char rune

// FindAll implements Pattern.
func (c Char) FindAll(haystack string) []Match {
	var out []Match
	off := 0
	for {
		i := strings.IndexRune(haystack[off:], rune(c))
		if i < 0 {
			break
		}
		start := off + i
		end := start + utf8.RuneLen(rune(c))
		out = append(out, NewMatch(haystack, start, end))
		off = end
	}
	return out
}

// CharSet matches the union of its members' occurrences. Results are
// member-major: all matches of the first character, then the second, and
// so on — they are not globally re-sorted by start offset.
type CharSet []rune

// FindAll implements Pattern.
func (s CharSet) FindAll(haystack string) []Match {
	var out []Match
	for _, c := range s {
		out = append(out, Char(c).FindAll(haystack)...)
	}
	return out
}

package pattern

import (
	"fmt"
)

// Match is a located occurrence of a pattern inside a haystack.
type Match struct {
	// Haystack is the string that was searched in.
	Haystack string
	// Start is the byte offset of the first matched byte.
	Start int
	// End is the byte offset one past the last matched byte.
	End int
}

// NewMatch constructs a Match over haystack[start:end].
// An inverted or out-of-range span is a programming error, not a runtime
// condition, so NewMatch panics when start >= end or end > len(haystack).
func NewMatch(haystack string, start, end int) Match {
	if start >= end || end > len(haystack) {
		panic(fmt.Errorf("pattern: invalid match range [%d, %d) in haystack of length %d", start, end, len(haystack)))
	}
	return Match{Haystack: haystack, Start: start, End: end}
}

// Len returns the length of the match in bytes.
func (m Match) Len() int { return m.End - m.Start }

// Text returns the matched slice of the haystack.
func (m Match) Text() string { return m.Haystack[m.Start:m.End] }

func (m Match) String() string { return m.Text() }

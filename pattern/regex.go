package pattern

import (
	"regexp"
)

// Regexp adapts a compiled *regexp.Regexp to the Pattern capability.
// Match order and disambiguation are whatever the engine defines
// (leftmost-first, then the usual engine rules).
type Regexp struct {
	Re *regexp.Regexp
}

// Regex wraps an already compiled regular expression.
func Regex(re *regexp.Regexp) Regexp {
	return Regexp{Re: re}
}

// MustRegex compiles expr and panics if it is not a valid regular
// expression. Convenient for inline rule tables.
func MustRegex(expr string) Regexp {
	return Regexp{Re: regexp.MustCompile(expr)}
}

// FindAll implements Pattern. Zero-length engine matches are discarded
// since a zero-length Match is invalid.
func (r Regexp) FindAll(haystack string) []Match {
	var out []Match
	for _, loc := range r.Re.FindAllStringIndex(haystack, -1) {
		if loc[0] == loc[1] {
			continue
		}
		out = append(out, NewMatch(haystack, loc[0], loc[1]))
	}
	return out
}

package pattern

// Func is the fallback general pattern: an arbitrary predicate over
// candidate substrings.
//
// Matching is greedy, leftmost-first and longest-first: candidate start
// offsets are scanned left to right; for each start, candidate end offsets
// are scanned from the end of the haystack down to start+1, and the first
// substring the predicate accepts is recorded. Scanning then resumes
// immediately after that match's end, so matches never overlap.
//
// This is by far the most expensive matcher kind: a single FindAll may
// evaluate the predicate a quadratic number of times in the haystack
// length. Prefer Literal, CharSet or Regexp when they can express the
// same rule.
type Func func(string) bool

// FindAll implements Pattern.
func (f Func) FindAll(haystack string) []Match {
	var out []Match
	cur1 := 0
	// слева направо; на каждом старте берём самую длинную подстроку
	for cur1 < len(haystack) {
		matched := false
		for cur2 := len(haystack); cur2 > cur1; cur2-- {
			if f(haystack[cur1:cur2]) {
				out = append(out, NewMatch(haystack, cur1, cur2))
				// возобновляем сразу после конца матча, не со start+1
				cur1 = cur2
				matched = true
				break
			}
		}
		if !matched {
			cur1++
		}
	}
	return out
}

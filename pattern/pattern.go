package pattern

// Pattern is the uniform matching capability: anything that can report
// every occurrence of itself inside a haystack. Keeping the interface to
// a single method lets all derived searches live here once instead of
// being re-implemented per matcher kind.
type Pattern interface {
	// FindAll returns every match in haystack, ordered by start offset
	// ascending; the overlap policy is defined per concrete kind.
	FindAll(haystack string) []Match
}

// FindOne returns the first match of p in haystack.
func FindOne(p Pattern, haystack string) (Match, bool) {
	all := p.FindAll(haystack)
	if len(all) == 0 {
		return Match{}, false
	}
	return all[0], true
}

// FindPrefix returns the first match of p anchored at the start of haystack.
func FindPrefix(p Pattern, haystack string) (Match, bool) {
	for _, m := range p.FindAll(haystack) {
		if m.Start == 0 {
			return m, true
		}
	}
	return Match{}, false
}

// FindPrefixes returns every match of p anchored at the start of haystack.
func FindPrefixes(p Pattern, haystack string) []Match {
	var out []Match
	for _, m := range p.FindAll(haystack) {
		if m.Start == 0 {
			out = append(out, m)
		}
	}
	return out
}

// FindSuffix returns the first match of p ending exactly at the end of haystack.
func FindSuffix(p Pattern, haystack string) (Match, bool) {
	for _, m := range p.FindAll(haystack) {
		if m.End == len(haystack) {
			return m, true
		}
	}
	return Match{}, false
}

// FindSuffixes returns every match of p ending exactly at the end of haystack.
func FindSuffixes(p Pattern, haystack string) []Match {
	var out []Match
	for _, m := range p.FindAll(haystack) {
		if m.End == len(haystack) {
			out = append(out, m)
		}
	}
	return out
}

// RevFind returns the last match of p in haystack. It is a fallback scan,
// not an optimized reverse search: candidate start offsets are walked from
// the end of the haystack backwards and the first offset that yields any
// match wins.
func RevFind(p Pattern, haystack string) (Match, bool) {
	// идём с конца, первый старт с любым матчем — ответ
	for cursor := len(haystack) - 1; cursor >= 0; cursor-- {
		if m, ok := FindOne(p, haystack[cursor:]); ok {
			return NewMatch(haystack, cursor+m.Start, cursor+m.End), true
		}
	}
	return Match{}, false
}

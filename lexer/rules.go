package lexer

import (
	"plexer/pattern"
)

// Rule pairs a pattern with a builder producing a token from the matched
// text. Build must be pure; it may panic only on input the pattern itself
// has already ruled out (e.g. a digit parse after a digits-only pattern).
type Rule[T any] struct {
	Pattern pattern.Pattern
	Build   func(text string) T
}

// Ruleset is a fixed, priority-ordered rule table. It is immutable after
// construction and is typically declared once at package scope.
type Ruleset[T any] struct {
	rules []Rule[T]
	opts  Options
}

// NewRuleset builds a Ruleset from rules given in priority order.
func NewRuleset[T any](opts Options, rules ...Rule[T]) *Ruleset[T] {
	return &Ruleset[T]{
		rules: rules,
		opts:  opts.withDefaults(),
	}
}

// Len returns the number of rules in the table.
func (rs *Ruleset[T]) Len() int { return len(rs.rules) }

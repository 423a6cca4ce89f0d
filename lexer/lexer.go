package lexer

import (
	"iter"

	"plexer/pattern"
)

// Lexer scans a haystack left to right against a Ruleset, producing one
// token or one error per step. The cursor only ever moves forward.
type Lexer[T any] struct {
	rules    *Ruleset[T]
	haystack string
	cursor   int
}

// Result is one produced sequence item: a token, or the error for a
// single unexpected byte.
type Result[T any] struct {
	Token T
	Err   *Error
}

// Ok reports whether the item is a token.
func (r Result[T]) Ok() bool { return r.Err == nil }

// Tokenize starts a fresh scan over haystack at cursor 0.
func (rs *Ruleset[T]) Tokenize(haystack string) *Lexer[T] {
	return &Lexer[T]{
		rules:    rs,
		haystack: haystack,
		cursor:   0,
	}
}

// Cursor returns the current scan offset in bytes. Callers that need
// token spans record it around Next; the engine itself does not track
// positions inside tokens.
func (lx *Lexer[T]) Cursor() int { return lx.cursor }

// Next computes one step of the scan. The second return is false once the
// haystack is exhausted; after that Next keeps returning false.
func (lx *Lexer[T]) Next() (Result[T], bool) {
	if lx.cursor >= len(lx.haystack) {
		return Result[T]{}, false
	}

	// окно ограничивает стоимость одного шага для Func/Regexp правил
	end := min(lx.cursor+lx.rules.opts.MaxWindow, len(lx.haystack))
	window := lx.haystack[lx.cursor:end]

	var best T
	bestLen := 0
	for _, rule := range lx.rules.rules {
		m, ok := pattern.FindPrefix(rule.Pattern, window)
		if !ok {
			continue
		}
		// строго длиннее: при равной длине выигрывает более раннее правило
		if m.Len() > bestLen {
			best = rule.Build(m.Text())
			bestLen = m.Len()
		}
	}

	if bestLen == 0 {
		err := &Error{Haystack: lx.haystack, Cursor: lx.cursor}
		lx.cursor++
		return Result[T]{Err: err}, true
	}

	lx.cursor += max(bestLen, 1)
	return Result[T]{Token: best}, true
}

// All returns the remaining items as a single-use iterator.
func (lx *Lexer[T]) All() iter.Seq[Result[T]] {
	return func(yield func(Result[T]) bool) {
		for {
			res, ok := lx.Next()
			if !ok {
				return
			}
			if !yield(res) {
				return
			}
		}
	}
}

// Collect drains the lexer, splitting tokens from errors.
func (lx *Lexer[T]) Collect() (tokens []T, errs []*Error) {
	for res := range lx.All() {
		if res.Err != nil {
			errs = append(errs, res.Err)
			continue
		}
		tokens = append(tokens, res.Token)
	}
	return tokens, errs
}

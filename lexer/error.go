package lexer

import (
	"fmt"
)

// Error identifies a single unexpected byte: no rule produced a prefix
// match at Cursor. The scan continues past it; the caller decides whether
// any error is fatal. Error borrows the haystack for rendering only.
type Error struct {
	Haystack string
	Cursor   int
}

func (e *Error) Error() string {
	return fmt.Sprintf("unexpected character '%s' at index %d", e.Haystack[e.Cursor:e.Cursor+1], e.Cursor)
}

// Package lexer implements a greedy, priority-ordered, longest-match
// tokenizer over the pattern capability.
// Invariants:
//   - Rules are scanned in declaration order; only a strictly longer
//     match displaces an earlier rule's match, so earlier rules win ties.
//   - The cursor advances by at least one byte every step; a scan over a
//     haystack of n bytes produces at most n items and always terminates.
//   - An unmatched byte yields exactly one error item and the scan
//     continues from the next byte; nothing is silently dropped.
//   - A Lexer is single-use: re-tokenizing requires a fresh Tokenize call.
package lexer

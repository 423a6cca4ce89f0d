// Package pattern provides a uniform matching capability over strings.
// Invariants:
//   - A Match is a half-open [Start, End) byte range into its haystack,
//     always non-empty (Start < End); zero-length matches are rejected.
//   - A Match borrows the haystack; it never copies.
//   - FindAll is the one required operation; every other search
//     (FindOne, FindPrefix, FindSuffix, RevFind, ...) is derived from it
//     and behaves identically across matcher kinds.
//   - Overlap and ordering of FindAll results are defined per kind, see
//     the concrete types.
package pattern

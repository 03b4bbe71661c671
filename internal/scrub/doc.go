// Package scrub removes invisible Unicode characters from text.
//
// The package works against a fixed denylist of code points that render with
// no visible glyph or width (no-break spaces, zero-width joiners, the word
// joiner, BOM, invisible math operators, the combining grapheme joiner, and
// Hangul fillers). Characters outside the denylist pass through untouched,
// including ordinary whitespace and control characters.
package scrub

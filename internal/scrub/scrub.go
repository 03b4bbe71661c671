package scrub

import (
	"sort"
	"strings"
)

// denylist holds every code point the scrubber removes. The set is fixed;
// this tool does not attempt to cover the full Unicode invisible-character
// space. Escapes are used throughout because the characters themselves
// render as nothing.
var denylist = map[rune]struct{}{
	'\u00A0': {}, // no-break space
	'\u2007': {}, // figure space
	'\u202F': {}, // narrow no-break space
	'\u200B': {}, // zero-width space
	'\u200C': {}, // zero-width non-joiner
	'\u200D': {}, // zero-width joiner
	'\u2060': {}, // word joiner
	'\uFEFF': {}, // zero-width no-break space / BOM
	'\u180E': {}, // Mongolian vowel separator (deprecated)
	'\u2061': {}, // function application
	'\u2062': {}, // invisible times
	'\u2063': {}, // invisible separator
	'\u2064': {}, // invisible plus
	'\u034F': {}, // combining grapheme joiner
	'\u115F': {}, // Hangul choseong filler
	'\u1160': {}, // Hangul jungseong filler
	'\u3164': {}, // Hangul filler
	'\uFFA0': {}, // halfwidth Hangul filler
}

// IsInvisible reports whether r is in the denylist.
func IsInvisible(r rune) bool {
	_, ok := denylist[r]
	return ok
}

// Clean returns s with every denylisted character removed, preserving the
// order of the remaining characters, along with the total number of
// characters removed. Re-cleaning already clean text is a no-op.
func Clean(s string) (string, int) {
	removed := 0
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if IsInvisible(r) {
			removed++
			continue
		}
		b.WriteRune(r)
	}
	if removed == 0 {
		return s, 0
	}
	return b.String(), removed
}

// Runes returns the denylist in ascending code point order.
func Runes() []rune {
	out := make([]rune, 0, len(denylist))
	for r := range denylist {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

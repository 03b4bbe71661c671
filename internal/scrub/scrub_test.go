package scrub

import (
	"testing"
	"unicode/utf8"
)

func TestCleanRemovesDenylistedCharacters(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		removed int
	}{
		{name: "empty", input: "", want: "", removed: 0},
		{name: "clean text", input: "hello world", want: "hello world", removed: 0},
		{name: "no-break space", input: "A\u00A0B", want: "AB", removed: 1},
		{name: "zero-width run", input: "a\u200B\u200C\u200Db", want: "ab", removed: 3},
		{name: "leading bom", input: "\uFEFFdata", want: "data", removed: 1},
		{name: "only denylisted", input: "\u2060\u2061\u2062", want: "", removed: 3},
		{name: "repeated occurrences counted", input: "\u202Fx\u202Fx\u202F", want: "xx", removed: 3},
		{name: "ordinary whitespace kept", input: " a\tb\nc ", want: " a\tb\nc ", removed: 0},
		{name: "control characters kept", input: "a\x00\x1bb", want: "a\x00\x1bb", removed: 0},
		{name: "hangul fillers", input: "\u115F\u1160\u3164\uFFA0", want: "", removed: 4},
		{name: "mongolian vowel separator", input: "a\u180Eb", want: "ab", removed: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, removed := Clean(tc.input)
			if got != tc.want {
				t.Fatalf("Clean(%q) = %q, want %q", tc.input, got, tc.want)
			}
			if removed != tc.removed {
				t.Fatalf("Clean(%q) removed %d, want %d", tc.input, removed, tc.removed)
			}
		})
	}
}

func TestCleanLengthConservation(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"A\u00A0B\u200BC",
		"\uFEFF\uFEFF\uFEFF",
		"mixed \u2063 content \u3164 here",
	}
	for _, input := range inputs {
		got, removed := Clean(input)
		if utf8.RuneCountInString(got)+removed != utf8.RuneCountInString(input) {
			t.Fatalf("length not conserved for %q: output %d runes, removed %d, input %d runes",
				input, utf8.RuneCountInString(got), removed, utf8.RuneCountInString(input))
		}
	}
}

func TestCleanOutputContainsNoDenylistedRunes(t *testing.T) {
	got, _ := Clean("a\u00A0b\u200Cc\u2064d\uFFA0")
	for _, r := range got {
		if IsInvisible(r) {
			t.Fatalf("output still contains denylisted rune U+%04X", r)
		}
	}
}

func TestCleanIdempotent(t *testing.T) {
	first, removed := Clean("x\u034Fy\u2062z")
	if removed == 0 {
		t.Fatal("expected removals on first pass")
	}
	second, removed := Clean(first)
	if second != first {
		t.Fatalf("second pass changed output: %q -> %q", first, second)
	}
	if removed != 0 {
		t.Fatalf("second pass removed %d characters, want 0", removed)
	}
}

func TestRunesSortedAndComplete(t *testing.T) {
	runes := Runes()
	if len(runes) != len(denylist) {
		t.Fatalf("Runes returned %d entries, want %d", len(runes), len(denylist))
	}
	for i := 1; i < len(runes); i++ {
		if runes[i-1] >= runes[i] {
			t.Fatalf("Runes not in ascending order at index %d: U+%04X >= U+%04X", i, runes[i-1], runes[i])
		}
	}
	for _, r := range runes {
		if !IsInvisible(r) {
			t.Fatalf("Runes returned U+%04X which is not denylisted", r)
		}
	}
}

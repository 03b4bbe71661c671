// Package scrubber orchestrates a single scrub run: it validates the input
// file, filters denylisted invisible characters out of its content, and
// writes the cleaned copy to a new, non-colliding path derived from the
// input path.
package scrubber

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"scrubsi/internal/scrubber"
)

const (
	ansiReset   = "\x1b[0m"
	ansiWhite   = "\x1b[97m"
	ansiCyan    = "\x1b[96m"
	ansiMagenta = "\x1b[95m"
	ansiViolet  = "\x1b[38;5;135m"
	ansiRed     = "\x1b[91m"
)

// renderReport produces the report lines for a completed run: the original
// and cleaned content blocks (when showContent is set), the removed count,
// and the output path. Styling is cosmetic; the plain text carries the
// contract.
func renderReport(res *scrubber.Result, showContent, colorize bool) []string {
	paint := func(color, s string) string {
		if !colorize {
			return s
		}
		return color + s + ansiReset
	}

	var lines []string
	if showContent {
		lines = append(lines,
			paint(ansiRed, "Original content:"),
			paint(ansiWhite, res.Original),
			paint(ansiViolet, "Cleaned content:"),
			paint(ansiWhite, res.Cleaned),
		)
	}
	lines = append(lines,
		fmt.Sprintf("%s%s%s",
			paint(ansiWhite, "A total of "),
			paint(ansiMagenta, fmt.Sprintf("%d", res.Removed)),
			paint(ansiWhite, " invisible characters were removed.")),
		fmt.Sprintf("%s%s%s",
			paint(ansiWhite, "New file saved as: "),
			paint(ansiCyan, res.OutputPath),
			paint(ansiWhite, ".")),
	)
	return lines
}

// reportColorize decides whether report lines get ANSI styling. Mode
// "always" and "never" force the answer; "auto" colorizes only when the
// writer is a terminal.
func reportColorize(writer io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

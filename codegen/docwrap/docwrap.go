// Package docwrap reflows documentation text into comment lines.
package docwrap

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// DefaultLineWidth is the column limit Wrap fills to.
const DefaultLineWidth = 80

// Comment markers understood by the generator.
const (
	LineDoc   = "///"
	ModuleDoc = "//!"
	Comment   = "//"
)

// Wrap reflows text into lines of at most DefaultLineWidth columns, each
// starting with indent spaces and marker. See WrapWidth.
func Wrap(text string, indent int, marker string) string {
	return WrapWidth(text, indent, marker, DefaultLineWidth)
}

// WrapWidth reflows text into comment lines no wider than maxWidth.
//
// The text itself is filled to maxWidth - indent - len(marker) - 1 columns,
// the extra column being the space after the marker. Every input line is
// filled on its own so blank lines survive as paragraph breaks; those are
// emitted as the bare marker with no trailing space. Words wider than the
// fill width are kept whole on a line of their own.
func WrapWidth(text string, indent int, marker string, maxWidth int) string {
	if indent < 0 {
		indent = 0
	}
	width := maxWidth - indent - runewidth.StringWidth(marker) - 1
	if width < 1 {
		width = 1
	}
	prefix := strings.Repeat(" ", indent) + marker

	var out strings.Builder
	for _, line := range Fill(text, width) {
		if line == "" {
			out.WriteString(prefix)
		} else {
			out.WriteString(prefix)
			out.WriteByte(' ')
			out.WriteString(strings.TrimRightFunc(line, unicode.IsSpace))
		}
		out.WriteByte('\n')
	}

	return strings.TrimRightFunc(out.String(), unicode.IsSpace)
}

// Fill greedily wraps text to width display columns and returns the lines.
// Input newlines are hard breaks, whitespace-only input lines come back
// empty, and a line's leading whitespace is kept on its first output line.
// Trailing blank lines are dropped; blank text yields no lines.
func Fill(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	text = strings.TrimRightFunc(text, unicode.IsSpace)
	if text == "" {
		return nil
	}

	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		words := strings.Fields(raw)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		lead := raw[:len(raw)-len(strings.TrimLeftFunc(raw, unicode.IsSpace))]
		current := lead + words[0]
		currentWidth := runewidth.StringWidth(current)
		for _, word := range words[1:] {
			wordWidth := runewidth.StringWidth(word)
			if currentWidth+1+wordWidth > width {
				lines = append(lines, current)
				current, currentWidth = word, wordWidth
				continue
			}
			current += " " + word
			currentWidth += 1 + wordWidth
		}
		lines = append(lines, current)
	}

	return lines
}

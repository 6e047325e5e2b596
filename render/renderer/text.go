package renderer

import (
	"strings"
	"unicode/utf8"
)

// wrap splits s into lines of at most width runes at spaces
// Words longer than width are hard-split
func wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line strings.Builder
	n := 0
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		n = 0
	}
	for _, word := range strings.Fields(s) {
		wn := utf8.RuneCountInString(word)
		for wn > width {
			if n > 0 {
				flush()
			}
			r := []rune(word)
			lines = append(lines, string(r[:width]))
			word = string(r[width:])
			wn -= width
		}
		if n > 0 && n+1+wn > width {
			flush()
		}
		if n > 0 {
			line.WriteByte(' ')
			n++
		}
		line.WriteString(word)
		n += wn
	}
	if n > 0 {
		flush()
	}
	return lines
}

// truncate cuts s to width runes, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	r := []rune(s)
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

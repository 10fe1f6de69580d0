// Package components provides ANSI-aware text helpers and the timeline
// slider shared by the interactive UI and the text quote renderer.
package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VisibleLen returns the visible width of s in terminal cells, ignoring ANSI
// escape sequences and counting wide characters as two cells.
func VisibleLen(s string) int {
	return ansi.StringWidth(s)
}

// Truncate cuts s to at most maxWidth visible cells, appending tail when it
// cuts. The tail counts toward maxWidth.
func Truncate(s string, maxWidth int, tail string) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, tail)
}

// PadRight pads s with trailing spaces to width visible cells. Wider input
// is returned unchanged.
func PadRight(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vis)
}

// PadLeft pads s with leading spaces to width visible cells.
func PadLeft(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	return strings.Repeat(" ", width-vis) + s
}

// Spread lays left, middle and right across width cells: left flush left,
// right flush right, middle centered in the gap. When the parts do not fit
// they are joined with single spaces.
func Spread(left, middle, right string, width int) string {
	lw, mw, rw := VisibleLen(left), VisibleLen(middle), VisibleLen(right)
	gap := width - lw - mw - rw
	if gap < 2 {
		return strings.TrimSpace(strings.Join([]string{left, middle, right}, " "))
	}
	before := gap / 2
	after := gap - before
	return left + strings.Repeat(" ", before) + middle + strings.Repeat(" ", after) + right
}

// LabelValue renders "label .... value" with the value right-aligned at width.
func LabelValue(label, value string, width int) string {
	gap := width - VisibleLen(label) - VisibleLen(value)
	if gap < 1 {
		gap = 1
	}
	return label + strings.Repeat(" ", gap) + value
}

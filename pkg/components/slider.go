package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Slider glyphs.
const (
	SliderKnob   = '●'
	SliderBase   = '┼'
	SliderFilled = '━'
	SliderEmpty  = '─'
)

// SliderStyle configures the appearance of the timeline slider.
type SliderStyle struct {
	Width        int    // total width in cells (0 = use the width argument)
	TrackColor   string // hex color for the untouched track
	RushColor    string // hex color for the stretch between knob and base when rushing
	RelaxedColor string // hex color for the stretch between base and knob when relaxed
	BaseColor    string // hex color for the base tick
	KnobColor    string // hex color for the knob
}

// DefaultSliderStyle returns a SliderStyle with sensible defaults.
func DefaultSliderStyle() SliderStyle {
	return SliderStyle{
		Width:        40,
		TrackColor:   "#404040",
		RushColor:    "#f97316",
		RelaxedColor: "#22c55e",
		BaseColor:    "#a3a3a3",
		KnobColor:    "#E11D48",
	}
}

// Slider renders an integer range as a horizontal track with a knob at the
// current value and a tick at the base value.
type Slider struct {
	style SliderStyle
}

// NewSlider creates a Slider with the given style.
func NewSlider(style SliderStyle) *Slider {
	return &Slider{style: style}
}

// Render draws the slider for value in [lo, hi] with the base tick at base.
// The width argument overrides the style width when positive.
func (s *Slider) Render(value, lo, hi, base, width int) string {
	if width <= 0 {
		width = s.style.Width
	}
	if width <= 0 {
		width = 40
	}

	knob := SliderPosition(value, lo, hi, width)
	tick := SliderPosition(base, lo, hi, width)

	track := s.paint(s.style.TrackColor)
	rush := s.paint(s.style.RushColor)
	relaxed := s.paint(s.style.RelaxedColor)

	var b strings.Builder
	for col := 0; col < width; col++ {
		switch {
		case col == knob:
			b.WriteString(s.paint(s.style.KnobColor)(string(SliderKnob)))
		case col == tick:
			b.WriteString(s.paint(s.style.BaseColor)(string(SliderBase)))
		case knob < tick && col > knob && col < tick:
			b.WriteString(rush(string(SliderFilled)))
		case knob > tick && col > tick && col < knob:
			b.WriteString(relaxed(string(SliderFilled)))
		default:
			b.WriteString(track(string(SliderEmpty)))
		}
	}
	return b.String()
}

func (s *Slider) paint(hex string) func(string) string {
	if hex == "" {
		return func(v string) string { return v }
	}
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	return func(v string) string { return st.Render(v) }
}

// SliderPosition maps value in [lo, hi] onto a column in [0, width-1].
// Values outside the range are clamped.
func SliderPosition(value, lo, hi, width int) int {
	if width <= 1 || hi <= lo {
		return 0
	}
	value = min(max(value, lo), hi)
	ratio := float64(value-lo) / float64(hi-lo)
	return int(math.Round(ratio * float64(width-1)))
}

// SliderValueAt maps a column back onto the nearest value in [lo, hi]. It
// is the inverse of SliderPosition for mouse clicks on the track.
func SliderValueAt(col, lo, hi, width int) int {
	if width <= 1 || hi <= lo {
		return lo
	}
	col = min(max(col, 0), width-1)
	ratio := float64(col) / float64(width-1)
	return lo + int(math.Round(ratio*float64(hi-lo)))
}

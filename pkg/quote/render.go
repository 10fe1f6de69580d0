package quote

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/design-estimate/pkg/components"
	"gitlab.com/tinyland/lab/design-estimate/pkg/currency"
	"gitlab.com/tinyland/lab/design-estimate/pkg/pricing"
	"gitlab.com/tinyland/lab/design-estimate/pkg/theme"
)

// Format selects an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Text output width bounds.
const (
	quoteDefaultWidth = 56
	quoteMinWidth     = 40
	quoteMaxWidth     = 72
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "":
		return FormatText, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, json or yaml)", s)
}

// Render writes snap to w in the requested format.
func Render(w io.Writer, snap Snapshot, format Format) error {
	switch format {
	case FormatJSON:
		return quoteEncodeJSON(w, snap)
	case FormatYAML:
		return quoteEncodeYAML(w, snap)
	case FormatText, "":
		_, err := io.WriteString(w, RenderText(snap, Width(w))+"\n")
		return err
	}
	return fmt.Errorf("unknown format %q", format)
}

// RenderText draws snap as a bordered card width cells wide.
func RenderText(snap Snapshot, width int) string {
	th := theme.Current
	money := snap.money
	if money == nil {
		money = currency.Default()
	}
	inner := width - 4

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(th.Title))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Dim))
	accent := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(th.Accent))

	var lines []string
	if snap.Service == "" {
		lines = append(lines, dim.Render("No service selected."))
	} else {
		lines = append(lines, title.Render(snap.ServiceName))
		if len(snap.Addons) > 0 {
			addons := components.Truncate("Add-ons: "+strings.Join(snap.Addons, ", "), inner, "…")
			lines = append(lines, dim.Render(addons))
		}
		lines = append(lines, dim.Render(fmt.Sprintf("Timeline: %s (standard %d, up to %d)",
			quoteWeeks(snap.TimelineWeeks), snap.Pricing.BaseTimelineWeeks, snap.Pricing.MaxTimelineWeeks)))
		lines = append(lines, "")

		b := snap.Breakdown
		lines = append(lines, components.LabelValue("Base Cost", money.Format(b.BaseCost), inner))
		if b.AddonCount > 0 {
			lines = append(lines, components.LabelValue(
				fmt.Sprintf("Additional Services (%d)", b.AddonCount), money.Format(b.AddonsCost), inner))
		}
		adj := lipgloss.NewStyle().Foreground(lipgloss.Color(quoteLabelColor(th, snap.TimelineWeeks, snap.Pricing.BaseTimelineWeeks)))
		lines = append(lines, components.LabelValue(
			adj.Render(b.TimelineLabel), adj.Render(money.FormatSigned(b.TimelineAdjustment)), inner))
		lines = append(lines, dim.Render(strings.Repeat("─", inner)))
	}
	lines = append(lines, components.LabelValue(
		accent.Render("Estimated Total"), accent.Render(money.Format(snap.Breakdown.Total)), inner))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(th.Border)).
		Padding(0, 1).
		Width(width - 2)
	return box.Render(strings.Join(lines, "\n"))
}

// RenderCatalog lists every service with its add-ons.
func RenderCatalog(w io.Writer, f *currency.Formatter, format Format) error {
	services := pricing.Services()
	switch format {
	case FormatJSON:
		return quoteEncodeJSON(w, services)
	case FormatYAML:
		return quoteEncodeYAML(w, services)
	case FormatText, "":
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	th := theme.Current
	id := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Accent))
	name := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(th.Title))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Dim))

	var b strings.Builder
	fmt.Fprintf(&b, "Base cost %s, %s per add-on, %d weeks standard plus %d per add-on.\n",
		f.Format(pricing.BaseCost), f.Format(pricing.AddonCost), pricing.BaseWeeks, pricing.WeeksPerAddon)
	for _, svc := range services {
		b.WriteString("\n")
		b.WriteString(id.Render(components.PadRight(string(svc.ID), 12)) + name.Render(svc.Name) + "\n")
		for _, a := range svc.Addons {
			b.WriteString("  " + components.PadRight(a, 28) + dim.Render(fmt.Sprintf("+%d weeks", pricing.WeeksPerAddon)) + "\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Width picks the text width for w: the terminal width when w is a
// terminal, clamped to a readable range, otherwise a fixed default.
func Width(w io.Writer) int {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok || !term.IsTerminal(f.Fd()) {
		return quoteDefaultWidth
	}
	cols, _, err := term.GetSize(f.Fd())
	if err != nil || cols <= 0 {
		return quoteDefaultWidth
	}
	return min(max(cols, quoteMinWidth), quoteMaxWidth)
}

func quoteEncodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func quoteEncodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func quoteLabelColor(th theme.Theme, weeks, base int) string {
	switch {
	case weeks < base:
		return th.Rush
	case weeks > base:
		return th.Relaxed
	}
	return th.Standard
}

func quoteWeeks(n int) string {
	if n == 1 {
		return "1 week"
	}
	return fmt.Sprintf("%d weeks", n)
}

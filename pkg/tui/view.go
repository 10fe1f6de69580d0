package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/design-estimate/pkg/components"
	"gitlab.com/tinyland/lab/design-estimate/pkg/pricing"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	w := m.contentWidth()

	parts := []string{
		components.LabelValue(m.styles.header.Render("Project Cost Estimator"), m.styles.dim.Render(m.money.Code()), w),
		m.viewServices(w),
	}
	if m.engine.CurrentSelection().HasService() {
		parts = append(parts, m.viewAddons(w), m.viewTimeline(w), m.viewBreakdown(w))
	} else {
		parts = append(parts, m.styles.dim.Render("Select a service to see an estimate."))
	}
	parts = append(parts, m.help.View(m.keys))

	return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// box wraps body in a section border, highlighted when sec has focus.
func (m Model) box(sec Section, title, body string, w int) string {
	style := m.styles.box
	heading := m.styles.title.Render(title)
	if m.focus == sec {
		style = m.styles.boxFocus
		heading = m.styles.focused.Render(title)
	}
	return style.Width(w - 2).Render(heading + "\n" + body)
}

// sliderWidth is the inner width of a section box.
func (m Model) sliderWidth() int {
	return m.contentWidth() - 4
}

func (m Model) viewServices(w int) string {
	sel := m.engine.CurrentSelection()
	focused := m.focus == SectionService

	rows := make([]string, 0, 5)
	for i, svc := range pricing.Services() {
		marker := "○"
		style := m.styles.text
		if svc.ID == sel.Service {
			marker = "●"
			style = m.styles.selected
		}
		prefix := "  "
		if focused && i == m.serviceCursor {
			prefix = m.styles.cursor.Render("› ")
			if svc.ID != sel.Service {
				style = m.styles.cursor
			}
		}
		row := prefix + style.Render(marker+" "+svc.Name)
		rows = append(rows, m.zones.Mark(tuiZoneService(svc.ID), row))
	}
	return m.box(SectionService, "Service", strings.Join(rows, "\n"), w)
}

func (m Model) viewAddons(w int) string {
	svc, _ := m.engine.Service()
	sel := m.engine.CurrentSelection()
	inner := w - 4

	arrow := "▸"
	if m.addonsExpanded {
		arrow = "▾"
	}
	title := fmt.Sprintf("%s Add-on Services", arrow)
	if n := sel.AddonCount(); n > 0 {
		title += fmt.Sprintf(" (%d selected)", n)
	}
	title = m.zones.Mark(tuiZoneAddonsToggle, title)

	var body string
	switch {
	case m.addonsExpanded:
		focused := m.focus == SectionAddons
		rows := make([]string, 0, len(svc.Addons))
		for i, a := range svc.Addons {
			check := "[ ]"
			style := m.styles.text
			if m.engine.AddonSelected(a) {
				check = "[x]"
				style = m.styles.selected
			}
			prefix := "  "
			if focused && i == m.addonCursor {
				prefix = m.styles.cursor.Render("› ")
			}
			extra := m.styles.dim.Render(fmt.Sprintf("(+%d weeks)", pricing.WeeksPerAddon))
			row := components.LabelValue(prefix+style.Render(check+" "+a), extra, inner)
			rows = append(rows, m.zones.Mark(tuiZoneAddon(a), row))
		}
		body = strings.Join(rows, "\n")
	case sel.AddonCount() > 0:
		body = m.styles.selected.Render(components.Truncate(strings.Join(sel.Addons, ", "), inner, "…"))
	default:
		body = m.styles.dim.Render("Press a to add services.")
	}
	return m.box(SectionAddons, title, body, w)
}

func (m Model) viewTimeline(w int) string {
	sel := m.engine.CurrentSelection()
	d := m.engine.DerivedPricing()
	sw := m.sliderWidth()

	slider := components.NewSlider(m.styles.slider).
		Render(sel.TimelineWeeks, pricing.MinTimelineWeeks, d.MaxTimelineWeeks, d.BaseTimelineWeeks, sw)

	scale := components.Spread(
		m.styles.rush.Render("Rush"),
		m.styles.text.Render(tuiWeeks(sel.TimelineWeeks)),
		m.styles.relaxed.Render(fmt.Sprintf("Relaxed (+%d weeks)", pricing.ExtraWeeksRange)),
		sw,
	)

	labelStyle := m.styles.standard
	switch {
	case sel.TimelineWeeks < d.BaseTimelineWeeks:
		labelStyle = m.styles.rush
	case sel.TimelineWeeks > d.BaseTimelineWeeks:
		labelStyle = m.styles.relaxed
	}
	label := labelStyle.Render(m.engine.TimelineLabel())
	info := m.styles.dim.Render(fmt.Sprintf("standard %s", tuiWeeks(d.BaseTimelineWeeks)))
	reset := m.zones.Mark(tuiZoneReset, m.styles.button.Render("reset"))
	status := components.LabelValue(label+"  "+info, reset, sw)

	body := strings.Join([]string{
		m.zones.Mark(tuiZoneSlider, slider),
		scale,
		status,
	}, "\n")
	return m.box(SectionTimeline, "Timeline", body, w)
}

func (m Model) viewBreakdown(w int) string {
	b := m.engine.Breakdown()
	inner := w - 4

	rows := []string{components.LabelValue("Base Cost", m.money.Format(b.BaseCost), inner)}
	if b.AddonCount > 0 {
		rows = append(rows, components.LabelValue(
			fmt.Sprintf("Additional Services (%d)", b.AddonCount), m.money.Format(b.AddonsCost), inner))
	}
	rows = append(rows,
		components.LabelValue("Timeline Adjustment", m.styles.dim.Render(b.TimelineLabel), inner),
		m.styles.dim.Render(strings.Repeat("─", inner)),
		components.LabelValue(
			m.styles.accent.Render("Estimated Total"),
			m.styles.accent.Render(m.money.Format(b.Total)), inner),
	)
	return m.styles.box.Width(w - 2).Render(m.styles.title.Render("Cost Breakdown") + "\n" + strings.Join(rows, "\n"))
}

func tuiWeeks(n int) string {
	if n == 1 {
		return "1 week"
	}
	return fmt.Sprintf("%d weeks", n)
}

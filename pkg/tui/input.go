package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/design-estimate/pkg/components"
	"gitlab.com/tinyland/lab/design-estimate/pkg/pricing"
)

// Mouse zone ids.
const (
	tuiZoneAddonsToggle = "addons-toggle"
	tuiZoneReset        = "reset"
	tuiZoneSlider       = "slider"
)

func tuiZoneService(id pricing.ServiceID) string { return "service:" + string(id) }

func tuiZoneAddon(name string) string { return "addon:" + name }

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Next):
		m.CycleFocusForward()
	case key.Matches(msg, m.keys.Prev):
		m.CycleFocusBackward()
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Select):
		m.activate()
	case key.Matches(msg, m.keys.ToggleAddons):
		m.toggleAddonsPanel()
	case key.Matches(msg, m.keys.Reset):
		m.engine.ResetTimeline()
	case key.Matches(msg, m.keys.Clear):
		if m.engine.Reset() {
			m.focus = SectionService
			m.serviceCursor = 0
			m.addonCursor = 0
		}
	case m.focus == SectionTimeline:
		m.handleTimelineKey(msg)
	}
	return m, nil
}

func (m *Model) handleTimelineKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.engine.NudgeTimeline(-1)
	case key.Matches(msg, m.keys.Right):
		m.engine.NudgeTimeline(1)
	case key.Matches(msg, m.keys.Start):
		m.engine.SetTimelineWeeks(pricing.MinTimelineWeeks)
	case key.Matches(msg, m.keys.End):
		m.engine.SetTimelineWeeks(m.engine.DerivedPricing().MaxTimelineWeeks)
	}
}

// activate applies Enter/Space to the row under the cursor.
func (m *Model) activate() {
	switch m.focus {
	case SectionService:
		ids := pricing.ServiceIDs()
		m.selectService(ids[m.serviceCursor])
	case SectionAddons:
		if !m.addonsExpanded {
			m.addonsExpanded = true
			return
		}
		svc, ok := m.engine.Service()
		if !ok {
			return
		}
		m.engine.ToggleAddon(svc.Addons[m.addonCursor])
	}
}

func (m *Model) selectService(id pricing.ServiceID) {
	m.engine.SelectService(id)
	m.serviceCursor = tuiServiceIndex(id)
	m.addonCursor = 0
}

func (m *Model) toggleAddonsPanel() {
	if !m.engine.CurrentSelection().HasService() {
		return
	}
	m.addonsExpanded = !m.addonsExpanded
	if m.addonsExpanded {
		m.focus = SectionAddons
	} else if m.focus == SectionAddons {
		m.addonCursor = 0
	}
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.mouse {
		return m, nil
	}

	if slider := m.zones.Get(tuiZoneSlider); slider.InBounds(msg) {
		switch msg.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelRight:
			m.engine.NudgeTimeline(1)
			return m, nil
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelLeft:
			m.engine.NudgeTimeline(-1)
			return m, nil
		}
	}

	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	for i, id := range pricing.ServiceIDs() {
		if m.zones.Get(tuiZoneService(id)).InBounds(msg) {
			m.focus = SectionService
			m.serviceCursor = i
			m.selectService(id)
			return m, nil
		}
	}

	svc, ok := m.engine.Service()
	if !ok {
		return m, nil
	}

	if m.zones.Get(tuiZoneAddonsToggle).InBounds(msg) {
		m.toggleAddonsPanel()
		return m, nil
	}
	if m.addonsExpanded {
		for i, a := range svc.Addons {
			if m.zones.Get(tuiZoneAddon(a)).InBounds(msg) {
				m.focus = SectionAddons
				m.addonCursor = i
				m.engine.ToggleAddon(a)
				return m, nil
			}
		}
	}
	if m.zones.Get(tuiZoneReset).InBounds(msg) {
		m.focus = SectionTimeline
		m.engine.ResetTimeline()
		return m, nil
	}
	if slider := m.zones.Get(tuiZoneSlider); slider.InBounds(msg) {
		col, _ := slider.Pos(msg)
		m.focus = SectionTimeline
		m.engine.SetTimelineWeeks(m.sliderWeeksAt(col))
	}
	return m, nil
}

// sliderWeeksAt maps a column on the slider track to a week count.
func (m Model) sliderWeeksAt(col int) int {
	hi := m.engine.DerivedPricing().MaxTimelineWeeks
	return components.SliderValueAt(col, pricing.MinTimelineWeeks, hi, m.sliderWidth())
}

package tui

import "gitlab.com/tinyland/lab/design-estimate/pkg/pricing"

// focusOrder lists the sections that can take focus. Until a service is
// chosen only the service list is shown.
func (m *Model) focusOrder() []Section {
	if !m.engine.CurrentSelection().HasService() {
		return []Section{SectionService}
	}
	return []Section{SectionService, SectionAddons, SectionTimeline}
}

// CycleFocusForward moves focus to the next section, wrapping around to the
// first section after the last.
func (m *Model) CycleFocusForward() {
	order := m.focusOrder()
	idx := m.focusedIndex(order)
	m.focus = order[(idx+1)%len(order)]
}

// CycleFocusBackward moves focus to the previous section, wrapping around
// to the last section before the first.
func (m *Model) CycleFocusBackward() {
	order := m.focusOrder()
	idx := m.focusedIndex(order)
	m.focus = order[(idx-1+len(order))%len(order)]
}

// FocusSection sets focus directly. Sections that are not currently shown
// are ignored.
func (m *Model) FocusSection(s Section) {
	for _, o := range m.focusOrder() {
		if o == s {
			m.focus = s
			return
		}
	}
}

// focusedIndex returns the position of the focused section in order, or 0
// if it is not there.
func (m *Model) focusedIndex(order []Section) int {
	for i, s := range order {
		if s == m.focus {
			return i
		}
	}
	return 0
}

// moveCursor shifts the row cursor of the focused list by delta, clamped
// to the list.
func (m *Model) moveCursor(delta int) {
	switch m.focus {
	case SectionService:
		m.serviceCursor = tuiClamp(m.serviceCursor+delta, 0, len(pricing.ServiceIDs())-1)
	case SectionAddons:
		svc, ok := m.engine.Service()
		if !ok || !m.addonsExpanded {
			return
		}
		m.addonCursor = tuiClamp(m.addonCursor+delta, 0, len(svc.Addons)-1)
	}
}

func tuiClamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

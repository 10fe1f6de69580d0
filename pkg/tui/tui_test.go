package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"gitlab.com/tinyland/lab/design-estimate/pkg/currency"
	"gitlab.com/tinyland/lab/design-estimate/pkg/pricing"
)

// helper to create a model with a fresh engine and no mouse support.
func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(Options{Money: currency.Default()})
	t.Cleanup(m.zones.Close)
	return m
}

// helper to send a message through Update and return the updated Model.
func tuiUpdate(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func tuiKey(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		m, _ = tuiUpdate(m, tuiKey(k))
	}
	return m
}

func TestInitialViewShowsOnlyServices(t *testing.T) {
	m := newTestModel(t)
	view := ansi.Strip(m.View())

	for _, svc := range pricing.Services() {
		if !strings.Contains(view, svc.Name) {
			t.Errorf("expected %q in initial view", svc.Name)
		}
	}
	if !strings.Contains(view, "Select a service") {
		t.Error("expected selection hint before a service is chosen")
	}
	for _, hidden := range []string{"Timeline", "Cost Breakdown", "Estimated Total", "Standard Timeline"} {
		if strings.Contains(view, hidden) {
			t.Errorf("did not expect %q before a service is chosen", hidden)
		}
	}
}

func TestWindowSizeMsgUpdatesDimensions(t *testing.T) {
	m := newTestModel(t)
	m, _ = tuiUpdate(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.Width() != 120 || m.Height() != 40 {
		t.Errorf("expected 120x40, got %dx%d", m.Width(), m.Height())
	}
	if m.contentWidth() != tuiMaxWidth {
		t.Errorf("content width should cap at %d, got %d", tuiMaxWidth, m.contentWidth())
	}
	m, _ = tuiUpdate(m, tea.WindowSizeMsg{Width: 10, Height: 5})
	if m.contentWidth() != tuiMinWidth {
		t.Errorf("content width should floor at %d, got %d", tuiMinWidth, m.contentWidth())
	}
}

func TestSelectServiceWithEnter(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "down", "enter")

	sel := m.Engine().CurrentSelection()
	if sel.Service != pricing.Brand {
		t.Fatalf("expected brand selected, got %q", sel.Service)
	}
	view := ansi.Strip(m.View())
	for _, want := range []string{"Cost Breakdown", "Base Cost", "Estimated Total", "Standard Timeline", currency.Default().Format(500000)} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}
}

func TestServiceCursorClamps(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "up")
	if m.ServiceCursor() != 0 {
		t.Errorf("cursor should stay at 0, got %d", m.ServiceCursor())
	}
	m = press(m, "j", "j", "j", "j", "j", "j", "j")
	if m.ServiceCursor() != 4 {
		t.Errorf("cursor should stop at last service, got %d", m.ServiceCursor())
	}
}

func TestTabOnlyCyclesVisibleSections(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "tab")
	if m.Focus() != SectionService {
		t.Errorf("without a service focus should stay on service, got %s", m.Focus())
	}

	m = press(m, "enter", "tab")
	if m.Focus() != SectionAddons {
		t.Errorf("expected addons after first tab, got %s", m.Focus())
	}
	m = press(m, "tab")
	if m.Focus() != SectionTimeline {
		t.Errorf("expected timeline after second tab, got %s", m.Focus())
	}
	m = press(m, "tab")
	if m.Focus() != SectionService {
		t.Errorf("expected focus to wrap to service, got %s", m.Focus())
	}
	m = press(m, "shift+tab")
	if m.Focus() != SectionTimeline {
		t.Errorf("shift+tab should wrap to timeline, got %s", m.Focus())
	}
}

func TestAddonPanelToggleAndSelection(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "enter")
	if m.AddonsExpanded() {
		t.Fatal("add-on panel should start collapsed")
	}
	if !strings.Contains(ansi.Strip(m.View()), "Press a to add services.") {
		t.Error("expected collapsed hint")
	}

	m = press(m, "a")
	if !m.AddonsExpanded() || m.Focus() != SectionAddons {
		t.Fatalf("a should expand and focus add-ons (expanded=%v focus=%s)", m.AddonsExpanded(), m.Focus())
	}
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "[ ] Surfacing") || !strings.Contains(view, "(+2 weeks)") {
		t.Errorf("expected add-on rows, got:\n%s", view)
	}

	m = press(m, "down", "space")
	sel := m.Engine().CurrentSelection()
	if len(sel.Addons) != 1 || sel.Addons[0] != "CAD Modeling" {
		t.Fatalf("expected CAD Modeling selected, got %v", sel.Addons)
	}
	if sel.TimelineWeeks != 6 {
		t.Errorf("toggling an add-on should move to the new standard, got %d", sel.TimelineWeeks)
	}
	view = ansi.Strip(m.View())
	if !strings.Contains(view, "[x] CAD Modeling") || !strings.Contains(view, "Additional Services (1)") {
		t.Errorf("expected checked add-on and breakdown row, got:\n%s", view)
	}

	m = press(m, "a")
	if m.AddonsExpanded() {
		t.Error("a should collapse the panel")
	}
	if !strings.Contains(ansi.Strip(m.View()), "(1 selected)") {
		t.Error("collapsed title should count selected add-ons")
	}
}

func TestEnterOnCollapsedAddonsExpands(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "enter", "tab", "enter")
	if !m.AddonsExpanded() {
		t.Fatal("enter on collapsed panel should expand it")
	}
	if len(m.Engine().CurrentSelection().Addons) != 0 {
		t.Error("expanding should not toggle an add-on")
	}
}

func TestTimelineKeys(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "enter", "tab", "tab")
	if m.Focus() != SectionTimeline {
		t.Fatalf("expected timeline focus, got %s", m.Focus())
	}

	m = press(m, "left", "h")
	if got := m.Engine().CurrentSelection().TimelineWeeks; got != 2 {
		t.Errorf("expected 2 weeks, got %d", got)
	}
	if !strings.Contains(ansi.Strip(m.View()), "Rush: +67%") {
		t.Error("expected rush label in view")
	}

	m = press(m, "end")
	if got := m.Engine().CurrentSelection().TimelineWeeks; got != pricing.MaxTimelineWeeks(0) {
		t.Errorf("end should jump to max, got %d", got)
	}
	m = press(m, "right")
	if got := m.Engine().CurrentSelection().TimelineWeeks; got != pricing.MaxTimelineWeeks(0) {
		t.Errorf("slider should clamp at max, got %d", got)
	}

	m = press(m, "home")
	if got := m.Engine().CurrentSelection().TimelineWeeks; got != pricing.MinTimelineWeeks {
		t.Errorf("home should jump to min, got %d", got)
	}
	if got := m.Engine().DerivedPricing().TotalCost; got != 1000000 {
		t.Errorf("full rush total = %d, want 1000000", got)
	}

	m = press(m, "r")
	if got := m.Engine().CurrentSelection().TimelineWeeks; got != pricing.BaseWeeks {
		t.Errorf("r should reset to standard, got %d", got)
	}
}

func TestArrowsIgnoredOutsideTimeline(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "enter", "left", "l")
	if got := m.Engine().CurrentSelection().TimelineWeeks; got != pricing.BaseWeeks {
		t.Errorf("arrows on the service list should not move the slider, got %d", got)
	}
}

func TestClearStartsOver(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "down", "down", "enter", "tab", "tab", "left", "ctrl+r")
	if m.Engine().CurrentSelection().HasService() {
		t.Error("ctrl+r should clear the service")
	}
	if m.Focus() != SectionService || m.ServiceCursor() != 0 {
		t.Errorf("ctrl+r should return to the first service, focus=%s cursor=%d", m.Focus(), m.ServiceCursor())
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t)
	if m.ShowingFullHelp() {
		t.Fatal("full help should start hidden")
	}
	m = press(m, "?")
	if !m.ShowingFullHelp() {
		t.Error("? should show full help")
	}
	if !strings.Contains(ansi.Strip(m.View()), "start over") {
		t.Error("full help should list every binding")
	}
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		m := newTestModel(t)
		m, cmd := tuiUpdate(m, tuiKey(k))
		if cmd == nil {
			t.Fatalf("%s: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", k)
		}
		if !m.Quitting() || m.View() != "" {
			t.Errorf("%s: expected empty view after quit", k)
		}
	}
}

func TestPreselectedServiceFromEngine(t *testing.T) {
	e := pricing.NewEngine()
	e.SelectService(pricing.Impact)
	m := New(Options{Engine: e, AddonsExpanded: true, ShowHelp: true})
	t.Cleanup(m.zones.Close)

	if m.ServiceCursor() != 4 {
		t.Errorf("cursor should start on the selected service, got %d", m.ServiceCursor())
	}
	if !m.AddonsExpanded() || !m.ShowingFullHelp() {
		t.Error("options should seed panel and help state")
	}
	if !strings.Contains(ansi.Strip(m.View()), "Impact Metrics") {
		t.Error("expanded panel should list impact add-ons")
	}
}

func TestMouseIgnoredWhenDisabled(t *testing.T) {
	m := newTestModel(t)
	m, _ = tuiUpdate(m, tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.Engine().CurrentSelection().HasService() {
		t.Error("mouse input should be ignored when disabled")
	}
}

func TestSliderWeeksAt(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "enter")
	last := m.sliderWidth() - 1
	if got := m.sliderWeeksAt(0); got != pricing.MinTimelineWeeks {
		t.Errorf("left edge = %d, want %d", got, pricing.MinTimelineWeeks)
	}
	if got := m.sliderWeeksAt(last); got != pricing.MaxTimelineWeeks(0) {
		t.Errorf("right edge = %d, want %d", got, pricing.MaxTimelineWeeks(0))
	}
}

func TestSectionString(t *testing.T) {
	if SectionTimeline.String() != "timeline" || Section(9).String() != "unknown" {
		t.Error("unexpected Section names")
	}
}

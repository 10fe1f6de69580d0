// Package tui is the interactive estimator: a Bubbletea model that owns one
// pricing engine and renders the service picker, add-on panel, timeline
// slider and cost breakdown.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"

	"gitlab.com/tinyland/lab/design-estimate/pkg/currency"
	"gitlab.com/tinyland/lab/design-estimate/pkg/pricing"
	"gitlab.com/tinyland/lab/design-estimate/pkg/theme"
)

// Section identifies a focusable panel.
type Section int

const (
	SectionService Section = iota
	SectionAddons
	SectionTimeline
)

func (s Section) String() string {
	switch s {
	case SectionService:
		return "service"
	case SectionAddons:
		return "addons"
	case SectionTimeline:
		return "timeline"
	}
	return "unknown"
}

// Layout bounds.
const (
	tuiDefaultWidth = 64
	tuiMaxWidth     = 80
	tuiMinWidth     = 36
)

// Options configures a Model.
type Options struct {
	// Engine is the pricing state. Nil starts a fresh engine.
	Engine *pricing.Engine
	// Money formats amounts. Nil uses currency.Default.
	Money  *currency.Formatter
	Logger *zap.Logger
	Theme  theme.Theme

	AddonsExpanded bool
	ShowHelp       bool
	Mouse          bool
}

// Model is the root Bubbletea model.
type Model struct {
	engine *pricing.Engine
	money  *currency.Formatter
	log    *zap.Logger
	zones  *zone.Manager

	keys   keyMap
	help   help.Model
	styles tuiStyles

	focus          Section
	serviceCursor  int
	addonCursor    int
	addonsExpanded bool
	mouse          bool

	width, height int
	quitting      bool
}

// New builds a Model from opts.
func New(opts Options) Model {
	e := opts.Engine
	if e == nil {
		e = pricing.NewEngine()
	}
	money := opts.Money
	if money == nil {
		money = currency.Default()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	th := opts.Theme
	if th.Name == "" {
		th = theme.Current
	}

	e.OnChange(func(s pricing.SelectionState, d pricing.DerivedPricing) {
		log.Debug("selection changed",
			zap.String("service", string(s.Service)),
			zap.Strings("addons", s.Addons),
			zap.Int("timeline_weeks", s.TimelineWeeks),
			zap.Int("base_weeks", d.BaseTimelineWeeks),
			zap.Float64("multiplier", d.TimelineMultiplier),
			zap.Int64("total", d.TotalCost),
		)
	})

	zones := zone.New()
	zones.SetEnabled(opts.Mouse)

	h := help.New()
	h.Styles = tuiHelpStyles(th)
	h.ShowAll = opts.ShowHelp

	m := Model{
		engine:         e,
		money:          money,
		log:            log,
		zones:          zones,
		keys:           tuiDefaultKeys(),
		help:           h,
		styles:         tuiNewStyles(th),
		addonsExpanded: opts.AddonsExpanded,
		mouse:          opts.Mouse,
	}
	if sel := e.CurrentSelection(); sel.HasService() {
		m.serviceCursor = tuiServiceIndex(sel.Service)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

// Run starts the interactive program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	defer m.zones.Close()

	progOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	m.log.Info("starting estimator", zap.Bool("mouse", opts.Mouse))

	final, err := tea.NewProgram(m, progOpts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			m.log.Info("estimator interrupted")
			return nil
		}
		return fmt.Errorf("run estimator: %w", err)
	}
	if fm, ok := final.(Model); ok {
		d := fm.engine.DerivedPricing()
		m.log.Info("estimator closed",
			zap.String("service", string(fm.engine.CurrentSelection().Service)),
			zap.Int64("total", d.TotalCost),
		)
	}
	return nil
}

// Engine returns the pricing engine the model drives.
func (m Model) Engine() *pricing.Engine { return m.engine }

// Focus returns the focused section.
func (m Model) Focus() Section { return m.focus }

// ServiceCursor returns the highlighted row in the service list.
func (m Model) ServiceCursor() int { return m.serviceCursor }

// AddonCursor returns the highlighted row in the add-on list.
func (m Model) AddonCursor() int { return m.addonCursor }

// AddonsExpanded reports whether the add-on panel is open.
func (m Model) AddonsExpanded() bool { return m.addonsExpanded }

// ShowingFullHelp reports whether the expanded key help is visible.
func (m Model) ShowingFullHelp() bool { return m.help.ShowAll }

// Quitting reports whether the model has asked the program to exit.
func (m Model) Quitting() bool { return m.quitting }

// Width returns the last reported terminal width.
func (m Model) Width() int { return m.width }

// Height returns the last reported terminal height.
func (m Model) Height() int { return m.height }

// contentWidth is the width of every section box.
func (m Model) contentWidth() int {
	if m.width <= 0 {
		return tuiDefaultWidth
	}
	return min(max(m.width, tuiMinWidth), tuiMaxWidth)
}

func tuiServiceIndex(id pricing.ServiceID) int {
	for i, sid := range pricing.ServiceIDs() {
		if sid == id {
			return i
		}
	}
	return 0
}

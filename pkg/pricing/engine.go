package pricing

import "slices"

// ChangeFunc is called after a mutator changes the selection.
type ChangeFunc func(SelectionState, DerivedPricing)

// Engine owns one SelectionState and applies the selection rules. It is not
// safe for concurrent use; a single event loop owns it.
//
// Mutators never fail. Input that would break an invariant is ignored or
// clamped, and each mutator reports whether the selection changed.
type Engine struct {
	state    SelectionState
	onChange ChangeFunc
}

// NewEngine returns an Engine in the initial state: no service selected,
// standard timeline.
func NewEngine() *Engine {
	return &Engine{state: InitialSelection()}
}

// NewEngineFrom returns an Engine seeded with s after normalization.
func NewEngineFrom(s SelectionState) *Engine {
	return &Engine{state: Normalize(s)}
}

// OnChange registers fn to run after every state change. Derived values
// never depend on it.
func (e *Engine) OnChange(fn ChangeFunc) {
	e.onChange = fn
}

// CurrentSelection returns a copy of the selection.
func (e *Engine) CurrentSelection() SelectionState {
	return e.state.Clone()
}

// DerivedPricing recomputes the derived values for the current selection.
func (e *Engine) DerivedPricing() DerivedPricing {
	return Derive(e.state)
}

// TimelineLabel describes the current timeline adjustment.
func (e *Engine) TimelineLabel() string {
	return TimelineLabel(e.state)
}

// Breakdown itemizes the current estimate.
func (e *Engine) Breakdown() CostBreakdown {
	return Breakdown(e.state)
}

// Service returns the selected catalog entry.
func (e *Engine) Service() (Service, bool) {
	if !e.state.HasService() {
		return Service{}, false
	}
	return Lookup(e.state.Service)
}

// AddonSelected reports whether name is currently selected.
func (e *Engine) AddonSelected(name string) bool {
	return slices.Contains(e.state.Addons, name)
}

// SelectService selects id, clears the add-ons and resets the timeline to
// BaseWeeks. Unknown ids are ignored. Selecting the current service again
// applies the same reset.
func (e *Engine) SelectService(id ServiceID) bool {
	if _, ok := Lookup(id); !ok {
		return false
	}
	next := SelectionState{Service: id, TimelineWeeks: BaseWeeks}
	return e.commit(next)
}

// ToggleAddon flips name in the selected service's add-ons and resets the
// timeline to the new base, discarding any manual slider position.
//
// TODO: product to confirm whether toggling an add-on should keep a manually
// rushed or relaxed timeline instead of snapping back to standard.
func (e *Engine) ToggleAddon(name string) bool {
	svc, ok := e.Service()
	if !ok || !svc.HasAddon(name) {
		return false
	}

	selected := make(map[string]bool, len(e.state.Addons)+1)
	for _, a := range e.state.Addons {
		selected[a] = true
	}
	selected[name] = !selected[name]

	var addons []string
	for _, a := range svc.Addons {
		if selected[a] {
			addons = append(addons, a)
		}
	}

	next := SelectionState{
		Service:       e.state.Service,
		Addons:        addons,
		TimelineWeeks: BaseTimelineWeeks(len(addons)),
	}
	return e.commit(next)
}

// SetTimelineWeeks moves the slider to n, clamped into
// [MinTimelineWeeks, MaxTimelineWeeks].
func (e *Engine) SetTimelineWeeks(n int) bool {
	next := e.state.Clone()
	next.TimelineWeeks = n
	return e.commit(next)
}

// NudgeTimeline moves the slider by delta weeks.
func (e *Engine) NudgeTimeline(delta int) bool {
	return e.SetTimelineWeeks(e.state.TimelineWeeks + delta)
}

// ResetTimeline returns the slider to the current base timeline.
func (e *Engine) ResetTimeline() bool {
	return e.SetTimelineWeeks(BaseTimelineWeeks(e.state.AddonCount()))
}

// Reset returns the engine to the initial state.
func (e *Engine) Reset() bool {
	return e.commit(InitialSelection())
}

// commit clamps next into range and stores it. Clamping here covers every
// path where the maximum drops below the current timeline.
func (e *Engine) commit(next SelectionState) bool {
	next.TimelineWeeks = clampWeeks(next.TimelineWeeks, next.AddonCount())
	if e.equal(next) {
		return false
	}
	e.state = next
	if e.onChange != nil {
		e.onChange(e.state.Clone(), Derive(e.state))
	}
	return true
}

func (e *Engine) equal(next SelectionState) bool {
	return e.state.Service == next.Service &&
		e.state.TimelineWeeks == next.TimelineWeeks &&
		slices.Equal(e.state.Addons, next.Addons)
}

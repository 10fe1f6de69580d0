package pricing

import "math"

// SelectionState is the user's current choice. Service is empty until a
// service is selected. Addons are kept in catalog order.
type SelectionState struct {
	Service       ServiceID `json:"service" yaml:"service"`
	Addons        []string  `json:"addons" yaml:"addons"`
	TimelineWeeks int       `json:"timeline_weeks" yaml:"timeline_weeks"`
}

// InitialSelection is the state at mount: no service, standard timeline.
func InitialSelection() SelectionState {
	return SelectionState{TimelineWeeks: BaseWeeks}
}

// AddonCount returns the number of selected add-ons.
func (s SelectionState) AddonCount() int {
	return len(s.Addons)
}

// HasService reports whether a service is selected.
func (s SelectionState) HasService() bool {
	return s.Service != ""
}

// Clone returns a deep copy of s.
func (s SelectionState) Clone() SelectionState {
	if s.Addons != nil {
		s.Addons = append([]string(nil), s.Addons...)
	}
	return s
}

// DerivedPricing is computed from a SelectionState on every read.
type DerivedPricing struct {
	BaseTimelineWeeks  int     `json:"base_timeline_weeks" yaml:"base_timeline_weeks"`
	MaxTimelineWeeks   int     `json:"max_timeline_weeks" yaml:"max_timeline_weeks"`
	TimelineMultiplier float64 `json:"timeline_multiplier" yaml:"timeline_multiplier"`
	TotalCost          int64   `json:"total_cost" yaml:"total_cost"`
}

// Derive computes every displayed value for s.
func Derive(s SelectionState) DerivedPricing {
	n := s.AddonCount()
	base := BaseTimelineWeeks(n)
	return DerivedPricing{
		BaseTimelineWeeks:  base,
		MaxTimelineWeeks:   MaxTimelineWeeks(n),
		TimelineMultiplier: TimelineMultiplier(s.TimelineWeeks, base, n),
		TotalCost:          TotalCost(s),
	}
}

// TotalCost returns the estimate for s rounded to the nearest whole unit,
// or zero when no service is selected.
func TotalCost(s SelectionState) int64 {
	if !s.HasService() {
		return 0
	}
	n := s.AddonCount()
	m := TimelineMultiplier(s.TimelineWeeks, BaseTimelineWeeks(n), n)
	return int64(math.Round(float64(subtotal(n)) * m))
}

// TimelineLabel describes the rush or relaxed adjustment applied to s.
func TimelineLabel(s SelectionState) string {
	n := s.AddonCount()
	return timelineLabel(s.TimelineWeeks, BaseTimelineWeeks(n), n)
}

func subtotal(addonCount int) int64 {
	return BaseCost + int64(addonCount)*AddonCost
}

// CostBreakdown itemizes an estimate the way the cost panel displays it.
type CostBreakdown struct {
	BaseCost   int64 `json:"base_cost" yaml:"base_cost"`
	AddonCount int   `json:"addon_count" yaml:"addon_count"`
	AddonsCost int64 `json:"addons_cost" yaml:"addons_cost"`
	Subtotal   int64 `json:"subtotal" yaml:"subtotal"`
	// TimelineAdjustment is Total minus Subtotal: positive for a rush,
	// negative for a relaxed schedule.
	TimelineAdjustment int64  `json:"timeline_adjustment" yaml:"timeline_adjustment"`
	TimelineLabel      string `json:"timeline_label" yaml:"timeline_label"`
	Total              int64  `json:"total" yaml:"total"`
}

// Breakdown itemizes the estimate for s. Without a service every amount is
// zero.
func Breakdown(s SelectionState) CostBreakdown {
	b := CostBreakdown{TimelineLabel: TimelineLabel(s)}
	if !s.HasService() {
		return b
	}
	n := s.AddonCount()
	b.BaseCost = BaseCost
	b.AddonCount = n
	b.AddonsCost = int64(n) * AddonCost
	b.Subtotal = subtotal(n)
	b.Total = TotalCost(s)
	b.TimelineAdjustment = b.Total - b.Subtotal
	return b
}

// Normalize returns s with its invariants restored: unknown service cleared,
// add-ons filtered to the service's catalog entry (deduplicated, catalog
// order), and weeks clamped into [MinTimelineWeeks, MaxTimelineWeeks].
func Normalize(s SelectionState) SelectionState {
	out := SelectionState{Service: s.Service, TimelineWeeks: s.TimelineWeeks}

	svc, ok := Lookup(s.Service)
	if !ok {
		out.Service = ""
	} else if len(s.Addons) > 0 {
		want := make(map[string]bool, len(s.Addons))
		for _, a := range s.Addons {
			want[a] = true
		}
		for _, a := range svc.Addons {
			if want[a] {
				out.Addons = append(out.Addons, a)
			}
		}
	}

	out.TimelineWeeks = clampWeeks(out.TimelineWeeks, out.AddonCount())
	return out
}

func clampWeeks(weeks, addonCount int) int {
	if weeks < MinTimelineWeeks {
		return MinTimelineWeeks
	}
	if hi := MaxTimelineWeeks(addonCount); weeks > hi {
		return hi
	}
	return weeks
}

// Package pricing holds the cost rules for design-service estimates.
//
// All displayed values are derived from a SelectionState: the chosen service,
// the set of add-ons, and the timeline in weeks. Derivation is a pure
// function (Derive); Engine wraps a single mutable selection and applies the
// recomputation rules synchronously inside each mutator.
package pricing

// Pricing constants. Costs are whole currency units.
const (
	BaseCost        = 500000
	AddonCost       = 100000
	BaseWeeks       = 4
	WeeksPerAddon   = 2
	ExtraWeeksRange = 12

	// MinTimelineWeeks is the lower slider bound (maximum rush).
	MinTimelineWeeks = 1

	// MaxRushPercent caps the rush premium before the add-on penalty.
	MaxRushPercent = 100.0

	// AddonRushPenalty is added to the rush multiplier per selected add-on.
	AddonRushPenalty = 0.1

	// RelaxedFloor is the lowest multiplier a relaxed timeline can reach.
	RelaxedFloor = 0.4
)

// LabelStandard is the timeline label when weeks equal the base timeline.
const LabelStandard = "Standard Timeline"

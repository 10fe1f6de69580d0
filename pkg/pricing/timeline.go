package pricing

import (
	"fmt"
	"math"
)

// BaseTimelineWeeks returns the standard schedule for addonCount add-ons.
// Negative counts are treated as zero.
func BaseTimelineWeeks(addonCount int) int {
	if addonCount < 0 {
		addonCount = 0
	}
	return BaseWeeks + addonCount*WeeksPerAddon
}

// MaxTimelineWeeks returns the slider's upper bound for addonCount add-ons.
func MaxTimelineWeeks(addonCount int) int {
	return BaseTimelineWeeks(addonCount) + ExtraWeeksRange
}

// TimelineMultiplier scales the subtotal for a schedule of weeks against a
// standard schedule of baseWeeks.
//
// Shorter than base is a rush: the premium grows linearly with the share of
// the rush range (down to one week) that is used, capped at 100%, and is then
// multiplied by 1 + 0.1 per add-on. Longer than base is relaxed: the discount
// decays logarithmically and the multiplier never drops below RelaxedFloor.
func TimelineMultiplier(weeks, baseWeeks, addonCount int) float64 {
	diff := weeks - baseWeeks
	switch {
	case diff < 0:
		rushPct := RushPercent(weeks, baseWeeks)
		addonPenalty := 1 + float64(max(addonCount, 0))*AddonRushPenalty
		return (1 + rushPct/100) * addonPenalty
	case diff > 0:
		return math.Max(1-math.Log(float64(diff)+1)/10, RelaxedFloor)
	default:
		return 1
	}
}

// RushPercent returns the rush percentage for weeks against baseWeeks, before
// the add-on penalty, in [0, MaxRushPercent]. A base of one week or less has
// no rush range left, so any rush there counts as the maximum.
func RushPercent(weeks, baseWeeks int) float64 {
	diff := weeks - baseWeeks
	if diff >= 0 {
		return 0
	}
	if baseWeeks <= MinTimelineWeeks {
		return MaxRushPercent
	}
	pct := (float64(-diff) / float64(baseWeeks-1)) * 100
	return math.Min(pct, MaxRushPercent)
}

// timelineLabel formats the adjustment for weeks against baseWeeks.
func timelineLabel(weeks, baseWeeks, addonCount int) string {
	m := TimelineMultiplier(weeks, baseWeeks, addonCount)
	switch {
	case weeks < baseWeeks:
		return fmt.Sprintf("Rush: +%d%%", roundPercent(m-1))
	case weeks > baseWeeks:
		return fmt.Sprintf("Relaxed: -%d%%", roundPercent(1-m))
	default:
		return LabelStandard
	}
}

func roundPercent(fraction float64) int {
	return int(math.Round(fraction * 100))
}

// Package quote builds non-interactive estimates from command-line input and
// renders them as text, JSON or YAML.
package quote

import (
	"errors"
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/design-estimate/pkg/currency"
	"gitlab.com/tinyland/lab/design-estimate/pkg/pricing"
)

// Errors returned by Build. The interactive engine silently ignores bad
// input; a command line should say what was wrong.
var (
	ErrUnknownService  = errors.New("unknown service")
	ErrUnknownAddon    = errors.New("unknown add-on")
	ErrWeeksOutOfRange = errors.New("timeline weeks out of range")
)

// Request describes an estimate by name. Weeks of zero means the standard
// timeline for the chosen add-ons.
type Request struct {
	Service string
	Addons  []string
	Weeks   int
}

// Build applies req to a fresh engine in the same order a user would:
// select the service, toggle each add-on, then move the slider.
func Build(req Request) (*pricing.Engine, error) {
	id := pricing.ServiceID(strings.ToLower(strings.TrimSpace(req.Service)))
	svc, ok := pricing.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w %q (choose one of: %s)", ErrUnknownService, req.Service, quoteServiceList())
	}

	e := pricing.NewEngine()
	e.SelectService(id)

	for _, raw := range req.Addons {
		name, ok := quoteResolveAddon(svc, raw)
		if !ok {
			return nil, fmt.Errorf("%w %q for %s", ErrUnknownAddon, raw, svc.Name)
		}
		if e.AddonSelected(name) {
			continue
		}
		e.ToggleAddon(name)
	}

	if req.Weeks != 0 {
		hi := e.DerivedPricing().MaxTimelineWeeks
		if req.Weeks < pricing.MinTimelineWeeks || req.Weeks > hi {
			return nil, fmt.Errorf("%w: %d (allowed %d-%d)", ErrWeeksOutOfRange, req.Weeks, pricing.MinTimelineWeeks, hi)
		}
		e.SetTimelineWeeks(req.Weeks)
	}
	return e, nil
}

// Snapshot is a serializable view of one estimate.
type Snapshot struct {
	Service        pricing.ServiceID      `json:"service" yaml:"service"`
	ServiceName    string                 `json:"service_name" yaml:"service_name"`
	Addons         []string               `json:"addons" yaml:"addons"`
	TimelineWeeks  int                    `json:"timeline_weeks" yaml:"timeline_weeks"`
	Pricing        pricing.DerivedPricing `json:"pricing" yaml:"pricing"`
	Breakdown      pricing.CostBreakdown  `json:"breakdown" yaml:"breakdown"`
	Currency       string                 `json:"currency" yaml:"currency"`
	Locale         string                 `json:"locale" yaml:"locale"`
	FormattedTotal string                 `json:"formatted_total" yaml:"formatted_total"`

	money *currency.Formatter
}

// NewSnapshot captures the engine's current estimate, formatting amounts
// with f.
func NewSnapshot(e *pricing.Engine, f *currency.Formatter) Snapshot {
	sel := e.CurrentSelection()
	snap := Snapshot{
		Service:        sel.Service,
		Addons:         sel.Addons,
		TimelineWeeks:  sel.TimelineWeeks,
		Pricing:        e.DerivedPricing(),
		Breakdown:      e.Breakdown(),
		Currency:       f.Code(),
		Locale:         f.Locale(),
		FormattedTotal: f.Format(e.DerivedPricing().TotalCost),
		money:          f,
	}
	if snap.Addons == nil {
		snap.Addons = []string{}
	}
	if svc, ok := e.Service(); ok {
		snap.ServiceName = svc.Name
	}
	return snap
}

func quoteResolveAddon(svc pricing.Service, raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	for _, a := range svc.Addons {
		if strings.EqualFold(a, raw) {
			return a, true
		}
	}
	return "", false
}

func quoteServiceList() string {
	ids := pricing.ServiceIDs()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	return strings.Join(names, ", ")
}

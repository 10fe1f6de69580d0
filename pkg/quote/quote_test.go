package quote

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/design-estimate/pkg/components"
	"gitlab.com/tinyland/lab/design-estimate/pkg/currency"
	"gitlab.com/tinyland/lab/design-estimate/pkg/pricing"
)

func buildSnapshot(t *testing.T, req Request) Snapshot {
	t.Helper()
	e, err := Build(req)
	require.NoError(t, err)
	return NewSnapshot(e, currency.Default())
}

func TestBuildAppliesRequest(t *testing.T) {
	e, err := Build(Request{
		Service: " Industrial ",
		Addons:  []string{"cad modeling", "Surfacing", "Surfacing"},
		Weeks:   20,
	})
	require.NoError(t, err)

	s := e.CurrentSelection()
	assert.Equal(t, pricing.Industrial, s.Service)
	assert.Equal(t, []string{"Surfacing", "CAD Modeling"}, s.Addons)
	assert.Equal(t, 20, s.TimelineWeeks)
	assert.Equal(t, pricing.TotalCost(s), e.DerivedPricing().TotalCost)
	assert.Equal(t, "Relaxed: -26%", e.TimelineLabel())
}

func TestBuildZeroWeeksMeansStandard(t *testing.T) {
	e, err := Build(Request{Service: "brand", Addons: []string{"Brand Voice"}})
	require.NoError(t, err)
	assert.Equal(t, 6, e.CurrentSelection().TimelineWeeks)
	assert.Equal(t, pricing.LabelStandard, e.TimelineLabel())
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want error
	}{
		{"unknown service", Request{Service: "print"}, ErrUnknownService},
		{"empty service", Request{}, ErrUnknownService},
		{"foreign add-on", Request{Service: "brand", Addons: []string{"Surfacing"}}, ErrUnknownAddon},
		{"weeks past max", Request{Service: "uiux", Addons: []string{"Prototype"}, Weeks: 19}, ErrWeeksOutOfRange},
		{"negative weeks", Request{Service: "uiux", Weeks: -1}, ErrWeeksOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUnknownServiceListsChoices(t *testing.T) {
	_, err := Build(Request{Service: "print"})
	require.Error(t, err)
	for _, id := range pricing.ServiceIDs() {
		assert.Contains(t, err.Error(), string(id))
	}
}

func TestNewSnapshot(t *testing.T) {
	snap := buildSnapshot(t, Request{Service: "website", Addons: []string{"Animation"}, Weeks: 1})
	assert.Equal(t, "Website Design", snap.ServiceName)
	assert.Equal(t, "INR", snap.Currency)
	assert.Equal(t, 6, snap.Pricing.BaseTimelineWeeks)
	assert.Equal(t, snap.Pricing.TotalCost, snap.Breakdown.Total)
	assert.Equal(t, currency.Default().Format(snap.Breakdown.Total), snap.FormattedTotal)

	empty := NewSnapshot(pricing.NewEngine(), currency.Default())
	assert.NotNil(t, empty.Addons)
	assert.Zero(t, empty.Breakdown.Total)
}

func TestRenderJSON(t *testing.T) {
	snap := buildSnapshot(t, Request{Service: "impact", Addons: []string{"Impact Metrics"}})
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, snap, FormatJSON))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "impact", got["service"])
	assert.Equal(t, snap.FormattedTotal, got["formatted_total"])
	assert.NotContains(t, got, "money")

	breakdown, ok := got["breakdown"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 600000, breakdown["total"])
}

func TestRenderYAML(t *testing.T) {
	snap := buildSnapshot(t, Request{Service: "industrial", Weeks: 1})
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, snap, FormatYAML))

	var back Snapshot
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, snap.Breakdown, back.Breakdown)
	assert.Equal(t, int64(1000000), back.Pricing.TotalCost)
	assert.Equal(t, "Rush: +100%", back.Breakdown.TimelineLabel)
}

func TestRenderText(t *testing.T) {
	snap := buildSnapshot(t, Request{Service: "industrial", Addons: []string{"Surfacing", "CAD Modeling"}, Weeks: 20})
	out := ansi.Strip(RenderText(snap, 60))

	for _, want := range []string{
		"Industrial Design",
		"Add-ons: Surfacing, CAD Modeling",
		"Timeline: 20 weeks (standard 8, up to 20)",
		"Base Cost",
		"Additional Services (2)",
		"Relaxed: -26%",
		"Estimated Total",
		snap.FormattedTotal,
	} {
		assert.Contains(t, out, want)
	}
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 60, components.VisibleLen(line), "line %q", line)
	}
}

func TestRenderTextWithoutAddons(t *testing.T) {
	snap := buildSnapshot(t, Request{Service: "brand"})
	out := ansi.Strip(RenderText(snap, 50))
	assert.NotContains(t, out, "Additional Services")
	assert.NotContains(t, out, "Add-ons:")
	assert.Contains(t, out, pricing.LabelStandard)
	assert.Contains(t, out, "Timeline: 4 weeks")
}

func TestRenderTextNoService(t *testing.T) {
	snap := NewSnapshot(pricing.NewEngine(), currency.Default())
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, snap, FormatText))
	out := ansi.Strip(buf.String())
	assert.Contains(t, out, "No service selected.")
	assert.Contains(t, out, "Estimated Total")
}

func TestRenderUnknownFormat(t *testing.T) {
	assert.Error(t, Render(&bytes.Buffer{}, Snapshot{}, Format("xml")))
	assert.Error(t, RenderCatalog(&bytes.Buffer{}, currency.Default(), Format("xml")))
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"":      FormatText,
		"text":  FormatText,
		"JSON":  FormatJSON,
		"yaml":  FormatYAML,
		" yml ": FormatYAML,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("csv")
	assert.Error(t, err)
}

func TestRenderCatalog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderCatalog(&buf, currency.Default(), FormatText))
	out := ansi.Strip(buf.String())
	for _, svc := range pricing.Services() {
		assert.Contains(t, out, string(svc.ID))
		assert.Contains(t, out, svc.Name)
		for _, a := range svc.Addons {
			assert.Contains(t, out, a)
		}
	}

	buf.Reset()
	require.NoError(t, RenderCatalog(&buf, currency.Default(), FormatJSON))
	var services []pricing.Service
	require.NoError(t, json.Unmarshal(buf.Bytes(), &services))
	require.Len(t, services, 5)
	assert.Equal(t, pricing.Industrial, services[0].ID)
}

func TestWidthForNonTerminal(t *testing.T) {
	assert.Equal(t, quoteDefaultWidth, Width(&bytes.Buffer{}))
}

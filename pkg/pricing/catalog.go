package pricing

// ServiceID identifies a service category in the catalog.
type ServiceID string

// Service identifiers.
const (
	Industrial ServiceID = "industrial"
	Brand      ServiceID = "brand"
	UIUX       ServiceID = "uiux"
	Website    ServiceID = "website"
	Impact     ServiceID = "impact"
)

// Service is one catalog entry: a display name and its ordered add-ons.
type Service struct {
	ID     ServiceID `json:"id" yaml:"id"`
	Name   string    `json:"name" yaml:"name"`
	Addons []string  `json:"addons" yaml:"addons"`
}

// HasAddon reports whether name is one of this service's add-ons.
func (s Service) HasAddon(name string) bool {
	return s.addonIndex(name) >= 0
}

// addonIndex returns the catalog position of name, or -1.
func (s Service) addonIndex(name string) int {
	for i, a := range s.Addons {
		if a == name {
			return i
		}
	}
	return -1
}

// catalog is built once and never modified. Callers only ever receive copies.
var catalog = []Service{
	{
		ID:   Industrial,
		Name: "Industrial Design",
		Addons: []string{
			"Surfacing",
			"CAD Modeling",
			"Prototyping",
			"Manufacturing Assistance",
			"Material Consultation",
			"Design Documentation",
		},
	},
	{
		ID:   Brand,
		Name: "Brand Design",
		Addons: []string{
			"Brand Guidelines",
			"Social Media Kit",
			"Marketing Collateral",
			"Merchandise Design",
			"Brand Strategy",
			"Brand Voice",
		},
	},
	{
		ID:   UIUX,
		Name: "UI/UX Design",
		Addons: []string{
			"User Research",
			"Wireframing",
			"Prototype",
			"User Testing",
			"Design System",
			"Documentation",
		},
	},
	{
		ID:   Website,
		Name: "Website Design",
		Addons: []string{
			"SEO Optimization",
			"Content Strategy",
			"Animation",
			"CMS Integration",
			"Analytics Setup",
			"Performance Optimization",
		},
	},
	{
		ID:   Impact,
		Name: "Impact Design",
		Addons: []string{
			"Impact Assessment",
			"Stakeholder Mapping",
			"Sustainability Analysis",
			"Community Engagement",
			"Impact Metrics",
			"Implementation Strategy",
		},
	},
}

var catalogIndex = func() map[ServiceID]int {
	idx := make(map[ServiceID]int, len(catalog))
	for i, s := range catalog {
		idx[s.ID] = i
	}
	return idx
}()

// Services returns every catalog entry in display order.
func Services() []Service {
	out := make([]Service, len(catalog))
	for i, s := range catalog {
		out[i] = s.clone()
	}
	return out
}

// ServiceIDs returns the catalog identifiers in display order.
func ServiceIDs() []ServiceID {
	ids := make([]ServiceID, len(catalog))
	for i, s := range catalog {
		ids[i] = s.ID
	}
	return ids
}

// Lookup returns the catalog entry for id.
func Lookup(id ServiceID) (Service, bool) {
	i, ok := catalogIndex[id]
	if !ok {
		return Service{}, false
	}
	return catalog[i].clone(), true
}

func (s Service) clone() Service {
	s.Addons = append([]string(nil), s.Addons...)
	return s
}

package model

// BaseOrigin is prepended to a project's href to form the absolute project URL.
const BaseOrigin = "https://correlaid.org"

// DefaultOrganizationName is used when the input record carries no
// organization name.
const DefaultOrganizationName = "Unknown Organization"

// EnrichedLocation is a geocoded project record ready for feature output.
// It is created once per resolved record and never mutated.
type EnrichedLocation struct {
	Name    string  `json:"name"`
	Project string  `json:"project"`
	Lon     float64 `json:"lon"`
	Lat     float64 `json:"lat"`
	Address string  `json:"address"`
	Place   string  `json:"place"`
	Country string  `json:"country"`
	URL     string  `json:"url,omitempty"`
}

// NewEnrichedLocation combines a project record with its resolved coordinate.
// The coordinate is (lon, lat), matching GeoJSON axis order.
func NewEnrichedLocation(p ProjectRecord, lon, lat float64) EnrichedLocation {
	addr := p.Organization.Address.Trimmed()

	name := p.Organization.Name
	if name == "" {
		name = DefaultOrganizationName
	}

	loc := EnrichedLocation{
		Name:    name,
		Project: p.Title,
		Lon:     lon,
		Lat:     lat,
		Address: addr.Formatted(),
		Place:   addr.Place,
		Country: addr.Country,
	}
	if p.Href != "" {
		loc.URL = BaseOrigin + p.Href
	}
	return loc
}

// Package model defines the input records parsed from the project address
// collection and the enriched location records produced by the pipeline.
package model

import "strings"

// ProjectRecord is one entry of the input collection. Records are read-only
// once loaded.
type ProjectRecord struct {
	Title        string             `json:"title"`
	Href         string             `json:"href,omitempty"`
	Organization OrganizationRecord `json:"organization"`
}

// OrganizationRecord holds the organization display name and postal address.
type OrganizationRecord struct {
	Name    string        `json:"name"`
	Address AddressRecord `json:"address"`
}

// AddressRecord holds free-text address fields. A field is treated as absent
// when it is empty after whitespace trimming.
type AddressRecord struct {
	Street  string `json:"street,omitempty"`
	Number  string `json:"number,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
	Place   string `json:"place,omitempty"`
	Country string `json:"country,omitempty"`
}

// Trimmed returns a copy of the address with whitespace trimmed on every field.
func (a AddressRecord) Trimmed() AddressRecord {
	return AddressRecord{
		Street:  strings.TrimSpace(a.Street),
		Number:  strings.TrimSpace(a.Number),
		ZipCode: strings.TrimSpace(a.ZipCode),
		Place:   strings.TrimSpace(a.Place),
		Country: strings.TrimSpace(a.Country),
	}
}

// Geocodable reports whether the address carries enough context to attempt a
// lookup. Place and country are both required; street-level detail alone is
// too ambiguous to resolve.
func (a AddressRecord) Geocodable() bool {
	t := a.Trimmed()
	return t.Place != "" && t.Country != ""
}

// Query builds the free-text lookup query. Parts are joined with ", " in
// order: "street number" (only when both are present), zip code, place,
// country. Place and country go last so the geocoder weights the locality
// context most heavily. Returns "" when place or country is absent or the
// assembled query is blank.
func (a AddressRecord) Query() string {
	t := a.Trimmed()
	if t.Place == "" || t.Country == "" {
		return ""
	}

	var parts []string
	if t.Street != "" && t.Number != "" {
		parts = append(parts, t.Street+" "+t.Number)
	}
	if t.ZipCode != "" {
		parts = append(parts, t.ZipCode)
	}
	parts = append(parts, t.Place, t.Country)

	query := strings.Join(parts, ", ")
	if strings.TrimSpace(query) == "" {
		return ""
	}
	return query
}

// DedupKey returns the case-insensitive "place|country" key used to avoid
// repeated lookups for addresses sharing a locality. Returns "" when the
// address is not geocodable.
func (a AddressRecord) DedupKey() string {
	t := a.Trimmed()
	if t.Place == "" || t.Country == "" {
		return ""
	}
	return strings.ToLower(t.Place + "|" + t.Country)
}

// Formatted renders the human-readable address "street number, zip place,
// country" with dangling separators stripped when leading pieces are missing.
func (a AddressRecord) Formatted() string {
	t := a.Trimmed()
	s := t.Street + " " + t.Number + ", " + t.ZipCode + " " + t.Place + ", " + t.Country
	return strings.Trim(strings.TrimSpace(s), ", ")
}

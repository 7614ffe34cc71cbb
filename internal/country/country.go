package country

import (
	"sort"
	"strings"
)

// Record is one entry of the static country/dial-code table.
type Record struct {
	Name     string `json:"name"`
	ISO2     string `json:"iso2"`
	DialCode string `json:"dial_code"`
}

// Resolver answers country lookups against the static table. The table is
// immutable at runtime; a parenthetical region suffix in the raw name is
// stripped for display at construction, as the source data carries it.
type Resolver struct {
	records []Record
	defISO2 string
}

// NewResolver builds a resolver with the given default country (ISO2 code),
// used by Default as the common-case preselection.
func NewResolver(defaultISO2 string) *Resolver {
	records := make([]Record, len(allCountries))
	for i, c := range allCountries {
		name := c.Name
		if idx := strings.Index(name, " ("); idx >= 0 {
			name = name[:idx]
		}
		records[i] = Record{Name: name, ISO2: c.ISO2, DialCode: c.DialCode}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})
	return &Resolver{records: records, defISO2: strings.ToLower(defaultISO2)}
}

// All returns the full table, sorted by display name.
func (r *Resolver) All() []Record {
	return r.records
}

// Search filters the table by case-insensitive substring match on the display
// name. An empty term returns the full list.
func (r *Resolver) Search(term string) []Record {
	keyword := strings.ToLower(strings.TrimSpace(term))
	if keyword == "" {
		return r.records
	}
	var out []Record
	for _, c := range r.records {
		if strings.Contains(strings.ToLower(c.Name), keyword) {
			out = append(out, c)
		}
	}
	return out
}

// Default returns the preselected country.
func (r *Resolver) Default() (Record, bool) {
	for _, c := range r.records {
		if c.ISO2 == r.defISO2 {
			return c, true
		}
	}
	return Record{}, false
}

// ByName returns the record whose display name matches case-insensitively.
func (r *Resolver) ByName(name string) (Record, bool) {
	target := strings.ToLower(strings.TrimSpace(name))
	for _, c := range r.records {
		if strings.ToLower(c.Name) == target {
			return c, true
		}
	}
	return Record{}, false
}

// IsValid reports whether the name belongs to the table.
func (r *Resolver) IsValid(name string) bool {
	_, ok := r.ByName(name)
	return ok
}

// Prefix returns the phone-number prefix for a record, e.g. "+91".
func Prefix(c Record) string {
	return "+" + c.DialCode
}

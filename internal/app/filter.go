package app

import (
	"strings"

	"travel_reco/internal/domain"
)

// SearchResult holds the matching records per category, in catalog order.
type SearchResult struct {
	Query     string
	Countries []domain.Country
	Beaches   []domain.Beach
	Temples   []domain.Temple
}

func (r SearchResult) Empty() bool {
	return len(r.Countries) == 0 && len(r.Beaches) == 0 && len(r.Temples) == 0
}

// NormalizeQuery trims and lower-cases q. An empty result means "match all".
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// Filter returns the records whose extracted fields contain query,
// case-insensitively, preserving order. A blank query passes every record
// through. The result never aliases records.
func Filter[T any](query string, records []T, fields func(T) []string) []T {
	q := NormalizeQuery(query)
	out := make([]T, 0, len(records))
	for _, r := range records {
		if q == "" || anyContains(fields(r), q) {
			out = append(out, r)
		}
	}
	return out
}

func anyContains(fields []string, q string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// CountryFields: the country name plus every city's name and description.
// A country matched through one city is kept whole.
func CountryFields(c domain.Country) []string {
	out := make([]string, 0, 1+2*len(c.Cities))
	out = append(out, c.Name)
	for _, city := range c.Cities {
		out = append(out, city.Name, city.Description)
	}
	return out
}

func PlaceFields(p domain.Place) []string { return []string{p.Name, p.Description} }

// Search filters each category of c independently.
func Search(c domain.Catalog, query string) SearchResult {
	return SearchResult{
		Query:     strings.TrimSpace(query),
		Countries: Filter(query, c.Countries, CountryFields),
		Beaches:   Filter(query, c.Beaches, PlaceFields),
		Temples:   Filter(query, c.Temples, PlaceFields),
	}
}

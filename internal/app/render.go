package app

import (
	"strings"

	"travel_reco/internal/domain"
)

const (
	NoResultsMessage  = "No items found matching your search."
	LoadFailedMessage = "Failed to load data. Please try again later."
)

// BuildResults maps a search result to the results area content: one section
// per non-empty category in fixed order, or the placeholder when all are empty.
func BuildResults(r SearchResult) domain.ResultsView {
	v := domain.ResultsView{Query: r.Query}
	if len(r.Countries) > 0 {
		v.Sections = append(v.Sections, countriesSection(r.Countries))
	}
	if len(r.Beaches) > 0 {
		v.Sections = append(v.Sections, placesSection(domain.CategoryBeaches, r.Beaches))
	}
	if len(r.Temples) > 0 {
		v.Sections = append(v.Sections, placesSection(domain.CategoryTemples, r.Temples))
	}
	if len(v.Sections) == 0 {
		v.NoResults = NoResultsMessage
	}
	return v
}

// LoadFailedView replaces the whole results area with the load error.
func LoadFailedView(query string) domain.ResultsView {
	return domain.ResultsView{Query: strings.TrimSpace(query), Error: LoadFailedMessage}
}

func countriesSection(cs []domain.Country) domain.ResultSection {
	s := domain.ResultSection{
		Category: domain.CategoryCountries,
		Title:    domain.CategoryCountries.Title(),
		Items:    make([]domain.ResultItem, 0, len(cs)),
	}
	for _, c := range cs {
		item := domain.ResultItem{Name: c.Name}
		for _, city := range c.Cities {
			item.Cities = append(item.Cities, domain.Result{
				Name:        city.Name,
				Description: city.Description,
				ImageURL:    deref(city.ImageURL),
			})
		}
		s.Items = append(s.Items, item)
	}
	return s
}

func placesSection(cat domain.Category, ps []domain.Place) domain.ResultSection {
	s := domain.ResultSection{
		Category: cat,
		Title:    cat.Title(),
		Items:    make([]domain.ResultItem, 0, len(ps)),
	}
	for _, p := range ps {
		s.Items = append(s.Items, domain.ResultItem{
			Name:        p.Name,
			Description: p.Description,
			ImageURL:    deref(p.ImageURL),
		})
	}
	return s
}

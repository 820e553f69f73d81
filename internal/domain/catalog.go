package domain

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrLoadFailed = errors.New("data load failed")
)

type City struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

type Country struct {
	Name   string `json:"name"`
	Cities []City `json:"cities,omitempty"`
}

// Place is the shared shape of beaches and temples.
type Place struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

type Beach = Place
type Temple = Place

// Catalog is one complete snapshot of the recommendation data.
// It is never mutated after construction; replace it wholesale.
type Catalog struct {
	Countries []Country `json:"countries"`
	Beaches   []Beach   `json:"beaches"`
	Temples   []Temple  `json:"temples"`
}

func (c Catalog) Len() int { return len(c.Countries) + len(c.Beaches) + len(c.Temples) }

// Category identifies one of the three fixed result groups.
type Category string

const (
	CategoryCountries Category = "countries"
	CategoryBeaches   Category = "beaches"
	CategoryTemples   Category = "temples"
)

// Categories lists categories in render order.
var Categories = []Category{CategoryCountries, CategoryBeaches, CategoryTemples}

func (c Category) Title() string {
	switch c {
	case CategoryCountries:
		return "Countries"
	case CategoryBeaches:
		return "Beaches"
	case CategoryTemples:
		return "Temples"
	}
	return string(c)
}

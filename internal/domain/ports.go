package domain

import "context"

// CatalogSource yields a complete catalog in one call.
type CatalogSource interface {
	FetchCatalog(ctx context.Context) (Catalog, error)
}

// DocumentClient retrieves the raw recommendation document.
type DocumentClient interface {
	GetDocument(ctx context.Context) (map[string]any, error)
}

type CatalogRepository interface {
	// Write path
	ReplaceCatalog(ctx context.Context, c Catalog) error

	// Read path
	FetchCatalog(ctx context.Context) (Catalog, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Read models

type ResultItem struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Cities      []Result `json:"cities,omitempty"`
}

// Result is a leaf entry (city, beach or temple).
type Result struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

type ResultSection struct {
	Category Category     `json:"category"`
	Title    string       `json:"title"`
	Items    []ResultItem `json:"items"`
}

// ResultsView is the full content of the results area.
// Exactly one of Error, NoResults or Sections is populated.
type ResultsView struct {
	Query     string          `json:"query"`
	Sections  []ResultSection `json:"sections,omitempty"`
	NoResults string          `json:"noResults,omitempty"`
	Error     string          `json:"error,omitempty"`
}

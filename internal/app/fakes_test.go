package app_test

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"travel_reco/internal/domain"
)

// ---- fakes ----

type fakeSource struct {
	c     domain.Catalog
	err   error
	calls int32
}

func (f *fakeSource) FetchCatalog(ctx context.Context) (domain.Catalog, error) {
	atomic.AddInt32(&f.calls, 1)
	return f.c, f.err
}

type fakeDocClient struct {
	raw string
	err error
}

func (f *fakeDocClient) GetDocument(ctx context.Context) (map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(f.raw), &out); err != nil {
		return nil, err
	}
	return out, nil
}

type fakeRepo struct {
	stored   *domain.Catalog
	replaces int
	err      error
}

func (f *fakeRepo) ReplaceCatalog(ctx context.Context, c domain.Catalog) error {
	if f.err != nil {
		return f.err
	}
	f.replaces++
	f.stored = &c
	return nil
}

func (f *fakeRepo) FetchCatalog(ctx context.Context) (domain.Catalog, error) {
	if f.stored == nil {
		return domain.Catalog{}, domain.ErrNotFound
	}
	return *f.stored, nil
}

type fakeCache struct {
	store map[string]any
	gets  int
	dels  []string
	err   error
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	c.gets++
	if c.err != nil {
		return false, c.err
	}
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *domain.ResultsView:
		*d = v.(domain.ResultsView)
	}
	return true, nil
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.dels = append(c.dels, key)
	delete(c.store, key)
	return nil
}

// ---- fixtures ----

func ptr[T any](v T) *T { return &v }

func sampleCatalog() domain.Catalog {
	return domain.Catalog{
		Countries: []domain.Country{
			{Name: "Australia", Cities: []domain.City{
				{Name: "Sydney, Australia", Description: "A vibrant city known for its iconic landmarks.", ImageURL: ptr("sydney.jpg")},
				{Name: "Melbourne, Australia", Description: "A cultural hub famous for its art and coffee.", ImageURL: ptr("melbourne.jpg")},
			}},
			{Name: "Japan", Cities: []domain.City{
				{Name: "Tokyo, Japan", Description: "A bustling metropolis.", ImageURL: ptr("tokyo.jpg")},
				{Name: "Kyoto, Japan", Description: "Historic temples and gardens."},
			}},
			{Name: "Brazil"},
		},
		Beaches: []domain.Beach{
			{Name: "Bora Bora, French Polynesia", Description: "Turquoise waters and overwater bungalows.", ImageURL: ptr("bora.jpg")},
			{Name: "Copacabana Beach, Brazil", Description: "A famous stretch of sand in Rio.", ImageURL: ptr("copa.jpg")},
		},
		Temples: []domain.Temple{
			{Name: "Angkor Wat, Cambodia", Description: "A UNESCO World Heritage site.", ImageURL: ptr("angkor.jpg")},
			{Name: "Taj Mahal, India", Description: "An iconic symbol of love."},
		},
	}
}

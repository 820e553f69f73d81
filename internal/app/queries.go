package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"travel_reco/internal/domain"
)

type QueryService struct {
	store    *Store
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(s *Store, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{store: s, cache: c, cacheTTL: ttl}
}

// Search returns the results area for query against the current catalog.
// Without a loaded catalog it returns the load failure view.
func (s *QueryService) Search(ctx context.Context, query string) domain.ResultsView {
	snap, ok := s.store.Snapshot()
	if !ok {
		return LoadFailedView(query)
	}

	// Keyed by catalog version so a reload never serves stale results.
	key := fmt.Sprintf("search:%s:%s", snap.Version, NormalizeQuery(query))
	var out domain.ResultsView
	if s.cache != nil {
		ok, err := s.cache.Get(ctx, key, &out)
		if ok {
			out.Query = strings.TrimSpace(query)
			return out
		}
		if err != nil {
			// drop undecodable entries; a miss on the next read rebuilds them
			_ = s.cache.Del(ctx, key)
			out = domain.ResultsView{}
		}
	}

	out = BuildResults(Search(snap.Catalog, query))

	// optional size guard
	if s.cache != nil {
		if b, _ := json.Marshal(out); len(b) < 1_000_000 {
			_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
		}
	}
	return out
}

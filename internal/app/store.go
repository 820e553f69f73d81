package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"travel_reco/internal/domain"
)

// Snapshot is an immutable, fully loaded catalog.
type Snapshot struct {
	Catalog  domain.Catalog
	Version  string // content hash; equal catalogs share a version
	LoadedAt time.Time
}

// LoadHook observes every load attempt.
type LoadHook func(c domain.Catalog, err error)

// Store owns the application's catalog. Readers get the current snapshot;
// loads replace it wholesale and a failed load keeps the previous one.
type Store struct {
	src  domain.CatalogSource
	snap atomic.Pointer[Snapshot]
	sf   singleflight.Group
	hook LoadHook
}

func NewStore(src domain.CatalogSource, hook LoadHook) *Store {
	return &Store{src: src, hook: hook}
}

// Snapshot returns the current catalog; ok is false until a load succeeds.
func (s *Store) Snapshot() (Snapshot, bool) {
	p := s.snap.Load()
	if p == nil {
		return Snapshot{}, false
	}
	return *p, true
}

// Load fetches the catalog once. Concurrent callers share one fetch.
func (s *Store) Load(ctx context.Context) (Snapshot, error) {
	v, err, shared := s.sf.Do("load", func() (any, error) {
		return s.load(ctx)
	})
	if shared {
		log.Debug().Msg("catalog load shared with in-flight call")
	}
	if err != nil {
		return Snapshot{}, err
	}
	return v.(Snapshot), nil
}

func (s *Store) load(ctx context.Context) (Snapshot, error) {
	c, err := s.src.FetchCatalog(ctx)
	if s.hook != nil {
		s.hook(c, err)
	}
	if err != nil {
		log.Error().Err(err).Msg("catalog load failed")
		return Snapshot{}, fmt.Errorf("%w: %v", domain.ErrLoadFailed, err)
	}

	snap := Snapshot{Catalog: c, Version: catalogVersion(c), LoadedAt: time.Now().UTC()}
	s.snap.Store(&snap)
	log.Info().
		Str("version", snap.Version).
		Int("countries", len(c.Countries)).
		Int("beaches", len(c.Beaches)).
		Int("temples", len(c.Temples)).
		Msg("catalog loaded")
	return snap, nil
}

func catalogVersion(c domain.Catalog) string {
	b, err := json.Marshal(c)
	if err != nil {
		log.Error().Err(err).Str("context", "catalogVersion").Msg("marshal catalog failed")
		return "unversioned"
	}
	sum := sha1.Sum(b)
	return hex.EncodeToString(sum[:8])
}

// DocumentSource adapts a raw document client into a CatalogSource.
type DocumentSource struct{ client domain.DocumentClient }

func NewDocumentSource(c domain.DocumentClient) *DocumentSource {
	return &DocumentSource{client: c}
}

func (d *DocumentSource) FetchCatalog(ctx context.Context) (domain.Catalog, error) {
	doc, err := d.client.GetDocument(ctx)
	if err != nil {
		return domain.Catalog{}, err
	}
	return mapCatalog(doc), nil
}

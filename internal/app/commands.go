package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"travel_reco/internal/domain"
)

type IngestionService struct {
	src  domain.CatalogSource
	repo domain.CatalogRepository
}

func NewIngestionService(src domain.CatalogSource, r domain.CatalogRepository) *IngestionService {
	return &IngestionService{src: src, repo: r}
}

// Ingest fetches the document and replaces the stored catalog with it.
// A failed fetch leaves the stored catalog untouched.
func (s *IngestionService) Ingest(ctx context.Context) (domain.Catalog, error) {
	c, err := s.src.FetchCatalog(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			log.Warn().Err(err).Msg("catalog document not found; stored catalog kept")
		}
		return domain.Catalog{}, fmt.Errorf("%w: %v", domain.ErrLoadFailed, err)
	}

	if err := s.repo.ReplaceCatalog(ctx, c); err != nil {
		return domain.Catalog{}, fmt.Errorf("replace catalog: %w", err)
	}
	return c, nil
}

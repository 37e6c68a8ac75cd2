package usecase

import (
	"context"
	"fmt"

	"trip-planner/internal/data/entity"
	"trip-planner/internal/data/repository"

	"go.uber.org/zap"
)

// ProviderService is a stateless responder supplying priced options for a
// destination. Unknown destinations fall back to the reserved "Default"
// catalog entry; an empty result is valid, never a failure.
type ProviderService interface {
	Kind() entity.OptionKind
	Lookup(ctx context.Context, destination string) ([]entity.Option, error)
}

type providerService struct {
	kind    entity.OptionKind
	catalog repository.CatalogRepository
	log     *zap.Logger
}

func NewProviderService(kind entity.OptionKind, catalog repository.CatalogRepository, log *zap.Logger) ProviderService {
	return &providerService{
		kind:    kind,
		catalog: catalog,
		log:     log.With(zap.String("service", "provider"), zap.String("kind", string(kind))),
	}
}

func (s *providerService) Kind() entity.OptionKind {
	return s.kind
}

func (s *providerService) Lookup(ctx context.Context, destination string) ([]entity.Option, error) {
	options, err := s.catalog.FindByDestination(ctx, destination)
	if err != nil {
		return nil, fmt.Errorf("lookup %s options for %s: %w", s.kind, destination, err)
	}

	// No entry for this destination: serve the Default set instead
	if len(options) == 0 && destination != entity.DefaultCatalogKey {
		options, err = s.catalog.FindByDestination(ctx, entity.DefaultCatalogKey)
		if err != nil {
			return nil, fmt.Errorf("lookup default %s options: %w", s.kind, err)
		}
	}

	s.log.Debug("Catalog lookup served",
		zap.String("destination", destination),
		zap.Int("count", len(options)),
	)

	return options, nil
}

package repository

import (
	"trip-planner/internal/data/entity"
	"trip-planner/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	TransportCatalog CatalogRepository
	HotelCatalog     CatalogRepository
}

// NewRepository wires database-backed catalogs for both option kinds.
func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		TransportCatalog: NewCatalogRepository(db, entity.OptionKindTransport, log),
		HotelCatalog:     NewCatalogRepository(db, entity.OptionKindHotel, log),
	}
}

// NewSeededRepository wires the built-in catalogs, used when no catalog
// database is configured.
func NewSeededRepository() *Repository {
	return &Repository{
		TransportCatalog: SeedTransportCatalog(),
		HotelCatalog:     SeedHotelCatalog(),
	}
}

package repository

import (
	"context"

	"trip-planner/internal/data/entity"
)

// memoryCatalog serves a preloaded option table. Entries are read-only
// after construction, so lookups need no locking.
type memoryCatalog struct {
	entries map[string][]entity.Option
}

// NewMemoryCatalog builds an in-memory catalog from a destination-keyed
// option table.
func NewMemoryCatalog(entries map[string][]entity.Option) CatalogRepository {
	return &memoryCatalog{entries: entries}
}

func (c *memoryCatalog) FindByDestination(_ context.Context, destination string) ([]entity.Option, error) {
	return c.entries[destination], nil
}

// SeedTransportCatalog is the built-in transport table used when no
// database catalog is configured.
func SeedTransportCatalog() CatalogRepository {
	k := entity.OptionKindTransport
	return NewMemoryCatalog(map[string][]entity.Option{
		"Paris": {
			{Name: "Flight", Kind: k, UnitCost: 350.0, Destination: "Paris"},
			{Name: "Train", Kind: k, UnitCost: 180.0, Destination: "Paris"},
			{Name: "Bus", Kind: k, UnitCost: 85.0, Destination: "Paris"},
		},
		"London": {
			{Name: "Flight", Kind: k, UnitCost: 280.0, Destination: "London"},
			{Name: "Train", Kind: k, UnitCost: 150.0, Destination: "London"},
			{Name: "Bus", Kind: k, UnitCost: 60.0, Destination: "London"},
		},
		"New York": {
			{Name: "Flight", Kind: k, UnitCost: 650.0, Destination: "New York"},
			{Name: "Train", Kind: k, UnitCost: 320.0, Destination: "New York"},
			{Name: "Bus", Kind: k, UnitCost: 150.0, Destination: "New York"},
		},
		"Tokyo": {
			{Name: "Flight", Kind: k, UnitCost: 950.0, Destination: "Tokyo"},
			{Name: "Train", Kind: k, UnitCost: 520.0, Destination: "Tokyo"},
		},
		entity.DefaultCatalogKey: {
			{Name: "Flight", Kind: k, UnitCost: 500.0, Destination: entity.DefaultCatalogKey},
			{Name: "Train", Kind: k, UnitCost: 250.0, Destination: entity.DefaultCatalogKey},
			{Name: "Bus", Kind: k, UnitCost: 120.0, Destination: entity.DefaultCatalogKey},
		},
	})
}

// SeedHotelCatalog is the built-in hotel table used when no database
// catalog is configured. Unit costs are per night.
func SeedHotelCatalog() CatalogRepository {
	k := entity.OptionKindHotel
	return NewMemoryCatalog(map[string][]entity.Option{
		"Paris": {
			{Name: "Hotel Luxe Paris", Kind: k, UnitCost: 180.0, Destination: "Paris"},
			{Name: "Budget Inn Paris", Kind: k, UnitCost: 80.0, Destination: "Paris"},
			{Name: "Mid-Range Paris Hotel", Kind: k, UnitCost: 120.0, Destination: "Paris"},
		},
		"London": {
			{Name: "London Grand Hotel", Kind: k, UnitCost: 200.0, Destination: "London"},
			{Name: "Cozy London Stay", Kind: k, UnitCost: 90.0, Destination: "London"},
			{Name: "Thames View Hotel", Kind: k, UnitCost: 140.0, Destination: "London"},
		},
		"New York": {
			{Name: "Manhattan Luxury Suites", Kind: k, UnitCost: 280.0, Destination: "New York"},
			{Name: "Brooklyn Budget Hotel", Kind: k, UnitCost: 110.0, Destination: "New York"},
			{Name: "Times Square Hotel", Kind: k, UnitCost: 190.0, Destination: "New York"},
		},
		"Tokyo": {
			{Name: "Tokyo Imperial Hotel", Kind: k, UnitCost: 250.0, Destination: "Tokyo"},
			{Name: "Shibuya Capsule Hotel", Kind: k, UnitCost: 60.0, Destination: "Tokyo"},
			{Name: "Shinjuku Business Hotel", Kind: k, UnitCost: 130.0, Destination: "Tokyo"},
		},
		entity.DefaultCatalogKey: {
			{Name: "Premium Hotel", Kind: k, UnitCost: 160.0, Destination: entity.DefaultCatalogKey},
			{Name: "Budget Hotel", Kind: k, UnitCost: 70.0, Destination: entity.DefaultCatalogKey},
			{Name: "Standard Hotel", Kind: k, UnitCost: 100.0, Destination: entity.DefaultCatalogKey},
		},
	})
}

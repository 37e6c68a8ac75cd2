package repository

import (
	"context"
	"fmt"

	"trip-planner/internal/data/entity"
	"trip-planner/pkg/database"

	"go.uber.org/zap"
)

// CatalogRepository is the provider's data source: priced options keyed by
// destination. Implementations must be safe for concurrent reads.
type CatalogRepository interface {
	FindByDestination(ctx context.Context, destination string) ([]entity.Option, error)
}

type catalogRepository struct {
	db   database.PgxIface
	kind entity.OptionKind
	log  *zap.Logger
}

// NewCatalogRepository returns a catalog backed by the catalog_options
// table, filtered to one option kind.
func NewCatalogRepository(db database.PgxIface, kind entity.OptionKind, log *zap.Logger) CatalogRepository {
	return &catalogRepository{
		db:   db,
		kind: kind,
		log:  log.With(zap.String("repository", "catalog"), zap.String("kind", string(kind))),
	}
}

func (r *catalogRepository) FindByDestination(ctx context.Context, destination string) ([]entity.Option, error) {
	query := `
		SELECT name, kind, unit_cost, destination
		FROM catalog_options
		WHERE kind = $1 AND destination = $2
		ORDER BY unit_cost
	`

	rows, err := r.db.Query(ctx, query, r.kind, destination)
	if err != nil {
		r.log.Error("Failed to query catalog options",
			zap.Error(err),
			zap.String("destination", destination),
		)
		return nil, fmt.Errorf("find %s options for %s: %w", r.kind, destination, err)
	}
	defer rows.Close()

	var options []entity.Option
	for rows.Next() {
		var opt entity.Option
		err := rows.Scan(
			&opt.Name,
			&opt.Kind,
			&opt.UnitCost,
			&opt.Destination,
		)
		if err != nil {
			r.log.Error("Failed to scan catalog option row", zap.Error(err))
			return nil, fmt.Errorf("scan catalog option row: %w", err)
		}
		options = append(options, opt)
	}

	return options, nil
}

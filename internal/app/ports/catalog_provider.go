package ports

import (
	"context"

	"villagrove/internal/domain/catalog"
)

// CatalogProvider serves the immutable species and furniture tables.
type CatalogProvider interface {
	Bugs(ctx context.Context) ([]catalog.Species, error)
	Fish(ctx context.Context) ([]catalog.Species, error)
	SpeciesByID(ctx context.Context, kind catalog.SpeciesKind, id int64) (catalog.Species, error)
	Furniture(ctx context.Context) ([]catalog.Furniture, error)
	FurnitureByID(ctx context.Context, id int64) (catalog.Furniture, error)
}

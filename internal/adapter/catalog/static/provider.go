package static

import (
	"context"

	"villagrove/internal/app/ports"
	"villagrove/internal/domain/catalog"
)

// Provider serves the compiled-in reference tables. The catalog is
// immutable at runtime; gameplay only reads it.
type Provider struct{}

func (Provider) Bugs(_ context.Context) ([]catalog.Species, error) {
	out := make([]catalog.Species, len(bugs))
	copy(out, bugs)
	return out, nil
}

func (Provider) Fish(_ context.Context) ([]catalog.Species, error) {
	out := make([]catalog.Species, len(fish))
	copy(out, fish)
	return out, nil
}

func (Provider) SpeciesByID(_ context.Context, kind catalog.SpeciesKind, id int64) (catalog.Species, error) {
	pool := bugs
	if kind == catalog.KindFish {
		pool = fish
	}
	for _, s := range pool {
		if s.ID == id {
			return s, nil
		}
	}
	return catalog.Species{}, ports.ErrNotFound
}

func (Provider) Furniture(_ context.Context) ([]catalog.Furniture, error) {
	out := make([]catalog.Furniture, len(furniture))
	copy(out, furniture)
	return out, nil
}

func (Provider) FurnitureByID(_ context.Context, id int64) (catalog.Furniture, error) {
	f, ok := catalog.FurnitureByID(furniture, id)
	if !ok {
		return catalog.Furniture{}, ports.ErrNotFound
	}
	return f, nil
}

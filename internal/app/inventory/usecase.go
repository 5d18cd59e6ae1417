package inventory

import (
	"context"
	"errors"
	"fmt"

	"villagrove/internal/app/ports"
	"villagrove/internal/domain/catalog"
)

var ErrInvalidRequest = errors.New("invalid inventory request")

type UseCase struct {
	TxManager ports.TxManager
	Users     ports.UserRepository
	Inventory ports.InventoryRepository
	Catalog   ports.CatalogProvider
}

// List returns the caller's bug/fish inventory plus aggregate stats.
// Furniture is served separately by ListFurniture.
func (u UseCase) List(ctx context.Context, ownerID string) (ListResponse, error) {
	views, err := u.ownedViews(ctx, ownerID, false)
	if err != nil {
		return ListResponse{}, err
	}

	stats := Stats{UniqueSpecies: len(views)}
	for _, v := range views {
		stats.TotalItems += v.Quantity
		stats.TotalValue += v.Value * v.Quantity
		if v.Rarity == string(catalog.RarityRare) || v.Rarity == string(catalog.RarityLegendary) {
			stats.RareItems += v.Quantity
		}
	}
	return ListResponse{Items: views, Stats: stats}, nil
}

// ListFurniture returns the caller's purchased furniture.
func (u UseCase) ListFurniture(ctx context.Context, ownerID string) ([]ItemView, error) {
	return u.ownedViews(ctx, ownerID, true)
}

func (u UseCase) ownedViews(ctx context.Context, ownerID string, furniture bool) ([]ItemView, error) {
	if ownerID == "" {
		return nil, ErrInvalidRequest
	}
	records, err := u.Inventory.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	views := make([]ItemView, 0, len(records))
	for _, r := range records {
		if (r.ItemType == ports.ItemTypeFurniture) != furniture {
			continue
		}
		name, description, err := u.itemInfo(ctx, r)
		if err != nil {
			return nil, err
		}
		views = append(views, itemView(r, name, description))
	}
	return views, nil
}

func (u UseCase) itemInfo(ctx context.Context, r ports.InventoryRecord) (string, string, error) {
	switch r.ItemType {
	case ports.ItemTypeFurniture:
		f, err := u.Catalog.FurnitureByID(ctx, r.ItemID)
		if err != nil {
			return "", "", err
		}
		return f.Name, f.Description, nil
	case ports.ItemTypeFish:
		s, err := u.Catalog.SpeciesByID(ctx, catalog.KindFish, r.ItemID)
		if err != nil {
			return "", "", err
		}
		return s.Name, s.Description, nil
	default:
		s, err := u.Catalog.SpeciesByID(ctx, catalog.KindBug, r.ItemID)
		if err != nil {
			return "", "", err
		}
		return s.Name, s.Description, nil
	}
}

// Sell removes one unit of the item and credits its value to the
// owner, atomically. ErrNotFound covers items owned by someone else.
func (u UseCase) Sell(ctx context.Context, ownerID string, itemID int64) (SellResult, error) {
	var out SellResult
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		item, err := u.Inventory.GetByID(txCtx, itemID)
		if err != nil {
			return err
		}
		if item.OwnerID != ownerID {
			return ports.ErrNotFound
		}

		user, err := u.Users.GetByID(txCtx, ownerID)
		if err != nil {
			return err
		}
		loaded := user.Version

		if err := u.Inventory.RemoveOne(txCtx, item.ID); err != nil {
			return err
		}
		user.Points += item.Value
		user.Version++
		if err := u.Users.SaveWithVersion(txCtx, user, loaded); err != nil {
			return err
		}

		name, _, err := u.itemInfo(txCtx, item)
		if err != nil {
			return err
		}
		out = SellResult{
			Message:    fmt.Sprintf("Sold %s for %d Bells.", name, item.Value),
			Credited:   item.Value,
			NewBalance: user.Points,
		}
		return nil
	})
	if err != nil {
		return SellResult{}, err
	}
	return out, nil
}

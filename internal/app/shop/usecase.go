package shop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"villagrove/internal/app/ports"
	"villagrove/internal/domain/catalog"
)

var (
	ErrInvalidRequest    = errors.New("invalid shop request")
	ErrInsufficientFunds = errors.New("not enough Bells for this purchase")
)

type FurnitureView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Category    string `json:"category"`
	Size        string `json:"size"`
}

type PurchaseRequest struct {
	FurnitureID int64 `json:"furnitureId" validate:"required,gt=0"`
	VillagerID  int64 `json:"villagerId" validate:"required,gt=0"`
}

type PurchaseResult struct {
	Message    string `json:"message"`
	NewBalance int    `json:"newBalance"`
}

type UseCase struct {
	TxManager ports.TxManager
	Users     ports.UserRepository
	Villagers ports.VillagerRepository
	Inventory ports.InventoryRepository
	Catalog   ports.CatalogProvider
	Now       func() time.Time
}

func (u UseCase) Furniture(ctx context.Context) ([]FurnitureView, error) {
	all, err := u.Catalog.Furniture(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]FurnitureView, 0, len(all))
	for _, f := range all {
		views = append(views, FurnitureView{
			ID:          f.ID,
			Name:        f.Name,
			Description: f.Description,
			Price:       f.Price,
			Category:    string(f.Category),
			Size:        string(f.Size),
		})
	}
	return views, nil
}

// Purchase debits the buyer and creates the furniture inventory row in
// one transaction. An insufficient balance rejects before any write.
func (u UseCase) Purchase(ctx context.Context, ownerID string, req PurchaseRequest) (PurchaseResult, error) {
	if ownerID == "" || req.FurnitureID <= 0 || req.VillagerID <= 0 {
		return PurchaseResult{}, ErrInvalidRequest
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out PurchaseResult
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		item, err := u.Catalog.FurnitureByID(txCtx, req.FurnitureID)
		if err != nil {
			return err
		}
		v, err := u.Villagers.GetByID(txCtx, req.VillagerID)
		if err != nil {
			return err
		}
		if v.OwnerID != ownerID {
			return ports.ErrNotFound
		}

		user, err := u.Users.GetByID(txCtx, ownerID)
		if err != nil {
			return err
		}
		if user.Points < item.Price {
			return ErrInsufficientFunds
		}
		loaded := user.Version

		user.Points -= item.Price
		user.Version++
		if err := u.Users.SaveWithVersion(txCtx, user, loaded); err != nil {
			return err
		}
		if _, err := u.Inventory.Upsert(txCtx, ports.InventoryRecord{
			OwnerID:    ownerID,
			VillagerID: req.VillagerID,
			ItemType:   ports.ItemTypeFurniture,
			ItemID:     item.ID,
			Rarity:     string(catalog.RarityCommon),
			Value:      item.Price,
			Quantity:   1,
			CaughtAt:   nowFn(),
		}); err != nil {
			return err
		}

		out = PurchaseResult{
			Message:    fmt.Sprintf("Bought %s for %d Bells.", item.Name, item.Price),
			NewBalance: user.Points,
		}
		return nil
	})
	if err != nil {
		return PurchaseResult{}, err
	}
	return out, nil
}

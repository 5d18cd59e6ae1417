package gormrepo

import (
	"context"
	"errors"

	"villagrove/internal/adapter/repo/gorm/model"
	"villagrove/internal/app/ports"

	"gorm.io/gorm"
)

type InventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepo {
	return InventoryRepo{db: db}
}

func toInventoryRecord(m model.InventoryItem) ports.InventoryRecord {
	return ports.InventoryRecord{
		ID:         m.ID,
		OwnerID:    m.OwnerID,
		VillagerID: m.VillagerID,
		ItemType:   ports.ItemType(m.ItemType),
		ItemID:     m.ItemID,
		Rarity:     m.Rarity,
		Value:      int(m.Value),
		Quantity:   int(m.Quantity),
		Habitat:    m.Habitat,
		CaughtBy:   m.CaughtBy,
		CaughtAt:   m.CaughtAt,
	}
}

func (r InventoryRepo) Upsert(ctx context.Context, record ports.InventoryRecord) (ports.InventoryRecord, error) {
	db := getDBFromCtx(ctx, r.db)

	var existing model.InventoryItem
	err := db.Where("owner_id = ? AND item_type = ? AND item_id = ?",
		record.OwnerID, string(record.ItemType), record.ItemID).First(&existing).Error
	if err == nil {
		res := db.Model(&model.InventoryItem{}).
			Where("id = ?", existing.ID).
			Update("quantity", gorm.Expr("quantity + ?", record.Quantity))
		if res.Error != nil {
			return ports.InventoryRecord{}, res.Error
		}
		existing.Quantity += int32(record.Quantity)
		return toInventoryRecord(existing), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ports.InventoryRecord{}, err
	}

	quantity := record.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	m := model.InventoryItem{
		OwnerID:    record.OwnerID,
		VillagerID: record.VillagerID,
		ItemType:   string(record.ItemType),
		ItemID:     record.ItemID,
		Rarity:     record.Rarity,
		Value:      int32(record.Value),
		Quantity:   int32(quantity),
		Habitat:    record.Habitat,
		CaughtBy:   record.CaughtBy,
		CaughtAt:   record.CaughtAt,
	}
	if err := db.Create(&m).Error; err != nil {
		return ports.InventoryRecord{}, err
	}
	return toInventoryRecord(m), nil
}

func (r InventoryRepo) GetByID(ctx context.Context, id int64) (ports.InventoryRecord, error) {
	var m model.InventoryItem
	if err := getDBFromCtx(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.InventoryRecord{}, ports.ErrNotFound
		}
		return ports.InventoryRecord{}, err
	}
	return toInventoryRecord(m), nil
}

func (r InventoryRepo) ListByOwner(ctx context.Context, ownerID string) ([]ports.InventoryRecord, error) {
	var rows []model.InventoryItem
	if err := getDBFromCtx(ctx, r.db).Where("owner_id = ?", ownerID).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ports.InventoryRecord, 0, len(rows))
	for _, m := range rows {
		out = append(out, toInventoryRecord(m))
	}
	return out, nil
}

func (r InventoryRepo) RemoveOne(ctx context.Context, id int64) error {
	db := getDBFromCtx(ctx, r.db)
	res := db.Model(&model.InventoryItem{}).
		Where("id = ? AND quantity > 0", id).
		Update("quantity", gorm.Expr("quantity - 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return db.Where("id = ? AND quantity <= 0", id).Delete(&model.InventoryItem{}).Error
}

// DeleteByVillager removes the villager's caught items. Furniture is
// owned by the user, not the villager, and survives a release.
func (r InventoryRepo) DeleteByVillager(ctx context.Context, villagerID int64) error {
	return getDBFromCtx(ctx, r.db).
		Where("villager_id = ? AND item_type IN ?", villagerID,
			[]string{string(ports.ItemTypeBug), string(ports.ItemTypeFish)}).
		Delete(&model.InventoryItem{}).Error
}

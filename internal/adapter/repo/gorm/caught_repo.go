package gormrepo

import (
	"context"
	"errors"

	"villagrove/internal/adapter/repo/gorm/model"
	"villagrove/internal/app/ports"
	"villagrove/internal/domain/catalog"

	"gorm.io/gorm"
)

type CaughtRecordRepo struct {
	db *gorm.DB
}

func NewCaughtRecordRepo(db *gorm.DB) CaughtRecordRepo {
	return CaughtRecordRepo{db: db}
}

func toCaughtRecord(m model.CaughtRecord) ports.CaughtRecord {
	return ports.CaughtRecord{
		VillagerID:    m.VillagerID,
		SpeciesKind:   catalog.SpeciesKind(m.SpeciesKind),
		SpeciesID:     m.SpeciesID,
		FirstCaughtAt: m.FirstCaughtAt,
		Location:      m.Location,
		TimesCaught:   int(m.TimesCaught),
	}
}

// RecordCatch relies on the caller running inside a transaction; the
// unique index on (villager, kind, species) backs up the read-then-
// write upsert.
func (r CaughtRecordRepo) RecordCatch(ctx context.Context, record ports.CaughtRecord) (ports.CaughtRecord, error) {
	db := getDBFromCtx(ctx, r.db)

	var existing model.CaughtRecord
	err := db.Where("villager_id = ? AND species_kind = ? AND species_id = ?",
		record.VillagerID, string(record.SpeciesKind), record.SpeciesID).First(&existing).Error
	if err == nil {
		res := db.Model(&model.CaughtRecord{}).
			Where("id = ?", existing.ID).
			Update("times_caught", gorm.Expr("times_caught + 1"))
		if res.Error != nil {
			return ports.CaughtRecord{}, res.Error
		}
		existing.TimesCaught++
		return toCaughtRecord(existing), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ports.CaughtRecord{}, err
	}

	m := model.CaughtRecord{
		VillagerID:    record.VillagerID,
		SpeciesKind:   string(record.SpeciesKind),
		SpeciesID:     record.SpeciesID,
		FirstCaughtAt: record.FirstCaughtAt,
		Location:      record.Location,
		TimesCaught:   1,
	}
	if err := db.Create(&m).Error; err != nil {
		return ports.CaughtRecord{}, err
	}
	return toCaughtRecord(m), nil
}

func (r CaughtRecordRepo) ListByVillager(ctx context.Context, villagerID int64, kind catalog.SpeciesKind) ([]ports.CaughtRecord, error) {
	var rows []model.CaughtRecord
	err := getDBFromCtx(ctx, r.db).
		Where("villager_id = ? AND species_kind = ?", villagerID, string(kind)).
		Order("species_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]ports.CaughtRecord, 0, len(rows))
	for _, m := range rows {
		out = append(out, toCaughtRecord(m))
	}
	return out, nil
}

func (r CaughtRecordRepo) DeleteByVillager(ctx context.Context, villagerID int64) error {
	return getDBFromCtx(ctx, r.db).
		Where("villager_id = ?", villagerID).
		Delete(&model.CaughtRecord{}).Error
}

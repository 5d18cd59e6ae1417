package gormrepo

import (
	"context"
	"errors"

	"villagrove/internal/adapter/repo/gorm/model"
	"villagrove/internal/app/ports"
	"villagrove/internal/domain/village"

	"gorm.io/gorm"
)

type VillagerRepo struct {
	db *gorm.DB
}

func NewVillagerRepo(db *gorm.DB) VillagerRepo {
	return VillagerRepo{db: db}
}

func toVillagerModel(v village.VillagerAggregate) model.Villager {
	return model.Villager{
		ID:          v.ID,
		Name:        v.Name,
		AnimalType:  string(v.AnimalType),
		Personality: string(v.Personality),
		Friendship:  int32(v.FriendshipLevel),
		Happiness:   int32(v.Needs.Happiness),
		Hunger:      int32(v.Needs.Hunger),
		Energy:      int32(v.Needs.Energy),
		HealthLevel: int32(v.Needs.HealthLevel),
		LastSleep:   v.LastSleep,
		OwnerID:     v.OwnerID,
		Version:     v.Version,
		UpdatedAt:   v.UpdatedAt,
	}
}

func toVillagerAggregate(m model.Villager) village.VillagerAggregate {
	return village.VillagerAggregate{
		ID:              m.ID,
		Name:            m.Name,
		AnimalType:      village.AnimalType(m.AnimalType),
		Personality:     village.Personality(m.Personality),
		FriendshipLevel: int(m.Friendship),
		Needs: village.Needs{
			Happiness:   int(m.Happiness),
			Hunger:      int(m.Hunger),
			Energy:      int(m.Energy),
			HealthLevel: int(m.HealthLevel),
		},
		LastSleep: m.LastSleep,
		OwnerID:   m.OwnerID,
		Version:   m.Version,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r VillagerRepo) Create(ctx context.Context, v *village.VillagerAggregate) error {
	m := toVillagerModel(*v)
	m.ID = 0
	if err := getDBFromCtx(ctx, r.db).Create(&m).Error; err != nil {
		return err
	}
	v.ID = m.ID
	return nil
}

func (r VillagerRepo) GetByID(ctx context.Context, id int64) (village.VillagerAggregate, error) {
	var m model.Villager
	if err := getDBFromCtx(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return village.VillagerAggregate{}, ports.ErrNotFound
		}
		return village.VillagerAggregate{}, err
	}
	return toVillagerAggregate(m), nil
}

func (r VillagerRepo) ListByOwner(ctx context.Context, ownerID string) ([]village.VillagerAggregate, error) {
	var rows []model.Villager
	if err := getDBFromCtx(ctx, r.db).Where("owner_id = ?", ownerID).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]village.VillagerAggregate, 0, len(rows))
	for _, m := range rows {
		out = append(out, toVillagerAggregate(m))
	}
	return out, nil
}

// SaveWithVersion is the optimistic write: the row predicate includes
// the version the caller loaded, so a concurrent writer loses the race
// with ErrConflict instead of clobbering state.
func (r VillagerRepo) SaveWithVersion(ctx context.Context, v village.VillagerAggregate, expectedVersion int64) error {
	res := getDBFromCtx(ctx, r.db).Model(&model.Villager{}).
		Where("id = ? AND version = ?", v.ID, expectedVersion).
		Updates(map[string]any{
			"name":         v.Name,
			"friendship":   int32(v.FriendshipLevel),
			"happiness":    int32(v.Needs.Happiness),
			"hunger":       int32(v.Needs.Hunger),
			"energy":       int32(v.Needs.Energy),
			"health_level": int32(v.Needs.HealthLevel),
			"last_sleep":   v.LastSleep,
			"version":      v.Version,
			"updated_at":   v.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func (r VillagerRepo) Delete(ctx context.Context, id int64) error {
	res := getDBFromCtx(ctx, r.db).Where("id = ?", id).Delete(&model.Villager{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

package gormrepo

import (
	"context"
	"errors"
	"strings"

	"villagrove/internal/adapter/repo/gorm/model"
	"villagrove/internal/app/ports"

	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return UserRepo{db: db}
}

func toUserRecord(m model.User) ports.UserRecord {
	return ports.UserRecord{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Points:       int(m.Points),
		Role:         m.Role,
		Version:      m.Version,
		CreatedAt:    m.CreatedAt,
	}
}

func (r UserRepo) Create(ctx context.Context, user ports.UserRecord) error {
	m := model.User{
		ID:           user.ID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Points:       int32(user.Points),
		Role:         user.Role,
		Version:      user.Version,
		CreatedAt:    user.CreatedAt,
	}
	if err := getDBFromCtx(ctx, r.db).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key") {
			return ports.ErrConflict
		}
		return err
	}
	return nil
}

func (r UserRepo) GetByID(ctx context.Context, id string) (ports.UserRecord, error) {
	var m model.User
	if err := getDBFromCtx(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.UserRecord{}, ports.ErrNotFound
		}
		return ports.UserRecord{}, err
	}
	return toUserRecord(m), nil
}

func (r UserRepo) GetByUsername(ctx context.Context, username string) (ports.UserRecord, error) {
	var m model.User
	if err := getDBFromCtx(ctx, r.db).Where("username = ?", username).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.UserRecord{}, ports.ErrNotFound
		}
		return ports.UserRecord{}, err
	}
	return toUserRecord(m), nil
}

func (r UserRepo) SaveWithVersion(ctx context.Context, user ports.UserRecord, expectedVersion int64) error {
	res := getDBFromCtx(ctx, r.db).Model(&model.User{}).
		Where("id = ? AND version = ?", user.ID, expectedVersion).
		Updates(map[string]any{
			"points":  int32(user.Points),
			"role":    user.Role,
			"version": user.Version,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

package ports

import (
	"context"
	"time"

	"villagrove/internal/domain/catalog"
	"villagrove/internal/domain/village"
)

type UserRecord struct {
	ID           string
	Username     string
	PasswordHash string
	Points       int
	Role         string
	Version      int64
	CreatedAt    time.Time
}

type UserRepository interface {
	Create(ctx context.Context, user UserRecord) error
	GetByID(ctx context.Context, id string) (UserRecord, error)
	GetByUsername(ctx context.Context, username string) (UserRecord, error)
	// SaveWithVersion persists balance changes guarded by optimistic
	// versioning; a stale expectedVersion yields ErrConflict.
	SaveWithVersion(ctx context.Context, user UserRecord, expectedVersion int64) error
}

type VillagerRepository interface {
	// Create assigns the villager its ID.
	Create(ctx context.Context, v *village.VillagerAggregate) error
	GetByID(ctx context.Context, id int64) (village.VillagerAggregate, error)
	ListByOwner(ctx context.Context, ownerID string) ([]village.VillagerAggregate, error)
	SaveWithVersion(ctx context.Context, v village.VillagerAggregate, expectedVersion int64) error
	Delete(ctx context.Context, id int64) error
}

// CaughtRecord is one museum entry: unique per (villager, kind, species).
type CaughtRecord struct {
	VillagerID    int64
	SpeciesKind   catalog.SpeciesKind
	SpeciesID     int64
	FirstCaughtAt time.Time
	Location      string
	TimesCaught   int
}

type CaughtRecordRepository interface {
	// RecordCatch upserts: a first catch inserts with TimesCaught=1,
	// a repeat catch increments TimesCaught and keeps FirstCaughtAt.
	RecordCatch(ctx context.Context, record CaughtRecord) (CaughtRecord, error)
	ListByVillager(ctx context.Context, villagerID int64, kind catalog.SpeciesKind) ([]CaughtRecord, error)
	DeleteByVillager(ctx context.Context, villagerID int64) error
}

type ItemType string

const (
	ItemTypeBug       ItemType = "BUG"
	ItemTypeFish      ItemType = "FISH"
	ItemTypeFurniture ItemType = "FURNITURE"
)

type InventoryRecord struct {
	ID         int64
	OwnerID    string
	VillagerID int64
	ItemType   ItemType
	ItemID     int64
	Rarity     string
	Value      int
	Quantity   int
	Habitat    string
	CaughtBy   string
	CaughtAt   time.Time
}

type InventoryRepository interface {
	// Upsert inserts a new row or bumps Quantity for an existing
	// (owner, itemType, itemID) row, returning the stored record.
	Upsert(ctx context.Context, record InventoryRecord) (InventoryRecord, error)
	GetByID(ctx context.Context, id int64) (InventoryRecord, error)
	ListByOwner(ctx context.Context, ownerID string) ([]InventoryRecord, error)
	// RemoveOne decrements Quantity, deleting the row at zero.
	RemoveOne(ctx context.Context, id int64) error
	DeleteByVillager(ctx context.Context, villagerID int64) error
}

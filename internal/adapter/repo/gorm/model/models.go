package model

import "time"

type User struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Username     string    `gorm:"column:username;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	Points       int32     `gorm:"column:points"`
	Role         string    `gorm:"column:role"`
	Version      int64     `gorm:"column:version"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (User) TableName() string { return "users" }

type Villager struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string    `gorm:"column:name"`
	AnimalType  string    `gorm:"column:animal_type"`
	Personality string    `gorm:"column:personality"`
	Friendship  int32     `gorm:"column:friendship"`
	Happiness   int32     `gorm:"column:happiness"`
	Hunger      int32     `gorm:"column:hunger"`
	Energy      int32     `gorm:"column:energy"`
	HealthLevel int32     `gorm:"column:health_level"`
	LastSleep   time.Time `gorm:"column:last_sleep"`
	OwnerID     string    `gorm:"column:owner_id;index"`
	Version     int64     `gorm:"column:version"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Villager) TableName() string { return "villagers" }

type CaughtRecord struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement"`
	VillagerID    int64     `gorm:"column:villager_id;uniqueIndex:idx_caught_unique"`
	SpeciesKind   string    `gorm:"column:species_kind;uniqueIndex:idx_caught_unique"`
	SpeciesID     int64     `gorm:"column:species_id;uniqueIndex:idx_caught_unique"`
	FirstCaughtAt time.Time `gorm:"column:first_caught_at"`
	Location      string    `gorm:"column:location"`
	TimesCaught   int32     `gorm:"column:times_caught"`
}

func (CaughtRecord) TableName() string { return "caught_records" }

type InventoryItem struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	OwnerID    string    `gorm:"column:owner_id;index;uniqueIndex:idx_inventory_unique"`
	VillagerID int64     `gorm:"column:villager_id;index"`
	ItemType   string    `gorm:"column:item_type;uniqueIndex:idx_inventory_unique"`
	ItemID     int64     `gorm:"column:item_id;uniqueIndex:idx_inventory_unique"`
	Rarity     string    `gorm:"column:rarity"`
	Value      int32     `gorm:"column:value"`
	Quantity   int32     `gorm:"column:quantity"`
	Habitat    string    `gorm:"column:habitat"`
	CaughtBy   string    `gorm:"column:caught_by"`
	CaughtAt   time.Time `gorm:"column:caught_at"`
}

func (InventoryItem) TableName() string { return "inventory_items" }

package memory

import (
	"sync"

	"villagrove/internal/app/ports"
	"villagrove/internal/domain/village"
)

// Store backs all memory repositories with one mutex-guarded state
// bag, so use-case tests can run the full transactional paths without
// Postgres.
type Store struct {
	mu             sync.RWMutex
	users          map[string]ports.UserRecord
	usersByName    map[string]string
	villagers      map[int64]village.VillagerAggregate
	nextVillagerID int64
	caught         map[caughtKey]ports.CaughtRecord
	inventory      map[int64]ports.InventoryRecord
	nextItemID     int64
}

type caughtKey struct {
	villagerID int64
	kind       string
	speciesID  int64
}

func NewStore() *Store {
	return &Store{
		users:       make(map[string]ports.UserRecord),
		usersByName: make(map[string]string),
		villagers:   make(map[int64]village.VillagerAggregate),
		caught:      make(map[caughtKey]ports.CaughtRecord),
		inventory:   make(map[int64]ports.InventoryRecord),
	}
}

func (s *Store) SeedUser(user ports.UserRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	s.usersByName[user.Username] = user.ID
}

func (s *Store) SeedVillager(v village.VillagerAggregate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v.ID > s.nextVillagerID {
		s.nextVillagerID = v.ID
	}
	s.villagers[v.ID] = v
}

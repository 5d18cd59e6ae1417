package memory

import (
	"context"
	"sort"

	"villagrove/internal/app/ports"
)

type InventoryRepo struct {
	store *Store
}

func NewInventoryRepo(store *Store) InventoryRepo {
	return InventoryRepo{store: store}
}

func (r InventoryRepo) Upsert(_ context.Context, record ports.InventoryRecord) (ports.InventoryRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, existing := range r.store.inventory {
		if existing.OwnerID == record.OwnerID && existing.ItemType == record.ItemType && existing.ItemID == record.ItemID {
			existing.Quantity += record.Quantity
			r.store.inventory[id] = existing
			return existing, nil
		}
	}
	r.store.nextItemID++
	record.ID = r.store.nextItemID
	if record.Quantity <= 0 {
		record.Quantity = 1
	}
	r.store.inventory[record.ID] = record
	return record, nil
}

func (r InventoryRepo) GetByID(_ context.Context, id int64) (ports.InventoryRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	record, ok := r.store.inventory[id]
	if !ok {
		return ports.InventoryRecord{}, ports.ErrNotFound
	}
	return record, nil
}

func (r InventoryRepo) ListByOwner(_ context.Context, ownerID string) ([]ports.InventoryRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]ports.InventoryRecord, 0)
	for _, record := range r.store.inventory {
		if record.OwnerID == ownerID {
			out = append(out, record)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r InventoryRepo) RemoveOne(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	record, ok := r.store.inventory[id]
	if !ok {
		return ports.ErrNotFound
	}
	record.Quantity--
	if record.Quantity <= 0 {
		delete(r.store.inventory, id)
		return nil
	}
	r.store.inventory[id] = record
	return nil
}

// DeleteByVillager removes the villager's caught items. Furniture is
// owned by the user, not the villager, and survives a release.
func (r InventoryRepo) DeleteByVillager(_ context.Context, villagerID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, record := range r.store.inventory {
		if record.VillagerID == villagerID && record.ItemType != ports.ItemTypeFurniture {
			delete(r.store.inventory, id)
		}
	}
	return nil
}

package memory

import (
	"context"
	"sort"

	"villagrove/internal/app/ports"
	"villagrove/internal/domain/village"
)

type VillagerRepo struct {
	store *Store
}

func NewVillagerRepo(store *Store) VillagerRepo {
	return VillagerRepo{store: store}
}

func (r VillagerRepo) Create(_ context.Context, v *village.VillagerAggregate) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.nextVillagerID++
	v.ID = r.store.nextVillagerID
	r.store.villagers[v.ID] = *v
	return nil
}

func (r VillagerRepo) GetByID(_ context.Context, id int64) (village.VillagerAggregate, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	v, ok := r.store.villagers[id]
	if !ok {
		return village.VillagerAggregate{}, ports.ErrNotFound
	}
	return v, nil
}

func (r VillagerRepo) ListByOwner(_ context.Context, ownerID string) ([]village.VillagerAggregate, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]village.VillagerAggregate, 0)
	for _, v := range r.store.villagers {
		if v.OwnerID == ownerID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r VillagerRepo) SaveWithVersion(_ context.Context, v village.VillagerAggregate, expectedVersion int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	current, ok := r.store.villagers[v.ID]
	if !ok {
		return ports.ErrNotFound
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.villagers[v.ID] = v
	return nil
}

func (r VillagerRepo) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.villagers[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.store.villagers, id)
	return nil
}

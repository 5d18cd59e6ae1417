package memory

import (
	"context"
	"sort"

	"villagrove/internal/app/ports"
	"villagrove/internal/domain/catalog"
)

type CaughtRecordRepo struct {
	store *Store
}

func NewCaughtRecordRepo(store *Store) CaughtRecordRepo {
	return CaughtRecordRepo{store: store}
}

func (r CaughtRecordRepo) RecordCatch(_ context.Context, record ports.CaughtRecord) (ports.CaughtRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	key := caughtKey{
		villagerID: record.VillagerID,
		kind:       string(record.SpeciesKind),
		speciesID:  record.SpeciesID,
	}
	if existing, ok := r.store.caught[key]; ok {
		existing.TimesCaught++
		r.store.caught[key] = existing
		return existing, nil
	}
	record.TimesCaught = 1
	r.store.caught[key] = record
	return record, nil
}

func (r CaughtRecordRepo) ListByVillager(_ context.Context, villagerID int64, kind catalog.SpeciesKind) ([]ports.CaughtRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]ports.CaughtRecord, 0)
	for key, record := range r.store.caught {
		if key.villagerID == villagerID && key.kind == string(kind) {
			out = append(out, record)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SpeciesID < out[j].SpeciesID })
	return out, nil
}

func (r CaughtRecordRepo) DeleteByVillager(_ context.Context, villagerID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for key := range r.store.caught {
		if key.villagerID == villagerID {
			delete(r.store.caught, key)
		}
	}
	return nil
}

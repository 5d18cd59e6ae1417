package activity

import (
	"context"
	"errors"
	"testing"
	"time"

	"villagrove/internal/adapter/metrics/inmemory"
	"villagrove/internal/adapter/repo/memory"
	"villagrove/internal/app/ports"
	"villagrove/internal/domain/catalog"
	"villagrove/internal/domain/village"
)

type fakeCatalog struct {
	bugs      []catalog.Species
	fish      []catalog.Species
	furniture []catalog.Furniture
}

func (f fakeCatalog) Bugs(_ context.Context) ([]catalog.Species, error) { return f.bugs, nil }
func (f fakeCatalog) Fish(_ context.Context) ([]catalog.Species, error) { return f.fish, nil }

func (f fakeCatalog) SpeciesByID(_ context.Context, kind catalog.SpeciesKind, id int64) (catalog.Species, error) {
	pool := f.bugs
	if kind == catalog.KindFish {
		pool = f.fish
	}
	for _, s := range pool {
		if s.ID == id {
			return s, nil
		}
	}
	return catalog.Species{}, ports.ErrNotFound
}

func (f fakeCatalog) Furniture(_ context.Context) ([]catalog.Furniture, error) {
	return f.furniture, nil
}

func (f fakeCatalog) FurnitureByID(_ context.Context, id int64) (catalog.Furniture, error) {
	for _, item := range f.furniture {
		if item.ID == id {
			return item, nil
		}
	}
	return catalog.Furniture{}, ports.ErrNotFound
}

func easyBug() catalog.Species {
	return catalog.Species{
		ID: 1, Kind: catalog.KindBug, Name: "Meadow Butterfly",
		Rarity: catalog.RarityCommon, Value: 80,
		Habitat: catalog.HabitatGrassland, CatchDifficulty: 0,
	}
}

func impossibleFish() catalog.Species {
	return catalog.Species{
		ID: 2, Kind: catalog.KindFish, Name: "Abyssal Eel",
		Rarity: catalog.RarityLegendary, Value: 4000,
		Habitat: catalog.HabitatOcean, CatchDifficulty: 10,
	}
}

func newTestUseCase(store *memory.Store, cat fakeCatalog, now time.Time, seed int64) (UseCase, *inmemory.Recorder) {
	rec := inmemory.NewRecorder()
	return UseCase{
		TxManager: memory.TxManager{},
		Villagers: memory.NewVillagerRepo(store),
		Caught:    memory.NewCaughtRecordRepo(store),
		Inventory: memory.NewInventoryRepo(store),
		Catalog:   cat,
		Metrics:   rec,
		Now:       func() time.Time { return now },
		Seed:      func() int64 { return seed },
	}, rec
}

func seedVillager(store *memory.Store, id int64, ownerID string, energy int, now time.Time) {
	v := village.NewVillager("Scout", village.AnimalDog, village.PersonalityJock, ownerID, now)
	v.ID = id
	v.Needs.Energy = energy
	store.SeedVillager(v)
}

// A zero-difficulty species sits at the max success chance, so a
// handful of independent seeds is enough to observe a catch.
func TestAttemptCatch_SuccessSettlesEverything(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	cat := fakeCatalog{bugs: []catalog.Species{easyBug()}}
	ctx := context.Background()

	for seed := int64(1); seed <= 25; seed++ {
		store := memory.NewStore()
		seedVillager(store, 1, "u1", 80, now)
		uc, _ := newTestUseCase(store, cat, now, seed)

		res, err := uc.AttemptCatch(ctx, "u1", 1, village.ActivityBug, "GRASSLAND")
		if err != nil {
			t.Fatalf("seed %d: attempt: %v", seed, err)
		}
		if !res.Success {
			continue
		}

		if got, want := res.ExperienceGained, catalog.ExperienceFor(catalog.RarityCommon); got != want {
			t.Fatalf("experience mismatch: got=%d want=%d", got, want)
		}
		if got, want := res.FriendshipGained, catalog.FriendshipFor(catalog.RarityCommon); got != want {
			t.Fatalf("friendship mismatch: got=%d want=%d", got, want)
		}
		if res.CaughtItem == nil {
			t.Fatalf("expected caught item view")
		}

		v, err := uc.Villagers.GetByID(ctx, 1)
		if err != nil {
			t.Fatalf("reload villager: %v", err)
		}
		if got, want := v.Needs.Energy, 80-village.CatchEnergyCostBug; got != want {
			t.Fatalf("energy mismatch: got=%d want=%d", got, want)
		}

		records, err := uc.Caught.ListByVillager(ctx, 1, catalog.KindBug)
		if err != nil {
			t.Fatalf("list caught: %v", err)
		}
		if len(records) != 1 || records[0].TimesCaught != 1 {
			t.Fatalf("unexpected caught records: %+v", records)
		}

		items, err := uc.Inventory.ListByOwner(ctx, "u1")
		if err != nil {
			t.Fatalf("list inventory: %v", err)
		}
		if len(items) != 1 || items[0].ItemType != ports.ItemTypeBug || items[0].Quantity != 1 {
			t.Fatalf("unexpected inventory: %+v", items)
		}
		return
	}
	t.Fatalf("no successful catch across 25 seeds at max success chance")
}

// A degenerate difficulty clamps to the min success chance, so a
// handful of seeds is enough to observe an escape.
func TestAttemptCatch_FailureCostsReducedEnergyOnly(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	cat := fakeCatalog{fish: []catalog.Species{impossibleFish()}}
	ctx := context.Background()

	for seed := int64(1); seed <= 25; seed++ {
		store := memory.NewStore()
		seedVillager(store, 1, "u1", 80, now)
		uc, _ := newTestUseCase(store, cat, now, seed)

		res, err := uc.AttemptCatch(ctx, "u1", 1, village.ActivityFish, "OCEAN")
		if err != nil {
			t.Fatalf("seed %d: attempt: %v", seed, err)
		}
		if res.Success {
			continue
		}

		if res.ExperienceGained != 0 || res.FriendshipGained != 0 {
			t.Fatalf("failed attempt granted rewards: %+v", res)
		}
		if res.CaughtItem != nil {
			t.Fatalf("failed attempt produced an item")
		}

		v, err := uc.Villagers.GetByID(ctx, 1)
		if err != nil {
			t.Fatalf("reload villager: %v", err)
		}
		if got, want := v.Needs.Energy, 80-village.CatchFailEnergyCostFish; got != want {
			t.Fatalf("energy mismatch: got=%d want=%d", got, want)
		}

		items, err := uc.Inventory.ListByOwner(ctx, "u1")
		if err != nil {
			t.Fatalf("list inventory: %v", err)
		}
		if len(items) != 0 {
			t.Fatalf("failed attempt wrote inventory: %+v", items)
		}
		return
	}
	t.Fatalf("no failed catch across 25 seeds at min success chance")
}

func TestAttemptCatch_FishRejectedBelowEnergyFloor(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	store := memory.NewStore()
	seedVillager(store, 1, "u1", 12, now)
	uc, rec := newTestUseCase(store, fakeCatalog{fish: []catalog.Species{impossibleFish()}}, now, 1)

	_, err := uc.AttemptCatch(context.Background(), "u1", 1, village.ActivityFish, "OCEAN")
	if !errors.Is(err, village.ErrInsufficientEnergy) {
		t.Fatalf("expected ErrInsufficientEnergy, got %v", err)
	}

	v, err := uc.Villagers.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("reload villager: %v", err)
	}
	if got, want := v.Needs.Energy, 12; got != want {
		t.Fatalf("rejected attempt changed energy: got=%d want=%d", got, want)
	}
	snap := rec.Snapshot()
	if got, want := snap.CatchFailure, uint64(1); got != want {
		t.Fatalf("failure counter mismatch: got=%d want=%d", got, want)
	}
}

func TestAttemptCatch_BugAllowedAtTwelveEnergy(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	store := memory.NewStore()
	seedVillager(store, 1, "u1", 12, now)
	uc, _ := newTestUseCase(store, fakeCatalog{bugs: []catalog.Species{easyBug()}}, now, 1)

	_, err := uc.AttemptCatch(context.Background(), "u1", 1, village.ActivityBug, "GRASSLAND")
	if err != nil {
		t.Fatalf("bug catch at 12 energy should pass the floor, got %v", err)
	}
}

func TestAttemptCatch_UnknownHabitat(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	store := memory.NewStore()
	seedVillager(store, 1, "u1", 80, now)
	uc, _ := newTestUseCase(store, fakeCatalog{}, now, 1)

	_, err := uc.AttemptCatch(context.Background(), "u1", 1, village.ActivityBug, "VOLCANO")
	if !errors.Is(err, ErrInvalidHabitat) {
		t.Fatalf("expected ErrInvalidHabitat, got %v", err)
	}
}

func TestAttemptCatch_ForeignVillagerHidden(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	store := memory.NewStore()
	seedVillager(store, 1, "owner-a", 80, now)
	uc, _ := newTestUseCase(store, fakeCatalog{bugs: []catalog.Species{easyBug()}}, now, 1)

	_, err := uc.AttemptCatch(context.Background(), "owner-b", 1, village.ActivityBug, "GRASSLAND")
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAttemptCatch_EmptyHabitatPool(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	store := memory.NewStore()
	seedVillager(store, 1, "u1", 80, now)
	uc, _ := newTestUseCase(store, fakeCatalog{bugs: []catalog.Species{easyBug()}}, now, 1)

	_, err := uc.AttemptCatch(context.Background(), "u1", 1, village.ActivityBug, "DESERT")
	if !errors.Is(err, village.ErrNoSpeciesAvailable) {
		t.Fatalf("expected ErrNoSpeciesAvailable, got %v", err)
	}
}

func TestCaughtSpecies_ReturnsHistoryViews(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	store := memory.NewStore()
	seedVillager(store, 1, "u1", 80, now)
	uc, _ := newTestUseCase(store, fakeCatalog{bugs: []catalog.Species{easyBug()}}, now, 1)

	ctx := context.Background()
	if _, err := uc.Caught.RecordCatch(ctx, ports.CaughtRecord{
		VillagerID: 1, SpeciesKind: catalog.KindBug, SpeciesID: 1,
		FirstCaughtAt: now, Location: "GRASSLAND", TimesCaught: 1,
	}); err != nil {
		t.Fatalf("seed record: %v", err)
	}

	views, err := uc.CaughtSpecies(ctx, "u1", 1, catalog.KindBug)
	if err != nil {
		t.Fatalf("caught species: %v", err)
	}
	if got, want := len(views), 1; got != want {
		t.Fatalf("view count mismatch: got=%d want=%d", got, want)
	}
}

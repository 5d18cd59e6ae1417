package villager

import (
	"context"
	"errors"
	"testing"
	"time"

	"villagrove/internal/adapter/repo/memory"
	"villagrove/internal/app/ports"
	"villagrove/internal/domain/catalog"
	"villagrove/internal/domain/village"
)

func seededVillager(id int64, name string, animal village.AnimalType, trait village.Personality, ownerID string, now time.Time) village.VillagerAggregate {
	v := village.NewVillager(name, animal, trait, ownerID, now)
	v.ID = id
	return v
}

func newUseCase(store *memory.Store, now time.Time) UseCase {
	return UseCase{
		TxManager: memory.TxManager{},
		Villagers: memory.NewVillagerRepo(store),
		Caught:    memory.NewCaughtRecordRepo(store),
		Inventory: memory.NewInventoryRepo(store),
		Now:       func() time.Time { return now },
	}
}

func TestCreate_AssignsIDAndStartingNeeds(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	uc := newUseCase(memory.NewStore(), now)

	view, err := uc.Create(context.Background(), "u1", CreateRequest{
		VillagerName: "Apollo",
		AnimalType:   "EAGLE",
		Personality:  "CRANKY",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if view.VillagerID == 0 {
		t.Fatalf("expected assigned id")
	}
	if got, want := view.Energy, village.StartingEnergy; got != want {
		t.Fatalf("energy mismatch: got=%d want=%d", got, want)
	}
	if got, want := view.HealthLevel, village.StartingHealthLevel; got != want {
		t.Fatalf("health mismatch: got=%d want=%d", got, want)
	}
	if got, want := view.FriendshipLevel, village.StartingFriendship; got != want {
		t.Fatalf("friendship mismatch: got=%d want=%d", got, want)
	}
}

func TestCreate_RejectsUnknownAnimal(t *testing.T) {
	uc := newUseCase(memory.NewStore(), time.Now())

	_, err := uc.Create(context.Background(), "u1", CreateRequest{
		VillagerName: "Apollo",
		AnimalType:   "DRAGON",
		Personality:  "CRANKY",
	})
	if !errors.Is(err, ErrInvalidAnimal) {
		t.Fatalf("expected ErrInvalidAnimal, got %v", err)
	}
}

func TestCreate_RejectsUnknownPersonality(t *testing.T) {
	uc := newUseCase(memory.NewStore(), time.Now())

	_, err := uc.Create(context.Background(), "u1", CreateRequest{
		VillagerName: "Apollo",
		AnimalType:   "EAGLE",
		Personality:  "GRUMPY",
	})
	if !errors.Is(err, ErrInvalidTrait) {
		t.Fatalf("expected ErrInvalidTrait, got %v", err)
	}
}

func TestGet_HidesOtherUsersVillagers(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	store := memory.NewStore()
	store.SeedVillager(seededVillager(7, "Bob", village.AnimalCat, village.PersonalityLazy, "owner-a", now))

	uc := newUseCase(store, now)
	_, err := uc.Get(context.Background(), "owner-b", 7)
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign villager, got %v", err)
	}
}

func TestList_OnlyOwnVillagers(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	store := memory.NewStore()
	store.SeedVillager(seededVillager(1, "Bob", village.AnimalCat, village.PersonalityLazy, "owner-a", now))
	store.SeedVillager(seededVillager(2, "Tom", village.AnimalWolf, village.PersonalityJock, "owner-b", now))
	store.SeedVillager(seededVillager(3, "Ava", village.AnimalMouse, village.PersonalityPeppy, "owner-a", now))

	uc := newUseCase(store, now)
	views, err := uc.List(context.Background(), "owner-a")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got, want := len(views), 2; got != want {
		t.Fatalf("villager count mismatch: got=%d want=%d", got, want)
	}
}

func TestRename_BumpsVersion(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	store := memory.NewStore()
	store.SeedVillager(seededVillager(1, "Bob", village.AnimalCat, village.PersonalityLazy, "u1", now))

	uc := newUseCase(store, now)
	view, err := uc.Rename(context.Background(), "u1", 1, RenameRequest{VillagerName: "Bobby"})
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if got, want := view.VillagerName, "Bobby"; got != want {
		t.Fatalf("name mismatch: got=%q want=%q", got, want)
	}

	stored, err := uc.Villagers.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got, want := stored.Version, int64(2); got != want {
		t.Fatalf("version mismatch: got=%d want=%d", got, want)
	}
}

func TestRelease_CascadesCaughtItemsKeepsFurniture(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	store := memory.NewStore()
	store.SeedVillager(seededVillager(1, "Bob", village.AnimalCat, village.PersonalityLazy, "u1", now))

	ctx := context.Background()
	uc := newUseCase(store, now)
	if _, err := uc.Caught.RecordCatch(ctx, ports.CaughtRecord{
		VillagerID: 1, SpeciesKind: catalog.KindBug, SpeciesID: 5,
		FirstCaughtAt: now, Location: "FOREST", TimesCaught: 1,
	}); err != nil {
		t.Fatalf("seed caught record: %v", err)
	}
	if _, err := uc.Inventory.Upsert(ctx, ports.InventoryRecord{
		OwnerID: "u1", VillagerID: 1, ItemType: ports.ItemTypeBug,
		ItemID: 5, Value: 100, Quantity: 1,
	}); err != nil {
		t.Fatalf("seed inventory: %v", err)
	}
	if _, err := uc.Inventory.Upsert(ctx, ports.InventoryRecord{
		OwnerID: "u1", VillagerID: 1, ItemType: ports.ItemTypeFurniture,
		ItemID: 3, Value: 900, Quantity: 1,
	}); err != nil {
		t.Fatalf("seed furniture: %v", err)
	}

	if err := uc.Release(ctx, "u1", 1); err != nil {
		t.Fatalf("release: %v", err)
	}

	if _, err := uc.Villagers.GetByID(ctx, 1); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected villager gone, got %v", err)
	}
	records, err := uc.Caught.ListByVillager(ctx, 1, catalog.KindBug)
	if err != nil {
		t.Fatalf("list caught: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected caught records gone, got %d", len(records))
	}
	items, err := uc.Inventory.ListByOwner(ctx, "u1")
	if err != nil {
		t.Fatalf("list inventory: %v", err)
	}
	if got, want := len(items), 1; got != want {
		t.Fatalf("expected only furniture left, got %d items", got)
	}
	if got, want := items[0].ItemType, ports.ItemTypeFurniture; got != want {
		t.Fatalf("surviving item type mismatch: got=%q want=%q", got, want)
	}
}

func TestTalk_RaisesFriendshipWithinBounds(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	store := memory.NewStore()
	store.SeedVillager(seededVillager(1, "Bob", village.AnimalCat, village.PersonalityPeppy, "u1", now))

	uc := newUseCase(store, now)
	res, err := uc.Talk(context.Background(), "u1", 1)
	if err != nil {
		t.Fatalf("talk: %v", err)
	}
	if res.FriendshipChange < village.TalkFriendshipMin || res.FriendshipChange > village.TalkFriendshipMax {
		t.Fatalf("friendship change out of range: %d", res.FriendshipChange)
	}
	if got, want := res.CurrentFriendship, village.StartingFriendship+res.FriendshipChange; got != want {
		t.Fatalf("current friendship mismatch: got=%d want=%d", got, want)
	}
	if res.Message == "" {
		t.Fatalf("expected a talk message")
	}
}

func TestPerformAction_FeedPersistsNeeds(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	store := memory.NewStore()
	store.SeedVillager(seededVillager(1, "Bob", village.AnimalCat, village.PersonalityLazy, "u1", now))

	uc := newUseCase(store, now)
	res, err := uc.PerformAction(context.Background(), "u1", 1, village.InteractionFeed)
	if err != nil {
		t.Fatalf("feed: %v", err)
	}

	stored, err := uc.Villagers.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got, want := stored.Needs.Hunger, village.StartingHunger+village.FeedDeltaHunger; got != want {
		t.Fatalf("hunger mismatch: got=%d want=%d", got, want)
	}
	if got, want := res.NewEnergy, stored.Needs.Energy; got != want {
		t.Fatalf("dto energy mismatch: got=%d want=%d", got, want)
	}
	if got, want := res.NewFriendship, stored.FriendshipLevel; got != want {
		t.Fatalf("dto friendship mismatch: got=%d want=%d", got, want)
	}
}

func TestPerformAction_HealRejectedWhenHealthy(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	store := memory.NewStore()
	v := seededVillager(1, "Bob", village.AnimalCat, village.PersonalityLazy, "u1", now)
	v.Needs.HealthLevel = 95
	store.SeedVillager(v)

	uc := newUseCase(store, now)
	_, err := uc.PerformAction(context.Background(), "u1", 1, village.InteractionHeal)
	if !errors.Is(err, village.ErrAlreadyHealthy) {
		t.Fatalf("expected ErrAlreadyHealthy, got %v", err)
	}

	stored, err := uc.Villagers.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got, want := stored.Needs.HealthLevel, 95; got != want {
		t.Fatalf("health changed on rejected heal: got=%d want=%d", got, want)
	}
	if got, want := stored.Version, v.Version; got != want {
		t.Fatalf("version changed on rejected heal: got=%d want=%d", got, want)
	}
}

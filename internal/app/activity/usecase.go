package activity

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"villagrove/internal/app/ports"
	"villagrove/internal/domain/catalog"
	"villagrove/internal/domain/village"
)

var (
	ErrInvalidRequest = errors.New("invalid activity request")
	ErrInvalidHabitat = errors.New("unknown habitat")
)

type UseCase struct {
	TxManager ports.TxManager
	Villagers ports.VillagerRepository
	Caught    ports.CaughtRecordRepository
	Inventory ports.InventoryRepository
	Catalog   ports.CatalogProvider
	Resolver  village.CatchService
	Metrics   ports.CatchMetrics
	Now       func() time.Time
	// Seed feeds the per-attempt rand source; defaults to the clock.
	Seed func() int64
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}

func (u UseCase) newRand() *rand.Rand {
	seedFn := u.Seed
	if seedFn == nil {
		seedFn = func() int64 { return time.Now().UnixNano() }
	}
	return rand.New(rand.NewSource(seedFn()))
}

func (u UseCase) Bugs(ctx context.Context) ([]any, error) {
	all, err := u.Catalog.Bugs(ctx)
	if err != nil {
		return nil, err
	}
	return catalogViews(all), nil
}

func (u UseCase) Fish(ctx context.Context) ([]any, error) {
	all, err := u.Catalog.Fish(ctx)
	if err != nil {
		return nil, err
	}
	return catalogViews(all), nil
}

func catalogViews(all []catalog.Species) []any {
	views := make([]any, 0, len(all))
	for _, s := range all {
		views = append(views, speciesView(s, time.Time{}, ""))
	}
	return views
}

// AttemptCatch runs one catch attempt for the villager. The whole
// settlement is transactional; the villager's optimistic version keeps
// concurrent attempts from double-spending energy.
func (u UseCase) AttemptCatch(ctx context.Context, ownerID string, villagerID int64, kind village.ActivityKind, habitatRaw string) (Result, error) {
	habitat, ok := catalog.ParseHabitat(habitatRaw)
	if !ok {
		return Result{}, ErrInvalidHabitat
	}
	speciesKind := catalog.KindBug
	if kind == village.ActivityFish {
		speciesKind = catalog.KindFish
	}

	var out Result
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		v, err := u.Villagers.GetByID(txCtx, villagerID)
		if err != nil {
			return err
		}
		if v.OwnerID != ownerID {
			return ports.ErrNotFound
		}
		loaded := v.Version

		var pool []catalog.Species
		if speciesKind == catalog.KindFish {
			pool, err = u.Catalog.Fish(txCtx)
		} else {
			pool, err = u.Catalog.Bugs(txCtx)
		}
		if err != nil {
			return err
		}
		matches := catalog.FilterSpecies(pool, speciesKind, habitat)
		candidates := make([]village.CatchCandidate, 0, len(matches))
		for _, s := range matches {
			candidates = append(candidates, village.CatchCandidate{
				SpeciesID:        s.ID,
				Name:             s.Name,
				Difficulty:       s.CatchDifficulty,
				ExperienceReward: catalog.ExperienceFor(s.Rarity),
				FriendshipReward: catalog.FriendshipFor(s.Rarity),
			})
		}

		now := u.now()
		outcome, err := u.Resolver.Resolve(v, kind, candidates, u.newRand(), now)
		if err != nil {
			return err
		}
		if err := u.Villagers.SaveWithVersion(txCtx, outcome.Villager, loaded); err != nil {
			return err
		}

		out = Result{
			Success:          outcome.Success,
			Message:          outcome.Message,
			ExperienceGained: outcome.ExperienceGained,
			FriendshipGained: outcome.FriendshipGained,
		}
		if !outcome.Success {
			return nil
		}

		species, err := u.Catalog.SpeciesByID(txCtx, speciesKind, outcome.SpeciesID)
		if err != nil {
			return err
		}
		record, err := u.Caught.RecordCatch(txCtx, ports.CaughtRecord{
			VillagerID:    villagerID,
			SpeciesKind:   speciesKind,
			SpeciesID:     species.ID,
			FirstCaughtAt: now,
			Location:      string(habitat),
			TimesCaught:   1,
		})
		if err != nil {
			return err
		}
		itemType := ports.ItemTypeBug
		if speciesKind == catalog.KindFish {
			itemType = ports.ItemTypeFish
		}
		if _, err := u.Inventory.Upsert(txCtx, ports.InventoryRecord{
			OwnerID:    ownerID,
			VillagerID: villagerID,
			ItemType:   itemType,
			ItemID:     species.ID,
			Rarity:     string(species.Rarity),
			Value:      species.Value,
			Quantity:   1,
			Habitat:    string(habitat),
			CaughtBy:   outcome.Villager.Name,
			CaughtAt:   now,
		}); err != nil {
			return err
		}

		out.CaughtItem = speciesView(species, record.FirstCaughtAt, record.Location)
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			if errors.Is(err, ports.ErrConflict) {
				u.Metrics.RecordConflict()
			} else {
				u.Metrics.RecordFailure()
			}
		}
		return Result{}, err
	}
	if u.Metrics != nil {
		if out.Success {
			u.Metrics.RecordSuccess("CAUGHT")
		} else {
			u.Metrics.RecordSuccess("ESCAPED")
		}
	}
	return out, nil
}

// CaughtSpecies lists the villager's catch history in catalog DTO
// shape, with caughtAt/location filled in.
func (u UseCase) CaughtSpecies(ctx context.Context, ownerID string, villagerID int64, speciesKind catalog.SpeciesKind) ([]any, error) {
	v, err := u.Villagers.GetByID(ctx, villagerID)
	if err != nil {
		return nil, err
	}
	if v.OwnerID != ownerID {
		return nil, ports.ErrNotFound
	}

	records, err := u.Caught.ListByVillager(ctx, villagerID, speciesKind)
	if err != nil {
		return nil, err
	}
	views := make([]any, 0, len(records))
	for _, r := range records {
		species, err := u.Catalog.SpeciesByID(ctx, speciesKind, r.SpeciesID)
		if err != nil {
			return nil, err
		}
		views = append(views, speciesView(species, r.FirstCaughtAt, r.Location))
	}
	return views, nil
}

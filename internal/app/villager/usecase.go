package villager

import (
	"context"
	"errors"
	"strings"
	"time"

	"villagrove/internal/app/ports"
	"villagrove/internal/domain/village"
)

var (
	ErrInvalidRequest = errors.New("invalid villager request")
	ErrInvalidAnimal  = errors.New("unknown animal type")
	ErrInvalidTrait   = errors.New("unknown personality")
)

type UseCase struct {
	TxManager ports.TxManager
	Villagers ports.VillagerRepository
	Caught    ports.CaughtRecordRepository
	Inventory ports.InventoryRepository
	Interact  village.InteractionService
	Now       func() time.Time
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}

// ownedVillager loads a villager and hides other users' villagers
// behind ErrNotFound.
func (u UseCase) ownedVillager(ctx context.Context, ownerID string, id int64) (village.VillagerAggregate, error) {
	v, err := u.Villagers.GetByID(ctx, id)
	if err != nil {
		return village.VillagerAggregate{}, err
	}
	if v.OwnerID != ownerID {
		return village.VillagerAggregate{}, ports.ErrNotFound
	}
	return v, nil
}

func (u UseCase) List(ctx context.Context, ownerID string) ([]View, error) {
	if ownerID == "" {
		return nil, ErrInvalidRequest
	}
	all, err := u.Villagers.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	now := u.now()
	views := make([]View, 0, len(all))
	for _, v := range all {
		views = append(views, viewOf(v, now))
	}
	return views, nil
}

func (u UseCase) Get(ctx context.Context, ownerID string, id int64) (View, error) {
	v, err := u.ownedVillager(ctx, ownerID, id)
	if err != nil {
		return View{}, err
	}
	return viewOf(v, u.now()), nil
}

func (u UseCase) Create(ctx context.Context, ownerID string, req CreateRequest) (View, error) {
	req.VillagerName = strings.TrimSpace(req.VillagerName)
	if ownerID == "" || req.VillagerName == "" {
		return View{}, ErrInvalidRequest
	}
	animal, ok := village.ParseAnimalType(req.AnimalType)
	if !ok {
		return View{}, ErrInvalidAnimal
	}
	personality, ok := village.ParsePersonality(req.Personality)
	if !ok {
		return View{}, ErrInvalidTrait
	}

	now := u.now()
	v := village.NewVillager(req.VillagerName, animal, personality, ownerID, now)
	if err := u.Villagers.Create(ctx, &v); err != nil {
		return View{}, err
	}
	return viewOf(v, now), nil
}

func (u UseCase) Rename(ctx context.Context, ownerID string, id int64, req RenameRequest) (View, error) {
	req.VillagerName = strings.TrimSpace(req.VillagerName)
	if req.VillagerName == "" {
		return View{}, ErrInvalidRequest
	}
	v, err := u.ownedVillager(ctx, ownerID, id)
	if err != nil {
		return View{}, err
	}

	now := u.now()
	loaded := v.Version
	v.Name = req.VillagerName
	v.UpdatedAt = now
	v.Version++
	if err := u.Villagers.SaveWithVersion(ctx, v, loaded); err != nil {
		return View{}, err
	}
	return viewOf(v, now), nil
}

// Release deletes a villager together with its caught records and
// inventory items, in one transaction.
func (u UseCase) Release(ctx context.Context, ownerID string, id int64) error {
	if _, err := u.ownedVillager(ctx, ownerID, id); err != nil {
		return err
	}
	return u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := u.Caught.DeleteByVillager(txCtx, id); err != nil {
			return err
		}
		if err := u.Inventory.DeleteByVillager(txCtx, id); err != nil {
			return err
		}
		return u.Villagers.Delete(txCtx, id)
	})
}

// Talk settles a talk interaction and returns the talk-shaped DTO.
func (u UseCase) Talk(ctx context.Context, ownerID string, id int64) (TalkResult, error) {
	outcome, err := u.applyInteraction(ctx, ownerID, id, village.InteractionTalk)
	if err != nil {
		return TalkResult{}, err
	}
	return TalkResult{
		Message:           outcome.Message,
		FriendshipChange:  outcome.FriendshipChange,
		CurrentFriendship: outcome.Villager.FriendshipLevel,
	}, nil
}

// PerformAction settles any non-talk interaction.
func (u UseCase) PerformAction(ctx context.Context, ownerID string, id int64, kind village.InteractionType) (ActionResult, error) {
	outcome, err := u.applyInteraction(ctx, ownerID, id, kind)
	if err != nil {
		return ActionResult{}, err
	}
	return ActionResult{
		Message:       outcome.Message,
		NewEnergy:     outcome.Villager.Needs.Energy,
		NewFriendship: outcome.Villager.FriendshipLevel,
	}, nil
}

func (u UseCase) applyInteraction(ctx context.Context, ownerID string, id int64, kind village.InteractionType) (village.InteractionOutcome, error) {
	var outcome village.InteractionOutcome
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		v, err := u.ownedVillager(txCtx, ownerID, id)
		if err != nil {
			return err
		}
		loaded := v.Version
		outcome, err = u.Interact.Interact(v, kind, u.now())
		if err != nil {
			return err
		}
		return u.Villagers.SaveWithVersion(txCtx, outcome.Villager, loaded)
	})
	if err != nil {
		return village.InteractionOutcome{}, err
	}
	return outcome, nil
}

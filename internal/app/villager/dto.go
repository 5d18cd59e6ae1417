package villager

import (
	"time"

	"villagrove/internal/domain/village"
)

// View is the villager DTO the client renders. Field names follow the
// wire contract.
type View struct {
	VillagerID      int64  `json:"villagerId"`
	VillagerName    string `json:"villagerName"`
	AnimalType      string `json:"animalType"`
	Personality     string `json:"personality"`
	FriendshipLevel int    `json:"friendshipLevel"`
	Happiness       int    `json:"happiness"`
	Hunger          int    `json:"hunger"`
	Energy          int    `json:"energy"`
	HealthLevel     int    `json:"healthLevel"`
	Status          string `json:"status"`
	LastSleep       string `json:"lastSleep"`
}

type CreateRequest struct {
	VillagerName string `json:"villagerName" validate:"required,min=1,max=32"`
	AnimalType   string `json:"animalType" validate:"required"`
	Personality  string `json:"personality" validate:"required"`
}

type RenameRequest struct {
	VillagerName string `json:"villagerName" validate:"required,min=1,max=32"`
}

// TalkResult matches the client's TalkResponseDTO.
type TalkResult struct {
	Message           string `json:"message"`
	FriendshipChange  int    `json:"friendshipChange"`
	CurrentFriendship int    `json:"currentFriendship"`
}

// ActionResult matches the client's ActionResultDTO.
type ActionResult struct {
	Message       string `json:"message"`
	NewEnergy     int    `json:"newEnergy"`
	NewFriendship int    `json:"newFriendship"`
}

func viewOf(v village.VillagerAggregate, now time.Time) View {
	return View{
		VillagerID:      v.ID,
		VillagerName:    v.Name,
		AnimalType:      string(v.AnimalType),
		Personality:     string(v.Personality),
		FriendshipLevel: v.FriendshipLevel,
		Happiness:       v.Needs.Happiness,
		Hunger:          v.Needs.Hunger,
		Energy:          v.Needs.Energy,
		HealthLevel:     v.Needs.HealthLevel,
		Status:          string(v.StatusAt(now)),
		LastSleep:       v.LastSleep.UTC().Format(time.RFC3339),
	}
}

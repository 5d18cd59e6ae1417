package activity

import (
	"time"

	"villagrove/internal/domain/catalog"
)

// BugView and FishView follow the client's catalog DTO shapes, which
// prefix fields differently per kind. CaughtAt and Location are only
// set on history entries.
type BugView struct {
	BugID           int64   `json:"bugId"`
	BugName         string  `json:"bugName"`
	BugDescription  string  `json:"bugDescription"`
	BugRarity       string  `json:"bugRarity"`
	BugValue        int     `json:"bugValue"`
	BugHabitat      string  `json:"bugHabitat"`
	CatchDifficulty float64 `json:"catchDifficulty"`
	CaughtAt        string  `json:"caughtAt,omitempty"`
	Location        string  `json:"location,omitempty"`
}

type FishView struct {
	FishID          int64   `json:"fishId"`
	FishName        string  `json:"fishName"`
	FishDescription string  `json:"fishDescription"`
	FishRarity      string  `json:"fishRarity"`
	FishValue       int     `json:"fishValue"`
	Habitat         string  `json:"habitat"`
	CatchDifficulty float64 `json:"catchDifficulty"`
	CaughtAt        string  `json:"caughtAt,omitempty"`
	Location        string  `json:"location,omitempty"`
}

// Result mirrors the client's ActivityResultDTO. CaughtItem is a
// BugView or FishView on success, nil otherwise.
type Result struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	CaughtItem       any    `json:"caughtItem,omitempty"`
	ExperienceGained int    `json:"experienceGained"`
	FriendshipGained int    `json:"friendshipGained"`
}

func speciesView(s catalog.Species, caughtAt time.Time, location string) any {
	stamp := ""
	if !caughtAt.IsZero() {
		stamp = caughtAt.UTC().Format(time.RFC3339)
	}
	if s.Kind == catalog.KindFish {
		return FishView{
			FishID:          s.ID,
			FishName:        s.Name,
			FishDescription: s.Description,
			FishRarity:      string(s.Rarity),
			FishValue:       s.Value,
			Habitat:         string(s.Habitat),
			CatchDifficulty: s.CatchDifficulty,
			CaughtAt:        stamp,
			Location:        location,
		}
	}
	return BugView{
		BugID:           s.ID,
		BugName:         s.Name,
		BugDescription:  s.Description,
		BugRarity:       string(s.Rarity),
		BugValue:        s.Value,
		BugHabitat:      string(s.Habitat),
		CatchDifficulty: s.CatchDifficulty,
		CaughtAt:        stamp,
		Location:        location,
	}
}

package museum

import (
	"context"
	"time"

	"villagrove/internal/app/ports"
	"villagrove/internal/domain/catalog"
)

// Entry is one museum exhibit: a discovered species plus its catch
// statistics for the villager.
type Entry struct {
	SpeciesID     int64   `json:"speciesId"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Rarity        string  `json:"rarity"`
	Value         int     `json:"value"`
	Habitat       string  `json:"habitat"`
	Difficulty    float64 `json:"catchDifficulty"`
	FirstCaughtAt string  `json:"firstCaughtAt"`
	Location      string  `json:"location"`
	TimesCaught   int     `json:"timesCaught"`
}

type Collection struct {
	Entries       []Entry `json:"entries"`
	TotalSpecies  int     `json:"totalSpecies"`
	Discovered    int     `json:"discovered"`
	CompletionPct int     `json:"completionPct"`
}

type UseCase struct {
	Villagers ports.VillagerRepository
	Caught    ports.CaughtRecordRepository
	Catalog   ports.CatalogProvider
}

// Collection returns every species of the kind the villager has
// discovered, with completion stats over the full catalog.
func (u UseCase) Collection(ctx context.Context, ownerID string, villagerID int64, kind catalog.SpeciesKind) (Collection, error) {
	v, err := u.Villagers.GetByID(ctx, villagerID)
	if err != nil {
		return Collection{}, err
	}
	if v.OwnerID != ownerID {
		return Collection{}, ports.ErrNotFound
	}

	var pool []catalog.Species
	if kind == catalog.KindFish {
		pool, err = u.Catalog.Fish(ctx)
	} else {
		pool, err = u.Catalog.Bugs(ctx)
	}
	if err != nil {
		return Collection{}, err
	}

	records, err := u.Caught.ListByVillager(ctx, villagerID, kind)
	if err != nil {
		return Collection{}, err
	}
	byID := make(map[int64]ports.CaughtRecord, len(records))
	for _, r := range records {
		byID[r.SpeciesID] = r
	}

	entries := make([]Entry, 0, len(records))
	for _, s := range pool {
		r, ok := byID[s.ID]
		if !ok {
			continue
		}
		entries = append(entries, Entry{
			SpeciesID:     s.ID,
			Name:          s.Name,
			Description:   s.Description,
			Rarity:        string(s.Rarity),
			Value:         s.Value,
			Habitat:       string(s.Habitat),
			Difficulty:    s.CatchDifficulty,
			FirstCaughtAt: r.FirstCaughtAt.UTC().Format(time.RFC3339),
			Location:      r.Location,
			TimesCaught:   r.TimesCaught,
		})
	}

	col := Collection{
		Entries:      entries,
		TotalSpecies: len(pool),
		Discovered:   len(entries),
	}
	if col.TotalSpecies > 0 {
		col.CompletionPct = col.Discovered * 100 / col.TotalSpecies
	}
	return col, nil
}

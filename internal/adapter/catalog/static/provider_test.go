package static

import (
	"context"
	"testing"

	"villagrove/internal/domain/catalog"
)

func TestCatalogCoversAllHabitats(t *testing.T) {
	p := Provider{}
	bugs, err := p.Bugs(context.Background())
	if err != nil {
		t.Fatalf("bugs: %v", err)
	}
	fish, err := p.Fish(context.Background())
	if err != nil {
		t.Fatalf("fish: %v", err)
	}

	covered := map[catalog.Habitat]bool{}
	for _, s := range append(bugs, fish...) {
		covered[s.Habitat] = true
	}
	for _, h := range []catalog.Habitat{
		catalog.HabitatForest, catalog.HabitatGrassland, catalog.HabitatDesert,
		catalog.HabitatRiver, catalog.HabitatOcean, catalog.HabitatPond,
	} {
		if !covered[h] {
			t.Fatalf("no species for habitat %s", h)
		}
	}
}

func TestCatalogDifficultyInRange(t *testing.T) {
	p := Provider{}
	bugs, _ := p.Bugs(context.Background())
	fish, _ := p.Fish(context.Background())
	for _, s := range append(bugs, fish...) {
		if s.CatchDifficulty < 0 || s.CatchDifficulty > 1 {
			t.Fatalf("%s difficulty out of [0,1]: %f", s.Name, s.CatchDifficulty)
		}
		if s.Value <= 0 {
			t.Fatalf("%s has non-positive value", s.Name)
		}
	}
}

func TestSpeciesByIDDistinguishesKinds(t *testing.T) {
	p := Provider{}
	bug, err := p.SpeciesByID(context.Background(), catalog.KindBug, 1)
	if err != nil {
		t.Fatalf("bug 1: %v", err)
	}
	fish, err := p.SpeciesByID(context.Background(), catalog.KindFish, 1)
	if err != nil {
		t.Fatalf("fish 1: %v", err)
	}
	if bug.Name == fish.Name {
		t.Fatalf("bug and fish id=1 resolved to the same species")
	}
}

func TestFurnitureLookup(t *testing.T) {
	p := Provider{}
	f, err := p.FurnitureByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("furniture 3: %v", err)
	}
	if f.Price != 800 {
		t.Fatalf("simple bed price=%d want=800", f.Price)
	}
	if _, err := p.FurnitureByID(context.Background(), 999); err == nil {
		t.Fatalf("expected not found for id=999")
	}
}

package catalog

type Habitat string

const (
	HabitatForest    Habitat = "FOREST"
	HabitatGrassland Habitat = "GRASSLAND"
	HabitatDesert    Habitat = "DESERT"
	HabitatRiver     Habitat = "RIVER"
	HabitatOcean     Habitat = "OCEAN"
	HabitatPond      Habitat = "POND"
)

func ParseHabitat(s string) (Habitat, bool) {
	switch Habitat(s) {
	case HabitatForest, HabitatGrassland, HabitatDesert,
		HabitatRiver, HabitatOcean, HabitatPond:
		return Habitat(s), true
	default:
		return "", false
	}
}

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

type SpeciesKind string

const (
	KindBug  SpeciesKind = "BUG"
	KindFish SpeciesKind = "FISH"
)

// Species is an immutable catalog entry for a catchable bug or fish.
// CatchDifficulty lives in [0,1]; higher is harder.
type Species struct {
	ID              int64
	Kind            SpeciesKind
	Name            string
	Description     string
	Rarity          Rarity
	Value           int
	Habitat         Habitat
	CatchDifficulty float64
}

// ExperienceFor maps rarity to the experience reward of a catch.
func ExperienceFor(r Rarity) int {
	switch r {
	case RarityUncommon:
		return 25
	case RarityRare:
		return 50
	case RarityLegendary:
		return 100
	default:
		return 10
	}
}

// FriendshipFor maps rarity to the friendship reward of a catch.
func FriendshipFor(r Rarity) int {
	switch r {
	case RarityUncommon:
		return 2
	case RarityRare:
		return 3
	case RarityLegendary:
		return 5
	default:
		return 1
	}
}

// FilterSpecies returns entries matching both kind and habitat.
func FilterSpecies(all []Species, kind SpeciesKind, habitat Habitat) []Species {
	out := make([]Species, 0, len(all))
	for _, s := range all {
		if s.Kind == kind && s.Habitat == habitat {
			out = append(out, s)
		}
	}
	return out
}

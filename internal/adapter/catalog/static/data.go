package static

import "villagrove/internal/domain/catalog"

var bugs = []catalog.Species{
	{ID: 1, Kind: catalog.KindBug, Name: "Common Butterfly", Description: "Flutters around flower beds on sunny days.", Rarity: catalog.RarityCommon, Value: 80, Habitat: catalog.HabitatGrassland, CatchDifficulty: 0.1},
	{ID: 2, Kind: catalog.KindBug, Name: "Grasshopper", Description: "Leaps away the moment the grass rustles.", Rarity: catalog.RarityCommon, Value: 120, Habitat: catalog.HabitatGrassland, CatchDifficulty: 0.2},
	{ID: 3, Kind: catalog.KindBug, Name: "Ladybug", Description: "Said to bring good luck to whoever it lands on.", Rarity: catalog.RarityCommon, Value: 150, Habitat: catalog.HabitatForest, CatchDifficulty: 0.15},
	{ID: 4, Kind: catalog.KindBug, Name: "Stag Beetle", Description: "Clings stubbornly to tree trunks.", Rarity: catalog.RarityUncommon, Value: 450, Habitat: catalog.HabitatForest, CatchDifficulty: 0.4},
	{ID: 5, Kind: catalog.KindBug, Name: "Firefly", Description: "Glows softly near still water at dusk.", Rarity: catalog.RarityUncommon, Value: 300, Habitat: catalog.HabitatPond, CatchDifficulty: 0.35},
	{ID: 6, Kind: catalog.KindBug, Name: "Desert Scorpion", Description: "Handle with extreme care.", Rarity: catalog.RarityRare, Value: 2000, Habitat: catalog.HabitatDesert, CatchDifficulty: 0.7},
	{ID: 7, Kind: catalog.KindBug, Name: "Sand Cicada", Description: "Its buzz carries across the dunes.", Rarity: catalog.RarityUncommon, Value: 400, Habitat: catalog.HabitatDesert, CatchDifficulty: 0.45},
	{ID: 8, Kind: catalog.KindBug, Name: "Emperor Dragonfly", Description: "Patrols the riverbank like it owns it.", Rarity: catalog.RarityRare, Value: 1500, Habitat: catalog.HabitatRiver, CatchDifficulty: 0.6},
	{ID: 9, Kind: catalog.KindBug, Name: "Hermit Crab", Description: "Scuttles along the tide line.", Rarity: catalog.RarityCommon, Value: 200, Habitat: catalog.HabitatOcean, CatchDifficulty: 0.25},
	{ID: 10, Kind: catalog.KindBug, Name: "Golden Birdwing", Description: "A wingspan collectors dream about.", Rarity: catalog.RarityLegendary, Value: 8000, Habitat: catalog.HabitatForest, CatchDifficulty: 0.9},
}

var fish = []catalog.Species{
	{ID: 1, Kind: catalog.KindFish, Name: "Crucian Carp", Description: "A steady biter, good for beginners.", Rarity: catalog.RarityCommon, Value: 120, Habitat: catalog.HabitatRiver, CatchDifficulty: 0.1},
	{ID: 2, Kind: catalog.KindFish, Name: "Bluegill", Description: "Small, quick, and everywhere.", Rarity: catalog.RarityCommon, Value: 150, Habitat: catalog.HabitatRiver, CatchDifficulty: 0.2},
	{ID: 3, Kind: catalog.KindFish, Name: "Koi", Description: "Its colors ripple under the pond surface.", Rarity: catalog.RarityUncommon, Value: 2000, Habitat: catalog.HabitatPond, CatchDifficulty: 0.5},
	{ID: 4, Kind: catalog.KindFish, Name: "Goldfish", Description: "Somebody's pet, once.", Rarity: catalog.RarityCommon, Value: 1300, Habitat: catalog.HabitatPond, CatchDifficulty: 0.3},
	{ID: 5, Kind: catalog.KindFish, Name: "Sea Bass", Description: "No, wait, it's at least a C+.", Rarity: catalog.RarityCommon, Value: 400, Habitat: catalog.HabitatOcean, CatchDifficulty: 0.25},
	{ID: 6, Kind: catalog.KindFish, Name: "Red Snapper", Description: "Puts up a respectable fight.", Rarity: catalog.RarityUncommon, Value: 3000, Habitat: catalog.HabitatOcean, CatchDifficulty: 0.45},
	{ID: 7, Kind: catalog.KindFish, Name: "Rainbow Trout", Description: "Shimmers as it breaks the surface.", Rarity: catalog.RarityUncommon, Value: 800, Habitat: catalog.HabitatRiver, CatchDifficulty: 0.4},
	{ID: 8, Kind: catalog.KindFish, Name: "Giant Catfish", Description: "Lurks at the bottom of murky ponds.", Rarity: catalog.RarityRare, Value: 4500, Habitat: catalog.HabitatPond, CatchDifficulty: 0.65},
	{ID: 9, Kind: catalog.KindFish, Name: "Blue Marlin", Description: "The open ocean's crown jewel.", Rarity: catalog.RarityRare, Value: 10000, Habitat: catalog.HabitatOcean, CatchDifficulty: 0.75},
	{ID: 10, Kind: catalog.KindFish, Name: "Coelacanth", Description: "A living fossil. Rain seems to help.", Rarity: catalog.RarityLegendary, Value: 15000, Habitat: catalog.HabitatOcean, CatchDifficulty: 0.95},
}

var furniture = []catalog.Furniture{
	{ID: 1, Name: "Wooden Chair", Description: "A sturdy chair carved from local oak.", Price: 350, Category: catalog.CategorySeating, Size: catalog.SizeSmall},
	{ID: 2, Name: "Coffee Table", Description: "Low table with room for two mugs and a book.", Price: 500, Category: catalog.CategoryTables, Size: catalog.SizeMedium},
	{ID: 3, Name: "Simple Bed", Description: "Nothing fancy, but the mattress is honest.", Price: 800, Category: catalog.CategoryBeds, Size: catalog.SizeLarge},
	{ID: 4, Name: "Bookshelf", Description: "Five shelves, zero dust. For now.", Price: 650, Category: catalog.CategoryStorage, Size: catalog.SizeMedium},
	{ID: 5, Name: "Potted Fern", Description: "Brings a bit of the forest indoors.", Price: 220, Category: catalog.CategoryDecoration, Size: catalog.SizeSmall},
	{ID: 6, Name: "Velvet Sofa", Description: "Deep enough to lose an afternoon in.", Price: 1400, Category: catalog.CategorySeating, Size: catalog.SizeLarge},
	{ID: 7, Name: "Dining Table", Description: "Seats four villagers, or one dramatic eagle.", Price: 1100, Category: catalog.CategoryTables, Size: catalog.SizeLarge},
	{ID: 8, Name: "Wall Clock", Description: "Ticks just loudly enough to notice.", Price: 300, Category: catalog.CategoryDecoration, Size: catalog.SizeSmall},
}

package catalog

type FurnitureCategory string

const (
	CategorySeating    FurnitureCategory = "SEATING"
	CategoryTables     FurnitureCategory = "TABLES"
	CategoryBeds       FurnitureCategory = "BEDS"
	CategoryStorage    FurnitureCategory = "STORAGE"
	CategoryDecoration FurnitureCategory = "DECORATION"
)

type FurnitureSize string

const (
	SizeSmall  FurnitureSize = "SMALL"
	SizeMedium FurnitureSize = "MEDIUM"
	SizeLarge  FurnitureSize = "LARGE"
)

// Furniture is an immutable shop catalog entry. Price is in Bells.
type Furniture struct {
	ID          int64
	Name        string
	Description string
	Price       int
	Category    FurnitureCategory
	Size        FurnitureSize
}

func FurnitureByID(all []Furniture, id int64) (Furniture, bool) {
	for _, f := range all {
		if f.ID == id {
			return f, true
		}
	}
	return Furniture{}, false
}

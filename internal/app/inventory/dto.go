package inventory

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"villagrove/internal/app/ports"
)

// ItemView matches the client's InventoryItemDTO. ID is the composed
// "<TYPE>_<rowID>" form the client uses as its handle.
type ItemView struct {
	ID              string `json:"id"`
	ItemID          int64  `json:"itemId"`
	ItemName        string `json:"itemName"`
	ItemDescription string `json:"itemDescription"`
	ItemType        string `json:"itemType"`
	Rarity          string `json:"rarity"`
	Value           int    `json:"value"`
	Habitat         string `json:"habitat,omitempty"`
	CaughtAt        string `json:"caughtAt,omitempty"`
	CaughtBy        string `json:"caughtBy,omitempty"`
	Location        string `json:"location,omitempty"`
	Quantity        int    `json:"quantity"`
}

type Stats struct {
	TotalItems    int `json:"totalItems"`
	TotalValue    int `json:"totalValue"`
	UniqueSpecies int `json:"uniqueSpecies"`
	RareItems     int `json:"rareItems"`
}

type ListResponse struct {
	Items []ItemView `json:"items"`
	Stats Stats      `json:"stats"`
}

type SellResult struct {
	Message    string `json:"message"`
	Credited   int    `json:"credited"`
	NewBalance int    `json:"newBalance"`
}

func composeID(r ports.InventoryRecord) string {
	return fmt.Sprintf("%s_%d", r.ItemType, r.ID)
}

// ParseItemID accepts both the composed "BUG_123" handle and a bare
// row id.
func ParseItemID(raw string) (int64, error) {
	if i := strings.LastIndexByte(raw, '_'); i >= 0 {
		raw = raw[i+1:]
	}
	return strconv.ParseInt(raw, 10, 64)
}

func itemView(r ports.InventoryRecord, name, description string) ItemView {
	caughtAt := ""
	if !r.CaughtAt.IsZero() {
		caughtAt = r.CaughtAt.UTC().Format(time.RFC3339)
	}
	return ItemView{
		ID:              composeID(r),
		ItemID:          r.ItemID,
		ItemName:        name,
		ItemDescription: description,
		ItemType:        string(r.ItemType),
		Rarity:          r.Rarity,
		Value:           r.Value,
		Habitat:         r.Habitat,
		CaughtAt:        caughtAt,
		CaughtBy:        r.CaughtBy,
		Location:        r.Habitat,
		Quantity:        r.Quantity,
	}
}

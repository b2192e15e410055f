package domain

// ItemID identifies an item in the trading-post catalog.
type ItemID int

// RecipeID identifies a crafting recipe.
type RecipeID int

// Item represents reference data for a single catalog item.
// Items are immutable snapshots owned by the catalog index.
type Item struct {
	ID           ItemID   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Type         string   `json:"type"`
	Level        int      `json:"level"`
	Rarity       string   `json:"rarity"`
	VendorValue  int      `json:"vendor_value"`
	GameTypes    []string `json:"game_types,omitempty"`
	Flags        []string `json:"flags,omitempty"`
	Restrictions []string `json:"restrictions,omitempty"`
}

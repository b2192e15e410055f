package domain

// Ingredient represents a single material requirement for one recipe run.
type Ingredient struct {
	ItemID ItemID `json:"item_id"`
	Count  int    `json:"count"`
}

// Recipe represents a crafting recipe. One run consumes every ingredient at
// its listed count and produces OutputCount of the output item. Ingredient
// order is the order the remote service lists them in; resolution iterates
// ingredients in exactly this order so that results are reproducible when
// siblings compete for the same scarce inventory stock.
type Recipe struct {
	ID            RecipeID     `json:"id"`
	Type          string       `json:"type"`
	OutputItemID  ItemID       `json:"output_item_id"`
	OutputCount   int          `json:"output_item_count"`
	MinRating     int          `json:"min_rating"`
	TimeToCraftMS int          `json:"time_to_craft_ms"`
	Disciplines   []string     `json:"disciplines,omitempty"`
	Flags         []string     `json:"flags,omitempty"`
	Ingredients   []Ingredient `json:"ingredients"`
}

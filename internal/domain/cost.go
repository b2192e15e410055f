package domain

// SourceKind names the acquisition strategy chosen for a resolved cost.
type SourceKind string

const (
	// SourceVendor means the item is bought at a fixed vendor price.
	SourceVendor SourceKind = "vendor"
	// SourceSpecial means the item is priced by a curated special rule.
	SourceSpecial SourceKind = "special"
	// SourceAuction means the item is bought on the open market.
	SourceAuction SourceKind = "auction"
	// SourceUnknown means no price could be determined. The cost is defined
	// as zero, signaling a data gap rather than a truly free acquisition.
	SourceUnknown SourceKind = "unknown"
	// SourceRecipe means the item is crafted from its recipe.
	SourceRecipe SourceKind = "recipe"
	// SourceBank means some or all of the quantity was drawn from owned
	// inventory.
	SourceBank SourceKind = "bank"
)

// Source describes how a resolved quantity is obtained.
//
// For SourceRecipe, RecipeID and Ingredients are set; Ingredients holds one
// fully resolved Cost per distinct ingredient item, keyed by item id.
//
// For SourceBank, Used is the quantity drawn from inventory (always <= the
// requested quantity) and Rest describes how the remainder was obtained.
// Rest is non-nil iff Used is strictly less than the requested quantity.
type Source struct {
	Kind SourceKind `json:"kind"`

	RecipeID    RecipeID         `json:"recipe_id,omitempty"`
	Ingredients map[ItemID]*Cost `json:"ingredients,omitempty"`

	Used int     `json:"used,omitempty"`
	Rest *Source `json:"rest,omitempty"`
}

// Cost is the result of resolving one (item, quantity) request. Total is an
// exact integer amount in the smallest currency denomination. Cost trees are
// constructed fresh per top-level request and are immutable once returned.
type Cost struct {
	ID       ItemID `json:"id"`
	Source   Source `json:"source"`
	Quantity int    `json:"quantity"`
	Total    int    `json:"total"`
}

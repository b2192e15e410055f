// Package index assembles and serves the read-only reference snapshot that
// cost resolution runs against: items, recipes indexed by output item,
// order-book listings, the owned-materials inventory, and the curated
// offering set. Everything except the inventory copies it hands out is
// immutable once Build returns.
package index

import (
	"context"
	"fmt"

	"github.com/mwren/craftcost/internal/domain"
	"github.com/mwren/craftcost/internal/logger"
)

// fetchChunkSize is the maximum number of ids the remote service accepts in
// one bulk request.
const fetchChunkSize = 50

// Client is the remote trade API surface the index is built from.
type Client interface {
	AllRecipes(ctx context.Context) ([]domain.RecipeID, error)
	Recipes(ctx context.Context, ids []domain.RecipeID) ([]domain.Recipe, error)
	Items(ctx context.Context, ids []domain.ItemID) ([]domain.Item, error)
	Listings(ctx context.Context, ids []domain.ItemID) ([]domain.Listings, error)
	Materials(ctx context.Context) ([]domain.Material, error)
	Characters(ctx context.Context) ([]string, error)
	CharacterRecipes(ctx context.Context, name string) ([]domain.RecipeID, error)
}

// BuildOptions controls which recipes and offerings the snapshot covers.
type BuildOptions struct {
	// ByCharacter restricts recipes to the union of recipes known by the
	// account's characters instead of every recipe the service knows.
	ByCharacter bool
	// Offerings is the curated set of items obtainable only through gated,
	// illiquid exchanges; the fixed-price catalog prices them at a flat
	// large constant.
	Offerings []domain.ItemID
}

// Index is the fully populated reference snapshot.
type Index struct {
	recipes       map[domain.RecipeID]domain.Recipe
	recipesByItem map[domain.ItemID]domain.Recipe
	items         map[domain.ItemID]domain.Item
	listings      map[domain.ItemID]*domain.Listings
	offerings     map[domain.ItemID]struct{}
	materials     domain.Inventory
}

// New assembles an index from already-loaded parts. Build is the normal
// path; New exists for fixtures and offline snapshots.
func New(recipes []domain.Recipe, items []domain.Item, listings []*domain.Listings, offerings []domain.ItemID, materials domain.Inventory) *Index {
	idx := &Index{
		recipes:       make(map[domain.RecipeID]domain.Recipe, len(recipes)),
		recipesByItem: make(map[domain.ItemID]domain.Recipe, len(recipes)),
		items:         make(map[domain.ItemID]domain.Item, len(items)),
		listings:      make(map[domain.ItemID]*domain.Listings, len(listings)),
		offerings:     make(map[domain.ItemID]struct{}, len(offerings)),
		materials:     make(domain.Inventory),
	}
	for _, r := range recipes {
		idx.recipes[r.ID] = r
		idx.recipesByItem[r.OutputItemID] = r
	}
	for _, it := range items {
		idx.items[it.ID] = it
	}
	for _, ls := range listings {
		idx.listings[ls.ID] = ls
	}
	for _, id := range offerings {
		idx.offerings[id] = struct{}{}
	}
	if materials != nil {
		idx.materials = materials.Clone()
	}
	return idx
}

// Build fetches and assembles the snapshot. The client is only used for the
// duration of the call; the returned index never touches the network again.
func Build(ctx context.Context, c Client, opts BuildOptions) (*Index, error) {
	log := logger.FromContext(ctx)

	var recipeIDs []domain.RecipeID
	var err error
	if opts.ByCharacter {
		recipeIDs, err = characterRecipeIDs(ctx, c)
	} else {
		recipeIDs, err = c.AllRecipes(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	log.Info("Known recipes listed", "count", len(recipeIDs))

	idx := &Index{
		recipes:       make(map[domain.RecipeID]domain.Recipe, len(recipeIDs)),
		recipesByItem: make(map[domain.ItemID]domain.Recipe, len(recipeIDs)),
		items:         make(map[domain.ItemID]domain.Item),
		listings:      make(map[domain.ItemID]*domain.Listings),
		offerings:     make(map[domain.ItemID]struct{}, len(opts.Offerings)),
		materials:     make(domain.Inventory),
	}
	for _, id := range opts.Offerings {
		idx.offerings[id] = struct{}{}
	}

	for chunk := range chunks(recipeIDs, fetchChunkSize) {
		recipes, err := c.Recipes(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch recipes: %w", err)
		}
		for _, r := range recipes {
			idx.recipes[r.ID] = r
			idx.recipesByItem[r.OutputItemID] = r
		}
	}
	log.Info("Recipes retrieved", "count", len(idx.recipes))

	itemIDs := idx.referencedItemIDs()
	for chunk := range chunks(itemIDs, fetchChunkSize) {
		items, err := c.Items(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch items: %w", err)
		}
		for _, it := range items {
			idx.items[it.ID] = it
		}
	}
	log.Info("Items retrieved", "count", len(idx.items))

	for chunk := range chunks(itemIDs, fetchChunkSize) {
		books, err := c.Listings(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch listings: %w", err)
		}
		for _, ls := range books {
			idx.listings[ls.ID] = &ls
		}
	}
	log.Info("Listings retrieved", "count", len(idx.listings))

	materials, err := c.Materials(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch materials: %w", err)
	}
	for _, m := range materials {
		idx.materials[m.ID] += m.Count
	}
	log.Info("Materials retrieved", "count", len(materials))

	return idx, nil
}

// characterRecipeIDs unions the recipe lists known by every character on the
// account.
func characterRecipeIDs(ctx context.Context, c Client) ([]domain.RecipeID, error) {
	names, err := c.Characters(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	seen := make(map[domain.RecipeID]struct{})
	var out []domain.RecipeID
	for _, name := range names {
		ids, err := c.CharacterRecipes(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch recipes for %s: %w", name, err)
		}
		for _, id := range ids {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				out = append(out, id)
			}
		}
	}
	return out, nil
}

// referencedItemIDs collects every item id appearing as a recipe output or
// ingredient, deduplicated.
func (idx *Index) referencedItemIDs() []domain.ItemID {
	seen := make(map[domain.ItemID]struct{})
	var out []domain.ItemID
	add := func(id domain.ItemID) {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	for _, r := range idx.recipes {
		add(r.OutputItemID)
		for _, ing := range r.Ingredients {
			add(ing.ItemID)
		}
	}
	return out
}

// chunks yields successive sub-slices of at most size elements.
func chunks[T any](s []T, size int) func(func([]T) bool) {
	return func(yield func([]T) bool) {
		for len(s) > 0 {
			n := min(size, len(s))
			if !yield(s[:n]) {
				return
			}
			s = s[n:]
		}
	}
}

// Item looks up reference data for an item id.
func (idx *Index) Item(id domain.ItemID) (domain.Item, bool) {
	it, ok := idx.items[id]
	return it, ok
}

// RecipeByItem returns the recipe producing the given item, if one exists.
// At most one recipe per output item is considered.
func (idx *Index) RecipeByItem(id domain.ItemID) (domain.Recipe, bool) {
	r, ok := idx.recipesByItem[id]
	return r, ok
}

// Recipes returns every recipe in the snapshot.
func (idx *Index) Recipes() map[domain.RecipeID]domain.Recipe {
	return idx.recipes
}

// ListingsFor returns the order book for an item, if any was loaded.
func (idx *Index) ListingsFor(id domain.ItemID) (*domain.Listings, bool) {
	ls, ok := idx.listings[id]
	return ls, ok
}

// IsOffering reports whether an item belongs to the curated offering set.
func (idx *Index) IsOffering(id domain.ItemID) bool {
	_, ok := idx.offerings[id]
	return ok
}

// Inventory returns a fresh mutable copy of the owned-materials snapshot.
// Each top-level resolution should start from its own copy so that a failed
// request cannot corrupt the ledger seen by sibling requests.
func (idx *Index) Inventory() domain.Inventory {
	return idx.materials.Clone()
}

package resolver

import (
	"slices"

	"github.com/mwren/craftcost/internal/domain"
)

// BaseIngredients walks a resolved cost tree and produces the flat mapping
// from leaf item identity to the quantity the plan acquires of it. Recipe
// sources recurse into every ingredient subtree; a Bank source attributes
// its used units to the item itself and recurses into the remainder; every
// other source attributes its full quantity to itself as a leaf.
func BaseIngredients(c *domain.Cost) map[domain.ItemID]int {
	return baseIngredients(c.ID, &c.Source, c.Quantity)
}

func baseIngredients(id domain.ItemID, src *domain.Source, quantity int) map[domain.ItemID]int {
	out := make(map[domain.ItemID]int)
	switch {
	case src.Kind == domain.SourceRecipe:
		for _, ing := range src.Ingredients {
			for leaf, count := range BaseIngredients(ing) {
				out[leaf] += count
			}
		}
	case src.Kind == domain.SourceBank && src.Rest != nil:
		out[id] += src.Used
		for leaf, count := range baseIngredients(id, src.Rest, quantity-src.Used) {
			out[leaf] += count
		}
	default:
		out[id] += quantity
	}
	return out
}

// Purchase is one line of a shopping list: a leaf item that must be freshly
// acquired after owned inventory is accounted for.
type Purchase struct {
	Item     domain.ItemID `json:"item"`
	Name     string        `json:"name,omitempty"`
	Quantity int           `json:"quantity"`
}

// ShoppingList projects a cost tree into the net purchases it requires.
// owned is an independent inventory read, separate from the ledger mutated
// during resolution: Bank handling in the tree already reflects consumption
// for the chosen path, so the projection subtracts the not-yet-consumed
// snapshot quantities instead.
func (r *Resolver) ShoppingList(cost *domain.Cost) []Purchase {
	owned := r.idx.Inventory()
	needs := BaseIngredients(cost)

	ids := make([]domain.ItemID, 0, len(needs))
	for id := range needs {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]Purchase, 0, len(ids))
	for _, id := range ids {
		net := needs[id] - owned[id]
		if net <= 0 {
			continue
		}
		p := Purchase{Item: id, Quantity: net}
		if it, ok := r.idx.Item(id); ok {
			p.Name = it.Name
		}
		out = append(out, p)
	}
	return out
}

// Package resolver implements the recursive cost-resolution engine: given an
// item and quantity it picks the cheapest of owned inventory, a fixed
// catalog price, crafting from a recipe, or an open-market purchase.
package resolver

import (
	"fmt"

	"github.com/mwren/craftcost/internal/book"
	"github.com/mwren/craftcost/internal/domain"
	"github.com/mwren/craftcost/internal/index"
	"github.com/mwren/craftcost/internal/metrics"
	"github.com/mwren/craftcost/internal/pricing"
)

// Resolver evaluates acquisition strategies against a read-only catalog
// index. The inventory ledger passed to Resolve is the only mutable state;
// it is shared by reference through the whole recursion and consumed
// destructively, so callers wanting isolation between top-level requests
// must pass independent copies.
type Resolver struct {
	idx     *index.Index
	catalog *pricing.Catalog
}

// New creates a resolver over an index and a fixed-price catalog.
func New(idx *index.Index, catalog *pricing.Catalog) *Resolver {
	return &Resolver{idx: idx, catalog: catalog}
}

// Resolve returns the cheapest acquisition plan for quantity units of an
// item, consuming owned stock from the ledger as it commits to branches.
//
// The decision order per call: owned inventory first, then the fixed-price
// catalog, then crafting versus a market purchase. A crafted plan is
// discarded for a market purchase only when the market total is strictly
// lower; on that discard the ledger is restored to its state before the
// ingredients were priced. Items that cannot be priced at all resolve to an
// Unknown source with total zero rather than failing.
func (r *Resolver) Resolve(id domain.ItemID, quantity int, ledger domain.Inventory) (*domain.Cost, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, quantity)
	}
	return r.resolve(id, quantity, ledger, make(map[domain.ItemID]struct{}))
}

// resolve is the recursive body. ancestors holds the output items of every
// recipe currently being expanded; a recipe whose output is already an
// ancestor is treated as absent, which keeps pathological cyclic recipe
// data from recursing forever.
func (r *Resolver) resolve(id domain.ItemID, quantity int, ledger domain.Inventory, ancestors map[domain.ItemID]struct{}) (*domain.Cost, error) {
	if count := ledger[id]; count > 0 {
		used := min(quantity, count)
		ledger[id] = count - used
		if used == quantity {
			return &domain.Cost{
				ID:       id,
				Source:   domain.Source{Kind: domain.SourceBank, Used: used},
				Quantity: quantity,
				Total:    0,
			}, nil
		}
		rest, err := r.resolve(id, quantity-used, ledger, ancestors)
		if err != nil {
			return nil, err
		}
		restSource := rest.Source
		return &domain.Cost{
			ID:       id,
			Source:   domain.Source{Kind: domain.SourceBank, Used: used, Rest: &restSource},
			Quantity: quantity,
			// The drawn-from-inventory portion contributes zero cost.
			Total: rest.Total,
		}, nil
	}

	if price, ok := r.catalog.Vendor(id); ok {
		return &domain.Cost{
			ID:       id,
			Source:   domain.Source{Kind: domain.SourceVendor},
			Quantity: quantity,
			Total:    quantity * price,
		}, nil
	}

	price, ok, err := r.catalog.Special(r.idx, id)
	if err != nil {
		return nil, err
	}
	if ok {
		return &domain.Cost{
			ID:       id,
			Source:   domain.Source{Kind: domain.SourceSpecial},
			Quantity: quantity,
			Total:    quantity * price,
		}, nil
	}

	recipe, hasRecipe := r.idx.RecipeByItem(id)
	if hasRecipe {
		if _, cyclic := ancestors[id]; cyclic {
			hasRecipe = false
		}
	}

	if !hasRecipe {
		if ls, found := r.idx.ListingsFor(id); found {
			if total, err := book.Cost(ls, quantity); err == nil {
				return &domain.Cost{
					ID:       id,
					Source:   domain.Source{Kind: domain.SourceAuction},
					Quantity: quantity,
					Total:    total,
				}, nil
			}
			metrics.DepthShortfalls.Inc()
		}
		// A zero total here signals a pricing gap, not a free item.
		return &domain.Cost{
			ID:       id,
			Source:   domain.Source{Kind: domain.SourceUnknown},
			Quantity: quantity,
			Total:    0,
		}, nil
	}

	outputCount := max(recipe.OutputCount, 1)
	runs := (quantity + outputCount - 1) / outputCount

	// Snapshot the ledger before pricing ingredients so it can be restored
	// if a market purchase beats the crafted total.
	snapshot := ledger.Clone()

	ancestors[id] = struct{}{}
	craftTotal := 0
	ingredients := make(map[domain.ItemID]*domain.Cost, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		ingCost, err := r.resolve(ing.ItemID, ing.Count*runs, ledger, ancestors)
		if err != nil {
			delete(ancestors, id)
			return nil, err
		}
		craftTotal += ingCost.Total
		ingredients[ing.ItemID] = ingCost
	}
	delete(ancestors, id)

	if ls, found := r.idx.ListingsFor(id); found {
		if total, err := book.Cost(ls, quantity); err == nil && total < craftTotal {
			ledger.Restore(snapshot)
			metrics.AuctionOverrides.Inc()
			return &domain.Cost{
				ID:       id,
				Source:   domain.Source{Kind: domain.SourceAuction},
				Quantity: quantity,
				Total:    total,
			}, nil
		}
	}

	return &domain.Cost{
		ID: id,
		Source: domain.Source{
			Kind:        domain.SourceRecipe,
			RecipeID:    recipe.ID,
			Ingredients: ingredients,
		},
		Quantity: quantity,
		Total:    craftTotal,
	}, nil
}

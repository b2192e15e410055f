// Package profit ranks recipes by the surplus left after crafting their
// output at resolved cost and reselling it into the buy side of the book.
package profit

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/mwren/craftcost/internal/book"
	"github.com/mwren/craftcost/internal/domain"
	"github.com/mwren/craftcost/internal/index"
	"github.com/mwren/craftcost/internal/logger"
	"github.com/mwren/craftcost/internal/metrics"
	"github.com/mwren/craftcost/internal/pricing"
	"github.com/mwren/craftcost/internal/resolver"
)

// DefaultFeePercent is the trading-post cut on a sale: 5% listing fee plus
// a 10% exchange fee.
const DefaultFeePercent = 15

// Margin is one ranked recipe: craft Quantity units of Item for Cost, sell
// them for Revenue net of fees, and keep Margin.
type Margin struct {
	RecipeID domain.RecipeID `json:"recipe_id"`
	Item     domain.ItemID   `json:"item"`
	Name     string          `json:"name,omitempty"`
	Quantity int             `json:"quantity"`
	Cost     int             `json:"cost"`
	Revenue  int             `json:"revenue"`
	Margin   int             `json:"margin"`
}

// RankOptions controls one ranking pass.
type RankOptions struct {
	// SpendInventory lets resolution draw on the owned-materials snapshot.
	// Banked stock resolves at zero cost, so margins become "profit if I
	// also burn what I already have".
	SpendInventory bool
}

// Service defines the interface for profit-ranking operations
type Service interface {
	Rank(ctx context.Context, opts RankOptions) ([]Margin, error)
}

type service struct {
	idx        *index.Index
	res        *resolver.Resolver
	feePercent int
}

// NewService creates a new profit-ranking service. feePercent is the
// percentage of a sale kept by the trading post.
func NewService(idx *index.Index, catalog *pricing.Catalog, feePercent int) Service {
	return &service{
		idx:        idx,
		res:        resolver.New(idx, catalog),
		feePercent: feePercent,
	}
}

// Rank evaluates every recipe in the index: one run's output is resolved
// against a fresh ledger, compared to the net proceeds of selling that
// output into the buy book, and recipes with a positive margin are returned
// ranked best-first. Recipes whose output has no buy-side depth, or whose
// cost rests on a pricing gap, are skipped.
func (s *service) Rank(ctx context.Context, opts RankOptions) ([]Margin, error) {
	log := logger.FromContext(ctx)
	log.Info("Rank called", "spend_inventory", opts.SpendInventory)

	var out []Margin
	for _, recipe := range s.idx.Recipes() {
		quantity := max(recipe.OutputCount, 1)

		ls, ok := s.idx.ListingsFor(recipe.OutputItemID)
		if !ok {
			continue
		}
		sale, err := book.Sale(ls, quantity)
		if err != nil {
			if errors.Is(err, domain.ErrInsufficientDepth) {
				metrics.DepthShortfalls.Inc()
				continue
			}
			return nil, fmt.Errorf("failed to price sale: %w", err)
		}
		revenue := sale * (100 - s.feePercent) / 100

		ledger := domain.Inventory{}
		if opts.SpendInventory {
			ledger = s.idx.Inventory()
		}
		cost, err := s.res.Resolve(recipe.OutputItemID, quantity, ledger)
		if err != nil {
			log.Error("Failed to resolve recipe output", "error", err, "recipeID", recipe.ID)
			return nil, fmt.Errorf("failed to resolve recipe output: %w", err)
		}
		metrics.RecipesRanked.Inc()

		if hasUnknown(&cost.Source) {
			// An Unknown leaf understates the cost and would fake profit.
			continue
		}

		margin := revenue - cost.Total
		if margin <= 0 {
			continue
		}

		m := Margin{
			RecipeID: recipe.ID,
			Item:     recipe.OutputItemID,
			Quantity: quantity,
			Cost:     cost.Total,
			Revenue:  revenue,
			Margin:   margin,
		}
		if it, ok := s.idx.Item(recipe.OutputItemID); ok {
			m.Name = it.Name
		}
		out = append(out, m)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Margin != out[j].Margin {
			return out[i].Margin > out[j].Margin
		}
		return out[i].Item < out[j].Item
	})

	log.Info("Recipes ranked", "surplus_count", len(out))
	return out, nil
}

// hasUnknown reports whether any node of a source tree is an Unknown source.
func hasUnknown(src *domain.Source) bool {
	switch src.Kind {
	case domain.SourceUnknown:
		return true
	case domain.SourceRecipe:
		for _, ing := range src.Ingredients {
			if hasUnknown(&ing.Source) {
				return true
			}
		}
	case domain.SourceBank:
		if src.Rest != nil {
			return hasUnknown(src.Rest)
		}
	}
	return false
}

package resolver

import (
	"context"
	"fmt"
	"time"

	"github.com/mwren/craftcost/internal/domain"
	"github.com/mwren/craftcost/internal/index"
	"github.com/mwren/craftcost/internal/logger"
	"github.com/mwren/craftcost/internal/metrics"
	"github.com/mwren/craftcost/internal/pricing"
)

// Service defines the interface for cost-resolution operations
type Service interface {
	ResolveCost(ctx context.Context, id domain.ItemID, quantity int) (*domain.Cost, error)
	ShoppingListFor(ctx context.Context, id domain.ItemID, quantity int) ([]Purchase, error)
}

type service struct {
	idx *index.Index
	res *Resolver
}

// NewService creates a new cost-resolution service
func NewService(idx *index.Index, catalog *pricing.Catalog) Service {
	return &service{
		idx: idx,
		res: New(idx, catalog),
	}
}

// ResolveCost resolves one top-level request against a fresh copy of the
// owned-inventory snapshot, so a failed request cannot corrupt the ledger
// seen by concurrent sibling requests.
func (s *service) ResolveCost(ctx context.Context, id domain.ItemID, quantity int) (*domain.Cost, error) {
	log := logger.FromContext(ctx)
	log.Info("ResolveCost called", "item", id, "quantity", quantity)

	if _, ok := s.idx.Item(id); !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrItemNotFound, id)
	}

	start := time.Now()
	cost, err := s.res.Resolve(id, quantity, s.idx.Inventory())
	metrics.ResolutionDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		log.Error("Failed to resolve cost", "error", err, "item", id)
		return nil, fmt.Errorf("failed to resolve cost: %w", err)
	}

	metrics.ResolutionsTotal.WithLabelValues(string(cost.Source.Kind)).Inc()
	log.Info("Cost resolved", "item", id, "quantity", quantity, "source", cost.Source.Kind, "total", cost.Total)
	return cost, nil
}

// ShoppingListFor resolves an item and flattens the plan into the leaf
// purchases not covered by owned inventory.
func (s *service) ShoppingListFor(ctx context.Context, id domain.ItemID, quantity int) ([]Purchase, error) {
	log := logger.FromContext(ctx)
	log.Info("ShoppingListFor called", "item", id, "quantity", quantity)

	cost, err := s.ResolveCost(ctx, id, quantity)
	if err != nil {
		return nil, err
	}

	list := s.res.ShoppingList(cost)
	log.Info("Shopping list built", "item", id, "lines", len(list))
	return list, nil
}

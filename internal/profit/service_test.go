package profit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwren/craftcost/internal/domain"
	"github.com/mwren/craftcost/internal/index"
	"github.com/mwren/craftcost/internal/pricing"
)

const (
	matID     = domain.ItemID(1) // vendor material, 100 each
	goodID    = domain.ItemID(2) // profitable craft
	badID     = domain.ItemID(3) // unprofitable craft
	thinID    = domain.ItemID(4) // no buy-side depth
	gappyID   = domain.ItemID(5) // unpriced ingredient
	mysteryID = domain.ItemID(6) // the unpriced ingredient itself
)

func fixtureService(materials domain.Inventory) Service {
	recipes := []domain.Recipe{
		{ID: 11, OutputItemID: goodID, OutputCount: 1, Ingredients: []domain.Ingredient{{ItemID: matID, Count: 2}}},
		{ID: 12, OutputItemID: badID, OutputCount: 1, Ingredients: []domain.Ingredient{{ItemID: matID, Count: 2}}},
		{ID: 13, OutputItemID: thinID, OutputCount: 1, Ingredients: []domain.Ingredient{{ItemID: matID, Count: 1}}},
		{ID: 14, OutputItemID: gappyID, OutputCount: 1, Ingredients: []domain.Ingredient{{ItemID: mysteryID, Count: 1}}},
	}
	items := []domain.Item{
		{ID: goodID, Name: "Refined Blade"},
		{ID: badID, Name: "Dull Blade"},
	}
	listings := []*domain.Listings{
		{ID: goodID, Buys: []domain.Listing{{UnitPrice: 1000, Quantity: 10}}},
		{ID: badID, Buys: []domain.Listing{{UnitPrice: 150, Quantity: 10}}},
		{ID: thinID, Buys: nil},
		{ID: gappyID, Buys: []domain.Listing{{UnitPrice: 5000, Quantity: 10}}},
	}
	idx := index.New(recipes, items, listings, nil, materials)
	catalog := pricing.NewCatalog(map[domain.ItemID]int{matID: 100}, nil, pricing.OfferingPrice)
	return NewService(idx, catalog, DefaultFeePercent)
}

func TestRank_SurplusRecipesOnly(t *testing.T) {
	svc := fixtureService(nil)

	margins, err := svc.Rank(context.Background(), RankOptions{})

	require.NoError(t, err)
	require.Len(t, margins, 1)

	m := margins[0]
	assert.Equal(t, goodID, m.Item)
	assert.Equal(t, "Refined Blade", m.Name)
	assert.Equal(t, 200, m.Cost, "2 materials at 100")
	assert.Equal(t, 850, m.Revenue, "1000 sale minus 15%")
	assert.Equal(t, 650, m.Margin)
}

func TestRank_UnprofitableSkipped(t *testing.T) {
	svc := fixtureService(nil)

	margins, err := svc.Rank(context.Background(), RankOptions{})

	require.NoError(t, err)
	for _, m := range margins {
		assert.NotEqual(t, badID, m.Item, "127 net revenue cannot beat a 200 cost")
	}
}

func TestRank_NoBuyDepthSkipped(t *testing.T) {
	svc := fixtureService(nil)

	margins, err := svc.Rank(context.Background(), RankOptions{})

	require.NoError(t, err)
	for _, m := range margins {
		assert.NotEqual(t, thinID, m.Item)
	}
}

func TestRank_UnknownIngredientSkipped(t *testing.T) {
	// gappyID would show a huge fake margin because its unpriced
	// ingredient resolves to zero cost.
	svc := fixtureService(nil)

	margins, err := svc.Rank(context.Background(), RankOptions{})

	require.NoError(t, err)
	for _, m := range margins {
		assert.NotEqual(t, gappyID, m.Item)
	}
}

func TestRank_SpendInventoryImprovesMargin(t *testing.T) {
	svc := fixtureService(domain.Inventory{matID: 2})

	margins, err := svc.Rank(context.Background(), RankOptions{SpendInventory: true})

	require.NoError(t, err)
	require.NotEmpty(t, margins)
	assert.Equal(t, goodID, margins[0].Item)
	assert.Equal(t, 0, margins[0].Cost, "both materials drawn from the bank")
	assert.Equal(t, 850, margins[0].Margin)
}

func TestRank_OrderedByMarginDescending(t *testing.T) {
	svc := fixtureService(nil)

	margins, err := svc.Rank(context.Background(), RankOptions{})
	require.NoError(t, err)

	for i := 1; i < len(margins); i++ {
		assert.GreaterOrEqual(t, margins[i-1].Margin, margins[i].Margin)
	}
}

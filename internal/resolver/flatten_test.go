package resolver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwren/craftcost/internal/domain"
	"github.com/mwren/craftcost/internal/index"
)

func TestBaseIngredients_LeafSource(t *testing.T) {
	cost := &domain.Cost{
		ID:       itemX,
		Source:   domain.Source{Kind: domain.SourceVendor},
		Quantity: 3,
		Total:    450,
	}

	assert.Equal(t, map[domain.ItemID]int{itemX: 3}, BaseIngredients(cost))
}

func TestBaseIngredients_RecipeRecursesAndSums(t *testing.T) {
	cost, err := newResolver().Resolve(itemM, 1, domain.Inventory{})
	require.NoError(t, err)

	// M needs 2x ore directly plus an ingot built from 2x ore.
	assert.Equal(t, map[domain.ItemID]int{itemS: 4}, BaseIngredients(cost))
}

func TestBaseIngredients_BankChain(t *testing.T) {
	ledger := domain.Inventory{itemW: 5}
	cost, err := newResolver().Resolve(itemW, 8, ledger)
	require.NoError(t, err)

	// Banked units count toward the item's own leaf total; the projector
	// is what nets them out against the owned snapshot.
	assert.Equal(t, map[domain.ItemID]int{itemW: 8}, BaseIngredients(cost))
}

func TestBaseIngredients_FullyBanked(t *testing.T) {
	ledger := domain.Inventory{itemX: 4}
	cost, err := newResolver().Resolve(itemX, 4, ledger)
	require.NoError(t, err)

	assert.Equal(t, map[domain.ItemID]int{itemX: 4}, BaseIngredients(cost))
}

func TestShoppingList_SubtractsOwnedInventory(t *testing.T) {
	// The index snapshot owns 5 thread; resolving 8 against a copy leaves
	// a net purchase of 3.
	idx := index.New(nil, []domain.Item{{ID: itemW, Name: "Thread"}}, nil, nil, domain.Inventory{itemW: 5})
	res := New(idx, fixtureCatalog())

	cost, err := res.Resolve(itemW, 8, idx.Inventory())
	require.NoError(t, err)

	list := res.ShoppingList(cost)
	require.Len(t, list, 1)
	assert.Equal(t, Purchase{Item: itemW, Name: "Thread", Quantity: 3}, list[0])
}

func TestShoppingList_FullyCoveredItemOmitted(t *testing.T) {
	idx := index.New(nil, nil, nil, nil, domain.Inventory{itemX: 10})
	res := New(idx, fixtureCatalog())

	cost, err := res.Resolve(itemX, 4, idx.Inventory())
	require.NoError(t, err)

	assert.Empty(t, res.ShoppingList(cost))
}

func TestShoppingList_SortedByItemID(t *testing.T) {
	cost, err := newResolver().Resolve(itemM, 1, domain.Inventory{})
	require.NoError(t, err)

	list := newResolver().ShoppingList(cost)
	require.Len(t, list, 1)
	assert.Equal(t, itemS, list[0].Item)
	assert.Equal(t, 4, list[0].Quantity)
	assert.Equal(t, "Ore", list[0].Name)
}

func TestService_ResolveCost(t *testing.T) {
	svc := NewService(fixtureIndex(), fixtureCatalog())
	ctx := context.Background()

	cost, err := svc.ResolveCost(ctx, itemX, 3)

	require.NoError(t, err)
	assert.Equal(t, 450, cost.Total)
}

func TestService_ResolveCost_UnknownItem(t *testing.T) {
	svc := NewService(fixtureIndex(), fixtureCatalog())

	_, err := svc.ResolveCost(context.Background(), domain.ItemID(99999), 1)

	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestService_IndependentLedgersAcrossCalls(t *testing.T) {
	// Each top-level request resolves against its own inventory copy, so
	// repeated calls see the same owned stock.
	idx := index.New(nil, []domain.Item{{ID: itemX, Name: "Reagent"}}, nil, nil, domain.Inventory{itemX: 4})
	svc := NewService(idx, fixtureCatalog())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		cost, err := svc.ResolveCost(ctx, itemX, 4)
		require.NoError(t, err)
		assert.Equal(t, 0, cost.Total)
		assert.Equal(t, domain.SourceBank, cost.Source.Kind)
	}
}

func TestService_ShoppingListFor(t *testing.T) {
	svc := NewService(fixtureIndex(), fixtureCatalog())

	list, err := svc.ShoppingListFor(context.Background(), itemM, 1)

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, itemS, list[0].Item)
}

package book

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwren/craftcost/internal/domain"
)

func testListings() *domain.Listings {
	return &domain.Listings{
		ID: 19700,
		Sells: []domain.Listing{
			{Listings: 2, UnitPrice: 100, Quantity: 3},
			{Listings: 1, UnitPrice: 120, Quantity: 5},
			{Listings: 4, UnitPrice: 200, Quantity: 10},
		},
		Buys: []domain.Listing{
			{Listings: 1, UnitPrice: 90, Quantity: 2},
			{Listings: 3, UnitPrice: 80, Quantity: 4},
			{Listings: 2, UnitPrice: 50, Quantity: 20},
		},
	}
}

func TestCost_SingleLevel(t *testing.T) {
	total, err := Cost(testListings(), 2)

	require.NoError(t, err)
	assert.Equal(t, 200, total, "2 units from the cheapest level")
}

func TestCost_SpansLevels(t *testing.T) {
	// 3*100 + 5*120 + 1*200
	total, err := Cost(testListings(), 9)

	require.NoError(t, err)
	assert.Equal(t, 1100, total)
}

func TestCost_ExactDepth(t *testing.T) {
	// Full book: 3*100 + 5*120 + 10*200
	total, err := Cost(testListings(), 18)

	require.NoError(t, err)
	assert.Equal(t, 2900, total)
}

func TestCost_InsufficientDepth(t *testing.T) {
	_, err := Cost(testListings(), 25)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientDepth)

	var depthErr *domain.InsufficientDepthError
	require.True(t, errors.As(err, &depthErr))
	assert.Equal(t, domain.ItemID(19700), depthErr.Item)
	assert.Equal(t, 7, depthErr.Remaining, "true shortfall after consuming all 18 units")
}

func TestSale_SpansLevels(t *testing.T) {
	// 2*90 + 4*80 + 1*50
	total, err := Sale(testListings(), 7)

	require.NoError(t, err)
	assert.Equal(t, 550, total)
}

func TestSale_InsufficientDepth(t *testing.T) {
	_, err := Sale(testListings(), 27)

	var depthErr *domain.InsufficientDepthError
	require.True(t, errors.As(err, &depthErr))
	assert.Equal(t, 1, depthErr.Remaining)
}

func TestBuyThenSell_NeverProfitable(t *testing.T) {
	// With a positive spread, immediately reselling a purchase always loses.
	ls := testListings()
	for q := 1; q <= 18; q++ {
		bought, err := Cost(ls, q)
		require.NoError(t, err)
		sold, err := Sale(ls, q)
		if err != nil {
			continue // buy side shallower than sell side
		}
		assert.Less(t, sold, bought, "quantity %d", q)
	}
}

func TestCost_EmptyBook(t *testing.T) {
	ls := &domain.Listings{ID: 1}

	_, err := Cost(ls, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientDepth)

	_, err = Sale(ls, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientDepth)
}

func TestCost_ZeroQuantity(t *testing.T) {
	// A zero request is filled at the first level without consuming it.
	total, err := Cost(testListings(), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

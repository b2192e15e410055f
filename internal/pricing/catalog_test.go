package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwren/craftcost/internal/domain"
	"github.com/mwren/craftcost/internal/index"
)

func fixtureCatalog() *Catalog {
	vendor := map[domain.ItemID]int{
		100: 150,
	}
	special := map[domain.ItemID]SpecialRule{
		200: {Flat: 1000},
		201: {DerivedFrom: 300, Quantity: 25},
		202: {DerivedFrom: 300, Quantity: 10, Multiplier: 2},
		203: {DerivedFrom: 999, Quantity: 5},
	}
	return NewCatalog(vendor, special, OfferingPrice)
}

func fixtureIndex() *index.Index {
	listings := []*domain.Listings{
		{
			ID: 300,
			Sells: []domain.Listing{
				{UnitPrice: 4, Quantity: 20},
				{UnitPrice: 6, Quantity: 20},
			},
		},
	}
	return index.New(nil, nil, listings, []domain.ItemID{400}, nil)
}

func TestVendor(t *testing.T) {
	c := fixtureCatalog()

	price, ok := c.Vendor(100)
	require.True(t, ok)
	assert.Equal(t, 150, price)

	_, ok = c.Vendor(101)
	assert.False(t, ok)
}

func TestSpecial_Flat(t *testing.T) {
	price, ok, err := fixtureCatalog().Special(fixtureIndex(), 200)

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1000, price)
}

func TestSpecial_Derived(t *testing.T) {
	// 25 units off the book: 20*4 + 5*6
	price, ok, err := fixtureCatalog().Special(fixtureIndex(), 201)

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 110, price)
}

func TestSpecial_DerivedMultiplier(t *testing.T) {
	// 2 * (10*4)
	price, ok, err := fixtureCatalog().Special(fixtureIndex(), 202)

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 80, price)
}

func TestSpecial_DerivedMissingListings(t *testing.T) {
	_, _, err := fixtureCatalog().Special(fixtureIndex(), 203)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingReference)
}

func TestSpecial_Offering(t *testing.T) {
	price, ok, err := fixtureCatalog().Special(fixtureIndex(), 400)

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, OfferingPrice, price)
}

func TestSpecial_NotCovered(t *testing.T) {
	_, ok, err := fixtureCatalog().Special(fixtureIndex(), 555)

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDefault_CuratedTables(t *testing.T) {
	c := Default()

	price, ok := c.Vendor(46747)
	require.True(t, ok, "thermocatalytic reagent is vendor-priced")
	assert.Equal(t, 150, price)
}

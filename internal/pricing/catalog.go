// Package pricing holds the fixed-price catalog: a small curated set of
// vendor-purchasable items with flat unit prices, and "special" items whose
// price is a flat constant, derived from a related item's order book, or
// fixed by membership in the offering set.
package pricing

import (
	"fmt"

	"github.com/mwren/craftcost/internal/book"
	"github.com/mwren/craftcost/internal/domain"
	"github.com/mwren/craftcost/internal/index"
)

// OfferingPrice is the flat unit price assigned to offering items. They are
// obtainable only through illiquid, gated exchanges, so the constant is
// deliberately large enough to keep them out of any sane crafting plan.
const OfferingPrice = 1_000_000

// SpecialRule prices one curated item.
type SpecialRule struct {
	// Flat is the unit price when DerivedFrom is zero.
	Flat int
	// DerivedFrom, when set, prices the item as Multiplier times the market
	// cost of buying Quantity units of the related item.
	DerivedFrom domain.ItemID
	Quantity    int
	Multiplier  int
}

// Catalog is a static mapping from item identity to fixed unit prices.
// Lookups are pure functions of item identity and the catalog index; they
// never mutate inventory and never recurse into cost resolution beyond the
// one-hop listings walk a derived rule performs.
type Catalog struct {
	vendor        map[domain.ItemID]int
	special       map[domain.ItemID]SpecialRule
	offeringPrice int
}

// NewCatalog builds a catalog from explicit tables. Use Default for the
// curated production tables.
func NewCatalog(vendor map[domain.ItemID]int, special map[domain.ItemID]SpecialRule, offeringPrice int) *Catalog {
	return &Catalog{
		vendor:        vendor,
		special:       special,
		offeringPrice: offeringPrice,
	}
}

// Default returns the catalog with the curated production tables.
func Default() *Catalog {
	return NewCatalog(defaultVendorPrices, defaultSpecialRules, OfferingPrice)
}

// Vendor returns the fixed vendor unit price for an item, if it has one.
func (c *Catalog) Vendor(id domain.ItemID) (int, bool) {
	price, ok := c.vendor[id]
	return price, ok
}

// Special returns the special unit price for an item, if it has one. A
// derived rule walks the related item's sell book; missing listings or
// insufficient depth there is a data-integrity fault, not a recoverable
// pricing gap, and surfaces as an error.
func (c *Catalog) Special(idx *index.Index, id domain.ItemID) (int, bool, error) {
	if rule, ok := c.special[id]; ok {
		if rule.DerivedFrom == 0 {
			return rule.Flat, true, nil
		}
		ls, ok := idx.ListingsFor(rule.DerivedFrom)
		if !ok {
			return 0, false, fmt.Errorf("%w: listings for item %d pricing item %d", domain.ErrMissingReference, rule.DerivedFrom, id)
		}
		total, err := book.Cost(ls, rule.Quantity)
		if err != nil {
			return 0, false, fmt.Errorf("derived price for item %d: %w", id, err)
		}
		multiplier := rule.Multiplier
		if multiplier == 0 {
			multiplier = 1
		}
		return multiplier * total, true, nil
	}
	if idx.IsOffering(id) {
		return c.offeringPrice, true, nil
	}
	return 0, false, nil
}

// Package book prices bulk buy and sell quantities against a depth-limited
// order book. Both walks are side-effect free; listings are read-only and
// rely on the sort order established when they were loaded.
package book

import "github.com/mwren/craftcost/internal/domain"

// Cost walks the sell side in ascending-price order and returns the exact
// total of buying quantity units, consuming each price level greedily from
// the cheapest up. Returns an InsufficientDepthError if the book is
// exhausted before the quantity is filled.
func Cost(ls *domain.Listings, quantity int) (int, error) {
	remaining := quantity
	total := 0
	for _, l := range ls.Sells {
		bought := min(remaining, l.Quantity)
		total += bought * l.UnitPrice
		remaining -= bought
		if remaining == 0 {
			return total, nil
		}
	}
	return 0, &domain.InsufficientDepthError{Item: ls.ID, Remaining: remaining}
}

// Sale is the mirror of Cost over the buy side in descending-price order:
// the exact total received for selling quantity units into the book.
func Sale(ls *domain.Listings, quantity int) (int, error) {
	remaining := quantity
	total := 0
	for _, l := range ls.Buys {
		sold := min(remaining, l.Quantity)
		total += sold * l.UnitPrice
		remaining -= sold
		if remaining == 0 {
			return total, nil
		}
	}
	return 0, &domain.InsufficientDepthError{Item: ls.ID, Remaining: remaining}
}

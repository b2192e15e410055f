package domain

// Listing is one price level of an order book: the number of distinct orders
// at that level, the unit price, and the aggregate quantity available.
type Listing struct {
	Listings  int `json:"listings"`
	UnitPrice int `json:"unit_price"`
	Quantity  int `json:"quantity"`
}

// Listings is the full order book for one item.
//
// Sells is ordered ascending by unit price (cheapest to buy first) and Buys
// descending (best to sell into first). The ordering is established once when
// listings are loaded from the remote service and is never re-sorted during
// resolution.
type Listings struct {
	ID    ItemID    `json:"id"`
	Buys  []Listing `json:"buys"`
	Sells []Listing `json:"sells"`
}

package domain

import "maps"

// Inventory is the mutable owned-quantity ledger consumed during resolution.
// It is shared by reference across an entire resolution call tree rooted at
// one top-level request; callers resolving multiple top-level items should
// use independent copies unless intentionally sharing scarcity across them.
type Inventory map[ItemID]int

// Clone returns an independent copy of the ledger.
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	maps.Copy(out, inv)
	return out
}

// Restore overwrites the ledger in place with the contents of a snapshot,
// preserving the map identity seen by callers further up the stack.
func (inv Inventory) Restore(snapshot Inventory) {
	clear(inv)
	maps.Copy(inv, snapshot)
}

package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgInsufficientDepth = "insufficient order-book depth"
	ErrMsgMissingReference  = "missing reference data"
	ErrMsgInvalidQuantity   = "invalid quantity"
	ErrMsgItemNotFound      = "item not found"
)

// Common domain errors.
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for context.
var (
	// ErrInsufficientDepth means an order book could not satisfy a requested
	// buy or sell quantity. Recoverable: the resolver absorbs it into an
	// Unknown source rather than propagating it.
	ErrInsufficientDepth = errors.New(ErrMsgInsufficientDepth)

	// ErrMissingReference means the catalog index failed to provide data the
	// resolver's invariants assume is present. This is a data-integrity
	// fault and is propagated to the caller, never retried.
	ErrMissingReference = errors.New(ErrMsgMissingReference)

	ErrInvalidQuantity = errors.New(ErrMsgInvalidQuantity)
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
)

// InsufficientDepthError reports the item whose book ran out and the
// quantity left unfilled when it did.
type InsufficientDepthError struct {
	Item      ItemID
	Remaining int
}

func (e *InsufficientDepthError) Error() string {
	return fmt.Sprintf("%s: %d short for item %d", ErrMsgInsufficientDepth, e.Remaining, e.Item)
}

// Is makes the typed error match the ErrInsufficientDepth sentinel.
func (e *InsufficientDepthError) Is(target error) bool {
	return target == ErrInsufficientDepth
}

package billing

import "github.com/cockroachdb/errors"

var (
	// ErrLastLineItem is returned when a draft edit would leave no line items.
	ErrLastLineItem = errors.New("an invoice must keep at least one line item")
	// ErrItemNotFound is returned when a draft edit names an unknown line item.
	ErrItemNotFound = errors.New("line item not found")
	// ErrInvalidTransition is returned when a status change is refused.
	ErrInvalidTransition = errors.New("invalid status transition")
)

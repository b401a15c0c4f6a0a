package order

import "errors"

var (
	ErrInvalidOrderID      = errors.New("invalid order id")
	ErrInvalidCustomerID   = errors.New("invalid customer id")
	ErrInvalidDeliveryMode = errors.New("unknown delivery mode")
	ErrEmptyOrder          = errors.New("order must contain at least one line")
	ErrInvalidQuantity     = errors.New("line quantity must be positive")
	ErrMissingAddress      = errors.New("delivery address is required")

	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidStatus     = errors.New("unknown order status")
)

package shipment

import "errors"

var (
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidShipmentStatus = errors.New("unknown shipment status")

	ErrShipmentNotFound = errors.New("shipment not found")
	ErrShipmentExists   = errors.New("shipment already exists for order")
)

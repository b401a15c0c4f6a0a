package order

import (
	"fmt"
	"strings"

	"fooddelivery/internal/entities"
)

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidStatus(status entities.OrderStatusType) bool {
	switch status {
	case entities.OrderPlaced,
		entities.OrderPreparing,
		entities.OrderReadyForPickup,
		entities.OrderOutForDelivery,
		entities.OrderDelivered,
		entities.OrderPickedUp,
		entities.OrderCancelled:
		return true
	default:
		return false
	}
}

func isValidDeliveryMode(mode entities.DeliveryModeType) bool {
	switch mode {
	case entities.HomeDelivery, entities.Takeaway:
		return true
	default:
		return false
	}
}

func validateOrderCreate(orderCreate entities.OrderCreate) error {
	if orderCreate.CustomerID <= 0 {
		return ErrInvalidCustomerID
	}
	if !isValidDeliveryMode(orderCreate.DeliveryMode) {
		return fmt.Errorf("%w: %s", ErrInvalidDeliveryMode, orderCreate.DeliveryMode)
	}
	if len(orderCreate.Lines) == 0 {
		return ErrEmptyOrder
	}
	for _, line := range orderCreate.Lines {
		if strings.TrimSpace(line.ItemID) == "" {
			return fmt.Errorf("%w: empty item id", ErrEmptyOrder)
		}
		if line.Quantity <= 0 {
			return fmt.Errorf("%w: item %s", ErrInvalidQuantity, line.ItemID)
		}
	}
	return nil
}

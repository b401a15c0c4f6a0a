package statemachine

import (
	"fooddelivery/internal/entities"
)

// CanTransition проверяет допустимость перехода статуса заказа.
// Чистая функция без побочных эффектов, вся таблица переходов тут:
//
//	placed           -> preparing | cancelled
//	preparing        -> ready_for_pickup | cancelled
//	ready_for_pickup -> out_for_delivery (home_delivery) | picked_up (takeaway)
//	out_for_delivery -> delivered
//	delivered, picked_up, cancelled - терминальные
func CanTransition(current, requested entities.OrderStatusType, mode entities.DeliveryModeType) bool {
	switch current {
	case entities.OrderPlaced:
		return requested == entities.OrderPreparing || requested == entities.OrderCancelled
	case entities.OrderPreparing:
		return requested == entities.OrderReadyForPickup || requested == entities.OrderCancelled
	case entities.OrderReadyForPickup:
		if mode == entities.HomeDelivery {
			return requested == entities.OrderOutForDelivery
		}
		return requested == entities.OrderPickedUp
	case entities.OrderOutForDelivery:
		return requested == entities.OrderDelivered
	default:
		return false
	}
}

// AllowedFrom возвращает допустимые следующие статусы, нужно для диагностики.
func AllowedFrom(current entities.OrderStatusType, mode entities.DeliveryModeType) []entities.OrderStatusType {
	switch current {
	case entities.OrderPlaced:
		return []entities.OrderStatusType{entities.OrderPreparing, entities.OrderCancelled}
	case entities.OrderPreparing:
		return []entities.OrderStatusType{entities.OrderReadyForPickup, entities.OrderCancelled}
	case entities.OrderReadyForPickup:
		if mode == entities.HomeDelivery {
			return []entities.OrderStatusType{entities.OrderOutForDelivery}
		}
		return []entities.OrderStatusType{entities.OrderPickedUp}
	case entities.OrderOutForDelivery:
		return []entities.OrderStatusType{entities.OrderDelivered}
	default:
		return nil
	}
}

package completion_estimate

import (
	"time"

	"fooddelivery/internal/entities"
)

// deliveryLeg время на этап доставки курьером после готовности заказа.
const deliveryLeg = 30 * time.Minute

type EstimateFactory struct{}

func New() *EstimateFactory {
	return &EstimateFactory{}
}

// AtCreation оценка при создании заказа: максимальное время приготовления
// по строкам плюс этап доставки для home_delivery.
func (f *EstimateFactory) AtCreation(lines []entities.OrderLine, mode entities.DeliveryModeType, baseTime time.Time) time.Time {
	var maxPrep time.Duration
	for _, line := range lines {
		if line.PrepTime > maxPrep {
			maxPrep = line.PrepTime
		}
	}

	total := maxPrep
	if mode == entities.HomeDelivery {
		total += deliveryLeg
	}

	return baseTime.Add(total)
}

// AtHandoff пересчет при передаче готового заказа в доставку,
// таймер сбрасывается на этап доставки.
func (f *EstimateFactory) AtHandoff(baseTime time.Time) time.Time {
	return baseTime.Add(deliveryLeg)
}

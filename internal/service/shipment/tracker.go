package shipment

import (
	"sync"

	"fooddelivery/internal/entities"
)

// stages фиксированная последовательность этапов отправления,
// трекер двигается по ней строго вперед.
var stages = []entities.ShipmentStatusType{
	entities.ShipmentProcessing,
	entities.ShipmentPacked,
	entities.ShipmentShipped,
	entities.ShipmentOutForDelivery,
	entities.ShipmentDelivered,
}

func stageIndex(status entities.ShipmentStatusType) int {
	for i, stage := range stages {
		if stage == status {
			return i
		}
	}
	return 0
}

func isValidShipmentStatus(status entities.ShipmentStatusType) bool {
	for _, stage := range stages {
		if stage == status {
			return true
		}
	}
	return false
}

// tracker состояние одного активного отправления. Снимок читается в любой
// момент без ожидания тикера, поэтому все под мьютексом.
type tracker struct {
	orderID string

	mu       sync.Mutex
	shipment entities.Shipment
	stageIdx int

	stopOnce sync.Once
	stopped  chan struct{}
}

func newTracker(shipmentEntity entities.Shipment) *tracker {
	return &tracker{
		orderID:  shipmentEntity.OrderID,
		shipment: shipmentEntity,
		stageIdx: stageIndex(shipmentEntity.Status),
		stopped:  make(chan struct{}),
	}
}

// advance переводит отправление на следующий этап.
// Возвращает новый статус и признак достижения delivered.
func (t *tracker) advance() (entities.ShipmentStatusType, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stageIdx < len(stages)-1 {
		t.stageIdx++
		t.shipment.Status = stages[t.stageIdx]
	}

	return t.shipment.Status, t.stageIdx == len(stages)-1
}

// setStatus операторская установка статуса без проверки позиции
// в последовательности.
func (t *tracker) setStatus(status entities.ShipmentStatusType) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.shipment.Status = status
	t.stageIdx = stageIndex(status)
}

func (t *tracker) snapshot() entities.Shipment {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.shipment
}

func (t *tracker) stop() {
	t.stopOnce.Do(func() {
		close(t.stopped)
	})
}

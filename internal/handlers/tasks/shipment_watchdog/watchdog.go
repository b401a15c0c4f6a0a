package shipment_watchdog

import (
	"context"
	"time"

	"fooddelivery/internal/entities"
	"fooddelivery/pkg/logger"
)

type Service interface {
	GetActiveShipments(ctx context.Context) ([]entities.Shipment, error)
	Resume(shipmentEntity entities.Shipment) bool
}

// ShipmentWatchdog поднимает трекеры незавершённых отправок,
// оставшихся после рестарта сервиса.
type ShipmentWatchdog struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewShipmentWatchdog(log logger.Logger, service Service, interval time.Duration) *ShipmentWatchdog {
	return &ShipmentWatchdog{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (d *ShipmentWatchdog) TTL() time.Duration {
	return d.interval
}

func (d *ShipmentWatchdog) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	shipments, err := d.service.GetActiveShipments(ctxWithTimeout)
	if err != nil {
		return err
	}

	var resumed int64
	for _, shipmentEntity := range shipments {
		if d.service.Resume(shipmentEntity) {
			resumed++
		}
	}

	if resumed > 0 {
		d.log.With(
			logger.NewField("resumed_shipments", resumed),
		).Info("shipment watchdog")
	}

	return nil
}

func (d *ShipmentWatchdog) Info() string {
	return "shipment watchdog"
}

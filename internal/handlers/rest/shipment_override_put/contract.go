//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_override_put_test
package shipment_override_put

import (
	"context"

	"fooddelivery/internal/entities"
	"fooddelivery/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ManualOverride(ctx context.Context, orderID string, status entities.ShipmentStatusType) error
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=customer_orders_get_test
package customer_orders_get

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
	GetCustomerOrders(ctx context.Context, customerID int64) ([]entities.Order, error)
	GetTimeRemainingMinutes(orderEntity *entities.Order) int64
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=menus_get_test
package menus_get

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
	GetItems(ctx context.Context) ([]entities.MenuItem, error)
}

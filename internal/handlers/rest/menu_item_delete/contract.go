//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=menu_item_delete_test
package menu_item_delete

import (
	"context"

	"fooddelivery/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteItem(ctx context.Context, itemID string) error
}

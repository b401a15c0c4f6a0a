//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=menu_post_test
package menu_post

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
	AddItem(ctx context.Context, itemModifyEntity entities.MenuItemModify) (string, error)
}

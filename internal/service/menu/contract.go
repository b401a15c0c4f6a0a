package menu

import (
	"context"

	"fooddelivery/internal/entities"
)

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=menu_test

type (
	Repository interface {
		Create(ctx context.Context, item entities.MenuItem) error
		GetByID(ctx context.Context, itemID string) (*entities.MenuItem, error)
		GetAll(ctx context.Context) ([]entities.MenuItem, error)
		Update(ctx context.Context, itemModify entities.MenuItemModify) error
		Delete(ctx context.Context, itemID string) error
	}

	IDFactory interface {
		NewItemID() string
	}
)

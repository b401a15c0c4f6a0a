//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=customer_test
package customer

import (
	"context"

	"fooddelivery/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, customerModifyEntity entities.CustomerModify) (int64, error)
	GetByID(ctx context.Context, customerID int64) (*entities.Customer, error)
}

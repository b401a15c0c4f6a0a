//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"fooddelivery/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	GetByCustomer(ctx context.Context, customerID int64) ([]entities.Order, error)
	Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error)
}

type CustomerRepository interface {
	GetByID(ctx context.Context, customerID int64) (*entities.Customer, error)
	AppendOrderHistory(ctx context.Context, customerID int64, orderID string) error
}

type Catalog interface {
	GetByID(ctx context.Context, itemID string) (*entities.MenuItem, error)
}

type AssignmentService interface {
	TryAssign(ctx context.Context, orderID string) (int64, bool, error)
	Complete(ctx context.Context, agentID int64, orderID string) (bool, error)
}

type ShipmentService interface {
	StartTracking(ctx context.Context, orderID string) (*entities.Shipment, error)
}

type IDFactory interface {
	NewOrderID() string
}

type EstimateFactory interface {
	AtCreation(lines []entities.OrderLine, mode entities.DeliveryModeType, baseTime time.Time) time.Time
	AtHandoff(baseTime time.Time) time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

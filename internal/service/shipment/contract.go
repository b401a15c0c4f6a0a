//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"

	"fooddelivery/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error)
	GetByOrderID(ctx context.Context, orderID string) (*entities.Shipment, error)
	UpdateStatus(ctx context.Context, orderID string, status entities.ShipmentStatusType) error
	GetActive(ctx context.Context) ([]entities.Shipment, error)
}

type OrderRepository interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error)
}

type AssignmentService interface {
	Complete(ctx context.Context, agentID int64, orderID string) (bool, error)
}

type TrackingCodeFactory interface {
	NewTrackingCode() string
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"

	"fooddelivery/internal/entities"
)

type AgentRepository interface {
	Create(ctx context.Context, agentModifyEntity entities.DeliveryAgentModify) (int64, error)
	GetByID(ctx context.Context, agentID int64) (*entities.DeliveryAgent, error)
	GetAll(ctx context.Context) ([]entities.DeliveryAgent, error)
	GetFirstAvailable(ctx context.Context) (*entities.DeliveryAgent, error)
	AssignOrder(ctx context.Context, agentID int64, orderID string) error
	UnassignOrder(ctx context.Context, agentID int64, orderID string) (bool, error)
}

type OrderRepository interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	GetByAgent(ctx context.Context, agentID int64) ([]entities.Order, error)
	Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

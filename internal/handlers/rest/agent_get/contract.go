//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=agent_get_test
package agent_get

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
	GetAgent(ctx context.Context, agentID int64) (*entities.DeliveryAgent, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=agent_post_test
package agent_post

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
	RegisterAgent(ctx context.Context, agentModifyEntity entities.DeliveryAgentModify) (int64, error)
}

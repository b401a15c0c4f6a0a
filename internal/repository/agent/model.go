package agent

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type AgentDB struct {
	ID            int64
	Name          string
	Phone         string
	CurrentOrders []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type AgentModifyDB struct {
	ID    *int64
	Name  *string
	Phone *string
}

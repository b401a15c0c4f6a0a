package order

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

type OrderDB struct {
	ID                  string
	CustomerID          int64
	DeliveryMode        string
	DeliveryAddress     string
	Status              string
	AgentID             *int64
	CreatedAt           time.Time
	EstimatedCompletion time.Time
}

type OrderLineDB struct {
	OrderID         string
	LineNo          int64
	ItemID          string
	Name            string
	Price           float64
	PrepTimeSeconds int64
	Quantity        int64
}

type OrderModifyDB struct {
	ID                  *string
	Status              *string
	AgentID             *int64
	EstimatedCompletion *time.Time
}

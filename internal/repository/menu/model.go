package menu

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

type MenuItemDB struct {
	ID              string
	Name            string
	Price           float64
	PrepTimeSeconds int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type MenuItemModifyDB struct {
	ID              *string
	Name            *string
	Price           *float64
	PrepTimeSeconds *int64
}

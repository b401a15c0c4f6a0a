package customer

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

type CustomerDB struct {
	ID           int64
	Login        string
	Password     string
	Address      string
	Phone        string
	OrderHistory []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CustomerModifyDB struct {
	ID       *int64
	Login    *string
	Password *string
	Address  *string
	Phone    *string
}

package shipment

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

type ShipmentDB struct {
	ID               int64
	OrderID          string
	Status           string
	EstimatedArrival time.Time
	TrackingCode     string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type ShipmentModifyDB struct {
	ID               *int64
	OrderID          *string
	Status           *string
	EstimatedArrival *time.Time
	TrackingCode     *string
}

package shipment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"fooddelivery/internal/entities"
	"fooddelivery/internal/repository"
	"fooddelivery/internal/service/shipment"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error) {
	shipmentModifyDB := FromDomainModify(&shipmentModifyEntity)

	query := `
		INSERT INTO shipments (order_id, status, estimated_arrival, tracking_code)
		VALUES ($1, $2, $3, $4)
		RETURNING id, order_id, status, estimated_arrival, tracking_code, created_at, updated_at
	`

	var shipmentDB ShipmentDB
	err := r.querier.QueryRow(
		ctx,
		query,
		shipmentModifyDB.OrderID,
		shipmentModifyDB.Status,
		shipmentModifyDB.EstimatedArrival,
		shipmentModifyDB.TrackingCode,
	).Scan(
		&shipmentDB.ID,
		&shipmentDB.OrderID,
		&shipmentDB.Status,
		&shipmentDB.EstimatedArrival,
		&shipmentDB.TrackingCode,
		&shipmentDB.CreatedAt,
		&shipmentDB.UpdatedAt,
	)
	if err != nil {
		// на заказ заводится ровно одна отправка
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, shipment.ErrShipmentExists
		}
		return nil, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	return ToDomain(&shipmentDB), nil
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID string) (*entities.Shipment, error) {
	query := `
		SELECT id, order_id, status, estimated_arrival, tracking_code, created_at, updated_at
		FROM shipments
		WHERE order_id = $1
	`

	var shipmentDB ShipmentDB
	err := r.querier.QueryRow(ctx, query, orderID).
		Scan(
			&shipmentDB.ID,
			&shipmentDB.OrderID,
			&shipmentDB.Status,
			&shipmentDB.EstimatedArrival,
			&shipmentDB.TrackingCode,
			&shipmentDB.CreatedAt,
			&shipmentDB.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository getbyorder error: %w", err)
	}

	return ToDomain(&shipmentDB), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, orderID string, status entities.ShipmentStatusType) error {
	query := `
		UPDATE shipments
		SET status = $2, updated_at = NOW()
		WHERE order_id = $1
	`

	result, err := r.querier.Exec(ctx, query, orderID, status.String())
	if err != nil {
		return fmt.Errorf("unexpected shipment repository update status error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return shipment.ErrShipmentNotFound
	}

	return nil
}

func (r *Repository) GetActive(ctx context.Context) ([]entities.Shipment, error) {
	query := `
		SELECT id, order_id, status, estimated_arrival, tracking_code, created_at, updated_at
		FROM shipments
		WHERE status != $1
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query, entities.ShipmentDelivered.String())
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getactive error: %w", err)
	}
	defer rows.Close()

	shipmentModels := make([]ShipmentDB, 0, 8)
	for rows.Next() {
		var shipmentDB ShipmentDB
		err := rows.Scan(
			&shipmentDB.ID,
			&shipmentDB.OrderID,
			&shipmentDB.Status,
			&shipmentDB.EstimatedArrival,
			&shipmentDB.TrackingCode,
			&shipmentDB.CreatedAt,
			&shipmentDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository getactive error: %w", err)
		}
		shipmentModels = append(shipmentModels, shipmentDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getactive error: %w", err)
	}

	return ToDomainList(shipmentModels), nil
}

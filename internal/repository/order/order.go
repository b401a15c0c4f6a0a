package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fooddelivery/internal/entities"
	"fooddelivery/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	orderDB, linesDB := FromDomain(&orderEntity)

	query := `
		INSERT INTO orders (id, customer_id, delivery_mode, delivery_address, status, agent_id, estimated_completion)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := r.querier.QueryRow(
		ctx,
		query,
		orderDB.ID,
		orderDB.CustomerID,
		orderDB.DeliveryMode,
		orderDB.DeliveryAddress,
		orderDB.Status,
		orderDB.AgentID,
		orderDB.EstimatedCompletion,
	).Scan(&orderDB.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	lineQuery := `
		INSERT INTO order_lines (order_id, line_no, item_id, name, price, prep_time_seconds, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for _, lineDB := range linesDB {
		_, err := r.querier.Exec(
			ctx,
			lineQuery,
			lineDB.OrderID,
			lineDB.LineNo,
			lineDB.ItemID,
			lineDB.Name,
			lineDB.Price,
			lineDB.PrepTimeSeconds,
			lineDB.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository create error: %w", err)
		}
	}

	return ToDomain(orderDB, linesDB), nil
}

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `
		SELECT id, customer_id, delivery_mode, delivery_address, status, agent_id, created_at, estimated_completion
		FROM orders
		WHERE id = $1
	`

	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, orderID).
		Scan(
			&orderDB.ID,
			&orderDB.CustomerID,
			&orderDB.DeliveryMode,
			&orderDB.DeliveryAddress,
			&orderDB.Status,
			&orderDB.AgentID,
			&orderDB.CreatedAt,
			&orderDB.EstimatedCompletion,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	linesByOrder, err := r.getLines(ctx, []string{orderDB.ID})
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderDB, linesByOrder[orderDB.ID]), nil
}

func (r *Repository) GetByCustomer(ctx context.Context, customerID int64) ([]entities.Order, error) {
	query := `
		SELECT id, customer_id, delivery_mode, delivery_address, status, agent_id, created_at, estimated_completion
		FROM orders
		WHERE customer_id = $1
		ORDER BY created_at, id
	`

	return r.getList(ctx, query, customerID)
}

func (r *Repository) GetByAgent(ctx context.Context, agentID int64) ([]entities.Order, error) {
	query := `
		SELECT id, customer_id, delivery_mode, delivery_address, status, agent_id, created_at, estimated_completion
		FROM orders
		WHERE agent_id = $1
		ORDER BY created_at, id
	`

	return r.getList(ctx, query, agentID)
}

func (r *Repository) Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyDB := FromDomainModify(&orderModifyEntity)

	builder := qb.
		Update("orders")

	// опционнные поля
	if orderModifyDB.Status != nil {
		builder = builder.Set("status", orderModifyDB.Status)
	}
	if orderModifyDB.AgentID != nil {
		builder = builder.Set("agent_id", orderModifyDB.AgentID)
	}
	if orderModifyDB.EstimatedCompletion != nil {
		builder = builder.Set("estimated_completion", orderModifyDB.EstimatedCompletion)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": orderModifyDB.ID}).
		Suffix("RETURNING id, customer_id, delivery_mode, delivery_address, status, agent_id, created_at, estimated_completion")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderDB OrderDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&orderDB.ID,
			&orderDB.CustomerID,
			&orderDB.DeliveryMode,
			&orderDB.DeliveryAddress,
			&orderDB.Status,
			&orderDB.AgentID,
			&orderDB.CreatedAt,
			&orderDB.EstimatedCompletion,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	linesByOrder, err := r.getLines(ctx, []string{orderDB.ID})
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(&orderDB, linesByOrder[orderDB.ID]), nil
}

func (r *Repository) getList(ctx context.Context, query string, arg interface{}) ([]entities.Order, error) {
	rows, err := r.querier.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderDB OrderDB
		err := rows.Scan(
			&orderDB.ID,
			&orderDB.CustomerID,
			&orderDB.DeliveryMode,
			&orderDB.DeliveryAddress,
			&orderDB.Status,
			&orderDB.AgentID,
			&orderDB.CreatedAt,
			&orderDB.EstimatedCompletion,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		orderModels = append(orderModels, orderDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	orderIDs := make([]string, len(orderModels))
	for i, orderDB := range orderModels {
		orderIDs[i] = orderDB.ID
	}

	linesByOrder, err := r.getLines(ctx, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	result := make([]entities.Order, len(orderModels))
	for i, orderDB := range orderModels {
		result[i] = *ToDomain(&orderDB, linesByOrder[orderDB.ID])
	}
	return result, nil
}

func (r *Repository) getLines(ctx context.Context, orderIDs []string) (map[string][]OrderLineDB, error) {
	linesByOrder := make(map[string][]OrderLineDB, len(orderIDs))
	if len(orderIDs) == 0 {
		return linesByOrder, nil
	}

	query := `
		SELECT order_id, line_no, item_id, name, price, prep_time_seconds, quantity
		FROM order_lines
		WHERE order_id = ANY($1)
		ORDER BY order_id, line_no
	`

	rows, err := r.querier.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var lineDB OrderLineDB
		err := rows.Scan(
			&lineDB.OrderID,
			&lineDB.LineNo,
			&lineDB.ItemID,
			&lineDB.Name,
			&lineDB.Price,
			&lineDB.PrepTimeSeconds,
			&lineDB.Quantity,
		)
		if err != nil {
			return nil, err
		}
		linesByOrder[lineDB.OrderID] = append(linesByOrder[lineDB.OrderID], lineDB)
	}

	return linesByOrder, rows.Err()
}

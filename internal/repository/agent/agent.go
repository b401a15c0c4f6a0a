package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"fooddelivery/internal/entities"
	"fooddelivery/internal/repository"
	"fooddelivery/internal/service/assignment"
	"fooddelivery/internal/service/order"
)

const agentColumns = `
	a.id, a.name, a.phone,
	COALESCE(
		array_agg(ao.order_id ORDER BY ao.created_at, ao.order_id)
			FILTER (WHERE ao.order_id IS NOT NULL),
		'{}'
	),
	a.created_at, a.updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, agentModifyEntity entities.DeliveryAgentModify) (int64, error) {
	agentModifyDB := FromDomainModify(&agentModifyEntity)

	query := `
		INSERT INTO agents (name, phone)
		VALUES ($1, $2)
		RETURNING id
	`

	var id int64
	err := r.querier.QueryRow(ctx, query, agentModifyDB.Name, agentModifyDB.Phone).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, assignment.ErrAgentConflict
		}
		return 0, fmt.Errorf("unexpected agent repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, agentID int64) (*entities.DeliveryAgent, error) {
	query := `
		SELECT ` + agentColumns + `
		FROM agents a
		LEFT JOIN agent_orders ao ON ao.agent_id = a.id
		WHERE a.id = $1
		GROUP BY a.id
	`

	var agentDB AgentDB
	err := r.querier.QueryRow(ctx, query, agentID).
		Scan(
			&agentDB.ID,
			&agentDB.Name,
			&agentDB.Phone,
			&agentDB.CurrentOrders,
			&agentDB.CreatedAt,
			&agentDB.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrAgentNotFound
		}
		return nil, fmt.Errorf("unexpected agent repository getbyid error: %w", err)
	}

	return ToDomain(&agentDB), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.DeliveryAgent, error) {
	query := `
		SELECT ` + agentColumns + `
		FROM agents a
		LEFT JOIN agent_orders ao ON ao.agent_id = a.id
		GROUP BY a.id
		ORDER BY a.id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected agent repository getall error: %w", err)
	}
	defer rows.Close()

	agentModels := make([]AgentDB, 0, 8)
	for rows.Next() {
		var agentDB AgentDB
		err := rows.Scan(
			&agentDB.ID,
			&agentDB.Name,
			&agentDB.Phone,
			&agentDB.CurrentOrders,
			&agentDB.CreatedAt,
			&agentDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected agent repository getall error: %w", err)
		}
		agentModels = append(agentModels, agentDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected agent repository getall error: %w", err)
	}

	return ToDomainList(agentModels), nil
}

// GetFirstAvailable выбирает агента с наименьшим id среди незагруженных,
// выбор детерминирован.
func (r *Repository) GetFirstAvailable(ctx context.Context) (*entities.DeliveryAgent, error) {
	query := `
		SELECT ` + agentColumns + `
		FROM agents a
		LEFT JOIN agent_orders ao ON ao.agent_id = a.id
		GROUP BY a.id
		HAVING COUNT(ao.order_id) < $1
		ORDER BY a.id
		LIMIT 1
	`

	var agentDB AgentDB
	err := r.querier.QueryRow(ctx, query, entities.MaxAgentOrders).
		Scan(
			&agentDB.ID,
			&agentDB.Name,
			&agentDB.Phone,
			&agentDB.CurrentOrders,
			&agentDB.CreatedAt,
			&agentDB.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrNoAvailableAgents
		}
		return nil, fmt.Errorf("unexpected agent repository first available error: %w", err)
	}

	return ToDomain(&agentDB), nil
}

func (r *Repository) AssignOrder(ctx context.Context, agentID int64, orderID string) error {
	query := `
		INSERT INTO agent_orders (agent_id, order_id)
		VALUES ($1, $2)
	`

	_, err := r.querier.Exec(ctx, query, agentID, orderID)
	if err != nil {
		// order_id первичный ключ, у заказа не может быть двух агентов
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return assignment.ErrAlreadyAssigned
		}
		if repository.IsPgFkViolation(err, "agent_orders_agent_id_fkey") {
			return assignment.ErrAgentNotFound
		}
		if repository.IsPgFkViolation(err, "agent_orders_order_id_fkey") {
			return order.ErrOrderNotFound
		}
		return fmt.Errorf("unexpected agent repository assign error: %w", err)
	}

	return nil
}

func (r *Repository) UnassignOrder(ctx context.Context, agentID int64, orderID string) (bool, error) {
	query := `
		DELETE FROM agent_orders
		WHERE agent_id = $1 AND order_id = $2
	`

	result, err := r.querier.Exec(ctx, query, agentID, orderID)
	if err != nil {
		return false, fmt.Errorf("unexpected agent repository unassign error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

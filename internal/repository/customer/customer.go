package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"fooddelivery/internal/entities"
	"fooddelivery/internal/repository"
	"fooddelivery/internal/service/customer"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, customerModifyEntity entities.CustomerModify) (int64, error) {
	customerModifyDB := FromDomainModify(&customerModifyEntity)

	query := `
		INSERT INTO customers (login, password, address, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		customerModifyDB.Login,
		customerModifyDB.Password,
		customerModifyDB.Address,
		customerModifyDB.Phone,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, customer.ErrConflict
		}
		return 0, fmt.Errorf("unexpected customer repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, customerID int64) (*entities.Customer, error) {
	// история заказов собирается в порядке оформления
	query := `
		SELECT c.id, c.login, c.password, c.address, c.phone,
			COALESCE(
				array_agg(co.order_id ORDER BY co.created_at, co.order_id)
					FILTER (WHERE co.order_id IS NOT NULL),
				'{}'
			),
			c.created_at, c.updated_at
		FROM customers c
		LEFT JOIN customer_orders co ON co.customer_id = c.id
		WHERE c.id = $1
		GROUP BY c.id
	`

	var customerDB CustomerDB
	err := r.querier.QueryRow(ctx, query, customerID).
		Scan(
			&customerDB.ID,
			&customerDB.Login,
			&customerDB.Password,
			&customerDB.Address,
			&customerDB.Phone,
			&customerDB.OrderHistory,
			&customerDB.CreatedAt,
			&customerDB.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("unexpected customer repository getbyid error: %w", err)
	}

	return ToDomain(&customerDB), nil
}

// AppendOrderHistory идемпотентна, повторная вставка того же заказа ничего не меняет.
func (r *Repository) AppendOrderHistory(ctx context.Context, customerID int64, orderID string) error {
	query := `
		INSERT INTO customer_orders (customer_id, order_id)
		VALUES ($1, $2)
		ON CONFLICT (customer_id, order_id) DO NOTHING
	`

	_, err := r.querier.Exec(ctx, query, customerID, orderID)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return customer.ErrCustomerNotFound
		}
		return fmt.Errorf("unexpected customer repository append history error: %w", err)
	}

	return nil
}

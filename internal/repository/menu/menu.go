package menu

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fooddelivery/internal/entities"
	"fooddelivery/internal/repository"
	"fooddelivery/internal/service/menu"
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

func (r *Repository) Create(ctx context.Context, item entities.MenuItem) error {
	itemDB := MenuItemDB{
		ID:              item.ID,
		Name:            item.Name,
		Price:           item.Price,
		PrepTimeSeconds: int64(item.PrepTime.Seconds()),
	}

	query := `
		INSERT INTO menu_items (id, name, price, prep_time_seconds)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.querier.Exec(ctx, query, itemDB.ID, itemDB.Name, itemDB.Price, itemDB.PrepTimeSeconds)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return menu.ErrConflict
		}
		return fmt.Errorf("unexpected menu repository create error: %w", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, itemID string) (*entities.MenuItem, error) {
	query := `
		SELECT id, name, price, prep_time_seconds, created_at, updated_at
		FROM menu_items
		WHERE id = $1
	`

	var itemDB MenuItemDB
	err := r.querier.QueryRow(ctx, query, itemID).
		Scan(
			&itemDB.ID,
			&itemDB.Name,
			&itemDB.Price,
			&itemDB.PrepTimeSeconds,
			&itemDB.CreatedAt,
			&itemDB.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, menu.ErrItemNotFound
		}
		return nil, fmt.Errorf("unexpected menu repository getbyid error: %w", err)
	}

	return ToDomain(&itemDB), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.MenuItem, error) {
	query := `
		SELECT id, name, price, prep_time_seconds, created_at, updated_at
		FROM menu_items
		ORDER BY name, id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected menu repository getall error: %w", err)
	}
	defer rows.Close()

	itemModels := make([]MenuItemDB, 0, 8)
	for rows.Next() {
		var itemDB MenuItemDB
		err := rows.Scan(
			&itemDB.ID,
			&itemDB.Name,
			&itemDB.Price,
			&itemDB.PrepTimeSeconds,
			&itemDB.CreatedAt,
			&itemDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected menu repository getall error: %w", err)
		}
		itemModels = append(itemModels, itemDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected menu repository getall error: %w", err)
	}

	return ToDomainList(itemModels), nil
}

func (r *Repository) Update(ctx context.Context, itemModify entities.MenuItemModify) error {
	itemModifyDB := FromDomainModify(&itemModify)

	builder := qb.
		Update("menu_items")

	// опционнные поля
	if itemModifyDB.Name != nil {
		builder = builder.Set("name", itemModifyDB.Name)
	}
	if itemModifyDB.Price != nil {
		builder = builder.Set("price", itemModifyDB.Price)
	}
	if itemModifyDB.PrepTimeSeconds != nil {
		builder = builder.Set("prep_time_seconds", itemModifyDB.PrepTimeSeconds)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.Where(sq.Eq{"id": itemModifyDB.ID})

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected menu repository update error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected menu repository update error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return menu.ErrItemNotFound
	}

	return nil
}

func (r *Repository) Delete(ctx context.Context, itemID string) error {
	query := `
		DELETE FROM menu_items WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, itemID)
	if err != nil {
		return fmt.Errorf("unexpected menu repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return menu.ErrItemNotFound
	}

	return nil
}

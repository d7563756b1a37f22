package repository

import (
	"context"
	"database/sql"
	"fmt"

	"barista/internal/domain"
	"barista/internal/errors"
)

type MySQLMenuItemRepository struct {
	db *sql.DB
}

func NewMySQLMenuItemRepository(db *sql.DB) *MySQLMenuItemRepository {
	return &MySQLMenuItemRepository{db: db}
}

func (r *MySQLMenuItemRepository) FindByID(ctx context.Context, id uint) (*domain.MenuItem, error) {
	query := `
		SELECT id, name, category, price, description, imageUrl, isActive, createdAt, updatedAt
		FROM MenuItems
		WHERE id = ?
	`

	var item domain.MenuItem
	var category string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Name, &category, &item.Price, &item.Description,
		&item.ImageURL, &item.IsActive, &item.CreatedAt, &item.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("menu item with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying menu item by id: %w", err)
	}

	item.Category = domain.DrinkCategory(category)
	return &item, nil
}

func (r *MySQLMenuItemRepository) ListAll(ctx context.Context) ([]domain.MenuItem, error) {
	query := `
		SELECT id, name, category, price, description, imageUrl, isActive, createdAt, updatedAt
		FROM MenuItems
		ORDER BY category ASC, name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying menu items: %w", err)
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		var category string
		err := rows.Scan(
			&item.ID, &item.Name, &category, &item.Price, &item.Description,
			&item.ImageURL, &item.IsActive, &item.CreatedAt, &item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning menu item: %w", err)
		}
		item.Category = domain.DrinkCategory(category)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating menu items: %w", err)
	}

	return items, nil
}

func (r *MySQLMenuItemRepository) Insert(ctx context.Context, item domain.MenuItem) (uint, error) {
	query := `
		INSERT INTO MenuItems (name, category, price, description, imageUrl, isActive)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		item.Name, string(item.Category), item.Price,
		item.Description, item.ImageURL, item.IsActive,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting menu item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted menu item id: %w", err)
	}

	return uint(id), nil
}

func (r *MySQLMenuItemRepository) Update(ctx context.Context, item domain.MenuItem) error {
	query := `
		UPDATE MenuItems
		SET name = ?, category = ?, price = ?, description = ?, imageUrl = ?, isActive = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		item.Name, string(item.Category), item.Price,
		item.Description, item.ImageURL, item.IsActive, item.ID,
	)
	if err != nil {
		return fmt.Errorf("updating menu item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("menu item with id %d not found", item.ID))
	}

	return nil
}

func (r *MySQLMenuItemRepository) Delete(ctx context.Context, id uint) error {
	query := `DELETE FROM MenuItems WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting menu item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("menu item with id %d not found", id))
	}

	return nil
}

package admin

import (
	"context"
	"database/sql"
	"fmt"

	"barista/internal/domain"
	"barista/internal/errors"
)

type MySQLAdminRepository struct {
	db *sql.DB
}

func NewMySQLAdminRepository(db *sql.DB) *MySQLAdminRepository {
	return &MySQLAdminRepository{db: db}
}

func (r *MySQLAdminRepository) FindByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	query := `
		SELECT id, username, passwordHash, createdAt, updatedAt
		FROM Admins
		WHERE username = ?
	`

	var admin domain.Admin
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&admin.ID, &admin.Username, &admin.PasswordHash,
		&admin.CreatedAt, &admin.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("admin %s not found", username))
	}
	if err != nil {
		return nil, fmt.Errorf("querying admin by username: %w", err)
	}

	return &admin, nil
}

func (r *MySQLAdminRepository) UpdatePasswordHash(ctx context.Context, id uint, hash string) error {
	query := `UPDATE Admins SET passwordHash = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, hash, id)
	if err != nil {
		return fmt.Errorf("updating admin password: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("admin with id %d not found", id))
	}

	return nil
}

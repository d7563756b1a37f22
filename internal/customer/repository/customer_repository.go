package repository

import (
	"context"
	"database/sql"
	"fmt"

	"barista/internal/domain"
	"barista/internal/errors"
)

type MySQLCustomerRepository struct {
	db *sql.DB
}

func NewMySQLCustomerRepository(db *sql.DB) *MySQLCustomerRepository {
	return &MySQLCustomerRepository{db: db}
}

func (r *MySQLCustomerRepository) FindByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	query := `
		SELECT id, name, phone, rewardsRedeemed, createdAt, updatedAt
		FROM Customers
		WHERE phone = ?
	`

	customer, err := scanCustomer(r.db.QueryRowContext(ctx, query, phone), phone)
	if err != nil {
		return nil, err
	}

	orders, err := r.findOrders(ctx, r.db.QueryContext, customer.ID)
	if err != nil {
		return nil, err
	}
	customer.Orders = orders

	return customer, nil
}

// FindByPhoneForUpdate locks the customer row for the duration of the
// transaction. All ledger mutation goes through this lock, which is
// what serializes concurrent purchases and claims per customer.
func (r *MySQLCustomerRepository) FindByPhoneForUpdate(ctx context.Context, tx *sql.Tx, phone string) (*domain.Customer, error) {
	query := `
		SELECT id, name, phone, rewardsRedeemed, createdAt, updatedAt
		FROM Customers
		WHERE phone = ?
		FOR UPDATE
	`

	customer, err := scanCustomer(tx.QueryRowContext(ctx, query, phone), phone)
	if err != nil {
		return nil, err
	}

	orders, err := r.findOrders(ctx, tx.QueryContext, customer.ID)
	if err != nil {
		return nil, err
	}
	customer.Orders = orders

	return customer, nil
}

func (r *MySQLCustomerRepository) Insert(ctx context.Context, tx *sql.Tx, name, phone string) (uint, error) {
	query := `INSERT INTO Customers (name, phone, rewardsRedeemed) VALUES (?, ?, 0)`

	result, err := tx.ExecContext(ctx, query, name, phone)
	if err != nil {
		return 0, fmt.Errorf("inserting customer: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted customer id: %w", err)
	}

	return uint(id), nil
}

func (r *MySQLCustomerRepository) AppendOrder(ctx context.Context, tx *sql.Tx, order domain.Order) (uint, error) {
	query := `
		INSERT INTO CustomerOrders (customerId, category, itemName, menuItemId, price, isReward, createdAt)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		order.CustomerID, string(order.Category), order.ItemName,
		order.MenuItemID, order.Price, order.IsReward, order.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("appending order: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted order id: %w", err)
	}

	return uint(id), nil
}

func (r *MySQLCustomerRepository) IncrementRewardsRedeemed(ctx context.Context, tx *sql.Tx, customerID uint) error {
	query := `UPDATE Customers SET rewardsRedeemed = rewardsRedeemed + 1 WHERE id = ?`

	result, err := tx.ExecContext(ctx, query, customerID)
	if err != nil {
		return fmt.Errorf("incrementing rewardsRedeemed: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("customer with id %d not found", customerID))
	}

	return nil
}

// ListAll returns every customer with their ledgers loaded, most
// recently updated first.
func (r *MySQLCustomerRepository) ListAll(ctx context.Context) ([]domain.Customer, error) {
	query := `
		SELECT id, name, phone, rewardsRedeemed, createdAt, updatedAt
		FROM Customers
		ORDER BY updatedAt DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying customers: %w", err)
	}
	defer rows.Close()

	var customers []domain.Customer
	index := make(map[uint]int)
	for rows.Next() {
		var c domain.Customer
		err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.RewardsRedeemed, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning customer: %w", err)
		}
		index[c.ID] = len(customers)
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating customers: %w", err)
	}

	orderQuery := `
		SELECT id, customerId, category, itemName, menuItemId, price, isReward, createdAt
		FROM CustomerOrders
		ORDER BY customerId ASC, id ASC
	`

	orderRows, err := r.db.QueryContext(ctx, orderQuery)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer orderRows.Close()

	for orderRows.Next() {
		order, err := scanOrder(orderRows)
		if err != nil {
			return nil, err
		}
		if i, ok := index[order.CustomerID]; ok {
			customers[i].Orders = append(customers[i].Orders, order)
		}
	}
	if err := orderRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating orders: %w", err)
	}

	return customers, nil
}

func (r *MySQLCustomerRepository) Touch(ctx context.Context, tx *sql.Tx, customerID uint) error {
	query := `UPDATE Customers SET updatedAt = CURRENT_TIMESTAMP WHERE id = ?`

	if _, err := tx.ExecContext(ctx, query, customerID); err != nil {
		return fmt.Errorf("touching customer: %w", err)
	}
	return nil
}

type queryFunc func(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)

// findOrders loads a customer's ledger in insertion order. The id
// column is the ordering authority, not the timestamp.
func (r *MySQLCustomerRepository) findOrders(ctx context.Context, query queryFunc, customerID uint) ([]domain.Order, error) {
	q := `
		SELECT id, customerId, category, itemName, menuItemId, price, isReward, createdAt
		FROM CustomerOrders
		WHERE customerId = ?
		ORDER BY id ASC
	`

	rows, err := query(ctx, q, customerID)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating orders: %w", err)
	}

	return orders, nil
}

func scanCustomer(row *sql.Row, phone string) (*domain.Customer, error) {
	var customer domain.Customer
	err := row.Scan(
		&customer.ID, &customer.Name, &customer.Phone,
		&customer.RewardsRedeemed, &customer.CreatedAt, &customer.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("customer with phone %s not found", phone))
	}
	if err != nil {
		return nil, fmt.Errorf("querying customer by phone: %w", err)
	}

	return &customer, nil
}

func scanOrder(rows *sql.Rows) (domain.Order, error) {
	var order domain.Order
	var menuItemID sql.NullInt64
	var category string

	err := rows.Scan(
		&order.ID, &order.CustomerID, &category, &order.ItemName,
		&menuItemID, &order.Price, &order.IsReward, &order.CreatedAt,
	)
	if err != nil {
		return domain.Order{}, fmt.Errorf("scanning order: %w", err)
	}

	order.Category = domain.DrinkCategory(category)
	if menuItemID.Valid {
		id := uint(menuItemID.Int64)
		order.MenuItemID = &id
	}

	return order, nil
}

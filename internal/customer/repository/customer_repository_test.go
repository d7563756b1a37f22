package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barista/internal/domain"
	"barista/internal/errors"
	"barista/internal/testutil"
)

// Unit Tests

func TestNewMySQLCustomerRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLCustomerRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func insertCustomer(t *testing.T, db *sql.DB, repo *MySQLCustomerRepository, name, phone string) uint {
	tx, err := db.Begin()
	require.NoError(t, err)

	id, err := repo.Insert(context.Background(), tx, name, phone)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	return id
}

func appendOrder(t *testing.T, db *sql.DB, repo *MySQLCustomerRepository, order domain.Order) uint {
	tx, err := db.Begin()
	require.NoError(t, err)

	id, err := repo.AppendOrder(context.Background(), tx, order)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	return id
}

func TestCustomerRepository_InsertAndFindByPhone(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCustomerRepository(db)
	id := insertCustomer(t, db, repo, "Arjun", "9876543210")

	customer, err := repo.FindByPhone(context.Background(), "9876543210")
	require.NoError(t, err)

	assert.Equal(t, id, customer.ID)
	assert.Equal(t, "Arjun", customer.Name)
	assert.Equal(t, "9876543210", customer.Phone)
	assert.Equal(t, 0, customer.RewardsRedeemed)
	assert.Empty(t, customer.Orders)
}

func TestCustomerRepository_FindByPhone_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCustomerRepository(db)

	customer, err := repo.FindByPhone(context.Background(), "0000000000")
	assert.Nil(t, customer)

	nfe, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)
}

func TestCustomerRepository_AppendOrder_PreservesInsertionOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCustomerRepository(db)
	customerID := insertCustomer(t, db, repo, "Arjun", "9876543210")

	itemID := uint(1)
	names := []string{"first", "second", "third"}
	for _, name := range names {
		appendOrder(t, db, repo, domain.Order{
			CustomerID: customerID,
			Category:   domain.CategoryWaffle,
			ItemName:   name,
			MenuItemID: &itemID,
			Price:      80,
			CreatedAt:  time.Now(),
		})
	}

	customer, err := repo.FindByPhone(context.Background(), "9876543210")
	require.NoError(t, err)
	require.Len(t, customer.Orders, 3)

	for i, name := range names {
		assert.Equal(t, name, customer.Orders[i].ItemName)
	}
}

func TestCustomerRepository_AppendOrder_NullableMenuItem(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCustomerRepository(db)
	customerID := insertCustomer(t, db, repo, "Arjun", "9876543210")

	appendOrder(t, db, repo, domain.Order{
		CustomerID: customerID,
		Category:   domain.CategoryMilkshake,
		ItemName:   domain.RewardItemName,
		MenuItemID: nil,
		Price:      0,
		IsReward:   true,
		CreatedAt:  time.Now(),
	})

	customer, err := repo.FindByPhone(context.Background(), "9876543210")
	require.NoError(t, err)
	require.Len(t, customer.Orders, 1)

	order := customer.Orders[0]
	assert.Nil(t, order.MenuItemID)
	assert.True(t, order.IsReward)
	assert.Equal(t, 0.0, order.Price)
}

func TestCustomerRepository_IncrementRewardsRedeemed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCustomerRepository(db)
	customerID := insertCustomer(t, db, repo, "Arjun", "9876543210")

	tx, err := db.Begin()
	require.NoError(t, err)
	require.NoError(t, repo.IncrementRewardsRedeemed(context.Background(), tx, customerID))
	require.NoError(t, tx.Commit())

	customer, err := repo.FindByPhone(context.Background(), "9876543210")
	require.NoError(t, err)
	assert.Equal(t, 1, customer.RewardsRedeemed)
}

func TestCustomerRepository_IncrementRewardsRedeemed_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCustomerRepository(db)

	tx, err := db.Begin()
	require.NoError(t, err)
	defer tx.Rollback()

	err = repo.IncrementRewardsRedeemed(context.Background(), tx, 9999)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestCustomerRepository_FindByPhoneForUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCustomerRepository(db)
	insertCustomer(t, db, repo, "Arjun", "9876543210")

	tx, err := db.Begin()
	require.NoError(t, err)
	defer tx.Rollback()

	customer, err := repo.FindByPhoneForUpdate(context.Background(), tx, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "Arjun", customer.Name)
}

func TestCustomerRepository_ListAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCustomerRepository(db)
	firstID := insertCustomer(t, db, repo, "Arjun", "9876543210")
	insertCustomer(t, db, repo, "Priya", "9123456780")

	itemID := uint(1)
	appendOrder(t, db, repo, domain.Order{
		CustomerID: firstID,
		Category:   domain.CategoryMojito,
		ItemName:   "Classic Mojito",
		MenuItemID: &itemID,
		Price:      60,
		CreatedAt:  time.Now(),
	})

	customers, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 2)

	totalOrders := 0
	for _, c := range customers {
		totalOrders += c.TotalOrders()
	}
	assert.Equal(t, 1, totalOrders)
}

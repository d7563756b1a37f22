package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barista/internal/domain"
	"barista/internal/errors"
	"barista/internal/testutil"
)

// Unit Tests

func TestNewMySQLMenuItemRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLMenuItemRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func TestMenuItemRepository_InsertAndFindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLMenuItemRepository(db)

	id, err := repo.Insert(context.Background(), domain.MenuItem{
		Name:        "Oreo Shake",
		Category:    domain.CategoryMilkshake,
		Price:       70,
		Description: "Thick shake with crushed oreos",
		ImageURL:    "https://cdn.example.com/oreo.jpg",
		IsActive:    true,
	})
	require.NoError(t, err)

	item, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, "Oreo Shake", item.Name)
	assert.Equal(t, domain.CategoryMilkshake, item.Category)
	assert.Equal(t, 70.0, item.Price)
	assert.True(t, item.IsActive)
}

func TestMenuItemRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLMenuItemRepository(db)

	item, err := repo.FindByID(context.Background(), 9999)
	assert.Nil(t, item)

	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestMenuItemRepository_ListAll_SortedByCategoryAndName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLMenuItemRepository(db)
	ctx := context.Background()

	for _, item := range []domain.MenuItem{
		{Name: "Belgian Waffle", Category: domain.CategoryWaffle, Price: 90, IsActive: true},
		{Name: "Classic Mojito", Category: domain.CategoryMojito, Price: 60, IsActive: true},
		{Name: "Blue Mojito", Category: domain.CategoryMojito, Price: 65, IsActive: true},
	} {
		_, err := repo.Insert(ctx, item)
		require.NoError(t, err)
	}

	items, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "Blue Mojito", items[0].Name)
	assert.Equal(t, "Classic Mojito", items[1].Name)
	assert.Equal(t, "Belgian Waffle", items[2].Name)
}

func TestMenuItemRepository_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLMenuItemRepository(db)
	ctx := context.Background()

	id, err := repo.Insert(ctx, domain.MenuItem{
		Name: "Oreo Shake", Category: domain.CategoryMilkshake, Price: 70, IsActive: true,
	})
	require.NoError(t, err)

	item, err := repo.FindByID(ctx, id)
	require.NoError(t, err)

	item.Price = 75
	item.IsActive = false
	require.NoError(t, repo.Update(ctx, *item))

	updated, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 75.0, updated.Price)
	assert.False(t, updated.IsActive)
}

func TestMenuItemRepository_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLMenuItemRepository(db)
	ctx := context.Background()

	id, err := repo.Insert(ctx, domain.MenuItem{
		Name: "Oreo Shake", Category: domain.CategoryMilkshake, Price: 70, IsActive: true,
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))

	_, err = repo.FindByID(ctx, id)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestMenuItemRepository_Delete_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLMenuItemRepository(db)

	err := repo.Delete(context.Background(), 9999)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

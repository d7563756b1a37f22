package rewards

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barista/internal/domain"
)

type fakeCustomerLister struct {
	customers []domain.Customer
	err       error
}

func (f *fakeCustomerLister) ListAll(context.Context) ([]domain.Customer, error) {
	return f.customers, f.err
}

func customerWith(paid, redeemed int) domain.Customer {
	c := domain.Customer{Name: "Arjun", Phone: "9876543210", RewardsRedeemed: redeemed}
	itemID := uint(1)
	for i := 0; i < paid; i++ {
		c.Orders = append(c.Orders, domain.Order{
			Category: domain.CategoryMojito, ItemName: "Classic Mojito",
			MenuItemID: &itemID, Price: 60,
		})
	}
	for i := 0; i < redeemed; i++ {
		c.Orders = append(c.Orders, domain.Order{
			Category: domain.CategoryMojito, ItemName: domain.RewardItemName, IsReward: true,
		})
	}
	return c
}

func TestGetOverview_Empty(t *testing.T) {
	uc := NewOverviewUseCase(&fakeCustomerLister{})

	resp, err := uc.GetOverview(context.Background())
	require.NoError(t, err)

	assert.Empty(t, resp.Customers)
	assert.Equal(t, 0, resp.Stats.TotalRewardsGiven)
	assert.Equal(t, 0, resp.Stats.ReadyRewards)
}

func TestGetOverview_States(t *testing.T) {
	lister := &fakeCustomerLister{customers: []domain.Customer{
		customerWith(2, 0),  // progress
		customerWith(4, 0),  // upcoming
		customerWith(5, 0),  // ready
		customerWith(10, 1), // ready again (one claimed, five fresh)
		customerWith(12, 2), // progress, 2 effective
	}}

	uc := NewOverviewUseCase(lister)

	resp, err := uc.GetOverview(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Customers, 5)

	assert.Equal(t, "progress", resp.Customers[0].State)
	assert.Equal(t, "upcoming", resp.Customers[1].State)
	assert.Equal(t, "ready", resp.Customers[2].State)
	assert.Equal(t, "ready", resp.Customers[3].State)
	assert.Equal(t, "progress", resp.Customers[4].State)

	assert.Equal(t, 3, resp.Stats.TotalRewardsGiven)
	assert.Equal(t, 2, resp.Stats.CustomersWithRewards)
	assert.Equal(t, 1, resp.Stats.UpcomingRewards)
	assert.Equal(t, 2, resp.Stats.ReadyRewards)
}

func TestGetOverview_RowFields(t *testing.T) {
	lister := &fakeCustomerLister{customers: []domain.Customer{customerWith(12, 2)}}

	uc := NewOverviewUseCase(lister)

	resp, err := uc.GetOverview(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Customers, 1)

	row := resp.Customers[0]
	assert.Equal(t, 14, row.TotalOrders)
	assert.Equal(t, 12, row.PaidDrinks)
	assert.Equal(t, 2, row.RewardsRedeemed)
	assert.Equal(t, 2, row.EffectivePaidDrinks)
	assert.Equal(t, 2, row.Progress)
	assert.Equal(t, 3, row.DrinksUntilReward)
}

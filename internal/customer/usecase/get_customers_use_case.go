package usecase

import (
	"context"

	"barista/internal/domain"
	"barista/internal/dto"
)

type CustomerReader interface {
	FindByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	ListAll(ctx context.Context) ([]domain.Customer, error)
}

type GetCustomersUseCase struct {
	customers CustomerReader
}

func NewGetCustomersUseCase(customers CustomerReader) *GetCustomersUseCase {
	return &GetCustomersUseCase{customers: customers}
}

func (uc *GetCustomersUseCase) ListCustomers(ctx context.Context) ([]dto.CustomerDTO, error) {
	customers, err := uc.customers.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CustomerDTO, 0, len(customers))
	for _, c := range customers {
		out = append(out, MapCustomer(c))
	}

	return out, nil
}

// GetCustomerSummary serves the public loyalty checker: a customer
// looks up their own phone to see how far they are from a free drink.
func (uc *GetCustomersUseCase) GetCustomerSummary(ctx context.Context, phone string) (*dto.CustomerSummaryDTO, error) {
	customer, err := uc.customers.FindByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	status := customer.RewardStatus()

	summary := &dto.CustomerSummaryDTO{
		Name:               customer.Name,
		Phone:              customer.Phone,
		TotalDrinks:        customer.TotalOrders(),
		RewardsRedeemed:    customer.RewardsRedeemed,
		DrinksToNextReward: status.DrinksUntilReward,
		Reward:             MapRewardStatus(status),
	}

	if n := len(customer.Orders); n > 0 {
		last := customer.Orders[n-1].CreatedAt
		summary.LastOrderDate = &last
	}

	return summary, nil
}

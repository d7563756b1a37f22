package dashboard

import (
	"context"

	"barista/internal/domain"
	"barista/internal/dto"
)

type CustomerLister interface {
	ListAll(ctx context.Context) ([]domain.Customer, error)
}

type StatsUseCase struct {
	customers CustomerLister
}

func NewStatsUseCase(customers CustomerLister) *StatsUseCase {
	return &StatsUseCase{customers: customers}
}

const recentCustomerLimit = 5

func (uc *StatsUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	customers, err := uc.customers.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardStatsResponse{
		TotalCustomers:  len(customers),
		RecentCustomers: []dto.RecentCustomerDTO{},
	}

	for _, c := range customers {
		resp.TotalDrinksSold += c.TotalOrders()
		resp.RewardsRedeemed += c.RewardsRedeemed

		if c.RewardStatus().State == domain.StateUpcoming {
			resp.UpcomingRewards++
		}

		if len(resp.RecentCustomers) < recentCustomerLimit {
			resp.RecentCustomers = append(resp.RecentCustomers, dto.RecentCustomerDTO{
				Name:        c.Name,
				Phone:       c.Phone,
				TotalOrders: c.TotalOrders(),
			})
		}
	}

	return resp, nil
}

package rewards

import (
	"context"

	"barista/internal/domain"
	"barista/internal/dto"
)

type CustomerLister interface {
	ListAll(ctx context.Context) ([]domain.Customer, error)
}

type OverviewUseCase struct {
	customers CustomerLister
}

func NewOverviewUseCase(customers CustomerLister) *OverviewUseCase {
	return &OverviewUseCase{customers: customers}
}

// GetOverview derives every customer's position in the reward cycle
// plus aggregate counts per state. Everything here is recomputed from
// the ledgers; nothing is read from cached counters except
// rewardsRedeemed, which the ledger invariant keeps honest.
func (uc *OverviewUseCase) GetOverview(ctx context.Context) (*dto.RewardsOverviewResponse, error) {
	customers, err := uc.customers.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.RewardCustomerDTO, 0, len(customers))
	stats := dto.RewardStatsDTO{}

	for _, c := range customers {
		status := c.RewardStatus()

		rows = append(rows, dto.RewardCustomerDTO{
			Name:                c.Name,
			Phone:               c.Phone,
			TotalOrders:         c.TotalOrders(),
			PaidDrinks:          c.PaidDrinks(),
			RewardsRedeemed:     c.RewardsRedeemed,
			EffectivePaidDrinks: status.EffectivePaidDrinks,
			Progress:            status.Progress,
			DrinksUntilReward:   status.DrinksUntilReward,
			State:               string(status.State),
		})

		stats.TotalRewardsGiven += c.RewardsRedeemed
		if c.RewardsRedeemed > 0 {
			stats.CustomersWithRewards++
		}
		switch status.State {
		case domain.StateUpcoming:
			stats.UpcomingRewards++
		case domain.StateReady:
			stats.ReadyRewards++
		}
	}

	return &dto.RewardsOverviewResponse{
		Customers: rows,
		Stats:     stats,
	}, nil
}

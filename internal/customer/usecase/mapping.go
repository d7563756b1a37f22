package usecase

import (
	"barista/internal/domain"
	"barista/internal/dto"
)

func MapOrder(o domain.Order) dto.OrderDTO {
	return dto.OrderDTO{
		ID:        o.ID,
		DrinkType: string(o.Category),
		ItemName:  o.ItemName,
		ItemID:    o.MenuItemID,
		Price:     o.Price,
		IsReward:  o.IsReward,
		Date:      o.CreatedAt,
	}
}

func MapCustomer(c domain.Customer) dto.CustomerDTO {
	orders := make([]dto.OrderDTO, 0, len(c.Orders))
	for _, o := range c.Orders {
		orders = append(orders, MapOrder(o))
	}

	return dto.CustomerDTO{
		Name:            c.Name,
		Phone:           c.Phone,
		TotalOrders:     c.TotalOrders(),
		PaidDrinks:      c.PaidDrinks(),
		RewardsRedeemed: c.RewardsRedeemed,
		Orders:          orders,
	}
}

func MapRewardStatus(s domain.RewardStatus) dto.RewardStatusDTO {
	return dto.RewardStatusDTO{
		EffectivePaidDrinks: s.EffectivePaidDrinks,
		Progress:            s.Progress,
		DrinksUntilReward:   s.DrinksUntilReward,
		State:               string(s.State),
	}
}

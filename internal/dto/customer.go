package dto

import "time"

type OrderDTO struct {
	ID        uint      `json:"id"`
	DrinkType string    `json:"drinkType"`
	ItemName  string    `json:"itemName"`
	ItemID    *uint     `json:"itemId"`
	Price     float64   `json:"price"`
	IsReward  bool      `json:"isReward"`
	Date      time.Time `json:"date"`
}

type CustomerDTO struct {
	Name            string     `json:"name"`
	Phone           string     `json:"phone"`
	TotalOrders     int        `json:"totalOrders"`
	PaidDrinks      int        `json:"paidDrinks"`
	RewardsRedeemed int        `json:"rewardsRedeemed"`
	Orders          []OrderDTO `json:"orders"`
}

type RewardStatusDTO struct {
	EffectivePaidDrinks int    `json:"effectivePaidDrinks"`
	Progress            int    `json:"progress"`
	DrinksUntilReward   int    `json:"drinksUntilReward"`
	State               string `json:"state"`
}

// CustomerSummaryDTO is the public per-phone lookup shape used by the
// customer-facing reward checker.
type CustomerSummaryDTO struct {
	Name               string          `json:"name"`
	Phone              string          `json:"phone"`
	TotalDrinks        int             `json:"totalDrinks"`
	RewardsRedeemed    int             `json:"rewardsRedeemed"`
	DrinksToNextReward int             `json:"drinksToNextReward"`
	Reward             RewardStatusDTO `json:"reward"`
	LastOrderDate      *time.Time      `json:"lastOrderDate"`
}

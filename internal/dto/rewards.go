package dto

import "time"

type ClaimRequest struct {
	Phone string `json:"phone"`
}

type ClaimResponse struct {
	TraceID   string          `json:"traceId"`
	Message   string          `json:"message"`
	Customer  CustomerDTO     `json:"customer"`
	Reward    RewardStatusDTO `json:"reward"`
	Timestamp time.Time       `json:"timestamp"`
}

// RewardCustomerDTO is one row in the rewards overview: the customer
// plus their derived position in the cycle.
type RewardCustomerDTO struct {
	Name                string `json:"name"`
	Phone               string `json:"phone"`
	TotalOrders         int    `json:"totalOrders"`
	PaidDrinks          int    `json:"paidDrinks"`
	RewardsRedeemed     int    `json:"rewardsRedeemed"`
	EffectivePaidDrinks int    `json:"effectivePaidDrinks"`
	Progress            int    `json:"progress"`
	DrinksUntilReward   int    `json:"drinksUntilReward"`
	State               string `json:"state"`
}

type RewardStatsDTO struct {
	TotalRewardsGiven    int `json:"totalRewardsGiven"`
	CustomersWithRewards int `json:"customersWithRewards"`
	UpcomingRewards      int `json:"upcomingRewards"`
	ReadyRewards         int `json:"readyRewards"`
}

type RewardsOverviewResponse struct {
	Customers []RewardCustomerDTO `json:"customers"`
	Stats     RewardStatsDTO      `json:"stats"`
}

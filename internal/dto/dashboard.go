package dto

type RecentCustomerDTO struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	TotalOrders int    `json:"totalOrders"`
}

type DashboardStatsResponse struct {
	TotalCustomers  int                 `json:"totalCustomers"`
	TotalDrinksSold int                 `json:"totalDrinksSold"`
	UpcomingRewards int                 `json:"upcomingRewards"`
	RewardsRedeemed int                 `json:"rewardsRedeemed"`
	RecentCustomers []RecentCustomerDTO `json:"recentCustomers"`
}

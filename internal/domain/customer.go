package domain

import "time"

type DrinkCategory string

// Closed set. Adding a category requires reviewing the loyalty policy,
// even though the policy itself does not gate on category.
const (
	CategoryMojito    DrinkCategory = "Mojito"
	CategoryIceCream  DrinkCategory = "Ice Cream"
	CategoryMilkshake DrinkCategory = "Milkshake"
	CategoryWaffle    DrinkCategory = "Waffle"
)

var drinkCategories = map[DrinkCategory]struct{}{
	CategoryMojito:    {},
	CategoryIceCream:  {},
	CategoryMilkshake: {},
	CategoryWaffle:    {},
}

func IsValidDrinkCategory(c DrinkCategory) bool {
	_, ok := drinkCategories[c]
	return ok
}

// RewardItemName is the display label stamped on reward orders.
const RewardItemName = "Free Reward"

// Order is a single line in a customer's ledger. Orders are immutable
// once written: they are only ever appended, never updated or deleted.
type Order struct {
	ID         uint
	CustomerID uint
	Category   DrinkCategory
	ItemName   string
	// MenuItemID is nil only for reward orders, which reference no
	// catalog item.
	MenuItemID *uint
	Price      float64
	IsReward   bool
	CreatedAt  time.Time
}

// Customer owns an append-only order ledger keyed by phone number.
// RewardsRedeemed mirrors the ledger (count of reward orders) and is
// persisted as a cache; the ledger stays the source of truth.
type Customer struct {
	ID              uint
	Name            string
	Phone           string
	RewardsRedeemed int
	Orders          []Order
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (c Customer) TotalOrders() int {
	return len(c.Orders)
}

// PaidDrinks counts ledger entries that were actually paid for.
func (c Customer) PaidDrinks() int {
	n := 0
	for _, o := range c.Orders {
		if !o.IsReward {
			n++
		}
	}
	return n
}

// RewardOrders counts reward entries in the ledger. Must equal
// RewardsRedeemed whenever the customer is at rest.
func (c Customer) RewardOrders() int {
	n := 0
	for _, o := range c.Orders {
		if o.IsReward {
			n++
		}
	}
	return n
}

func (c Customer) RewardStatus() RewardStatus {
	return ComputeRewardStatus(c.PaidDrinks(), c.RewardsRedeemed)
}

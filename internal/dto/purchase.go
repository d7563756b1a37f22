package dto

import "time"

// PurchaseRequest mirrors the public purchase form: the price field is
// accepted for validation but the recorded order is always priced from
// the catalog.
type PurchaseRequest struct {
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	DrinkType     string  `json:"drinkType"`
	ItemID        uint    `json:"itemId"`
	ItemName      string  `json:"itemName"`
	Price         float64 `json:"price"`
}

type PurchaseResponse struct {
	TraceID   string          `json:"traceId"`
	Message   string          `json:"message"`
	Customer  CustomerDTO     `json:"customer"`
	Reward    RewardStatusDTO `json:"reward"`
	Timestamp time.Time       `json:"timestamp"`
}

type ErrorResponse struct {
	TraceID string `json:"traceId,omitempty"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

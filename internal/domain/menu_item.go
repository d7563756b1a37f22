package domain

import "time"

type MenuItem struct {
	ID          uint
	Name        string
	Category    DrinkCategory
	Price       float64
	Description string
	ImageURL    string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

package entities

import "time"

type MenuItem struct {
	ID        string
	Name      string
	Price     float64
	PrepTime  time.Duration
	CreatedAt time.Time
	UpdatedAt time.Time
}

type MenuItemModify struct {
	ID       *string
	Name     *string
	Price    *float64
	PrepTime *time.Duration
}

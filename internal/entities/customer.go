package entities

import "time"

type Customer struct {
	ID           int64
	Login        string
	Password     string
	Address      string
	Phone        string
	OrderHistory []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CustomerModify struct {
	ID       *int64
	Login    *string
	Password *string
	Address  *string
	Phone    *string
}

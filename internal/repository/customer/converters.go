package customer

import (
	"fooddelivery/internal/entities"
)

func ToDomain(c *CustomerDB) *entities.Customer {
	if c == nil {
		return nil
	}

	history := c.OrderHistory
	if history == nil {
		history = []string{}
	}

	return &entities.Customer{
		ID:           c.ID,
		Login:        c.Login,
		Password:     c.Password,
		Address:      c.Address,
		Phone:        c.Phone,
		OrderHistory: history,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func FromDomainModify(customerModify *entities.CustomerModify) *CustomerModifyDB {
	if customerModify == nil {
		return nil
	}
	customerDB := &CustomerModifyDB{}

	if customerModify.ID != nil {
		customerDB.ID = customerModify.ID
	}
	if customerModify.Login != nil {
		customerDB.Login = customerModify.Login
	}
	if customerModify.Password != nil {
		customerDB.Password = customerModify.Password
	}
	if customerModify.Address != nil {
		customerDB.Address = customerModify.Address
	}
	if customerModify.Phone != nil {
		customerDB.Phone = customerModify.Phone
	}

	return customerDB
}

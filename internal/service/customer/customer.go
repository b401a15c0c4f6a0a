package customer

import (
	"context"
	"fmt"

	"fooddelivery/internal/entities"
)

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

func (s *Service) Register(ctx context.Context, customerModify entities.CustomerModify) (int64, error) {
	if customerModify.Login == nil ||
		customerModify.Password == nil ||
		customerModify.Address == nil ||
		customerModify.Phone == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidLogin(*customerModify.Login) {
		return 0, ErrInvalidLogin
	}
	if !isValidPassword(*customerModify.Password) {
		return 0, ErrInvalidPassword
	}
	if !isValidAddress(*customerModify.Address) {
		return 0, ErrInvalidAddress
	}
	if !isValidPhone(*customerModify.Phone) {
		return 0, ErrInvalidPhone
	}

	id, err := s.repository.Create(ctx, customerModify)
	if err != nil {
		return 0, fmt.Errorf("create customer: %w", err)
	}

	return id, nil
}

func (s *Service) GetCustomer(ctx context.Context, customerID int64) (*entities.Customer, error) {
	if customerID <= 0 {
		return nil, ErrInvalidCustomerID
	}

	customerEntity, err := s.repository.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	return customerEntity, nil
}

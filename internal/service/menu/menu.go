package menu

import (
	"context"
	"fmt"

	"fooddelivery/internal/entities"
)

type Service struct {
	repository Repository
	idFactory  IDFactory
}

func New(repository Repository, idFactory IDFactory) *Service {
	return &Service{
		repository: repository,
		idFactory:  idFactory,
	}
}

func (s *Service) AddItem(ctx context.Context, itemModify entities.MenuItemModify) (string, error) {
	if itemModify.Name == nil || itemModify.Price == nil || itemModify.PrepTime == nil {
		return "", ErrMissingRequiredFields
	}

	if !isValidName(*itemModify.Name) {
		return "", ErrInvalidName
	}
	if !isValidPrice(*itemModify.Price) {
		return "", ErrInvalidPrice
	}
	if *itemModify.PrepTime <= 0 {
		return "", ErrInvalidPrepTime
	}

	item := entities.MenuItem{
		ID:       s.idFactory.NewItemID(),
		Name:     *itemModify.Name,
		Price:    *itemModify.Price,
		PrepTime: *itemModify.PrepTime,
	}

	if err := s.repository.Create(ctx, item); err != nil {
		return "", fmt.Errorf("create menu item: %w", err)
	}

	return item.ID, nil
}

// GetByID реализует контракт каталога для сервиса заказов.
func (s *Service) GetByID(ctx context.Context, itemID string) (*entities.MenuItem, error) {
	if !isValidItemID(itemID) {
		return nil, ErrInvalidItemID
	}

	item, err := s.repository.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get menu item: %w", err)
	}

	return item, nil
}

func (s *Service) GetItem(ctx context.Context, itemID string) (*entities.MenuItem, error) {
	return s.GetByID(ctx, itemID)
}

func (s *Service) GetItems(ctx context.Context) ([]entities.MenuItem, error) {
	items, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get menu items: %w", err)
	}

	return items, nil
}

func (s *Service) UpdateItem(ctx context.Context, itemModify entities.MenuItemModify) error {
	if itemModify.ID == nil || !isValidItemID(*itemModify.ID) {
		return ErrInvalidItemID
	}

	if itemModify.Name == nil && itemModify.Price == nil && itemModify.PrepTime == nil {
		return ErrMissingRequiredFields
	}

	if itemModify.Name != nil && !isValidName(*itemModify.Name) {
		return ErrInvalidName
	}
	if itemModify.Price != nil && !isValidPrice(*itemModify.Price) {
		return ErrInvalidPrice
	}
	if itemModify.PrepTime != nil && *itemModify.PrepTime <= 0 {
		return ErrInvalidPrepTime
	}

	if err := s.repository.Update(ctx, itemModify); err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}

	return nil
}

func (s *Service) DeleteItem(ctx context.Context, itemID string) error {
	if !isValidItemID(itemID) {
		return ErrInvalidItemID
	}

	if err := s.repository.Delete(ctx, itemID); err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}

	return nil
}

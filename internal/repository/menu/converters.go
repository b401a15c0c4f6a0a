package menu

import (
	"time"

	"fooddelivery/internal/entities"
)

func ToDomain(m *MenuItemDB) *entities.MenuItem {
	if m == nil {
		return nil
	}

	return &entities.MenuItem{
		ID:        m.ID,
		Name:      m.Name,
		Price:     m.Price,
		PrepTime:  time.Duration(m.PrepTimeSeconds) * time.Second,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromDomainModify(itemModify *entities.MenuItemModify) *MenuItemModifyDB {
	if itemModify == nil {
		return nil
	}
	itemDB := &MenuItemModifyDB{}

	if itemModify.ID != nil {
		itemDB.ID = itemModify.ID
	}
	if itemModify.Name != nil {
		itemDB.Name = itemModify.Name
	}
	if itemModify.Price != nil {
		itemDB.Price = itemModify.Price
	}
	if itemModify.PrepTime != nil {
		seconds := int64(*itemModify.PrepTime / time.Second)
		itemDB.PrepTimeSeconds = &seconds
	}

	return itemDB
}

func ToDomainList(itemsDB []MenuItemDB) []entities.MenuItem {
	if len(itemsDB) == 0 {
		return []entities.MenuItem{}
	}

	result := make([]entities.MenuItem, len(itemsDB))
	for i, itemDB := range itemsDB {
		result[i] = *ToDomain(&itemDB)
	}
	return result
}

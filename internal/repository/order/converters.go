package order

import (
	"time"

	"fooddelivery/internal/entities"
)

func ToDomain(o *OrderDB, lines []OrderLineDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:                  o.ID,
		CustomerID:          o.CustomerID,
		Lines:               ToDomainLines(lines),
		DeliveryMode:        entities.DeliveryModeType(o.DeliveryMode),
		DeliveryAddress:     o.DeliveryAddress,
		Status:              entities.OrderStatusType(o.Status),
		AgentID:             o.AgentID,
		CreatedAt:           o.CreatedAt,
		EstimatedCompletion: o.EstimatedCompletion,
	}
}

func ToDomainLines(linesDB []OrderLineDB) []entities.OrderLine {
	if len(linesDB) == 0 {
		return []entities.OrderLine{}
	}

	result := make([]entities.OrderLine, len(linesDB))
	for i, lineDB := range linesDB {
		result[i] = entities.OrderLine{
			ItemID:   lineDB.ItemID,
			Name:     lineDB.Name,
			Price:    lineDB.Price,
			PrepTime: time.Duration(lineDB.PrepTimeSeconds) * time.Second,
			Quantity: lineDB.Quantity,
		}
	}
	return result
}

func FromDomain(orderEntity *entities.Order) (*OrderDB, []OrderLineDB) {
	if orderEntity == nil {
		return nil, nil
	}

	orderDB := &OrderDB{
		ID:                  orderEntity.ID,
		CustomerID:          orderEntity.CustomerID,
		DeliveryMode:        orderEntity.DeliveryMode.String(),
		DeliveryAddress:     orderEntity.DeliveryAddress,
		Status:              orderEntity.Status.String(),
		AgentID:             orderEntity.AgentID,
		CreatedAt:           orderEntity.CreatedAt,
		EstimatedCompletion: orderEntity.EstimatedCompletion,
	}

	linesDB := make([]OrderLineDB, len(orderEntity.Lines))
	for i, line := range orderEntity.Lines {
		linesDB[i] = OrderLineDB{
			OrderID:         orderEntity.ID,
			LineNo:          int64(i + 1),
			ItemID:          line.ItemID,
			Name:            line.Name,
			Price:           line.Price,
			PrepTimeSeconds: int64(line.PrepTime / time.Second),
			Quantity:        line.Quantity,
		}
	}

	return orderDB, linesDB
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}
	orderDB := &OrderModifyDB{}

	if orderModify.ID != nil {
		orderDB.ID = orderModify.ID
	}
	if orderModify.Status != nil {
		statusType := orderModify.Status.String()
		orderDB.Status = &statusType
	}
	if orderModify.AgentID != nil {
		orderDB.AgentID = orderModify.AgentID
	}
	if orderModify.EstimatedCompletion != nil {
		orderDB.EstimatedCompletion = orderModify.EstimatedCompletion
	}

	return orderDB
}

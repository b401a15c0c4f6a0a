package shipment

import (
	"fooddelivery/internal/entities"
)

func ToDomain(s *ShipmentDB) *entities.Shipment {
	if s == nil {
		return nil
	}

	return &entities.Shipment{
		ID:               s.ID,
		OrderID:          s.OrderID,
		Status:           entities.ShipmentStatusType(s.Status),
		EstimatedArrival: s.EstimatedArrival,
		TrackingCode:     s.TrackingCode,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func FromDomainModify(shipmentModify *entities.ShipmentModify) *ShipmentModifyDB {
	if shipmentModify == nil {
		return nil
	}
	shipmentDB := &ShipmentModifyDB{}

	if shipmentModify.ID != nil {
		shipmentDB.ID = shipmentModify.ID
	}
	if shipmentModify.OrderID != nil {
		shipmentDB.OrderID = shipmentModify.OrderID
	}
	if shipmentModify.Status != nil {
		statusType := shipmentModify.Status.String()
		shipmentDB.Status = &statusType
	}
	if shipmentModify.EstimatedArrival != nil {
		shipmentDB.EstimatedArrival = shipmentModify.EstimatedArrival
	}
	if shipmentModify.TrackingCode != nil {
		shipmentDB.TrackingCode = shipmentModify.TrackingCode
	}

	return shipmentDB
}

func ToDomainList(shipmentsDB []ShipmentDB) []entities.Shipment {
	if len(shipmentsDB) == 0 {
		return []entities.Shipment{}
	}

	result := make([]entities.Shipment, len(shipmentsDB))
	for i, shipmentDB := range shipmentsDB {
		result[i] = *ToDomain(&shipmentDB)
	}
	return result
}

package entities

import "time"

type Shipment struct {
	ID               int64
	OrderID          string
	Status           ShipmentStatusType
	EstimatedArrival time.Time
	TrackingCode     string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type ShipmentStatusType string

const (
	ShipmentProcessing     ShipmentStatusType = "processing"
	ShipmentPacked         ShipmentStatusType = "packed"
	ShipmentShipped        ShipmentStatusType = "shipped"
	ShipmentOutForDelivery ShipmentStatusType = "out_for_delivery"
	ShipmentDelivered      ShipmentStatusType = "delivered"
)

func (s ShipmentStatusType) String() string {
	return string(s)
}

type ShipmentModify struct {
	ID               *int64
	OrderID          *string
	Status           *ShipmentStatusType
	EstimatedArrival *time.Time
	TrackingCode     *string
}

package entities

import "time"

type Order struct {
	ID                  string
	CustomerID          int64
	Lines               []OrderLine
	DeliveryMode        DeliveryModeType
	DeliveryAddress     string
	Status              OrderStatusType
	AgentID             *int64
	CreatedAt           time.Time
	EstimatedCompletion time.Time
}

// TotalPrice всегда считается по текущим строкам заказа, отдельно не хранится.
func (o *Order) TotalPrice() float64 {
	var total float64
	for _, line := range o.Lines {
		total += line.TotalPrice()
	}
	return total
}

type OrderLine struct {
	ItemID   string
	Name     string
	Price    float64
	PrepTime time.Duration
	Quantity int64
}

func (l OrderLine) TotalPrice() float64 {
	return l.Price * float64(l.Quantity)
}

type OrderStatusType string

const (
	OrderPlaced         OrderStatusType = "placed"
	OrderPreparing      OrderStatusType = "preparing"
	OrderReadyForPickup OrderStatusType = "ready_for_pickup"
	OrderOutForDelivery OrderStatusType = "out_for_delivery"
	OrderDelivered      OrderStatusType = "delivered"
	OrderPickedUp       OrderStatusType = "picked_up"
	OrderCancelled      OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// IsTerminal из терминального статуса переходов нет.
func (s OrderStatusType) IsTerminal() bool {
	switch s {
	case OrderDelivered, OrderPickedUp, OrderCancelled:
		return true
	default:
		return false
	}
}

type DeliveryModeType string

const (
	HomeDelivery DeliveryModeType = "home_delivery"
	Takeaway     DeliveryModeType = "takeaway"
)

func (m DeliveryModeType) String() string {
	return string(m)
}

type OrderCreate struct {
	CustomerID      int64
	Lines           []OrderLineCreate
	DeliveryMode    DeliveryModeType
	DeliveryAddress string
}

type OrderLineCreate struct {
	ItemID   string
	Quantity int64
}

type OrderModify struct {
	ID                  *string
	Status              *OrderStatusType
	AgentID             *int64
	EstimatedCompletion *time.Time
}

package entities

import "time"

// MaxAgentOrders максимум одновременных заказов у одного агента доставки.
const MaxAgentOrders = 3

type DeliveryAgent struct {
	ID            int64
	Name          string
	Phone         string
	CurrentOrders []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Available доступность выводится из загрузки, отдельно не хранится.
func (a *DeliveryAgent) Available() bool {
	return len(a.CurrentOrders) < MaxAgentOrders
}

type DeliveryAgentModify struct {
	ID    *int64
	Name  *string
	Phone *string
}

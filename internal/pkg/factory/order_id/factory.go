package order_id

import (
	"strings"

	"github.com/google/uuid"
)

// IDFactory выдает идентификаторы заказов и трек-коды.
// uuid вместо глобальных счетчиков, фабрика без состояния.
type IDFactory struct{}

func New() *IDFactory {
	return &IDFactory{}
}

func (f *IDFactory) NewOrderID() string {
	return uuid.NewString()
}

func (f *IDFactory) NewItemID() string {
	return uuid.NewString()
}

func (f *IDFactory) NewTrackingCode() string {
	return "SHIP-" + strings.ToUpper(uuid.NewString()[:8])
}

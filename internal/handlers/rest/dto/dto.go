// Package dto содержит транспортные структуры REST API.
package dto

import "time"

type CustomerCreateRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

type CustomerCreateResponse struct {
	ID int64 `json:"id"`
}

type MenuItemCreateRequest struct {
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	PrepTimeMinutes int64   `json:"prep_time_minutes"`
}

type MenuItemCreateResponse struct {
	ID string `json:"id"`
}

type MenuItem struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	PrepTimeMinutes int64   `json:"prep_time_minutes"`
}

type OrderLineCreate struct {
	ItemID   string `json:"item_id"`
	Quantity int64  `json:"quantity"`
}

type OrderCreateRequest struct {
	CustomerID      int64             `json:"customer_id"`
	Lines           []OrderLineCreate `json:"lines"`
	DeliveryMode    string            `json:"delivery_mode"`
	DeliveryAddress string            `json:"delivery_address,omitempty"`
}

type OrderLine struct {
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int64   `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

type Order struct {
	ID                   string      `json:"id"`
	CustomerID           int64       `json:"customer_id"`
	Lines                []OrderLine `json:"lines"`
	DeliveryMode         string      `json:"delivery_mode"`
	DeliveryAddress      string      `json:"delivery_address"`
	Status               string      `json:"status"`
	AgentID              *int64      `json:"agent_id,omitempty"`
	TotalPrice           float64     `json:"total_price"`
	EstimatedCompletion  time.Time   `json:"estimated_completion"`
	TimeRemainingMinutes int64       `json:"time_remaining_minutes"`
}

type OrderStatusUpdateRequest struct {
	Status string `json:"status"`
}

type AgentCreateRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type AgentCreateResponse struct {
	ID int64 `json:"id"`
}

type Agent struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Phone         string   `json:"phone"`
	CurrentOrders []string `json:"current_orders"`
	Available     bool     `json:"available"`
}

// AgentOrder строка списка заказов агента, без расчетных полей заказа.
type AgentOrder struct {
	ID                  string    `json:"id"`
	CustomerID          int64     `json:"customer_id"`
	DeliveryAddress     string    `json:"delivery_address"`
	Status              string    `json:"status"`
	EstimatedCompletion time.Time `json:"estimated_completion"`
}

type DeliveryAssignRequest struct {
	OrderID string `json:"order_id"`
	AgentID int64  `json:"agent_id"`
}

type DeliveryAssignResponse struct {
	OrderID string `json:"order_id"`
	AgentID int64  `json:"agent_id"`
	Status  string `json:"status"`
}

type DeliveryCompleteRequest struct {
	OrderID string `json:"order_id"`
	AgentID int64  `json:"agent_id"`
}

type DeliveryCompleteResponse struct {
	Released bool `json:"released"`
}

type Shipment struct {
	OrderID          string    `json:"order_id"`
	Status           string    `json:"status"`
	TrackingCode     string    `json:"tracking_code"`
	EstimatedArrival time.Time `json:"estimated_arrival"`
}

type ShipmentStatusUpdateRequest struct {
	Status string `json:"status"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

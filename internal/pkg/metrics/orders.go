package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Total number of placed orders",
		},
		[]string{"delivery_mode"},
	)

	OrdersAssignedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_assigned_total",
			Help: "Total number of orders assigned to delivery agents",
		},
	)

	ShipmentsDeliveredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shipments_delivered_total",
			Help: "Total number of shipments that reached the delivered stage",
		},
	)
)

package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orderdesk_orders_created_total",
		Help: "Orders committed successfully.",
	})
	orderCommitFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orderdesk_order_commit_failures_total",
		Help: "Order submissions that failed at any step.",
	})
)

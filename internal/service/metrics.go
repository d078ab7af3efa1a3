package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Total number of orders created.",
	})

	ordersDegradedFee = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: "orders",
		Name:      "degraded_fee_total",
		Help:      "Orders created with a zero fee due to unresolvable reference data.",
	})

	transitionsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: "orders",
		Name:      "transitions_total",
		Help:      "Successful order status transitions.",
	}, []string{"to"})

	transitionsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: "orders",
		Name:      "transitions_rejected_total",
		Help:      "Rejected order status transitions.",
	}, []string{"reason"})

	claimsWon = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: "orders",
		Name:      "claims_won_total",
		Help:      "Driver claims that won the assignment.",
	})

	claimsConflicted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: "orders",
		Name:      "claims_conflict_total",
		Help:      "Driver claims rejected because the order was already taken.",
	})

	reviewsAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: "reviews",
		Name:      "accepted_total",
		Help:      "Reviews accepted and folded into store ratings.",
	})

	publishFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: "events",
		Name:      "publish_failures_total",
		Help:      "Event publications that failed after retries.",
	}, []string{"topic"})
)

package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var authRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "auth_requests_total",
		Help: "Authentication middleware outcomes.",
	},
	[]string{"outcome"},
)

func recordAuth(outcome string) {
	authRequestsTotal.WithLabelValues(outcome).Inc()
}

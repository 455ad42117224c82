package validator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "apcheck",
	Subsystem: "service",
	Name:      "requests_total",
	Help:      "Validation requests by profile and outcome.",
}, []string{"profile", "outcome"})

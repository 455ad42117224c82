package validate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var faultsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "apcheck",
	Subsystem: "validate",
	Name:      "faults_total",
	Help:      "Faults emitted by severity and code.",
}, []string{"severity", "fault"})

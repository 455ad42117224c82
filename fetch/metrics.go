package fetch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultHit     = "hit"
	resultFetched = "fetched"
	resultError   = "error"
)

var fetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "apcheck",
	Subsystem: "fetch",
	Name:      "requests_total",
	Help:      "Reference fetches by outcome (hit, fetched, error).",
}, []string{"result"})

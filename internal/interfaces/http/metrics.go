package httpinterface

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var exchangeOpsCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "gameswap",
		Name:      "exchange_operations_total",
		Help:      "Number of exchange operations handled, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

func countExchangeOp(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	exchangeOpsCounter.WithLabelValues(operation, outcome).Inc()
}

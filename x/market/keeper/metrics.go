package keeper

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	swapDirectionBaseForQuote = "base_for_quote"
	swapDirectionQuoteForBase = "quote_for_base"
)

var (
	initializeCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fixedswap",
			Subsystem: "market",
			Name:      "initializations_total",
			Help:      "Total successful registry initializations (at most one per chain)",
		},
	)

	marketsCreatedCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fixedswap",
			Subsystem: "market",
			Name:      "markets_created_total",
			Help:      "Total number of markets created",
		},
	)

	swapCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fixedswap",
			Subsystem: "market",
			Name:      "swaps_total",
			Help:      "Total number of swaps executed",
		},
		[]string{"direction"},
	)
)

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StoreRemote = "remote"
	StoreLocal  = "local"
)

var (
	StoreFallbackTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "encomendas_store_fallback_total",
		Help: "Total number of order operations served by the local store after a remote failure.",
	},
		[]string{"operation"},
	)

	OrdersCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "encomendas_orders_created_total",
		Help: "Total number of orders created, by the store that owns them.",
	},
		[]string{"store"},
	)

	RemoteUp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "encomendas_remote_up",
		Help: "Whether the remote order store answered the last health check (1) or not (0).",
	})
)

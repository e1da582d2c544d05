package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of one full recommendation pass (catalog load + scoring)
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "card_recommend_latency_seconds",
		Help:    "Latency of card recommendation calls",
		Buckets: prometheus.DefBuckets,
	})

	// Catalog snapshot cache hits/misses
	CatalogCacheHits = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_cache_results_total",
		Help: "Catalog snapshot cache lookups by result",
	}, []string{"result"})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		CatalogCacheHits,
	)
}

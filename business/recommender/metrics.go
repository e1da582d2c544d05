package recommender

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendRequestsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "card_recommend_requests_total",
			Help: "Count of card recommendation requests served.",
		},
	)

	RecommendedCardsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "card_recommendations_total",
			Help: "Count of card recommendations returned across all requests.",
		},
	)

	ShoppingRewardRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shopping_reward_requests_total",
			Help: "Count of shopping reward calculations by platform.",
		},
		[]string{"platform"},
	)
)

func init() {
	prometheus.MustRegister(
		RecommendRequestsTotal,
		RecommendedCardsTotal,
		ShoppingRewardRequestsTotal,
	)
}

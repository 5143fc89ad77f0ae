package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecommendationRequests counts generated recommendation sets.
	// Labels: occasion, weather (known keys or "other"), outcome ("outfits", "fallback", "empty")
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylist_recommendation_requests_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"occasion", "weather", "outcome"},
	)

	RecommendationOutfits = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stylist_recommendation_outfits",
			Help:    "Number of outfits returned per recommendation request",
			Buckets: []float64{0, 1, 2, 3, 4, 5},
		},
	)

	// ClothingAnalysis counts photo analysis task results: "completed", "retry", "failed".
	ClothingAnalysis = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylist_clothing_analysis_total",
			Help: "Total number of clothing photo analyses",
		},
		[]string{"outcome"},
	)

	PushNotifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylist_push_notifications_total",
			Help: "Total number of push notifications sent",
		},
		[]string{"outcome"},
	)
)

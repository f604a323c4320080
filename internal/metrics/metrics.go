package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Database metrics
var (
	DBQueryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "game_night_admin_db_queries_total",
			Help: "Total number of database queries",
		},
		[]string{"operation", "status"},
	)

	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "game_night_admin_db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"operation"},
	)
)

// Hashing metrics
var (
	PasswordHashTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "game_night_admin_password_hash_total",
			Help: "Total number of bcrypt hash computations",
		},
		[]string{"status"},
	)

	PasswordHashDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "game_night_admin_password_hash_duration_seconds",
			Help:    "Bcrypt hash computation duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)
)

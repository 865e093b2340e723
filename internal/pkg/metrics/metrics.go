package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 业务指标。
var (
	MenusPublished = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lunchify_menus_published_total",
			Help: "Total number of menus published.",
		},
	)

	VotesCast = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lunchify_votes_cast_total",
			Help: "Total number of votes accepted.",
		},
	)

	VoteConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lunchify_vote_conflicts_total",
			Help: "Total number of votes rejected because the employee already voted.",
		},
	)

	TallyRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lunchify_tally_requests_total",
			Help: "Total number of winner lookups by outcome.",
		},
		[]string{"outcome"},
	)
)

// 数据库操作指标。
var (
	DatabaseOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "database_operations_total",
			Help: "Total number of database operations by type",
		},
		[]string{"operation", "table"},
	)

	DatabaseDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "database_operation_duration_seconds",
			Help:    "Duration of database operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"operation", "table"},
	)
)

// RecordOperation 记录数据库操作。
func RecordOperation(operation, table string, duration time.Duration) {
	DatabaseOperations.WithLabelValues(operation, table).Inc()
	DatabaseDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}

package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_operation_duration_seconds",
			Help:    "Duration of database operations",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation", "collection"},
	)

	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors by component and reason",
		},
		[]string{"component", "reason"},
	)

	// Progression Metrics
	ActivitiesLogged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activities_logged_total",
			Help: "Total number of activities logged",
		},
		[]string{"category"},
	)

	XPAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "xp_awarded_total",
			Help: "Experience points granted by logged activities",
		},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "level_ups_total",
			Help: "Number of level thresholds crossed",
		},
	)

	BadgesEarned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "badges_earned_total",
			Help: "Badges that flipped from locked to earned",
		},
		[]string{"badge"},
	)
)

// TrackDBOperation times one database call; defer ObserveDuration on the result.
func TrackDBOperation(operation, collection string) *prometheus.Timer {
	return prometheus.NewTimer(DBOperationDuration.WithLabelValues(operation, collection))
}

func TrackError(component, reason string) {
	ErrorsTotal.WithLabelValues(component, reason).Inc()
}

func TrackActivityLogged(category string) {
	ActivitiesLogged.WithLabelValues(category).Inc()
}

// TrackProgress records XP gained and levels crossed by one activity.
func TrackProgress(xp int, levels int) {
	if xp > 0 {
		XPAwarded.Add(float64(xp))
	}
	if levels > 0 {
		LevelUps.Add(float64(levels))
	}
}

func TrackBadgeEarned(badgeID string) {
	BadgesEarned.WithLabelValues(badgeID).Inc()
}

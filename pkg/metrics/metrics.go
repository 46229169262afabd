package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movie_catalog_http_requests_total",
			Help: "Total number of HTTP requests by route pattern",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "movie_catalog_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Wishlist notifications
	NotificationBatchesPublished = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "movie_catalog_notification_batches_published_total",
			Help: "Notification batches handed to the queue",
		},
	)

	NotificationsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "movie_catalog_notifications_sent_total",
			Help: "Notification entries delivered",
		},
	)

	NotificationsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "movie_catalog_notifications_failed_total",
			Help: "Notification entries that could not be delivered",
		},
	)

	// Trending import
	TrendingImported = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movie_catalog_trending_titles_total",
			Help: "Trending titles seen by the importer, by outcome",
		},
		[]string{"outcome"}, // "inserted", "skipped"
	)

	TrendingRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movie_catalog_trending_runs_total",
			Help: "Trending import runs by result",
		},
		[]string{"result"}, // "success", "error"
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, route, status string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, status).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordNotificationBatch records the outcome of one processed batch.
func RecordNotificationBatch(sent, failed int) {
	NotificationsSent.Add(float64(sent))
	NotificationsFailed.Add(float64(failed))
}

// RecordTrendingRun records one import run.
func RecordTrendingRun(inserted, skipped int, err error) {
	TrendingImported.WithLabelValues("inserted").Add(float64(inserted))
	TrendingImported.WithLabelValues("skipped").Add(float64(skipped))
	if err != nil {
		TrendingRuns.WithLabelValues("error").Inc()
		return
	}
	TrendingRuns.WithLabelValues("success").Inc()
}

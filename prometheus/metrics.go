package prometheus

import (
	"strings"
	"time"

	"storefront-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics stay nil until InitMetrics runs; the Record/Track helpers are
// no-ops in that state so packages can be used without a registry.
var (
	// HTTP request metrics
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec

	// Admin console metrics
	AdminUnlockAttemptsCounter *prometheus.CounterVec

	// Storage metrics
	DbOperationDuration   *prometheus.HistogramVec
	PersistDuration       *prometheus.HistogramVec
	PersistFailureCounter *prometheus.CounterVec

	// Store metrics
	CatalogOperationsCounter *prometheus.CounterVec
	CartOperationsCounter    *prometheus.CounterVec
	CatalogSizeGauge         prometheus.Gauge

	// Stylist metrics
	StylistRepliesCounter *prometheus.CounterVec

	// Product popularity metrics
	ProductViewsCounter *prometheus.CounterVec
)

// InitMetrics creates the metrics with the configured prefix and registers
// them with reg.
func InitMetrics(config *config.Config, reg prometheus.Registerer) {
	prefix := config.Metrics.Prefix
	factory := promauto.With(reg)

	HttpRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	AdminUnlockAttemptsCounter = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_admin_unlock_attempts_total",
			Help: "Admin console unlock attempts by outcome",
		},
		[]string{"outcome"},
	)

	DbOperationDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	PersistDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_persist_duration_seconds",
			Help:    "Duration of store document writes in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"key"},
	)

	PersistFailureCounter = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_persist_failures_total",
			Help: "Store document writes that failed",
		},
		[]string{"key"},
	)

	CatalogOperationsCounter = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_catalog_operations_total",
			Help: "Total number of catalog operations",
		},
		[]string{"operation"},
	)

	CartOperationsCounter = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_cart_operations_total",
			Help: "Total number of cart operations",
		},
		[]string{"operation"},
	)

	CatalogSizeGauge = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: prefix + "_catalog_products",
			Help: "Number of products currently in the catalog",
		},
	)

	StylistRepliesCounter = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_stylist_replies_total",
			Help: "Stylist replies appended to transcripts by outcome",
		},
		[]string{"outcome"},
	)

	ProductViewsCounter = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_product_views_total",
			Help: "Total number of product detail views",
		},
		[]string{"product_id"},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		if DbOperationDuration == nil {
			return
		}
		DbOperationDuration.WithLabelValues(operationType).Observe(time.Since(startTime).Seconds())
	}
}

// TrackPersist returns a function that records how long a document write took
func TrackPersist(key string) func(startTime time.Time) {
	return func(startTime time.Time) {
		if PersistDuration == nil {
			return
		}
		PersistDuration.WithLabelValues(persistLabel(key)).Observe(time.Since(startTime).Seconds())
	}
}

// RecordPersistFailure increments the failed write counter
func RecordPersistFailure(key string) {
	if PersistFailureCounter == nil {
		return
	}
	PersistFailureCounter.WithLabelValues(persistLabel(key)).Inc()
}

// RecordHTTPRequest records one served request
func RecordHTTPRequest(method, path, status string, seconds float64) {
	if HttpRequestsTotal == nil {
		return
	}
	HttpRequestsTotal.WithLabelValues(method, path, status).Inc()
	HttpRequestDuration.WithLabelValues(method, path, status).Observe(seconds)
}

// RecordAdminUnlock counts an unlock attempt as granted or denied
func RecordAdminUnlock(granted bool) {
	if AdminUnlockAttemptsCounter == nil {
		return
	}
	outcome := "denied"
	if granted {
		outcome = "granted"
	}
	AdminUnlockAttemptsCounter.WithLabelValues(outcome).Inc()
}

// RecordCatalogOperation increments the counter for catalog operations
func RecordCatalogOperation(operation string, size int) {
	if CatalogOperationsCounter == nil {
		return
	}
	CatalogOperationsCounter.WithLabelValues(operation).Inc()
	CatalogSizeGauge.Set(float64(size))
}

// RecordCatalogSize sets the catalog size gauge, used once the catalog is
// loaded so the gauge is right before the first mutation
func RecordCatalogSize(size int) {
	if CatalogSizeGauge == nil {
		return
	}
	CatalogSizeGauge.Set(float64(size))
}

// RecordCartOperation increments the counter for cart operations
func RecordCartOperation(operation string) {
	if CartOperationsCounter == nil {
		return
	}
	CartOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordStylistReply counts a reply by outcome (reply, empty, error)
func RecordStylistReply(outcome string) {
	if StylistRepliesCounter == nil {
		return
	}
	StylistRepliesCounter.WithLabelValues(outcome).Inc()
}

// RecordProductView increments the counter for product views
func RecordProductView(productID string) {
	if ProductViewsCounter == nil {
		return
	}
	ProductViewsCounter.WithLabelValues(productID).Inc()
}

// carts are stored under one key each; collapse them to keep label cardinality flat
func persistLabel(key string) string {
	if i := strings.Index(key, "tnd_cart:"); i >= 0 {
		return key[:i] + "tnd_cart"
	}
	return key
}

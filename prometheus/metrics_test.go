package prometheus

import (
	"testing"
	"time"

	"storefront-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestHelpersAreNoOpsBeforeInit(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordCartOperation("add")
		RecordAdminUnlock(true)
		RecordStylistReply("reply")
		RecordCatalogSize(5)
		TrackPersist("tnd_products")(time.Now())
	})
}

func TestInitMetricsRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	InitMetrics(&config.Config{Metrics: config.MetricsConfig{Prefix: "test"}}, reg)

	RecordCartOperation("add")
	RecordCartOperation("add")
	RecordAdminUnlock(false)
	RecordCatalogOperation("create", 6)
	RecordPersistFailure("tnd_cart:abc")

	assert.Equal(t, 2.0, testutil.ToFloat64(CartOperationsCounter.WithLabelValues("add")))
	assert.Equal(t, 1.0, testutil.ToFloat64(AdminUnlockAttemptsCounter.WithLabelValues("denied")))
	assert.Equal(t, 6.0, testutil.ToFloat64(CatalogSizeGauge))
	assert.Equal(t, 1.0, testutil.ToFloat64(PersistFailureCounter.WithLabelValues("tnd_cart")))
}

func TestCatalogSizeSetAtLoad(t *testing.T) {
	reg := prometheus.NewRegistry()
	InitMetrics(&config.Config{Metrics: config.MetricsConfig{Prefix: "load"}}, reg)

	assert.Equal(t, 0.0, testutil.ToFloat64(CatalogSizeGauge))
	RecordCatalogSize(5)
	assert.Equal(t, 5.0, testutil.ToFloat64(CatalogSizeGauge))
	assert.Equal(t, 0.0, testutil.ToFloat64(CatalogOperationsCounter.WithLabelValues("create")))
}

func TestPersistLabel(t *testing.T) {
	assert.Equal(t, "tnd_products", persistLabel("tnd_products"))
	assert.Equal(t, "tnd_cart", persistLabel("tnd_cart:123"))
	assert.Equal(t, "shop1:tnd_cart", persistLabel("shop1:tnd_cart:123"))
}

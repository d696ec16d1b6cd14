package providers

import (
	"streakd/internal/services"
	"streakd/internal/structures"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsProvider_DisabledReturnsNoop(t *testing.T) {
	conf := &structures.Config{}
	m := NewMetricsProvider(conf, services.NewStreakService(conf))
	assert.IsType(t, &noopMetrics{}, m)
}

func TestNoopMetrics_AllOpsNoPanic(t *testing.T) {
	m := &noopMetrics{}

	m.IncRequestsTotal("/streak", 200)
	m.ObserveRequestDuration("/streak", time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.IncClassifications("positive")
	m.ObserveClassificationDuration(time.Millisecond)
	m.ObservePersistenceDuration(time.Millisecond)
}

// Registers against the default prometheus registry, so the enabled
// provider is constructed exactly once across the package tests.
func TestMetricsProvider_Enabled(t *testing.T) {
	conf := &structures.Config{Metrics: structures.MetricsConfig{Enabled: true}}
	m := NewMetricsProvider(conf, services.NewStreakService(conf))
	assert.IsType(t, &MetricsProvider{}, m)

	m.IncRequestsTotal("/checkin", 201)
	m.IncRequestsTotal("/checkin", 502)
	m.ObserveRequestDuration("/checkin", 10*time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.IncClassifications("negative")
	m.ObserveClassificationDuration(time.Second)
	m.ObservePersistenceDuration(time.Millisecond)
}

func TestHttpStatusBucket(t *testing.T) {
	assert.Equal(t, "1xx", httpStatusBucket(100))
	assert.Equal(t, "2xx", httpStatusBucket(204))
	assert.Equal(t, "3xx", httpStatusBucket(301))
	assert.Equal(t, "4xx", httpStatusBucket(422))
	assert.Equal(t, "5xx", httpStatusBucket(502))
}

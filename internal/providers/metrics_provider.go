package providers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"streakd/internal/services"
	"streakd/internal/structures"
	"time"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncClassifications(result string)
	ObserveClassificationDuration(duration time.Duration)
	ObservePersistenceDuration(duration time.Duration)
}

type MetricsProvider struct {
	requestsTotal          *prometheus.CounterVec
	requestDuration        *prometheus.HistogramVec
	cacheHits              prometheus.Counter
	cacheMisses            prometheus.Counter
	classificationsTotal   *prometheus.CounterVec
	classificationDuration prometheus.Histogram
	persistenceDuration    prometheus.Histogram
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncClassifications(result string) {
	m.classificationsTotal.WithLabelValues(result).Inc()
}

func (m *MetricsProvider) ObserveClassificationDuration(duration time.Duration) {
	m.classificationDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config, service services.StreakServiceInterface) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "streakd_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "streakd_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "streakd_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "streakd_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		classificationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "streakd_classifications_total",
			Help: "Total number of classification calls by result",
		}, []string{"result"}),

		classificationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "streakd_classification_duration_seconds",
			Help:    "Duration of classifier model calls in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		persistenceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "streakd_persistence_duration_seconds",
			Help:    "Duration of persistence operations in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "streakd_streak_count",
		Help: "Current streak count",
	}, func() float64 {
		return float64(service.Get().Count)
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "streakd_checkins_journal_size",
		Help: "Number of entries in the check-in journal",
	}, func() float64 {
		return float64(len(service.Checkins()))
	})

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                    {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration)    {}
func (n *noopMetrics) IncCacheHits()                                       {}
func (n *noopMetrics) IncCacheMisses()                                     {}
func (n *noopMetrics) IncClassifications(_ string)                         {}
func (n *noopMetrics) ObserveClassificationDuration(_ time.Duration)       {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)          {}

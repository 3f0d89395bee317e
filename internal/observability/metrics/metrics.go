package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                       sync.Once
	metricsRouter              *chi.Mux
	pocketClientLatency        *prometheus.HistogramVec
	reportBuildDuration        prometheus.Histogram
	failedRecordCounter        *prometheus.CounterVec
	addressDerivationCacheHits prometheus.Counter
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	// Create a custom server with timeout settings
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	// Start the server in a separate goroutine
	go func() {
		log.Printf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	pocketClientLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pocket_client_latency_seconds",
			Help:    "Histogram of pocket LCD client durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	reportBuildDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "treasury_report_build_duration_seconds",
			Help:    "Histogram of full treasury report build durations in seconds.",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
	)

	failedRecordCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "treasury_failed_record_count",
			Help: "The total number of balance records that failed, by category.",
		},
		[]string{"category"},
	)

	addressDerivationCacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "address_derivation_cache_hit_count",
			Help: "The total number of operator address derivations served from cache.",
		},
	)

	prometheus.MustRegister(
		pocketClientLatency,
		reportBuildDuration,
		failedRecordCounter,
		addressDerivationCacheHits,
	)
}

func RecordPocketClientLatency(d time.Duration, method string, failure bool) {
	if pocketClientLatency == nil {
		return
	}

	status := Success
	if failure {
		status = Error
	}

	pocketClientLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordReportBuildDuration(d time.Duration) {
	if reportBuildDuration == nil {
		return
	}

	reportBuildDuration.Observe(d.Seconds())
}

func IncFailedRecords(category string) {
	if failedRecordCounter == nil {
		return
	}

	failedRecordCounter.WithLabelValues(category).Inc()
}

func IncAddressDerivationCacheHits() {
	if addressDerivationCacheHits == nil {
		return
	}

	addressDerivationCacheHits.Inc()
}

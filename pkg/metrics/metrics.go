package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestSize     *prometheus.HistogramVec
	HTTPResponseSize    *prometheus.HistogramVec

	// Business metrics
	ListingsResolved    *prometheus.CounterVec
	OTPCodesSent        prometheus.Counter
	OTPVerifications    *prometheus.CounterVec
	DraftsSaved         prometheus.Counter
	SellersRegistered   prometheus.Counter
	SubmitFailures      *prometheus.CounterVec
	StaleDraftsPurged   prometheus.Counter

	// Database metrics
	DBQueryDuration *prometheus.HistogramVec
	DBConnections   prometheus.Gauge
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	m := &Metrics{
		// HTTP metrics
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets, // 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_size_bytes",
				Help:    "HTTP request size in bytes",
				Buckets: []float64{100, 1000, 5000, 10000, 50000, 100000, 500000, 1000000},
			},
			[]string{"method", "path"},
		),
		HTTPResponseSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 5000, 10000, 50000, 100000, 500000, 1000000},
			},
			[]string{"method", "path"},
		),

		// Business metrics
		ListingsResolved: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "listings_resolved_total",
				Help: "Total number of product-list filter resolutions",
			},
			[]string{"status"}, // ok, unparseable
		),
		OTPCodesSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "otp_codes_sent_total",
			Help: "Total number of verification codes sent",
		}),
		OTPVerifications: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "otp_verifications_total",
				Help: "Total number of verification attempts",
			},
			[]string{"status"}, // success, failed
		),
		DraftsSaved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "seller_drafts_saved_total",
			Help: "Total number of seller profile drafts saved",
		}),
		SellersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "sellers_registered_total",
			Help: "Total number of completed seller registrations",
		}),
		SubmitFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seller_submit_failures_total",
				Help: "Total number of failed final submissions",
			},
			[]string{"reason"},
		),
		StaleDraftsPurged: promauto.NewCounter(prometheus.CounterOpts{
			Name: "stale_drafts_purged_total",
			Help: "Total number of stale drafts removed by the retention job",
		}),

		// Database metrics
		DBQueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
			},
			[]string{"operation"}, // select, insert, update, delete
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		}),
	}

	return m
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // Use route pattern, not actual path (e.g., /api/v1/seller/:mobile)

			// Measure request size
			if req.ContentLength > 0 {
				m.HTTPRequestSize.WithLabelValues(req.Method, path).Observe(float64(req.ContentLength))
			}

			// Call next handler
			err := next(c)

			// Record metrics
			status := c.Response().Status
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, strconv.Itoa(status)).Observe(duration)
			m.HTTPResponseSize.WithLabelValues(req.Method, path).Observe(float64(c.Response().Size))

			return err
		}
	}
}

// RecordListingResolved increments the filter resolution counter
func (m *Metrics) RecordListingResolved(ok bool) {
	status := "unparseable"
	if ok {
		status = "ok"
	}
	m.ListingsResolved.WithLabelValues(status).Inc()
}

// RecordOTPSent increments the codes sent counter
func (m *Metrics) RecordOTPSent() {
	m.OTPCodesSent.Inc()
}

// RecordOTPVerification increments the verification attempts counter
func (m *Metrics) RecordOTPVerification(success bool) {
	status := "failed"
	if success {
		status = "success"
	}
	m.OTPVerifications.WithLabelValues(status).Inc()
}

// RecordDraftSaved increments the drafts saved counter
func (m *Metrics) RecordDraftSaved() {
	m.DraftsSaved.Inc()
}

// RecordSellerRegistered increments the completed registrations counter
func (m *Metrics) RecordSellerRegistered() {
	m.SellersRegistered.Inc()
}

// RecordSubmitFailure increments the submit failures counter
func (m *Metrics) RecordSubmitFailure(reason string) {
	m.SubmitFailures.WithLabelValues(reason).Inc()
}

// RecordStaleDraftsPurged adds to the purged drafts counter
func (m *Metrics) RecordStaleDraftsPurged(count int) {
	m.StaleDraftsPurged.Add(float64(count))
}

// RecordDBQuery records database query duration
func (m *Metrics) RecordDBQuery(operation string, duration time.Duration) {
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateDBConnections updates active database connections gauge
func (m *Metrics) UpdateDBConnections(count float64) {
	m.DBConnections.Set(count)
}

// Package metrics exposes Prometheus counters for the engagement pipeline and HTTP traffic.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"adreach/config"
	"adreach/internal/domain/entity"
	"adreach/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "adreach"

// Metrics holds all Prometheus metrics of the service.
type Metrics struct {
	registry *prometheus.Registry

	// Engagement metrics
	Events      *prometheus.CounterVec
	Debits      prometheus.Counter
	DebitAmount prometheus.Counter
	Transitions *prometheus.CounterVec

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
	HTTPInFlight prometheus.Gauge
}

// New creates and registers all metrics on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Events: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "engagement_events_total",
				Help:      "Engagement events by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		Debits: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "budget_debits_total",
				Help:      "Number of click debits applied to campaign budgets",
			},
		),
		DebitAmount: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "budget_debited_amount_total",
				Help:      "Sum of money debited from campaign budgets",
			},
		),
		Transitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "campaign_transitions_total",
				Help:      "Campaign status transitions by target status and reason",
			},
			[]string{"to", "reason"},
		),
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests processed",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latencies in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		HTTPInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_inflight_requests",
				Help:      "Number of HTTP requests currently being served",
			},
		),
	}
}

// NewEngagementMetrics returns the recorder used by usecases. A disabled config yields a no-op.
func NewEngagementMetrics(cfg *config.Config, m *Metrics) service.EngagementMetrics {
	if !cfg.Metrics.Enabled {
		return Noop{}
	}

	return m
}

// ObserveEvent counts one engagement event.
func (m *Metrics) ObserveEvent(kind entity.EventKind, outcome string) {
	m.Events.WithLabelValues(string(kind), outcome).Inc()
}

// ObserveDebit counts one applied click debit.
func (m *Metrics) ObserveDebit(amount float64) {
	m.Debits.Inc()
	m.DebitAmount.Add(amount)
}

// ObserveTransition counts one status change.
func (m *Metrics) ObserveTransition(to entity.CampaignStatus, reason string) {
	m.Transitions.WithLabelValues(string(to), reason).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records HTTP metrics using the matched route template to keep labels low-cardinality.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			m.HTTPInFlight.Inc()
			defer m.HTTPInFlight.Dec()

			err := next(c)

			status := c.Response().Status
			if err != nil && !c.Response().Committed {
				status = statusOf(err)
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method

			m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			m.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// statusOf mirrors the status the error handler will write for err.
func statusOf(err error) int {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	var coded interface{ HTTPCode() int }
	if errors.As(err, &coded) {
		return coded.HTTPCode()
	}

	return http.StatusInternalServerError
}

// Noop discards every observation.
type Noop struct{}

func (Noop) ObserveEvent(entity.EventKind, string) {}
func (Noop) ObserveDebit(float64) {}
func (Noop) ObserveTransition(entity.CampaignStatus, string) {}

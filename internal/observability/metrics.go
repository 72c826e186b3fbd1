package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "traffic_http_requests_total",
			Help: "Total HTTP requests",
		}, []string{"code"},
	)
	Latency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "traffic_http_request_duration_seconds",
		Help:    "Request latency seconds",
		Buckets: prometheus.DefBuckets,
	})
	InFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "traffic_http_in_flight",
		Help: "In-flight HTTP requests",
	})

	ClicksServed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "traffic_clicks_total",
			Help: "Click redirects by outcome",
		}, []string{"outcome"},
	)
	CacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "traffic_click_cache_lookups_total",
			Help: "Click-limit cache lookups by result",
		}, []string{"result"},
	)
	NetworkCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "traffic_adnetwork_calls_total",
			Help: "Ad network calls by endpoint and outcome",
		}, []string{"endpoint", "outcome"},
	)
	NetworkRetries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "traffic_adnetwork_retries_total",
			Help: "Ad network retry attempts by endpoint",
		}, []string{"endpoint"},
	)
	Transitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "traffic_automation_transitions_total",
			Help: "Automation state transitions",
		}, []string{"from", "to"},
	)
	TickErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "traffic_automation_tick_errors_total",
		Help: "Failed campaign evaluations",
	})
	BudgetFlushes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "traffic_budget_flushes_total",
			Help: "Aggregated budget updates by outcome",
		}, []string{"outcome"},
	)
	ProtectionViolations = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "traffic_click_limit_protection_violations_total",
		Help: "Discarded writes to protected original click limits",
	})
)

func init() {
	prometheus.MustRegister(
		RequestsTotal, Latency, InFlight,
		ClicksServed, CacheLookups,
		NetworkCalls, NetworkRetries,
		Transitions, TickErrors, BudgetFlushes,
		ProtectionViolations,
	)
}

func MetricsHandler() http.Handler { return promhttp.Handler() }

type rec struct {
	http.ResponseWriter
	code int
}

func (r *rec) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

// Measure records latency and status codes of every request.
func Measure(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		InFlight.Inc()
		defer InFlight.Dec()

		rr := &rec{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rr, r)

		Latency.Observe(time.Since(start).Seconds())
		RequestsTotal.WithLabelValues(strconv.Itoa(rr.code)).Inc()
	})
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterHandleRequestPanic  prometheus.Counter
	CounterRateLimitedRequests prometheus.Counter
	CounterRepoFailures        *prometheus.CounterVec
	CounterPickerReloads       *prometheus.CounterVec
	CounterFormSubmissions     *prometheus.CounterVec
	CounterPublishedEvents     *prometheus.CounterVec

	// gauges
	GaugeRequests   prometheus.Gauge
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistogramRequestDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("trainsmart", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("trainsmart", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterRateLimitedRequests := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited_requests",
		Help:      "The total number of rate limited requests",
	})
	counterRepoFailures := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "repository_failures",
		Help:      "The total number of failed repository calls, by entity and operation",
	}, []string{"entity", "op"})
	counterPickerReloads := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "picker_reloads",
		Help:      "The total number of option list fetches issued by pickers",
	}, []string{"picker"})
	counterFormSubmissions := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "form_submissions",
		Help:      "The total number of form submissions, by form and result",
	}, []string{"form", "result"})
	counterPublishedEvents := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "published_events",
		Help:      "The total number of domain events handed to the publisher",
	}, []string{"type", "result"})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})

	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"route", "method", "status_code"})

	return &Manager{
		CounterRequests:            counterRequests,
		CounterHandleRequestPanic:  counterHandleRequestPanic,
		CounterRateLimitedRequests: counterRateLimitedRequests,
		CounterRepoFailures:        counterRepoFailures,
		CounterPickerReloads:       counterPickerReloads,
		CounterFormSubmissions:     counterFormSubmissions,
		CounterPublishedEvents:     counterPublishedEvents,
		GaugeRequests:              gaugeRequests,
		GaugeLifeSignal:            gaugeLifeSignal,
		HistogramRequestDuration:   histogramRequestDuration,
	}
}

// RepoFailure is nil safe, handy for packages that are tested without metrics.
func (m *Manager) RepoFailure(entity, op string) {
	if m == nil {
		return
	}
	m.CounterRepoFailures.WithLabelValues(entity, op).Inc()
}

func (m *Manager) PickerReload(picker string) {
	if m == nil {
		return
	}
	m.CounterPickerReloads.WithLabelValues(picker).Inc()
}

func (m *Manager) FormSubmission(form, result string) {
	if m == nil {
		return
	}
	m.CounterFormSubmissions.WithLabelValues(form, result).Inc()
}

func (m *Manager) PublishedEvent(eventType string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.CounterPublishedEvents.WithLabelValues(eventType, result).Inc()
}

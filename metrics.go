package twitter

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts API round trips. A nil *Metrics records nothing.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "twitter_dm_requests_total",
				Help: "Total direct message API requests",
			},
			[]string{"endpoint", "method", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "twitter_dm_request_duration_seconds",
				Help:    "Direct message API request duration",
				Buckets: []float64{.025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
	}

	for _, c := range []prometheus.Collector{m.requests, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// statusCode 0 means the request never got a response.
func (m *Metrics) observe(endpoint, method string, statusCode int, d time.Duration) {
	if m == nil {
		return
	}

	status := "error"
	if statusCode != 0 {
		status = strconv.Itoa(statusCode)
	}

	m.requests.WithLabelValues(endpoint, method, status).Inc()
	m.duration.WithLabelValues(endpoint, method).Observe(d.Seconds())
}

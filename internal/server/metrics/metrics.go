// Package metrics exposes Prometheus counters for authentication and
// authorization outcomes, and an HTTP server for /metrics and health probes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Login results.
const (
	LoginSuccess            = "success"
	LoginInvalidCredentials = "invalid_credentials"
	LoginError              = "error"
)

// Metrics holds the server's custom collectors.
type Metrics struct {
	LoginsTotal     *prometheus.CounterVec
	RejectionsTotal *prometheus.CounterVec
	AuthzDenied     prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		LoginsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "eventplanner_auth_logins_total",
				Help: "Login attempts by result",
			},
			[]string{"result"},
		),
		RejectionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "eventplanner_auth_rejections_total",
				Help: "Requests rejected as unauthenticated, by reason",
			},
			[]string{"reason"},
		),
		AuthzDenied: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "eventplanner_authz_denied_total",
				Help: "Event lookups that matched no event owned by the caller",
			},
		),
	}

	reg.MustRegister(m.LoginsTotal, m.RejectionsTotal, m.AuthzDenied)

	return m
}

// Nil-safe recorders, so handlers can run without metrics in tests.

func (m *Metrics) RecordLogin(result string) {
	if m == nil {
		return
	}
	m.LoginsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) RecordRejection(reason string) {
	if m == nil {
		return
	}
	m.RejectionsTotal.WithLabelValues(reason).Inc()
}

func (m *Metrics) RecordDenied() {
	if m == nil {
		return
	}
	m.AuthzDenied.Inc()
}

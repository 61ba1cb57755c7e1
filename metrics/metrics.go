package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	TokensIssuedTotal  prometheus.Counter
	RegistrationsTotal *prometheus.CounterVec
	EmailsSentTotal    *prometheus.CounterVec
}

// New registers the service's metrics on reg. Tests pass a private
// registry so parallel packages don't collide in the default one.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		TokensIssuedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "cyon_session_tokens_issued_total",
			Help: "Total number of registration session tokens issued",
		}),
		RegistrationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cyon_registrations_total",
			Help: "Total number of registration attempts by outcome",
		}, []string{"outcome"}),
		EmailsSentTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cyon_emails_sent_total",
			Help: "Total number of emails delivered, by sending identity",
		}, []string{"sender"}),
	}
}

func (m *Metrics) IncrementTokensIssued() {
	m.TokensIssuedTotal.Inc()
}

func (m *Metrics) IncrementRegistrations(outcome string) {
	m.RegistrationsTotal.WithLabelValues(outcome).Inc()
}

// IncrementEmailsSent records one delivered email. The sender label
// distinguishes the primary identity from the fallback, which is the
// only signal for how often the fallback fires.
func (m *Metrics) IncrementEmailsSent(sender string) {
	m.EmailsSentTotal.WithLabelValues(sender).Inc()
}

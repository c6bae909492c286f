package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Submission outcomes recorded by SubmissionMetrics.
const (
	OutcomeAccepted  = "accepted"
	OutcomeRejected  = "rejected"
	OutcomeDuplicate = "duplicate"
	OutcomeError     = "error"
)

// SubmissionMetrics counts public form submissions by outcome.
type SubmissionMetrics struct {
	contactSubmissions *prometheus.CounterVec
	newsletterSignups  *prometheus.CounterVec
	adminUpdates       *prometheus.CounterVec
}

// NewSubmissionMetrics registers the submission counters with reg.
func NewSubmissionMetrics(reg prometheus.Registerer) *SubmissionMetrics {
	factory := promauto.With(reg)
	return &SubmissionMetrics{
		contactSubmissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gkgroup_contact_submissions_total",
			Help: "Contact form submissions by outcome",
		}, []string{"outcome"}),
		newsletterSignups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gkgroup_newsletter_signups_total",
			Help: "Newsletter signups by outcome",
		}, []string{"outcome"}),
		adminUpdates: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gkgroup_admin_message_updates_total",
			Help: "Contact messages changed by admin bulk actions",
		}, []string{"action"}),
	}
}

func (m *SubmissionMetrics) contact(outcome string) {
	if m != nil {
		m.contactSubmissions.WithLabelValues(outcome).Inc()
	}
}

func (m *SubmissionMetrics) newsletter(outcome string) {
	if m != nil {
		m.newsletterSignups.WithLabelValues(outcome).Inc()
	}
}

func (m *SubmissionMetrics) adminUpdate(action string, n int64) {
	if m != nil && n > 0 {
		m.adminUpdates.WithLabelValues(action).Add(float64(n))
	}
}

// Package metrics defines and registers the custom Prometheus metrics
// for the site backend. It is the single source of truth for metric
// names, labels, and help strings; HTTP-level request metrics come from
// the echoprometheus middleware instead.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "legalsite"

// LoginAttemptsTotal counts login attempts by outcome.
// Label:
//   - outcome: "success", "invalid" (bad username or password, identical
//     to the caller), or "rate_limited"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// LeadsCreatedTotal counts contact-form submissions that were persisted.
var LeadsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leads_created_total",
		Help:      "Total number of leads created via the public form.",
	},
)

// LeadNotificationsTotal counts outbound lead notification e-mails.
// Label:
//   - outcome: "sent", "failed", or "skipped" (mailer not configured)
var LeadNotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lead_notifications_total",
		Help:      "Total number of lead notification e-mails, by outcome.",
	},
	[]string{"outcome"},
)

// CsrfRejectionsTotal counts mutating requests rejected by the CSRF guard.
var CsrfRejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "csrf_rejections_total",
		Help:      "Total number of requests rejected for a missing or invalid CSRF token.",
	},
)

// UploadsTotal counts admin file uploads.
var UploadsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of files stored via the upload endpoint.",
	},
)

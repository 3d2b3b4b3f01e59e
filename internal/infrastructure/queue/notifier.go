package queue

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pravoline/legal-site-api/internal/api/metrics"
	"github.com/pravoline/legal-site-api/internal/core/domain"
	"github.com/pravoline/legal-site-api/internal/core/ports"
)

const (
	defaultWorkers = 2
	channelBuffer  = 64

	leadSubject = "Новая заявка с сайта"
)

// Notifier fans new consultation requests out to subscribed accounts by
// e-mail, off the request path. A full queue drops the notification
// rather than block lead capture.
type Notifier struct {
	jobs   chan domain.Lead
	users  ports.UserRepository
	mailer ports.Mailer
	log    zerolog.Logger
}

func NewNotifier(users ports.UserRepository, mailer ports.Mailer, log zerolog.Logger) *Notifier {
	return &Notifier{
		jobs:   make(chan domain.Lead, channelBuffer),
		users:  users,
		mailer: mailer,
		log:    log,
	}
}

// Start launches the delivery workers. Workers stop when ctx is cancelled.
func (n *Notifier) Start(ctx context.Context) {
	for i := 0; i < defaultWorkers; i++ {
		go n.runWorker(ctx, i)
	}
}

// Enqueue schedules a notification for a captured lead without blocking.
func (n *Notifier) Enqueue(lead domain.Lead) {
	select {
	case n.jobs <- lead:
	default:
		n.log.Warn().Str("lead_id", lead.ID).Msg("notification queue full, dropping")
	}
}

func (n *Notifier) runWorker(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		case lead, ok := <-n.jobs:
			if !ok {
				return
			}
			n.deliver(ctx, id, lead)
		}
	}
}

func (n *Notifier) deliver(ctx context.Context, workerID int, lead domain.Lead) {
	if !n.mailer.Enabled() {
		metrics.LeadNotificationsTotal.WithLabelValues("skipped").Inc()
		return
	}

	recipients, err := n.users.FindNotifiable(ctx)
	if err != nil {
		n.log.Error().Err(err).
			Str("lead_id", lead.ID).
			Int("worker_id", workerID).
			Msg("recipient lookup failed")
		metrics.LeadNotificationsTotal.WithLabelValues("failed").Inc()
		return
	}
	if len(recipients) == 0 {
		metrics.LeadNotificationsTotal.WithLabelValues("skipped").Inc()
		return
	}

	body := fmt.Sprintf("ФИО: %s\nТелефон: %s", lead.Name, lead.Phone)
	for _, user := range recipients {
		if err := n.mailer.Send(ctx, user.Email, leadSubject, body); err != nil {
			n.log.Error().Err(err).
				Str("lead_id", lead.ID).
				Str("to", user.Email).
				Int("worker_id", workerID).
				Msg("notification delivery failed")
			metrics.LeadNotificationsTotal.WithLabelValues("failed").Inc()
			continue
		}
		metrics.LeadNotificationsTotal.WithLabelValues("sent").Inc()
	}
}

package ports

import (
	"context"

	"github.com/pravoline/legal-site-api/internal/core/domain"
)

// LeadRepository persists contact-form submissions.
type LeadRepository interface {
	Create(ctx context.Context, lead *domain.Lead) (*domain.Lead, error)
	// List returns leads newest first.
	List(ctx context.Context) ([]domain.Lead, error)
	Delete(ctx context.Context, id string) error
}

// LeadService validates and stores submissions and triggers staff
// notification.
type LeadService interface {
	Create(ctx context.Context, name, phone string) (*domain.Lead, error)
	List(ctx context.Context) ([]domain.Lead, error)
	Delete(ctx context.Context, id string) error
}

// LeadNotifier delivers new-lead notifications off the request path.
type LeadNotifier interface {
	Enqueue(lead domain.Lead)
}

// Mailer sends a plain-text message to a single recipient.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
	// Enabled reports whether outbound mail is configured at all.
	Enabled() bool
}

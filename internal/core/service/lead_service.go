package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/pravoline/legal-site-api/internal/core/domain"
	"github.com/pravoline/legal-site-api/internal/core/ports"
)

// LeadService stores contact-form submissions and hands each new lead to
// the notifier for e-mail fan-out.
type LeadService struct {
	repo     ports.LeadRepository
	notifier ports.LeadNotifier
	logger   zerolog.Logger
}

func NewLeadService(repo ports.LeadRepository, notifier ports.LeadNotifier, logger zerolog.Logger) *LeadService {
	return &LeadService{repo: repo, notifier: notifier, logger: logger}
}

// Create validates and persists a submission. Validation failures carry
// the offending field; nothing is written when they occur. Notification
// is queued after the write and cannot fail the request.
func (s *LeadService) Create(ctx context.Context, name, phone string) (*domain.Lead, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < 2 {
		return nil, &domain.FieldError{Field: "name", Message: "must be at least 2 characters"}
	}
	if !domain.ValidPhone(phone) {
		return nil, &domain.FieldError{Field: "phone", Message: "must match +7 (XXX) XXX XX XX"}
	}

	lead := &domain.Lead{
		Name:      name,
		Phone:     phone,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, lead)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("action", "lead_created").Str("lead_id", created.ID).Msg("lead created")

	if s.notifier != nil {
		s.notifier.Enqueue(*created)
	}
	return created, nil
}

func (s *LeadService) List(ctx context.Context) ([]domain.Lead, error) {
	return s.repo.List(ctx)
}

func (s *LeadService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("action", "lead_deleted").Str("lead_id", id).Msg("lead deleted")
	return nil
}

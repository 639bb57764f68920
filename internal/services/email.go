package services

import (
	"context"
	"fmt"
	"log/slog"

	"explorewithme/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendRequestStatus tells a requester how the owner moderated their request.
func (s *emailService) SendRequestStatus(ctx context.Context, data *domain.RequestStatusEmailData) error {
	if data == nil {
		return fmt.Errorf("request status data is nil")
	}
	content, err := s.renderer.RenderRequestStatus(data)
	if err != nil {
		return fmt.Errorf("failed to render request_status email: %w", err)
	}
	return s.send(ctx, "request_status", data.Email, content)
}

// SendEventModerated tells an initiator that an admin published or rejected their event.
func (s *emailService) SendEventModerated(ctx context.Context, data *domain.EventModeratedEmailData) error {
	if data == nil {
		return fmt.Errorf("event moderated data is nil")
	}
	content, err := s.renderer.RenderEventModerated(data)
	if err != nil {
		return fmt.Errorf("failed to render event_moderated email: %w", err)
	}
	return s.send(ctx, "event_moderated", data.Email, content)
}

func (s *emailService) send(ctx context.Context, kind, to string, content *domain.EmailContent) error {
	if err := s.mailer.Send(ctx, to, content.Subject, content.HTML, content.Text); err != nil {
		return fmt.Errorf("failed to send %s email: %w", kind, err)
	}
	s.logger.InfoContext(ctx, "email sent", "kind", kind, "to", to)
	return nil
}

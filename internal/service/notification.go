package service

import (
	"context"
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"

	"github.com/tuanvumaihuynh/commerce-mock/internal/config"
)

type NotificationService interface {
	// SendEmail records the notification. When SMTP is configured the
	// message is also delivered; a delivery failure is logged but
	// does not fail the notification, keeping the mock contract.
	SendEmail(ctx context.Context, email, message string) error
}

type notificationService struct {
	cfg    config.SMTP
	logger *slog.Logger
	dialer *gomail.Dialer
}

func NewNotificationService(cfg config.SMTP, logger *slog.Logger) NotificationService {
	svc := &notificationService{
		cfg:    cfg,
		logger: logger.With(slog.String("service", "notification")),
	}

	if cfg.Enabled() {
		svc.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	}

	return svc
}

func (s *notificationService) SendEmail(ctx context.Context, email, message string) error {
	s.logger.InfoContext(ctx, fmt.Sprintf("Email sent to %s: %s", email, message),
		slog.String("email", email))

	if s.dialer == nil {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Notification")
	m.SetBody("text/plain", message)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.ErrorContext(ctx, "smtp delivery failed",
			slog.String("email", email), slog.Any("error", err))
	}

	return nil
}

package main

import (
	"context"
	"log/slog"

	"github.com/patricktheassistant/cyon-movie-night/email"
	"github.com/patricktheassistant/cyon-movie-night/email/resend"
	"github.com/patricktheassistant/cyon-movie-night/metrics"
)

var _ email.Sender = &EmailLogger{}

// email.Sender that logs out the email contents for local dev and
// demo deployments without a provider API key.
type EmailLogger struct {
	logger *slog.Logger
}

func (el *EmailLogger) SendEmail(ctx context.Context, e email.Email) error {
	el.logger.Info("email that would be sent",
		slog.String("to", e.ToAddress),
		slog.String("subject", e.Subject),
		slog.Int("html-body-size", len(e.HTMLBody)),
	)

	return nil
}

func createEmailSender(cfg Config, logger *slog.Logger, m *metrics.Metrics) email.Sender {
	if cfg.Resend.APIKey == "" {
		logger.Warn("RESEND_API_KEY is not set, emails will be logged instead of sent")

		return &EmailLogger{logger: logger}
	}

	return resend.NewSender(cfg.Resend.APIKey, cfg.Resend.PrimarySender, cfg.Resend.FallbackSender, logger, m)
}

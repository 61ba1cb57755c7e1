package api

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/patricktheassistant/cyon-movie-night/email"
	"github.com/patricktheassistant/cyon-movie-night/events"
	"github.com/patricktheassistant/cyon-movie-night/metrics"
	"github.com/patricktheassistant/cyon-movie-night/registration"
	"github.com/patricktheassistant/cyon-movie-night/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

var noopLogger = slog.New(slog.DiscardHandler)

var testEvent = events.Info{
	Theme: "CYON Movie Night",
	Date:  "2025-11-21",
	Time:  "18:00",
	Venue: "New Church Hall",
}

const testAdminEmail = "admin@example.com"

var _ email.Sender = &mockEmailSender{}

type mockEmailSender struct {
	SendEmailFunc func(ctx context.Context, e email.Email) error
	sent          []email.Email
}

func (m *mockEmailSender) SendEmail(ctx context.Context, e email.Email) error {
	if m.SendEmailFunc != nil {
		if err := m.SendEmailFunc(ctx, e); err != nil {
			return err
		}
	}
	m.sent = append(m.sent, e)

	return nil
}

func newTestHandler(t *testing.T, sender email.Sender) http.Handler {
	t.Helper()

	service := registration.NewService(session.NewStore(), sender, testEvent, testAdminEmail)
	a := NewAPI(service, noopLogger, LOCAL, metrics.New(prometheus.NewRegistry()))

	handler, err := a.Handler()
	require.NoError(t, err)

	return handler
}

// Package resend sends email through the Resend HTTP API
// (https://resend.com/docs/api-reference/emails/send-email).
//
// The official SDK hides the provider's status code and error
// message, which we need to decide whether the primary sending
// identity was rejected for an unverified domain, so this client
// speaks the REST API directly.
package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/patricktheassistant/cyon-movie-night/email"
	"github.com/patricktheassistant/cyon-movie-night/metrics"
)

const defaultBaseURL = "https://api.resend.com"

// Outbound calls are the only latency-bearing work in a registration
// request, so they get a hard timeout.
const requestTimeout = 15 * time.Second

// APIError is a non-2xx response from the Resend API.
type APIError struct {
	StatusCode int
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("resend: %d: %s", e.StatusCode, e.Message)
}

// isDomainNotVerified matches the rejection Resend returns when the
// sender's domain has not completed DNS verification.
func isDomainNotVerified(err *APIError) bool {
	return err.StatusCode == http.StatusForbidden && strings.Contains(err.Message, "domain is not verified")
}

var _ email.Sender = &Sender{}

// Sender sends from primaryFrom, falling back to fallbackFrom for the
// single case where the provider rejects the primary identity's
// domain as unverified. Any other failure is terminal.
type Sender struct {
	apiKey       string
	primaryFrom  string
	fallbackFrom string
	baseURL      string
	httpClient   *http.Client
	logger       *slog.Logger
	metrics      *metrics.Metrics
}

func NewSender(apiKey, primaryFrom, fallbackFrom string, logger *slog.Logger, m *metrics.Metrics) *Sender {
	return &Sender{
		apiKey:       apiKey,
		primaryFrom:  primaryFrom,
		fallbackFrom: fallbackFrom,
		baseURL:      defaultBaseURL,
		httpClient:   &http.Client{Timeout: requestTimeout},
		logger:       logger,
		metrics:      m,
	}
}

func (s *Sender) SendEmail(ctx context.Context, e email.Email) error {
	err := s.send(ctx, s.primaryFrom, e)
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) || !isDomainNotVerified(apiErr) {
		return err
	}

	s.logger.WarnContext(ctx, "Primary sender domain not verified, retrying with fallback sender",
		slog.String("fallback-sender", s.fallbackFrom),
	)

	return s.send(ctx, s.fallbackFrom, e)
}

type sendEmailRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text,omitempty"`
}

func (s *Sender) send(ctx context.Context, from string, e email.Email) error {
	body, err := json.Marshal(sendEmailRequest{
		From:    from,
		To:      e.ToAddress,
		Subject: e.Subject,
		HTML:    e.HTMLBody,
		Text:    e.TextBody,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal send request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call resend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		s.metrics.IncrementEmailsSent(from)
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
		apiErr.Message = "failed to decode error response: " + err.Error()
	}

	return apiErr
}

package registration

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/patricktheassistant/cyon-movie-night/email"
	"github.com/patricktheassistant/cyon-movie-night/events"
	"github.com/patricktheassistant/cyon-movie-night/session"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/patricktheassistant/cyon-movie-night/registration")

type Request struct {
	Name         string
	Email        string
	SessionToken string
}

// Service orchestrates one registration: claim the email, validate
// the submission, render the ticket, and deliver it. All state it
// touches lives for the process lifetime only.
type Service struct {
	guard      *Guard
	sessions   *session.Store
	sender     email.Sender
	event      events.Info
	adminEmail string

	// Overridable for tests that care about token expiry.
	now func() time.Time
}

func NewService(sessions *session.Store, sender email.Sender, event events.Info, adminEmail string) *Service {
	return &Service{
		guard:      NewGuard(),
		sessions:   sessions,
		sender:     sender,
		event:      event,
		adminEmail: adminEmail,
		now:        time.Now,
	}
}

// IssueSession hands out a fresh registration window token.
func (s *Service) IssueSession() session.Token {
	return s.sessions.Issue(s.now())
}

// Register validates the submission and, on success, emails the
// ticket to the attendee and a notification to the admin, returning
// the generated ticket ID.
//
// Check order is part of the contract: duplicate email, then session
// validity (only when a token was supplied), then field presence and
// format. The email is claimed atomically up front so concurrent
// submissions can't both get a ticket, and released again on any
// failure so the attendee can retry.
func (s *Service) Register(ctx context.Context, req Request) (string, error) {
	ctx, span := tracer.Start(ctx, "registration.Register", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	if !s.guard.Reserve(req.Email) {
		return "", NewDuplicateEmailError("This email has already been registered")
	}

	registered := false
	defer func() {
		if !registered {
			s.guard.Release(req.Email)
		}
	}()

	if req.SessionToken != "" && !s.sessions.Validate(req.SessionToken, s.now()) {
		return "", NewSessionExpiredError("Registration window has expired. Please refresh to start over.")
	}

	if req.Name == "" {
		return "", NewMissingNameError("Name is required")
	}

	if req.Email == "" {
		return "", NewMissingEmailError("Email is required")
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		return "", NewInvalidEmailFormatError(fmt.Sprintf("%q is not a valid email address", req.Email), err)
	}

	ticketID, err := NewTicketID()
	if err != nil {
		return "", NewRenderFailedError("Failed to generate a ticket ID", err)
	}
	span.SetAttributes(attribute.String("registration.ticket_id", ticketID))

	ticket := Ticket{
		ID:            ticketID,
		AttendeeName:  req.Name,
		AttendeeEmail: req.Email,
		RegisteredAt:  s.now(),
	}

	ticketEmail, err := BuildTicketEmail(ticket, s.event)
	if err != nil {
		span.RecordError(err)
		return "", NewRenderFailedError("Failed to render the ticket email", err)
	}

	// The attendee send fully completes, including any fallback
	// retry inside the sender, before the admin send starts.
	err = s.sender.SendEmail(ctx, ticketEmail)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "ticket email delivery failed")
		return "", NewDeliveryFailedError("Failed to send ticket email", err)
	}

	adminEmail, err := BuildAdminNotificationEmail(s.adminEmail, ticket, s.event)
	if err != nil {
		span.RecordError(err)
		return "", NewRenderFailedError("Failed to render the admin notification", err)
	}

	err = s.sender.SendEmail(ctx, adminEmail)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "admin notification delivery failed")
		return "", NewDeliveryFailedError("Failed to send admin notification email", err)
	}

	registered = true

	return ticket.ID, nil
}

package registration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/patricktheassistant/cyon-movie-night/email"
	"github.com/patricktheassistant/cyon-movie-night/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func newTestService(sender email.Sender) *Service {
	return NewService(session.NewStore(), sender, testEvent, "admin@example.com")
}

func assertReason(t *testing.T, err error, reason ErrorReason) {
	t.Helper()

	var regErr *Error
	require.ErrorAs(t, err, &regErr)
	assert.Equal(t, reason, regErr.Reason)
}

func TestRegister(t *testing.T) {
	t.Run("success sends attendee ticket then admin notification", func(t *testing.T) {
		sender := &mockEmailSender{}
		svc := newTestService(sender)

		ticketID, err := svc.Register(context.Background(), Request{Name: "Jane Doe", Email: "jane@example.com"})

		require.NoError(t, err)
		assert.Regexp(t, ticketIDPattern, ticketID)

		require.Len(t, sender.sent, 2)
		assert.Equal(t, "jane@example.com", sender.sent[0].ToAddress)
		assert.Contains(t, sender.sent[0].Subject, ticketID)
		assert.Equal(t, "admin@example.com", sender.sent[1].ToAddress)
		assert.Contains(t, sender.sent[1].Subject, "Jane Doe")
	})

	t.Run("duplicate email is rejected before any send", func(t *testing.T) {
		sender := &mockEmailSender{}
		svc := newTestService(sender)

		_, err := svc.Register(context.Background(), Request{Name: "Jane Doe", Email: "Jane@Example.com"})
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), Request{Name: "Jane Doe", Email: "jane@example.com"})

		assertReason(t, err, REASON_DUPLICATE_EMAIL)
		assert.Len(t, sender.sent, 2, "no further emails should have been sent")
	})

	t.Run("duplicate check precedes token and field checks", func(t *testing.T) {
		sender := &mockEmailSender{}
		svc := newTestService(sender)

		_, err := svc.Register(context.Background(), Request{Name: "Jane Doe", Email: "jane@example.com"})
		require.NoError(t, err)

		// Blank name, bogus token, and a duplicate email: the
		// duplicate wins.
		_, err = svc.Register(context.Background(), Request{Email: "jane@example.com", SessionToken: "never-issued"})

		assertReason(t, err, REASON_DUPLICATE_EMAIL)
	})

	t.Run("valid session token is accepted", func(t *testing.T) {
		sender := &mockEmailSender{}
		svc := newTestService(sender)

		token := svc.IssueSession()

		_, err := svc.Register(context.Background(), Request{
			Name:         "Jane Doe",
			Email:        "jane@example.com",
			SessionToken: token.Value,
		})

		assert.NoError(t, err)
	})

	t.Run("never issued token is rejected", func(t *testing.T) {
		sender := &mockEmailSender{}
		svc := newTestService(sender)

		_, err := svc.Register(context.Background(), Request{
			Name:         "Jane Doe",
			Email:        "jane@example.com",
			SessionToken: "never-issued",
		})

		assertReason(t, err, REASON_SESSION_EXPIRED)
		assert.Empty(t, sender.sent)
	})

	t.Run("token expires after its three minute window", func(t *testing.T) {
		sender := &mockEmailSender{}
		svc := newTestService(sender)

		issuedAt := time.Now()
		svc.now = func() time.Time { return issuedAt }
		token := svc.IssueSession()

		svc.now = func() time.Time { return issuedAt.Add(session.TTL + time.Second) }
		_, err := svc.Register(context.Background(), Request{
			Name:         "Jane Doe",
			Email:        "jane@example.com",
			SessionToken: token.Value,
		})

		assertReason(t, err, REASON_SESSION_EXPIRED)
	})

	t.Run("blank name beats blank email", func(t *testing.T) {
		svc := newTestService(&mockEmailSender{})

		_, err := svc.Register(context.Background(), Request{})

		assertReason(t, err, REASON_MISSING_NAME)
	})

	t.Run("blank name with valid email", func(t *testing.T) {
		svc := newTestService(&mockEmailSender{})

		_, err := svc.Register(context.Background(), Request{Email: "jane@example.com"})

		assertReason(t, err, REASON_MISSING_NAME)
	})

	t.Run("blank email", func(t *testing.T) {
		svc := newTestService(&mockEmailSender{})

		_, err := svc.Register(context.Background(), Request{Name: "Jane Doe"})

		assertReason(t, err, REASON_MISSING_EMAIL)
	})

	t.Run("malformed email", func(t *testing.T) {
		svc := newTestService(&mockEmailSender{})

		_, err := svc.Register(context.Background(), Request{Name: "Jane Doe", Email: "not-an-email"})

		assertReason(t, err, REASON_INVALID_EMAIL_FORMAT)
	})

	t.Run("failed attendee delivery allows a retry", func(t *testing.T) {
		sender := &mockEmailSender{
			SendEmailFunc: func(ctx context.Context, e email.Email) error {
				return errors.New("provider down")
			},
		}
		svc := newTestService(sender)

		_, err := svc.Register(context.Background(), Request{Name: "Jane Doe", Email: "jane@example.com"})
		assertReason(t, err, REASON_DELIVERY_FAILED)

		sender.SendEmailFunc = nil
		_, err = svc.Register(context.Background(), Request{Name: "Jane Doe", Email: "jane@example.com"})

		assert.NoError(t, err)
	})

	t.Run("failed admin delivery allows a retry", func(t *testing.T) {
		sender := &mockEmailSender{}
		sender.SendEmailFunc = func(ctx context.Context, e email.Email) error {
			if e.ToAddress == "admin@example.com" {
				return errors.New("provider down")
			}
			return nil
		}
		svc := newTestService(sender)

		_, err := svc.Register(context.Background(), Request{Name: "Jane Doe", Email: "jane@example.com"})
		assertReason(t, err, REASON_DELIVERY_FAILED)

		sender.SendEmailFunc = nil
		_, err = svc.Register(context.Background(), Request{Name: "Jane Doe", Email: "jane@example.com"})

		assert.NoError(t, err)
	})
}

func TestIssueSession(t *testing.T) {
	svc := newTestService(&mockEmailSender{})

	issuedAt := time.Now()
	svc.now = func() time.Time { return issuedAt }

	token := svc.IssueSession()

	assert.NotEmpty(t, token.Value)
	assert.Equal(t, issuedAt.Add(session.TTL), token.ExpiresAt)
}

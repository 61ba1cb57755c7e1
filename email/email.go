package email

import "context"

// Email is one outbound message. The sending identity is owned by the
// Sender implementation, not the caller, so the provider can swap to
// its fallback identity without the caller knowing.
type Email struct {
	ToAddress string
	Subject   string
	HTMLBody  string
	TextBody  string
}

type Sender interface {
	SendEmail(ctx context.Context, e Email) error
}

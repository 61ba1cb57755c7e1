package registration

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const (
	ticketIDPrefix  = "CYON-"
	ticketIDCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	ticketIDLength  = 9
)

// Ticket exists only for the duration of one registration request.
// There is no lookup or reissue; the email is the only copy.
type Ticket struct {
	ID            string
	AttendeeName  string
	AttendeeEmail string
	RegisteredAt  time.Time
}

// NewTicketID generates an ID like "CYON-X7K2M9QP4". The space is
// large enough that collisions within one process lifetime are
// negligible, so none are checked for.
func NewTicketID() (string, error) {
	suffix := make([]byte, ticketIDLength)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(ticketIDCharset))))
		if err != nil {
			return "", fmt.Errorf("failed to generate ticket ID: %w", err)
		}
		suffix[i] = ticketIDCharset[n.Int64()]
	}

	return ticketIDPrefix + string(suffix), nil
}

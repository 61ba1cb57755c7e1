package registration

import (
	"strings"
	"sync"
)

// Guard is the set of emails that have completed (or are mid-flight
// in) a registration. Emails are compared case-insensitively.
//
// Reserve is an atomic insert-if-absent performed before any
// rendering or delivery work, so two near-simultaneous submissions
// for the same email cannot both proceed. A reservation that is never
// released is the permanent record of a successful registration; the
// set is in-memory and reset on process restart by design.
type Guard struct {
	mu     sync.Mutex
	emails map[string]struct{}
}

func NewGuard() *Guard {
	return &Guard{
		emails: make(map[string]struct{}),
	}
}

// Reserve claims the email, returning false if it is already claimed.
func (g *Guard) Reserve(emailAddr string) bool {
	normalized := normalizeEmail(emailAddr)

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.emails[normalized]; exists {
		return false
	}
	g.emails[normalized] = struct{}{}

	return true
}

// Release gives the email back after a failed registration so the
// attendee can retry.
func (g *Guard) Release(emailAddr string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.emails, normalizeEmail(emailAddr))
}

func normalizeEmail(emailAddr string) string {
	return strings.ToLower(emailAddr)
}

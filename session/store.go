package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// TTL is how long a registrant has to complete the form after
// requesting a token.
const TTL = 3 * time.Minute

type Token struct {
	Value     string
	ExpiresAt time.Time
}

// Store holds outstanding session tokens in memory. Tokens do not
// survive a process restart, which only means in-flight registrants
// have to reload the form.
type Store struct {
	mu     sync.Mutex
	tokens map[string]time.Time
}

func NewStore() *Store {
	return &Store{
		tokens: make(map[string]time.Time),
	}
}

// Issue creates a fresh token expiring at now + TTL. Expired entries
// are swept here rather than on a background timer; Validate compares
// timestamps, so correctness never depends on sweep timing.
func (s *Store) Issue(now time.Time) Token {
	s.mu.Lock()
	defer s.mu.Unlock()

	for value, expiresAt := range s.tokens {
		if !now.Before(expiresAt) {
			delete(s.tokens, value)
		}
	}

	token := Token{
		Value:     uuid.NewString(),
		ExpiresAt: now.Add(TTL),
	}
	s.tokens[token.Value] = token.ExpiresAt

	return token
}

// Validate reports whether the token exists and has not expired.
// Never-issued and expired tokens are deliberately indistinguishable.
func (s *Store) Validate(value string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.tokens[value]

	return ok && now.Before(expiresAt)
}

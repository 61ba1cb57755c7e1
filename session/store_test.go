package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIssueAndValidate(t *testing.T) {
	now := time.Now()

	t.Run("fresh token is valid inside its window", func(t *testing.T) {
		store := NewStore()

		token := store.Issue(now)

		assert.Equal(t, now.Add(TTL), token.ExpiresAt)
		assert.True(t, store.Validate(token.Value, now))
		assert.True(t, store.Validate(token.Value, now.Add(TTL-time.Second)))
	})

	t.Run("token is invalid at and after expiry", func(t *testing.T) {
		store := NewStore()

		token := store.Issue(now)

		assert.False(t, store.Validate(token.Value, now.Add(TTL)))
		assert.False(t, store.Validate(token.Value, now.Add(TTL+time.Second)))
	})

	t.Run("never issued token is invalid", func(t *testing.T) {
		store := NewStore()

		assert.False(t, store.Validate("not-a-real-token", now))
	})

	t.Run("issuing does not invalidate earlier unexpired tokens", func(t *testing.T) {
		store := NewStore()

		first := store.Issue(now)
		second := store.Issue(now.Add(time.Minute))

		assert.True(t, store.Validate(first.Value, now.Add(time.Minute)))
		assert.True(t, store.Validate(second.Value, now.Add(time.Minute)))
	})

	t.Run("issue sweeps expired tokens", func(t *testing.T) {
		store := NewStore()

		expired := store.Issue(now)
		store.Issue(now.Add(TTL + time.Second))

		assert.Len(t, store.tokens, 1)
		assert.NotContains(t, store.tokens, expired.Value)
	})

	t.Run("tokens are unique per issue", func(t *testing.T) {
		store := NewStore()

		first := store.Issue(now)
		second := store.Issue(now)

		assert.NotEqual(t, first.Value, second.Value)
	})
}

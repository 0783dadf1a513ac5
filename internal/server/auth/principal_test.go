package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/eventplanner/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestResolver_Success(t *testing.T) {
	c := newTestCodec(t, "secret")
	tok, err := c.Issue("u1", "u1@example.com", t0)
	require.NoError(t, err)

	p, err := NewResolver(c, fixedClock(t0.Add(time.Minute))).Resolve(tok)
	require.NoError(t, err)
	assert.Equal(t, Principal{UserID: "u1", Email: "u1@example.com"}, p)
}

// Missing, malformed and expired tokens are three different inputs with one
// outcome.
func TestResolver_UniformNotAuthenticated(t *testing.T) {
	c := newTestCodec(t, "secret")
	expired, err := c.Issue("u1", "", t0.Add(-48*time.Hour))
	require.NoError(t, err)
	foreign, err := newTestCodec(t, "other").Issue("u1", "", t0)
	require.NoError(t, err)

	r := NewResolver(c, fixedClock(t0))

	tests := []struct {
		name   string
		token  string
		reason string
	}{
		{"missing", "", "missing"},
		{"malformed", "garbage", "malformed"},
		{"expired", expired, "expired"},
		{"bad signature", foreign, "bad_signature"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := r.Resolve(tt.token)
			assert.Equal(t, Principal{}, p)
			assert.ErrorIs(t, err, common.ErrNotAuthenticated)
			assert.Equal(t, tt.reason, RejectReason(err))
			if tt.token != "" {
				assert.NotContains(t, err.Error(), tt.token)
			}
		})
	}
}

func TestResolver_ReadsClockOnEveryCall(t *testing.T) {
	c := newTestCodec(t, "secret")
	tok, err := c.Issue("u1", "", t0)
	require.NoError(t, err)

	now := t0
	r := NewResolver(c, func() time.Time { return now })

	_, err = r.Resolve(tok)
	require.NoError(t, err)

	now = t0.Add(c.TTL())
	_, err = r.Resolve(tok)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestNewResolver_DefaultClock(t *testing.T) {
	c := newTestCodec(t, "secret")
	tok, err := c.Issue("u1", "", time.Now())
	require.NoError(t, err)

	_, err = NewResolver(c, nil).Resolve(tok)
	assert.NoError(t, err)
}

func TestRejectReason_NonAuthErrors(t *testing.T) {
	assert.Equal(t, "", RejectReason(nil))
	assert.Equal(t, "", RejectReason(errors.New("db down")))
	assert.Equal(t, "", RejectReason(common.ErrNotFoundOrForbidden))
}

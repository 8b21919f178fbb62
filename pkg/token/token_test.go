package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	m := NewManager("secret", "space-auth", "space-ui", time.Minute)

	signed, expiresAt, err := m.Generate(7, "ripley")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Minute), expiresAt, 5*time.Second)

	claims, err := m.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "ripley", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestParseRejectsForeignTokens(t *testing.T) {
	issuer := NewManager("secret", "space-auth", "space-ui", time.Minute)
	signed, _, err := issuer.Generate(1, "dallas")
	require.NoError(t, err)

	tests := []struct {
		name    string
		manager *Manager
	}{
		{"wrong secret", NewManager("other", "space-auth", "space-ui", time.Minute)},
		{"wrong issuer", NewManager("secret", "someone-else", "space-ui", time.Minute)},
		{"wrong audience", NewManager("secret", "space-auth", "another-ui", time.Minute)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.manager.Parse(signed)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := NewManager("secret", "space-auth", "space-ui", time.Minute)
	m.ttl = -time.Minute

	signed, _, err := m.Generate(1, "kane")
	require.NoError(t, err)

	_, err = m.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

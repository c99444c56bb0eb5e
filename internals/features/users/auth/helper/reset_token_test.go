package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateResetToken(t *testing.T) {
	raw, hashed := GenerateResetToken()
	require.Len(t, raw, 40) // 20 random bytes, hex encoded
	require.Len(t, hashed, 64)
	assert.NotEqual(t, raw, hashed)
	assert.Equal(t, hashed, HashResetToken(raw))

	raw2, _ := GenerateResetToken()
	assert.NotEqual(t, raw, raw2)
}

func TestResetTokenValid(t *testing.T) {
	raw, hashed := GenerateResetToken()
	now := time.Now().UTC()
	future := now.Add(ResetTokenTTL)
	past := now.Add(-time.Minute)

	assert.True(t, ResetTokenValid(hashed, &future, raw, now))

	// Expired.
	assert.False(t, ResetTokenValid(hashed, &past, raw, now))

	// Wrong token.
	assert.False(t, ResetTokenValid(hashed, &future, "deadbeef", now))

	// Cleared state (token already used).
	assert.False(t, ResetTokenValid("", nil, raw, now))
	assert.False(t, ResetTokenValid("", &future, raw, now))
	assert.False(t, ResetTokenValid(hashed, nil, raw, now))
}

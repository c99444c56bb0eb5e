package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPassword(hash, "s3cret-pass"))
	assert.False(t, CheckPassword(hash, "wrong-pass"))
	assert.False(t, CheckPassword("", "s3cret-pass"))
}

func TestGenerateDummyPassword(t *testing.T) {
	a := GenerateDummyPassword()
	b := GenerateDummyPassword()
	assert.Len(t, a, 40)
	assert.NotEqual(t, a, b)
}

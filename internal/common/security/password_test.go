package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_NotPlaintext(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("other", hash))
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	first, err := HashPassword("same")
	require.NoError(t, err)
	second, err := HashPassword("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPasswordHash("same", first))
	assert.True(t, CheckPasswordHash("same", second))
}

func TestHashPassword_EmptyIsAccepted(t *testing.T) {
	hash, err := HashPassword("")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("", hash))
}

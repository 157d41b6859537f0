package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_ProducesVerifiableHash(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	// bcrypt generates a fresh salt per call
	assert.NotEqual(t, first, second)
}

func TestHashPassword_TooLong(t *testing.T) {
	// bcrypt rejects passwords longer than 72 bytes
	_, err := HashPassword(strings.Repeat("x", 100))
	assert.Error(t, err)
}

func TestCheckPasswordHash_MalformedHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("anything", "not-a-bcrypt-hash"))
}

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPassword("secret123", hash))
	assert.False(t, CheckPassword("wrong", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	first, err := HashPassword("secret123")
	assert.NoError(t, err)
	second, err := HashPassword("secret123")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

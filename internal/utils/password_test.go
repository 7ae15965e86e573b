package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/alfikriangelo/rail-ticket-reservation/internal/utils"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := utils.HashPassword("pw1", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", hash)

	assert.True(t, utils.VerifyPassword(hash, "pw1"))

	// Any non-matching variant fails: case change, partial, empty.
	assert.False(t, utils.VerifyPassword(hash, "PW1"))
	assert.False(t, utils.VerifyPassword(hash, "pw"))
	assert.False(t, utils.VerifyPassword(hash, ""))
}

func TestHashPasswordClampsCost(t *testing.T) {
	// An out-of-range cost falls back to the default instead of failing.
	hash, err := utils.HashPassword("secret", 99)
	require.NoError(t, err)
	assert.True(t, utils.VerifyPassword(hash, "secret"))
}

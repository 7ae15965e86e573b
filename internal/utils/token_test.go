package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfikriangelo/rail-ticket-reservation/internal/utils"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	tok, err := utils.NewSessionToken("secret", "alice", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)

	username, err := utils.ParseSessionToken("secret", tok.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestParseSessionTokenRejections(t *testing.T) {
	tok, err := utils.NewSessionToken("secret", "alice", 60)
	require.NoError(t, err)

	// Test case 1: wrong signing secret
	_, err = utils.ParseSessionToken("other-secret", tok.Token)
	assert.ErrorIs(t, err, utils.ErrInvalidToken)

	// Test case 2: garbage token
	_, err = utils.ParseSessionToken("secret", "not.a.jwt")
	assert.ErrorIs(t, err, utils.ErrInvalidToken)

	// Test case 3: expired token (negative TTL puts exp in the past)
	expired, err := utils.NewSessionToken("secret", "alice", -1)
	require.NoError(t, err)
	_, err = utils.ParseSessionToken("secret", expired.Token)
	assert.ErrorIs(t, err, utils.ErrInvalidToken)
}

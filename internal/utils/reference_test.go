package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfikriangelo/rail-ticket-reservation/internal/utils"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func TestNewBookingReference(t *testing.T) {
	// Test case 1: exact length
	ref, err := utils.NewBookingReference(8)
	require.NoError(t, err)
	assert.Len(t, ref, 8)

	// Test case 2: only alphanumeric characters
	for _, r := range ref {
		assert.True(t, strings.ContainsRune(alphanumeric, r), "unexpected character %q", r)
	}

	// Test case 3: calls are independent
	other, err := utils.NewBookingReference(16)
	require.NoError(t, err)
	again, err := utils.NewBookingReference(16)
	require.NoError(t, err)
	assert.NotEqual(t, other, again)
}

func TestNewBookingReferenceZeroLength(t *testing.T) {
	ref, err := utils.NewBookingReference(0)
	require.NoError(t, err)
	assert.Empty(t, ref)
}

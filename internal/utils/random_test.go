package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTPCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := GenerateOTPCode()
		require.NoError(t, err)
		assert.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9')
		}
		seen[code] = true
	}
	// 50 draws from a million values should not all collide
	assert.Greater(t, len(seen), 1)
}

func TestGenerateReceiptID(t *testing.T) {
	id := GenerateReceiptID()
	assert.True(t, strings.HasPrefix(id, "rcpt_"))

	other := GenerateReceiptID()
	assert.NotEqual(t, id, other)
}

func TestGenerateSecureToken(t *testing.T) {
	token, err := GenerateSecureToken(32)
	require.NoError(t, err)
	assert.Len(t, token, 64) // hex doubles the length

	other, err := GenerateSecureToken(32)
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

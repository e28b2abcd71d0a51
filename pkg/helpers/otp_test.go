package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenOTPCodeShape(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := GenOTPCode()
		require.NoError(t, err)
		require.Len(t, code, OTPLength)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "unexpected rune %q in %q", r, code)
		}
	}
}

func TestGenOTPCodeVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := GenOTPCode()
		require.NoError(t, err)
		seen[code] = true
	}
	// 50 draws from a million values colliding down to one would mean a
	// broken generator
	assert.Greater(t, len(seen), 1)
}

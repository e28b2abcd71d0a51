package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintVerifyRoundTrip(t *testing.T) {
	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		t.Run(alg, func(t *testing.T) {
			issuer := NewTokenIssuer("secret", alg, time.Hour)

			token, exp, err := issuer.Mint("a@x.com")
			require.NoError(t, err)
			assert.True(t, exp.After(time.Now().Add(59*time.Minute)))

			subject, err := issuer.Verify(token)
			require.NoError(t, err)
			assert.Equal(t, "a@x.com", subject)
		})
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("secret", "HS256", -time.Minute)

	token, _, err := issuer.Mint("a@x.com")
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyTamperedToken(t *testing.T) {
	issuer := NewTokenIssuer("secret", "HS256", time.Hour)

	token, _, err := issuer.Mint("a@x.com")
	require.NoError(t, err)

	_, err = issuer.Verify(token + "x")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("secret", "HS256", time.Hour)
	other := NewTokenIssuer("different", "HS256", time.Hour)

	token, _, err := issuer.Mint("a@x.com")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyGarbage(t *testing.T) {
	issuer := NewTokenIssuer("secret", "HS256", time.Hour)
	_, err := issuer.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestUnknownAlgorithmFallsBackToHS256(t *testing.T) {
	issuer := NewTokenIssuer("secret", "HS9000", time.Hour)
	fallback := NewTokenIssuer("secret", "HS256", time.Hour)

	token, _, err := issuer.Mint("a@x.com")
	require.NoError(t, err)

	subject, err := fallback.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", subject)
}

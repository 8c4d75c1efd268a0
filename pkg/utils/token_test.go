package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "sentiment-analysis-api/pkg/errors"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	secret := "test-secret-key"

	token, err := GenerateToken("alice", secret, "HS256", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, secret, "HS256")
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestValidateToken_Expired(t *testing.T) {
	t.Parallel()

	secret := "test-secret-key"

	token, err := GenerateToken("alice", secret, "HS256", -1*time.Second)
	require.NoError(t, err)

	_, err = ValidateToken(token, secret, "HS256")
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrInvalidToken))
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := GenerateToken("alice", "right-secret", "HS256", time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken(token, "wrong-secret", "HS256")
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrInvalidToken))
}

func TestValidateToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := ValidateToken("not.a.jwt", "secret", "HS256")
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrInvalidToken))
}

func TestValidateToken_AlgorithmMismatch(t *testing.T) {
	t.Parallel()

	// A token signed with HS512 must be rejected when HS256 is configured.
	token, err := GenerateToken("alice", "secret", "HS512", time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken(token, "secret", "HS256")
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrInvalidToken))
}

func TestGenerateToken_SupportedAlgorithms(t *testing.T) {
	t.Parallel()

	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		t.Run(alg, func(t *testing.T) {
			token, err := GenerateToken("bob", "secret", alg, time.Hour)
			require.NoError(t, err)

			claims, err := ValidateToken(token, "secret", alg)
			require.NoError(t, err)
			assert.Equal(t, "bob", claims.Subject)
		})
	}
}

func TestGenerateToken_UnsupportedAlgorithm(t *testing.T) {
	t.Parallel()

	_, err := GenerateToken("alice", "secret", "RS256", time.Hour)
	require.Error(t, err)

	_, err = ValidateToken("whatever", "secret", "none")
	require.Error(t, err)
}

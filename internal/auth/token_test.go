package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventcms_backend/internal/auth"
)

func TestGenerateSecretIsUniqueAndHashed(t *testing.T) {
	s1, h1, err := auth.GenerateSecret()
	require.NoError(t, err)
	s2, h2, err := auth.GenerateSecret()
	require.NoError(t, err)

	assert.NotEqual(t, s1, s2)
	assert.NotEqual(t, h1, h2)
	assert.NotEqual(t, s1, h1)
	assert.Equal(t, auth.HashSecret(s1), h1)
	assert.Len(t, s1, 64)
	assert.Len(t, h1, 64)
}

func TestComposeAndParseToken(t *testing.T) {
	token := auth.ComposeToken(42, "deadbeef")

	id, secret, err := auth.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
	assert.Equal(t, "deadbeef", secret)
}

func TestParseTokenRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"noseparator",
		"|secret",
		"12|",
		"notanumber|secret",
		"-1|secret",
	}
	for _, tc := range cases {
		_, _, err := auth.ParseToken(tc)
		assert.ErrorIs(t, err, auth.ErrMalformedToken, "input %q", tc)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, auth.CheckPassword("s3cret-password", hash))
	assert.False(t, auth.CheckPassword("wrong", hash))
}

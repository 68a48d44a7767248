package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtractToken(t *testing.T) {
	token, err := GenerateToken("user-1", "parent@example.com", "parent", time.Hour)
	require.NoError(t, err)

	sub, role, err := ExtractClaimsFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)
	assert.Equal(t, "parent", role)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "parent@example.com", "parent", -time.Minute)
	require.NoError(t, err)

	_, _, err = ExtractClaimsFromToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, _, err := ExtractClaimsFromToken("not.a.token")
	assert.Error(t, err)
}

func TestHashTokenIsStable(t *testing.T) {
	a := HashToken("some-token")
	assert.Equal(t, a, HashToken("some-token"))
	assert.NotEqual(t, a, HashToken("other-token"))
	assert.Len(t, a, 64)
}

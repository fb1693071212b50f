package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasherRoundTrip(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	for _, plaintext := range []string{"password", "correct horse battery staple", "", "ünïcødé-🔑", strings.Repeat("x", 64)} {
		hash, err := hasher.Hash(plaintext)
		require.NoError(t, err)
		assert.NotEqual(t, plaintext, hash)

		ok, err := hasher.Verify(plaintext, hash)
		require.NoError(t, err)
		assert.True(t, ok, "plaintext %q should verify", plaintext)

		ok, err = hasher.Verify(plaintext+"!", hash)
		require.NoError(t, err)
		assert.False(t, ok, "altered plaintext %q should not verify", plaintext)
	}
}

func TestPasswordHasherSaltsEachHash(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestPasswordHasherCost(t *testing.T) {
	hash, err := NewPasswordHasher(0).Hash("pw")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)

	hash, err = NewPasswordHasher(5).Hash("pw")
	require.NoError(t, err)
	cost, err = bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestPasswordHasherMalformedHash(t *testing.T) {
	ok, err := NewPasswordHasher(bcrypt.MinCost).Verify("pw", "not-a-bcrypt-hash")
	assert.False(t, ok)
	assert.Error(t, err)
}

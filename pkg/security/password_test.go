package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret9pass")
	require.NoError(t, err)
	assert.NotEqual(t, "secret9pass", hash)

	assert.NoError(t, hasher.Compare(hash, "secret9pass"))
	assert.Error(t, hasher.Compare(hash, "wrong9pass"))
}

func TestInvalidCostFallsBackToDefault(t *testing.T) {
	hasher := NewBcryptHasher(1000)

	hash, err := hasher.Hash("secret9pass")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

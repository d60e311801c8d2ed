package hash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndCheck(t *testing.T) {
	t.Parallel()

	h := New(bcrypt.MinCost)

	hashed, err := h.Hash("Secret123")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, "Secret123", hashed)
	assert.False(t, strings.Contains(hashed, "Secret123"))

	assert.True(t, h.Check(hashed, "Secret123"))
	assert.False(t, h.Check(hashed, "Secret124"))
	assert.False(t, h.Check("not-a-hash", "Secret123"))
}

func TestHasher_SaltsEveryHash(t *testing.T) {
	t.Parallel()

	h := New(bcrypt.MinCost)

	first, err := h.Hash("password")
	require.NoError(t, err)
	second, err := h.Hash("password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Check(first, "password"))
	assert.True(t, h.Check(second, "password"))
}

func TestNew_OutOfRangeCostFallsBackToDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bcrypt.DefaultCost, New(0).Cost)
	assert.Equal(t, bcrypt.DefaultCost, New(bcrypt.MaxCost+1).Cost)
	assert.Equal(t, 12, New(12).Cost)
}

package security_test

import (
	"strings"
	"testing"

	"shootdesk/internal/adapters/out/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := security.NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("hunter2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))
	assert.NotContains(t, hash, "hunter2")

	assert.True(t, hasher.Verify(hash, "hunter2"))
	assert.False(t, hasher.Verify(hash, "hunter3"))
}

func TestBcryptPasswordHasher_HashesAreSalted(t *testing.T) {
	hasher := security.NewBcryptPasswordHasher(4)

	first, err := hasher.Hash("hunter2")
	require.NoError(t, err)
	second, err := hasher.Hash("hunter2")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify(first, "hunter2"))
	assert.True(t, hasher.Verify(second, "hunter2"))
}

func TestNewBcryptPasswordHasher_OutOfRangeCostFallsBack(t *testing.T) {
	hasher := security.NewBcryptPasswordHasher(99)

	hash, err := hasher.Hash("hunter2")
	require.NoError(t, err)
	assert.True(t, hasher.Verify(hash, "hunter2"))
}

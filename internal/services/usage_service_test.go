package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsurePromptCopyAllowedWithinLimit(t *testing.T) {
	mr := setupTestRedis()
	defer mr.Close()

	assert.NoError(t, EnsurePromptCopyAllowed(1, 2))
	assert.NoError(t, EnsurePromptCopyAllowed(1, 2))
}

func TestEnsurePromptCopyAllowedOverLimit(t *testing.T) {
	mr := setupTestRedis()
	defer mr.Close()

	assert.NoError(t, EnsurePromptCopyAllowed(1, 2))
	assert.NoError(t, EnsurePromptCopyAllowed(1, 2))

	err := EnsurePromptCopyAllowed(1, 2)
	assert.ErrorIs(t, err, ErrQuotaExceeded)

	// Quotas are per user.
	assert.NoError(t, EnsurePromptCopyAllowed(2, 2))
}

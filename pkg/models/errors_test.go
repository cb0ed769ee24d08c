package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransientAndFatalClassification(t *testing.T) {
	base := errors.New("disk on fire")

	assert.True(t, IsFatal(&FatalError{Err: base}))
	assert.True(t, IsFatal(fmt.Errorf("persist: %w", &FatalError{Err: base})))
	assert.False(t, IsFatal(&TransientError{Err: base}))

	assert.True(t, IsTransient(&TransientError{Err: base}))
	assert.True(t, IsTransient(fmt.Errorf("claim: %w", &TransientError{Err: base})))
	assert.False(t, IsTransient(base))

	require.ErrorIs(t, &FatalError{Err: base}, base)
	require.ErrorIs(t, &TransientError{Err: base}, base)
}

func TestIllegalTransitionErrorMessage(t *testing.T) {
	err := &IllegalTransitionError{TaskID: "task-1", From: StateRunning, To: StateReady}
	assert.Contains(t, err.Error(), "RUNNING -> READY")

	stale := &IllegalTransitionError{TaskID: "task-1", From: StateReady, To: StateLeased, Observed: StateLeased}
	assert.Contains(t, stale.Error(), "observed LEASED")
}

func TestStructuredErrorsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("claim failed: %w", &FileLeasedError{Path: "a.go", Holder: "agent-2", ExpiresAt: 42})

	var leased *FileLeasedError
	require.ErrorAs(t, wrapped, &leased)
	assert.Equal(t, "agent-2", leased.Holder)
	assert.Equal(t, int64(42), leased.ExpiresAt)
}

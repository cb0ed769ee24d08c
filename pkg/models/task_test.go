package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLegalTransition(t *testing.T) {
	tests := []struct {
		name  string
		from  TaskState
		to    TaskState
		legal bool
	}{
		{"ready to leased", StateReady, StateLeased, true},
		{"leased to running", StateLeased, StateRunning, true},
		{"leased back to ready", StateLeased, StateReady, true},
		{"running to verifying", StateRunning, StateVerifying, true},
		{"verifying to committed", StateVerifying, StateCommitted, true},
		{"verifying to rollback", StateVerifying, StateRollback, true},
		{"committed to done", StateCommitted, StateDone, true},
		{"rollback to ready", StateRollback, StateReady, true},
		{"rollback to dead", StateRollback, StateDead, true},

		{"ready to running skips lease", StateReady, StateRunning, false},
		{"running back to ready", StateRunning, StateReady, false},
		{"running to committed skips verify", StateRunning, StateCommitted, false},
		{"committed to ready", StateCommitted, StateReady, false},
		{"done is terminal", StateDone, StateReady, false},
		{"dead is terminal", StateDead, StateReady, false},
		{"self transition", StateReady, StateReady, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.legal, IsLegalTransition(tt.from, tt.to))
		})
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	for _, from := range []TaskState{StateDone, StateDead} {
		for _, to := range AllTaskStates {
			assert.False(t, IsLegalTransition(from, to), "%s -> %s must be illegal", from, to)
		}
	}
}

func TestIsActiveState(t *testing.T) {
	assert.True(t, IsActiveState(StateLeased))
	assert.True(t, IsActiveState(StateRunning))
	assert.True(t, IsActiveState(StateVerifying))
	assert.False(t, IsActiveState(StateReady))
	assert.False(t, IsActiveState(StateCommitted))
	assert.False(t, IsActiveState(StateDone))
}

func TestTransitionEventKind(t *testing.T) {
	assert.Equal(t, EventRunning, TransitionEventKind(StateRunning))
	assert.Equal(t, EventCommitted, TransitionEventKind(StateCommitted))
	assert.Equal(t, EventDead, TransitionEventKind(StateDead))
	assert.Equal(t, EventLeaseReleased, TransitionEventKind(StateReady))
}

func TestDeclaredFiles(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		want    []string
	}{
		{
			name:    "json decoded payload",
			payload: map[string]any{"files": []any{"a.go", "b.go"}},
			want:    []string{"a.go", "b.go"},
		},
		{
			name:    "typed payload",
			payload: map[string]any{"files": []string{"a.go"}},
			want:    []string{"a.go"},
		},
		{
			name:    "no files key",
			payload: map[string]any{"goal": "refactor"},
			want:    nil,
		},
		{
			name:    "nil payload",
			payload: nil,
			want:    nil,
		},
		{
			name:    "malformed entries skipped",
			payload: map[string]any{"files": []any{"a.go", 42, ""}},
			want:    []string{"a.go"},
		},
		{
			name:    "files is not a list",
			payload: map[string]any{"files": "a.go"},
			want:    nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := Task{Payload: tt.payload}
			assert.Equal(t, tt.want, task.DeclaredFiles())
		})
	}
}

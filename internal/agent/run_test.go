package agent

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Lifecycle(t *testing.T) {
	run := NewRun("how many tshirts?")
	require.NotEmpty(t, run.ID)
	assert.Equal(t, RunStatusCreated, run.Status)
	assert.False(t, run.Status.IsTerminal())

	run.start()
	assert.Equal(t, RunStatusInProgress, run.Status)
	assert.False(t, run.Status.IsTerminal())

	run.complete("You have 20 tshirts.")
	assert.Equal(t, RunStatusCompleted, run.Status)
	assert.True(t, run.Status.IsTerminal())
	assert.Equal(t, "You have 20 tshirts.", run.Output)
	require.NotNil(t, run.CompletedAt)
}

func TestRun_Fail(t *testing.T) {
	run := NewRun("loop forever")
	run.start()

	run.fail("max_turns_exceeded", errors.New("max turns exceeded"))
	assert.Equal(t, RunStatusFailed, run.Status)
	assert.True(t, run.Status.IsTerminal())
	require.NotNil(t, run.Error)
	assert.Equal(t, "max_turns_exceeded", run.Error.Code)
	assert.Contains(t, run.Error.Error(), "max turns exceeded")
	require.NotNil(t, run.CompletedAt)
}

package agent

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RunStatus represents the lifecycle state of a Run.
//
// State machine: Created -> InProgress -> Completed | Failed
type RunStatus string

const (
	RunStatusCreated    RunStatus = "created"
	RunStatusInProgress RunStatus = "in_progress"
	RunStatusCompleted  RunStatus = "completed"
	RunStatusFailed     RunStatus = "failed"
)

// IsTerminal returns true if the run has reached a terminal state.
func (s RunStatus) IsTerminal() bool {
	return s == RunStatusCompleted || s == RunStatusFailed
}

// Run records a single query's pass through the agent loop.
type Run struct {
	// ID is the unique run identifier.
	ID string `json:"id"`

	// Status is the current lifecycle state.
	Status RunStatus `json:"status"`

	// Input is the user query that started this run.
	Input string `json:"input"`

	// Output is the final assistant response, set on completion.
	Output string `json:"output,omitempty"`

	// Error holds error details if the run failed.
	Error *RunError `json:"error,omitempty"`

	// Turns is the number of model calls made during this run.
	Turns int `json:"turns,omitempty"`

	// ToolCallCount is the number of tool calls executed during this run.
	ToolCallCount int `json:"tool_call_count,omitempty"`

	// CreatedAt is when this run was created.
	CreatedAt time.Time `json:"created_at"`

	// CompletedAt is when this run reached a terminal state.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// RunError holds structured error information for a failed run.
type RunError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *RunError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func NewRun(input string) *Run {
	return &Run{
		ID:        uuid.NewString(),
		Status:    RunStatusCreated,
		Input:     input,
		CreatedAt: time.Now(),
	}
}

func (r *Run) start() {
	r.Status = RunStatusInProgress
}

func (r *Run) complete(output string) {
	now := time.Now()
	r.Status = RunStatusCompleted
	r.Output = output
	r.CompletedAt = &now
}

func (r *Run) fail(code string, err error) {
	now := time.Now()
	r.Status = RunStatusFailed
	r.Error = &RunError{Code: code, Message: err.Error()}
	r.CompletedAt = &now
}

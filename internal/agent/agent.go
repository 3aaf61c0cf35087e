// Package agent drives a tool calling chat model through an explicit
// model/tool loop until it produces a final text answer.
package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/sirupsen/logrus"

	"github.com/kiosk404/stockmind/internal/agent/errno"
)

const defaultMaxTurns = 10

// Agent answers natural language queries by looping between the chat
// model and the registered tools.
type Agent struct {
	model        model.ToolCallingChatModel
	registry     *Registry
	systemPrompt string
	maxTurns     int
	log          *logrus.Logger
}

type Option func(*Agent)

// WithMaxTurns caps the number of model calls per query.
func WithMaxTurns(n int) Option {
	return func(a *Agent) {
		if n > 0 {
			a.maxTurns = n
		}
	}
}

// WithSystemPrompt overrides the default system prompt.
func WithSystemPrompt(prompt string) Option {
	return func(a *Agent) {
		if prompt != "" {
			a.systemPrompt = prompt
		}
	}
}

// New binds the registry's tools to the chat model. The model must
// support tool calling.
func New(cm model.BaseChatModel, registry *Registry, log *logrus.Logger, opts ...Option) (*Agent, error) {
	toolCallingModel, ok := cm.(model.ToolCallingChatModel)
	if !ok {
		return nil, errno.ErrModelNotToolCapable
	}

	bound, err := toolCallingModel.WithTools(registry.Infos())
	if err != nil {
		return nil, fmt.Errorf("bind tools to model: %w", err)
	}

	a := &Agent{
		model:        bound,
		registry:     registry,
		systemPrompt: SystemPrompt,
		maxTurns:     defaultMaxTurns,
		log:          log,
	}
	for _, o := range opts {
		o(a)
	}

	return a, nil
}

// ProcessQuery runs the loop for a single query and returns the model's
// final text answer.
func (a *Agent) ProcessQuery(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", errno.ErrEmptyQuery
	}

	run := NewRun(query)
	run.start()

	a.log.WithFields(logrus.Fields{
		"run_id": run.ID,
		"tools":  a.registry.Names(),
	}).Info("run started")

	output, err := a.runLoop(ctx, run, newConversation(a.systemPrompt, query))
	if err != nil {
		run.fail(failureCode(err), err)
		a.log.WithFields(logrus.Fields{
			"run_id": run.ID,
			"turns":  run.Turns,
		}).WithError(err).Error("run failed")

		return "", err
	}

	run.complete(output)
	a.log.WithFields(logrus.Fields{
		"run_id":     run.ID,
		"turns":      run.Turns,
		"tool_calls": run.ToolCallCount,
	}).Info("run completed")

	return output, nil
}

func failureCode(err error) string {
	switch {
	case errors.Is(err, errno.ErrMaxTurnsExceeded):
		return "max_turns_exceeded"
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "model_error"
	}
}

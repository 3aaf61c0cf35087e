package agent

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/schema"
	"github.com/sirupsen/logrus"

	"github.com/kiosk404/stockmind/internal/agent/errno"
)

// runLoop alternates between the chat model and tool execution.
//
// Each turn the full history goes to the model. If the reply carries
// tool calls, every call is executed in order and its result appended as
// a tool message, then the loop returns to the model. A reply without
// tool calls is the final answer. Exceeding maxTurns model calls aborts
// the run.
func (a *Agent) runLoop(ctx context.Context, run *Run, conv *conversation) (string, error) {
	for turn := 0; turn < a.maxTurns; turn++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		reply, err := a.model.Generate(ctx, conv.history())
		if err != nil {
			return "", fmt.Errorf("model generate (turn %d): %w", turn+1, err)
		}
		run.Turns++
		conv.append(reply)

		if len(reply.ToolCalls) == 0 {
			return reply.Content, nil
		}

		results, err := a.executeToolCalls(ctx, run, reply.ToolCalls)
		if err != nil {
			return "", err
		}
		conv.append(results...)
	}

	return "", errno.ErrMaxTurnsExceeded
}

// executeToolCalls runs the requested tool calls sequentially, in the
// order the model emitted them. A call naming an unknown tool, or a tool
// that fails unexpectedly, yields an error tool message instead of
// aborting the run so the model can recover and explain.
func (a *Agent) executeToolCalls(ctx context.Context, run *Run, calls []schema.ToolCall) ([]*schema.Message, error) {
	results := make([]*schema.Message, 0, len(calls))

	for _, call := range calls {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		run.ToolCallCount++

		name := call.Function.Name
		log := a.log.WithFields(logrus.Fields{
			"run_id": run.ID,
			"tool":   name,
		})

		t, ok := a.registry.Lookup(name)
		if !ok {
			log.Warn("model requested an unknown tool")
			results = append(results, toolMessage(call, name,
				fmt.Sprintf("Error: Attempted to call an unknown tool '%s'. This tool is not defined.", name)))

			continue
		}

		log.WithField("args", call.Function.Arguments).Debug("executing tool")

		output, err := t.InvokableRun(ctx, call.Function.Arguments)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.WithError(err).Warn("tool execution failed")
			results = append(results, toolMessage(call, name,
				fmt.Sprintf("Error executing tool '%s': %v", name, err)))

			continue
		}

		results = append(results, toolMessage(call, name, output))
	}

	return results, nil
}

func toolMessage(call schema.ToolCall, name, content string) *schema.Message {
	return &schema.Message{
		Role:       schema.Tool,
		Content:    content,
		ToolCallID: call.ID,
		Name:       name,
	}
}

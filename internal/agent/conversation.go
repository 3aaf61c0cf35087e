package agent

import (
	"github.com/cloudwego/eino/schema"
)

// conversation is the append-only message history of a single run. The
// system prompt always sits at index zero so the model sees it on every
// turn.
type conversation struct {
	messages []*schema.Message
}

func newConversation(systemPrompt, query string) *conversation {
	return &conversation{
		messages: []*schema.Message{
			schema.SystemMessage(systemPrompt),
			schema.UserMessage(query),
		},
	}
}

func (c *conversation) append(msgs ...*schema.Message) {
	c.messages = append(c.messages, msgs...)
}

func (c *conversation) history() []*schema.Message {
	return c.messages
}

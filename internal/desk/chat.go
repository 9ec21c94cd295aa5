package desk

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

const (
	RoleUser  = "user"
	RoleAgent = "agent"

	AgentGreeting = "Hello there! I'm Baseer, your friendly agent. Ask me anything about Pakistan's power sector — from the latest news to verified database insights!"
	AgentFailure  = "⚠️ Something went wrong. Please try again."
)

type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type AgentAPI interface {
	Ask(ctx context.Context, query string) (string, error)
}

// Chat is one conversation with the power sector agent.
type Chat struct {
	api AgentAPI
	log *slog.Logger

	mu       sync.Mutex
	messages []Message
}

func NewChat(api AgentAPI, log *slog.Logger) *Chat {
	if log == nil {
		log = slog.Default()
	}
	return &Chat{
		api:      api,
		log:      log,
		messages: []Message{{Role: RoleAgent, Text: AgentGreeting}},
	}
}

// Ask appends the question and the agent's reply. Blank questions are ignored and return an
// empty message.
func (c *Chat) Ask(ctx context.Context, query string) Message {
	query = strings.TrimSpace(query)
	if query == "" {
		return Message{}
	}

	c.append(Message{Role: RoleUser, Text: query})

	reply := Message{Role: RoleAgent}
	answer, err := c.api.Ask(ctx, query)
	if err != nil {
		c.log.Error("agent query failed", "error", err)
		reply.Text = AgentFailure
	} else {
		reply.Text = answer
	}

	c.append(reply)
	return reply
}

func (c *Chat) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Message(nil), c.messages...)
}

func (c *Chat) append(m Message) {
	c.mu.Lock()
	c.messages = append(c.messages, m)
	c.mu.Unlock()
}

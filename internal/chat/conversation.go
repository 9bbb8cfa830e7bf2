package chat

import (
	"sync"
	"time"
)

// Conversation: append-only переписка одного виджета.
type Conversation struct {
	mu       sync.RWMutex
	messages []Message
	now      func() time.Time
}

// NewConversation кладёт в переписку одно приветствие бота.
func NewConversation(greeting string) *Conversation {
	c := &Conversation{now: time.Now}
	c.Append(RoleBot, greeting)
	return c
}

func (c *Conversation) Append(role Role, text string) Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := Message{
		Seq:  len(c.messages),
		Role: role,
		Text: text,
		At:   c.now(),
	}
	c.messages = append(c.messages, m)
	return m
}

// Messages возвращает копию в порядке показа.
func (c *Conversation) Messages() []Message {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *Conversation) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.messages)
}

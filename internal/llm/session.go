package llm

import (
	"sync"

	"github.com/google/uuid"
)

// Session is an append-only conversation transcript. It lives for the
// duration of one advisor session and is passed explicitly into every
// Chat call rather than kept as package state. The mutex only matters
// for the HTTP surface, where requests may arrive concurrently.
type Session struct {
	ID string

	mu       sync.Mutex
	messages []Message
}

// NewSession starts a transcript seeded with the system persona.
func NewSession(systemPrompt string) *Session {
	return &Session{
		ID: uuid.New().String(),
		messages: []Message{
			{Role: "system", Content: systemPrompt},
		},
	}
}

// Snapshot returns a copy of the transcript safe to extend by the caller.
func (s *Session) Snapshot() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Append adds messages to the transcript.
func (s *Session) Append(messages ...Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, messages...)
}

// Len reports the number of transcript entries, the system prompt included.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

package app

import (
	"time"

	"github.com/google/uuid"

	"futuristic-aid/internal/sim"
)

// MaxChatMessages bounds the persisted chat log; the oldest entry is
// evicted first.
const MaxChatMessages = 100

// ChatMessage is one immutable entry of the chat log.
type ChatMessage struct {
	ID        string        `json:"id"`
	Text      string        `json:"text"`
	Sender    string        `json:"sender"` // user|assistant
	Sentiment sim.Sentiment `json:"sentiment"`
	Timestamp time.Time     `json:"timestamp"`
}

// ChatHistory is the bounded, persisted message log.
type ChatHistory struct {
	store    *PrefStore
	messages []ChatMessage
	now      func() time.Time
}

func NewChatHistory(store *PrefStore) *ChatHistory {
	return &ChatHistory{store: store, now: time.Now}
}

// Restore loads persisted messages, trimming any over-long log from an
// older version.
func (h *ChatHistory) Restore() error {
	var msgs []ChatMessage
	if _, err := h.store.Load(KeyChatHistory, &msgs); err != nil {
		return err
	}
	if len(msgs) > MaxChatMessages {
		msgs = msgs[len(msgs)-MaxChatMessages:]
	}
	h.messages = msgs
	return nil
}

// Append records a message, evicting the oldest once the cap is reached,
// and persists the log.
func (h *ChatHistory) Append(text, sender string) (ChatMessage, error) {
	msg := ChatMessage{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    sender,
		Sentiment: sim.ScoreSentiment(text),
		Timestamp: h.now(),
	}
	h.messages = append(h.messages, msg)
	if len(h.messages) > MaxChatMessages {
		h.messages = h.messages[len(h.messages)-MaxChatMessages:]
	}
	if err := h.store.Set(KeyChatHistory, h.messages); err != nil {
		return msg, err
	}
	return msg, nil
}

// Messages returns the log oldest-first. The slice is shared; callers must
// not mutate entries.
func (h *ChatHistory) Messages() []ChatMessage {
	return h.messages
}

// Clear empties the log and its persisted copy.
func (h *ChatHistory) Clear() error {
	h.messages = nil
	return h.store.Remove(KeyChatHistory)
}

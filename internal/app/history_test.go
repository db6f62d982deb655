package app

import (
	"fmt"
	"testing"

	"futuristic-aid/internal/sim"
)

func TestChatHistoryAppend(t *testing.T) {
	h := NewChatHistory(NewPrefStore(t.TempDir()))

	msg, err := h.Append("thank you, this is great", "user")
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if msg.ID == "" {
		t.Fatal("message has no id")
	}
	if msg.Sentiment != sim.SentimentPositive {
		t.Fatalf("Sentiment = %s, want positive", msg.Sentiment)
	}
	if got := h.Messages(); len(got) != 1 || got[0].Text != "thank you, this is great" {
		t.Fatalf("messages = %+v", got)
	}
}

func TestChatHistoryEvictsOldest(t *testing.T) {
	h := NewChatHistory(NewPrefStore(t.TempDir()))

	for i := 0; i < MaxChatMessages+5; i++ {
		if _, err := h.Append(fmt.Sprintf("message %d", i), "user"); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}
	msgs := h.Messages()
	if len(msgs) != MaxChatMessages {
		t.Fatalf("len = %d, want %d", len(msgs), MaxChatMessages)
	}
	if msgs[0].Text != "message 5" {
		t.Fatalf("oldest surviving message = %q, want message 5", msgs[0].Text)
	}
	if msgs[len(msgs)-1].Text != fmt.Sprintf("message %d", MaxChatMessages+4) {
		t.Fatalf("newest message = %q", msgs[len(msgs)-1].Text)
	}
}

func TestChatHistoryRestore(t *testing.T) {
	store := NewPrefStore(t.TempDir())

	h := NewChatHistory(store)
	if _, err := h.Append("hello", "user"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if _, err := h.Append("Hello! How can I help?", "assistant"); err != nil {
		t.Fatalf("Append: %v", err)
	}

	restored := NewChatHistory(store)
	if err := restored.Restore(); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	msgs := restored.Messages()
	if len(msgs) != 2 || msgs[1].Sender != "assistant" {
		t.Fatalf("restored = %+v", msgs)
	}
}

func TestChatHistoryClear(t *testing.T) {
	store := NewPrefStore(t.TempDir())

	h := NewChatHistory(store)
	if _, err := h.Append("hello", "user"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := h.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if len(h.Messages()) != 0 {
		t.Fatal("messages survived Clear")
	}

	var persisted []ChatMessage
	if ok, _ := store.Load(KeyChatHistory, &persisted); ok {
		t.Fatal("persisted log survived Clear")
	}
}

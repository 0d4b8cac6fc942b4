package models

import (
	"time"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Chat roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

const (
	titleMaxRunes = 50
	defaultTitle  = "New Chat"
)

// ChatMessage is one turn of a conversation
type ChatMessage struct {
	ID        string    `json:"id" bson:"id"`
	Content   string    `json:"content" bson:"content"`
	Role      string    `json:"role" bson:"role"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// ChatHistory holds the structure for the chathistories collection in mongo,
// one document per user and session
type ChatHistory struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID    string             `json:"userId" bson:"userId"`
	SessionID string             `json:"sessionId" bson:"sessionId"`
	Messages  []ChatMessage      `json:"messages" bson:"messages"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Title is the first user message cut to 50 characters, or "New Chat"
func (c ChatHistory) Title() string {
	for _, m := range c.Messages {
		if m.Role != RoleUser {
			continue
		}
		if utf8.RuneCountInString(m.Content) <= titleMaxRunes {
			return m.Content
		}
		return string([]rune(m.Content)[:titleMaxRunes]) + "..."
	}
	return defaultTitle
}

// Summary builds the list view entry for the session
func (c ChatHistory) Summary() ChatSessionSummary {
	return ChatSessionSummary{
		SessionID:    c.SessionID,
		Title:        c.Title(),
		MessageCount: len(c.Messages),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// ChatSessionSummary is returned when listing sessions
type ChatSessionSummary struct {
	SessionID    string    `json:"sessionId"`
	Title        string    `json:"title"`
	MessageCount int       `json:"messageCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ChatRequest is the body accepted by the chat endpoint. Messages carries the
// prior turns shown in the client.
type ChatRequest struct {
	Message   string        `json:"message"`
	Messages  []ChatMessage `json:"messages"`
	SessionID string        `json:"sessionId"`
}

// ChatResponse is returned by the chat endpoint
type ChatResponse struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
	Persisted bool   `json:"persisted"`
}

package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestChatHistory_Title(t *testing.T) {
	long := strings.Repeat("a", 60)
	accented := strings.Repeat("é", 55)

	tests := []struct {
		name     string
		messages []ChatMessage
		want     string
	}{
		{name: "no messages", want: "New Chat"},
		{name: "assistant only", messages: []ChatMessage{{Role: RoleAssistant, Content: "hello"}}, want: "New Chat"},
		{name: "short user message", messages: []ChatMessage{{Role: RoleUser, Content: "I have a headache"}}, want: "I have a headache"},
		{name: "long user message truncated", messages: []ChatMessage{{Role: RoleUser, Content: long}}, want: strings.Repeat("a", 50) + "..."},
		{name: "multibyte truncated by character", messages: []ChatMessage{{Role: RoleUser, Content: accented}}, want: strings.Repeat("é", 50) + "..."},
		{
			name: "first user message wins",
			messages: []ChatMessage{
				{Role: RoleAssistant, Content: "welcome"},
				{Role: RoleUser, Content: "first"},
				{Role: RoleUser, Content: "second"},
			},
			want: "first",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChatHistory{Messages: tt.messages}.Title())
		})
	}
}

func TestChatHistory_Summary(t *testing.T) {
	created := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	c := ChatHistory{
		SessionID: "session-1",
		Messages:  []ChatMessage{{Role: RoleUser, Content: "hi"}, {Role: RoleAssistant, Content: "hello"}},
		CreatedAt: created,
		UpdatedAt: created.Add(time.Minute),
	}

	s := c.Summary()
	assert.Equal(t, "session-1", s.SessionID)
	assert.Equal(t, "hi", s.Title)
	assert.Equal(t, 2, s.MessageCount)
	assert.Equal(t, created.Add(time.Minute), s.UpdatedAt)
}

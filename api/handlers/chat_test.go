package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/ai"
	aimocks "github.com/Saideep1817/AI-chatbot-for-medical-emergencies/ai/mocks"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/databases/mocks"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
)

func TestChatHandler(t *testing.T) {
	now := time.UnixMilli(1741600000000).UTC()

	tests := []struct {
		name            string
		body            interface{}
		aiReply         string
		aiError         error
		storeError      error
		expectAI        bool
		expectStore     bool
		expectedSession string
		expectPersisted bool
		expectedStatus  int
	}{
		{
			name:            "new session",
			body:            map[string]interface{}{"message": "I have a headache"},
			aiReply:         "**Possible Causes:**\n• Tension",
			expectAI:        true,
			expectStore:     true,
			expectedSession: "session-1741600000000",
			expectPersisted: true,
			expectedStatus:  http.StatusOK,
		},
		{
			name:            "existing session",
			body:            map[string]interface{}{"message": "Still there", "sessionId": "session-1"},
			aiReply:         "ok",
			expectAI:        true,
			expectStore:     true,
			expectedSession: "session-1",
			expectPersisted: true,
			expectedStatus:  http.StatusOK,
		},
		{
			name:            "store failure keeps reply",
			body:            map[string]interface{}{"message": "hello", "sessionId": "session-2"},
			aiReply:         "hi",
			storeError:      errors.New("write conflict"),
			expectAI:        true,
			expectStore:     true,
			expectedSession: "session-2",
			expectPersisted: false,
			expectedStatus:  http.StatusOK,
		},
		{
			name:           "ai failure",
			body:           map[string]interface{}{"message": "hello"},
			aiError:        errors.New("quota exceeded"),
			expectAI:       true,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "empty message",
			body:           map[string]interface{}{"message": "  "},
			expectedStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := aimocks.NewClient(t)
			db := mocks.NewChatHistoryDatabase(t)
			if tt.expectAI {
				client.On("Chat", mock.Anything, mock.MatchedBy(func(msgs []ai.Message) bool {
					last := msgs[len(msgs)-1]
					return last.Role == "user" && strings.HasSuffix(last.Content, "User Query: "+tt.body.(map[string]interface{})["message"].(string))
				})).Return(tt.aiReply, tt.aiError)
			}
			if tt.expectStore {
				db.On("AppendMessages", mock.Anything, testUserID, tt.expectedSession,
					mock.MatchedBy(func(m models.ChatMessage) bool { return m.Role == models.RoleUser && m.ID != "" }),
					mock.MatchedBy(func(m models.ChatMessage) bool { return m.Role == models.RoleAssistant && m.Content == tt.aiReply }),
				).Return(tt.storeError)
			}

			rr := httptest.NewRecorder()
			h := Chat{AI: client, DB: db, Now: func() time.Time { return now }}
			h.ChatHandler(rr, newRequest(t, http.MethodPost, "/api/v1/chat", tt.body, testUserID))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusOK {
				body := decode(t, rr)
				assert.Equal(t, tt.aiReply, body["message"])
				assert.Equal(t, tt.expectedSession, body["sessionId"])
				assert.Equal(t, tt.expectPersisted, body["persisted"])
			}
			if tt.expectedStatus == http.StatusInternalServerError {
				assert.NotContains(t, rr.Body.String(), "quota")
			}
		})
	}
}

func TestChatHandlerForwardsHistory(t *testing.T) {
	client := aimocks.NewClient(t)
	db := mocks.NewChatHistoryDatabase(t)
	client.On("Chat", mock.Anything, mock.MatchedBy(func(msgs []ai.Message) bool {
		return len(msgs) == 3 && msgs[0].Content == "first" && msgs[1].Role == models.RoleAssistant
	})).Return("reply", nil)
	db.On("AppendMessages", mock.Anything, testUserID, "s1", mock.Anything, mock.Anything).Return(nil)

	body := map[string]interface{}{
		"message":   "second",
		"sessionId": "s1",
		"messages": []map[string]string{
			{"role": "user", "content": "first"},
			{"role": "assistant", "content": "answer"},
		},
	}
	rr := httptest.NewRecorder()
	Chat{AI: client, DB: db, Now: time.Now}.ChatHandler(rr, newRequest(t, http.MethodPost, "/api/v1/chat", body, testUserID))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestChatHandlerWithoutAI(t *testing.T) {
	rr := httptest.NewRecorder()
	Chat{DB: mocks.NewChatHistoryDatabase(t), Now: time.Now}.ChatHandler(rr, newRequest(t, http.MethodPost, "/api/v1/chat", map[string]string{"message": "hi"}, testUserID))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

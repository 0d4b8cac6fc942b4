package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/databases"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/databases/mocks"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
)

func TestGetChatHistoryHandlerListsSessions(t *testing.T) {
	db := mocks.NewChatHistoryDatabase(t)
	db.On("ListSessions", mock.Anything, testUserID).Return([]models.ChatHistory{
		{SessionID: "s2", UpdatedAt: time.Now(), Messages: []models.ChatMessage{{Role: models.RoleUser, Content: "Why do my knees hurt after running every morning for a week?"}}},
		{SessionID: "s1", UpdatedAt: time.Now().Add(-time.Hour)},
	}, nil)

	rr := httptest.NewRecorder()
	ChatHistory{DB: db}.GetChatHistoryHandler(rr, newRequest(t, http.MethodGet, "/api/v1/chat-history", nil, testUserID))

	require.Equal(t, http.StatusOK, rr.Code)
	sessions := decode(t, rr)["sessions"].([]interface{})
	require.Len(t, sessions, 2)
	first := sessions[0].(map[string]interface{})
	assert.Equal(t, "s2", first["sessionId"])
	assert.Equal(t, "Why do my knees hurt after running every morning f...", first["title"])
	assert.Equal(t, "New Chat", sessions[1].(map[string]interface{})["title"])
}

func TestGetChatHistoryHandlerSession(t *testing.T) {
	tests := []struct {
		name           string
		mockResult     *models.ChatHistory
		mockError      error
		expectedStatus int
	}{
		{"found", &models.ChatHistory{SessionID: "s1"}, nil, http.StatusOK},
		{"absent or foreign", nil, databases.ErrNotFound, http.StatusNotFound},
		{"database error", nil, errors.New("down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := mocks.NewChatHistoryDatabase(t)
			db.On("FindSession", mock.Anything, testUserID, "s1").Return(tt.mockResult, tt.mockError)

			rr := httptest.NewRecorder()
			ChatHistory{DB: db}.GetChatHistoryHandler(rr, newRequest(t, http.MethodGet, "/api/v1/chat-history?sessionId=s1", nil, testUserID))

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestDeleteChatHistoryHandler(t *testing.T) {
	t.Run("one session", func(t *testing.T) {
		db := mocks.NewChatHistoryDatabase(t)
		db.On("DeleteSession", mock.Anything, testUserID, "s1").Return(int64(1), nil)

		rr := httptest.NewRecorder()
		ChatHistory{DB: db}.DeleteChatHistoryHandler(rr, newRequest(t, http.MethodDelete, "/api/v1/chat-history?sessionId=s1", nil, testUserID))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, float64(1), decode(t, rr)["deletedCount"])
		db.AssertNotCalled(t, "DeleteAll", mock.Anything, mock.Anything)
	})

	t.Run("missing session", func(t *testing.T) {
		db := mocks.NewChatHistoryDatabase(t)
		db.On("DeleteSession", mock.Anything, testUserID, "nope").Return(int64(0), databases.ErrNotFound)

		rr := httptest.NewRecorder()
		ChatHistory{DB: db}.DeleteChatHistoryHandler(rr, newRequest(t, http.MethodDelete, "/api/v1/chat-history?sessionId=nope", nil, testUserID))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("all sessions", func(t *testing.T) {
		db := mocks.NewChatHistoryDatabase(t)
		db.On("DeleteAll", mock.Anything, testUserID).Return(int64(0), nil)

		rr := httptest.NewRecorder()
		ChatHistory{DB: db}.DeleteChatHistoryHandler(rr, newRequest(t, http.MethodDelete, "/api/v1/chat-history", nil, testUserID))

		assert.Equal(t, http.StatusOK, rr.Code)
		body := decode(t, rr)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, float64(0), body["deletedCount"])
	})
}

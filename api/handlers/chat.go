package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/ai"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/api"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/config"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/databases"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
)

// Chat answers chat turns with the AI client and appends them to the session
type Chat struct {
	AI  ai.Client
	DB  databases.ChatHistoryDatabase
	Now func() time.Time
}

// ChatHandler generates a reply and stores the turn pair. A storage failure
// is reported through persisted=false, the reply is still returned.
func (h Chat) ChatHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		badRequest(w, "Message is required")
		return
	}
	if h.AI == nil {
		config.ErrorStatus("Failed to generate response", http.StatusInternalServerError, w, ai.ErrNotConfigured)
		return
	}

	reply, err := h.AI.Chat(r.Context(), ai.ChatMessages(req.Messages, req.Message))
	if err != nil {
		config.ErrorStatus("Failed to generate response", http.StatusInternalServerError, w, err)
		return
	}

	now := h.Now().UTC()
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = fmt.Sprintf("session-%d", now.UnixMilli())
	}
	persisted := appendTurns(r.Context(), h.DB, userID, sessionID, now, req.Message, reply)

	api.WriteJSON(w, http.StatusOK, models.ChatResponse{Message: reply, SessionID: sessionID, Persisted: persisted})
}

// appendTurns stores a user turn and the assistant reply, logging instead of
// failing when the store is unavailable
func appendTurns(ctx context.Context, db databases.ChatHistoryDatabase, userID, sessionID string, now time.Time, userText, reply string) bool {
	err := db.AppendMessages(ctx, userID, sessionID,
		models.ChatMessage{ID: uuid.New().String(), Content: userText, Role: models.RoleUser, Timestamp: now},
		models.ChatMessage{ID: uuid.New().String(), Content: reply, Role: models.RoleAssistant, Timestamp: now},
	)
	if err != nil {
		zap.S().Errorw("failed to save chat history", "error", err, "userId", userID, "sessionId", sessionID)
		return false
	}
	return true
}

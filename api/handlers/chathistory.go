package handlers

import (
	"errors"
	"net/http"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/api"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/config"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/databases"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
)

// ChatHistory exists for dependency injection purposes
type ChatHistory struct {
	DB databases.ChatHistoryDatabase
}

// GetChatHistoryHandler returns one session with ?sessionId, otherwise the
// list of the user's sessions
func (h ChatHistory) GetChatHistoryHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if sessionID := r.URL.Query().Get("sessionId"); sessionID != "" {
		history, err := h.DB.FindSession(r.Context(), userID, sessionID)
		if errors.Is(err, databases.ErrNotFound) {
			notFound(w, "Chat session not found")
			return
		}
		if err != nil {
			config.ErrorStatus("Failed to fetch chat history", http.StatusInternalServerError, w, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, map[string]interface{}{"chatHistory": history})
		return
	}

	sessions, err := h.DB.ListSessions(r.Context(), userID)
	if err != nil {
		config.ErrorStatus("Failed to fetch chat history", http.StatusInternalServerError, w, err)
		return
	}
	summaries := make([]models.ChatSessionSummary, 0, len(sessions))
	for _, s := range sessions {
		summaries = append(summaries, s.Summary())
	}
	api.WriteJSON(w, http.StatusOK, map[string]interface{}{"sessions": summaries})
}

// DeleteChatHistoryHandler deletes one session with ?sessionId, otherwise all
// of the user's sessions
func (h ChatHistory) DeleteChatHistoryHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var (
		deleted int64
		err     error
	)
	if sessionID := r.URL.Query().Get("sessionId"); sessionID != "" {
		deleted, err = h.DB.DeleteSession(r.Context(), userID, sessionID)
		if errors.Is(err, databases.ErrNotFound) {
			notFound(w, "Chat session not found")
			return
		}
	} else {
		deleted, err = h.DB.DeleteAll(r.Context(), userID)
	}
	if err != nil {
		config.ErrorStatus("Failed to delete chat history", http.StatusInternalServerError, w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true, "deletedCount": deleted})
}

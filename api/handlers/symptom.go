package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/ai"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/api"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/databases"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
)

const (
	symptomTemperature = 0.3
	symptomMaxTokens   = 1024
)

// Symptom runs symptom analyses
type Symptom struct {
	AI  ai.Client
	DB  databases.ChatHistoryDatabase
	Now func() time.Time
}

// SymptomAnalysisHandler analyses the reported symptoms. Emergencies get a
// fixed response without calling the model, and model failures get the
// fallback text, so the endpoint always answers.
func (h Symptom) SymptomAnalysisHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req models.SymptomAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "Invalid request body")
		return
	}
	if len(req.Symptoms) == 0 {
		badRequest(w, "At least one symptom is required")
		return
	}

	emergency := ai.IsEmergency(req.Symptoms)
	var analysis string
	switch {
	case emergency:
		analysis = ai.EmergencyResponse
	case h.AI == nil:
		analysis = ai.FallbackResponse
	default:
		out, err := h.AI.Chat(r.Context(), ai.SymptomMessages(req), ai.WithTemperature(symptomTemperature), ai.WithMaxTokens(symptomMaxTokens))
		if err != nil || strings.TrimSpace(out) == "" {
			zap.S().Errorw("symptom analysis failed, using fallback", "error", err, "userId", userID)
			out = ai.FallbackResponse
		}
		analysis = out
	}

	now := h.Now().UTC()
	sessionID := fmt.Sprintf("symptom-check-%d", now.UnixMilli())
	persisted := appendTurns(r.Context(), h.DB, userID, sessionID, now, ai.SymptomSummary(req), analysis)

	api.WriteJSON(w, http.StatusOK, models.SymptomAnalysisResponse{
		Analysis:  analysis,
		Emergency: emergency,
		SessionID: sessionID,
		Persisted: persisted,
	})
}

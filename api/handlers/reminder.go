package handlers

import (
	"context"
	"net/http"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/api"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/config"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
)

// ReminderRunner runs the reminder matcher
type ReminderRunner interface {
	Run(ctx context.Context) (*models.ReminderResult, error)
	Preview(ctx context.Context) (*models.ReminderPreview, error)
}

// Reminder exposes the matcher to the external once-a-minute trigger
type Reminder struct {
	Runner ReminderRunner
}

// SendRemindersHandler runs the matcher and dispatches every due reminder
func (h Reminder) SendRemindersHandler(w http.ResponseWriter, r *http.Request) {
	result, err := h.Runner.Run(r.Context())
	if err != nil {
		config.ErrorStatus("Failed to process reminders", http.StatusInternalServerError, w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, result)
}

// PreviewRemindersHandler reports what the next run would send without sending
func (h Reminder) PreviewRemindersHandler(w http.ResponseWriter, r *http.Request) {
	preview, err := h.Runner.Preview(r.Context())
	if err != nil {
		config.ErrorStatus("Failed to check reminders", http.StatusInternalServerError, w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, preview)
}

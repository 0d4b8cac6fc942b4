package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/api"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/config"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/databases"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/reminders"
	templates "github.com/Saideep1817/AI-chatbot-for-medical-emergencies/templates/html"
)

// DoseLog serves the dose log: recording taken doses and listing them
type DoseLog struct {
	Recorder *reminders.Recorder
	DB       databases.MedicationLogDatabase
}

// MarkTakenHandler records a dose as taken for the authenticated user.
// 201 when the entry was created, 200 when an existing one was updated.
func (h DoseLog) MarkTakenHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req models.MarkTakenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "Invalid request body")
		return
	}
	key, err := reminders.ParseDoseKey(userID, req.MedicationID, req.ScheduledTime, req.ScheduledDate)
	if err != nil {
		badRequest(w, "Missing required fields")
		return
	}

	res, err := h.Recorder.MarkTaken(r.Context(), key, req.MedicationName)
	if err != nil {
		config.ErrorStatus("Failed to mark medication as taken", http.StatusInternalServerError, w, err)
		return
	}
	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	api.WriteJSON(w, status, map[string]interface{}{"log": res.Log})
}

// MarkTakenGetHandler sends requests carrying a dose tuple to the email link
// page and everything else to list
func (h DoseLog) MarkTakenGetHandler(list http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("medicationId") != "" {
			h.MarkTakenLinkHandler(w, r)
			return
		}
		list.ServeHTTP(w, r)
	})
}

// MarkTakenLinkHandler is the target of the reminder email link. The link
// identifies the user itself, so no session is needed.
func (h DoseLog) MarkTakenLinkHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	key, err := reminders.ParseDoseKey(q.Get("userId"), q.Get("medicationId"), q.Get("scheduledTime"), q.Get("scheduledDate"))
	if err != nil {
		api.WriteHTML(w, http.StatusBadRequest, templates.RenderMarkTakenErrorPage("This link is missing information. Please open the app to record your dose."))
		return
	}

	res, err := h.Recorder.MarkTakenFromLink(r.Context(), key, q.Get("medicationName"))
	if err != nil {
		zap.S().Errorw("failed to mark dose taken from link",
			"error", err,
			"medicationId", key.MedicationID.Hex(),
			"userId", key.UserID,
		)
		api.WriteHTML(w, http.StatusInternalServerError, templates.RenderMarkTakenErrorPage("We could not record your dose right now. Please try again."))
		return
	}

	day := key.ScheduledDate.Format(models.DayLayout)
	if res.AlreadyTaken {
		takenAt := ""
		if res.Log.TakenAt != nil {
			takenAt = res.Log.TakenAt.Format(time.RFC1123)
		}
		api.WriteHTML(w, http.StatusOK, templates.RenderAlreadyTakenPage(res.Log.MedicationName, key.ScheduledTime, day, takenAt))
		return
	}
	api.WriteHTML(w, http.StatusOK, templates.RenderMarkTakenPage(res.Log.MedicationName, key.ScheduledTime, day))
}

// ListDoseLogHandler lists the user's dose log, optionally between startDate
// and endDate (YYYY-MM-DD, inclusive)
func (h DoseLog) ListDoseLogHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	from, err := optionalDay(r.URL.Query().Get("startDate"))
	if err != nil {
		badRequest(w, "Invalid startDate")
		return
	}
	to, err := optionalDay(r.URL.Query().Get("endDate"))
	if err != nil {
		badRequest(w, "Invalid endDate")
		return
	}

	logs, err := h.DB.ListByUser(r.Context(), userID, from, to)
	if err != nil {
		config.ErrorStatus("Failed to fetch medication logs", http.StatusInternalServerError, w, err)
		return
	}
	if logs == nil {
		logs = []models.MedicationLog{}
	}
	api.WriteJSON(w, http.StatusOK, map[string]interface{}{"logs": logs})
}

func optionalDay(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := models.ParseDay(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

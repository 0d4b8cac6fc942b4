package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/api"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/config"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/databases"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
)

// Medication represents the medication handler. Plain YYYY-MM-DD start and
// end dates are read as midnight in Location, the zone reminders run in.
type Medication struct {
	DB       databases.MedicationDatabase
	Location *time.Location
}

// ListMedicationsHandler returns the user's medications, newest first.
// ?active=true limits the list to active ones.
func (h Medication) ListMedicationsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	meds, err := h.DB.ListByUser(r.Context(), userID, r.URL.Query().Get("active") == "true")
	if err != nil {
		config.ErrorStatus("Failed to fetch medications", http.StatusInternalServerError, w, err)
		return
	}
	if meds == nil {
		meds = []models.Medication{}
	}
	api.WriteJSON(w, http.StatusOK, map[string]interface{}{"medications": meds})
}

// CreateMedicationHandler handles POST requests to create a new medication
func (h Medication) CreateMedicationHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req models.MedicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" || req.Frequency == "" || len(req.TimeOfDay) == 0 || req.StartDate == "" {
		badRequest(w, "Missing required fields")
		return
	}
	if !validTimes(req.TimeOfDay) {
		badRequest(w, "timeOfDay entries must be HH:MM")
		return
	}
	start, err := models.ParseDateIn(req.StartDate, h.Location)
	if err != nil {
		badRequest(w, "Invalid startDate")
		return
	}

	med := &models.Medication{
		UserID:          userID,
		Name:            strings.TrimSpace(req.Name),
		Frequency:       req.Frequency,
		TimeOfDay:       req.TimeOfDay,
		StartDate:       start,
		Notes:           req.Notes,
		ReminderEnabled: req.ReminderEnabled == nil || *req.ReminderEnabled,
		Active:          true,
	}
	if req.EndDate != "" {
		end, err := models.ParseDateIn(req.EndDate, h.Location)
		if err != nil {
			badRequest(w, "Invalid endDate")
			return
		}
		med.EndDate = &end
	}

	if err := h.DB.Create(r.Context(), med); err != nil {
		config.ErrorStatus("Failed to create medication", http.StatusInternalServerError, w, err)
		return
	}
	api.WriteJSON(w, http.StatusCreated, map[string]interface{}{"medication": med})
}

// UpdateMedicationHandler applies the allowed fields present in the body to
// one of the user's medications
func (h Medication) UpdateMedicationHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req models.MedicationUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "Invalid request body")
		return
	}
	if req.ID == "" {
		badRequest(w, "Medication ID is required")
		return
	}

	set, err := updateFields(req, h.Location)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	if len(set) == 0 {
		badRequest(w, "No fields to update")
		return
	}

	med, err := h.DB.Update(r.Context(), userID, req.ID, set)
	if errors.Is(err, databases.ErrNotFound) {
		notFound(w, "Medication not found")
		return
	}
	if err != nil {
		config.ErrorStatus("Failed to update medication", http.StatusInternalServerError, w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]interface{}{"medication": med})
}

// DeleteMedicationHandler removes one of the user's medications
func (h Medication) DeleteMedicationHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id := r.URL.Query().Get("id")
	if id == "" {
		badRequest(w, "Medication ID is required")
		return
	}
	err := h.DB.Delete(r.Context(), userID, id)
	if errors.Is(err, databases.ErrNotFound) {
		notFound(w, "Medication not found")
		return
	}
	if err != nil {
		config.ErrorStatus("Failed to delete medication", http.StatusInternalServerError, w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// updateFields turns the non-nil fields of req into a $set document. An empty
// endDate clears it.
func updateFields(req models.MedicationUpdate, loc *time.Location) (bson.M, error) {
	set := bson.M{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, errors.New("name cannot be empty")
		}
		set["name"] = name
	}
	if req.Frequency != nil {
		set["frequency"] = *req.Frequency
	}
	if req.TimeOfDay != nil {
		if len(*req.TimeOfDay) == 0 || !validTimes(*req.TimeOfDay) {
			return nil, errors.New("timeOfDay entries must be HH:MM")
		}
		set["timeOfDay"] = *req.TimeOfDay
	}
	if req.StartDate != nil {
		start, err := models.ParseDateIn(*req.StartDate, loc)
		if err != nil {
			return nil, errors.New("invalid startDate")
		}
		set["startDate"] = start
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			set["endDate"] = nil
		} else {
			end, err := models.ParseDateIn(*req.EndDate, loc)
			if err != nil {
				return nil, errors.New("invalid endDate")
			}
			set["endDate"] = end
		}
	}
	if req.Notes != nil {
		set["notes"] = *req.Notes
	}
	if req.ReminderEnabled != nil {
		set["reminderEnabled"] = *req.ReminderEnabled
	}
	if req.Active != nil {
		set["active"] = *req.Active
	}
	return set, nil
}

func validTimes(times []string) bool {
	for _, t := range times {
		if !models.ValidClock(t) {
			return false
		}
	}
	return true
}

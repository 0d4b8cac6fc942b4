package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/api"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/config"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/databases"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
)

const (
	defaultMetricLimit = 30
	defaultMetricDays  = 30
)

// HealthMetric exists for dependency injection purposes
type HealthMetric struct {
	DB  databases.HealthMetricDatabase
	Now func() time.Time
}

// ListHealthMetricsHandler returns the user's readings from the last ?days
// days (default 30), newest first, at most ?limit (default 30)
func (h HealthMetric) ListHealthMetricsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	metricType := q.Get("type")
	if metricType != "" && !models.IsMetricType(metricType) {
		badRequest(w, "Invalid metric type")
		return
	}
	limit, err := positiveInt(q.Get("limit"), defaultMetricLimit)
	if err != nil {
		badRequest(w, "Invalid limit")
		return
	}
	days, err := positiveInt(q.Get("days"), defaultMetricDays)
	if err != nil {
		badRequest(w, "Invalid days")
		return
	}

	metrics, err := h.DB.List(r.Context(), userID, models.MetricQuery{
		Type:  metricType,
		Since: h.Now().UTC().Add(-time.Duration(days) * 24 * time.Hour),
		Limit: int64(limit),
	})
	if err != nil {
		config.ErrorStatus("Failed to fetch health metrics", http.StatusInternalServerError, w, err)
		return
	}
	if metrics == nil {
		metrics = []models.HealthMetric{}
	}
	api.WriteJSON(w, http.StatusOK, map[string]interface{}{"metrics": metrics})
}

// CreateHealthMetricHandler records one reading
func (h HealthMetric) CreateHealthMetricHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req models.HealthMetricRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "Invalid request body")
		return
	}
	if req.Type == "" || req.Value == nil || req.Unit == "" {
		badRequest(w, "Missing required fields")
		return
	}
	if !models.IsMetricType(req.Type) {
		badRequest(w, "Invalid metric type")
		return
	}
	metric := &models.HealthMetric{
		UserID: userID,
		Type:   req.Type,
		Value:  req.Value,
		Unit:   req.Unit,
		Notes:  req.Notes,
	}
	if req.RecordedAt != "" {
		at, err := models.ParseDate(req.RecordedAt)
		if err != nil {
			badRequest(w, "Invalid recordedAt")
			return
		}
		metric.RecordedAt = at.UTC()
	}

	if err := h.DB.Create(r.Context(), metric); err != nil {
		config.ErrorStatus("Failed to save health metric", http.StatusInternalServerError, w, err)
		return
	}
	api.WriteJSON(w, http.StatusCreated, map[string]interface{}{"metric": metric})
}

// DeleteHealthMetricHandler removes one of the user's readings
func (h HealthMetric) DeleteHealthMetricHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id := r.URL.Query().Get("id")
	if id == "" {
		badRequest(w, "Metric ID is required")
		return
	}
	err := h.DB.Delete(r.Context(), userID, id)
	if errors.Is(err, databases.ErrNotFound) {
		notFound(w, "Metric not found")
		return
	}
	if err != nil {
		config.ErrorStatus("Failed to delete health metric", http.StatusInternalServerError, w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
}

func positiveInt(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errors.New("must be a positive integer")
	}
	return n, nil
}

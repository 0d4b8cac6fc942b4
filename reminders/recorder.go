package reminders

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/databases"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
)

// ErrInvalidDoseKey is returned when the identifying tuple is incomplete or malformed
var ErrInvalidDoseKey = errors.New("medicationId, scheduledTime and scheduledDate are required")

const defaultMedicationName = "Medication"

// Entry paths of a dose record
const (
	SourceAPI  = "api"
	SourceLink = "email_link"
)

// MarkResult describes the outcome of recording a dose
type MarkResult struct {
	Log          *models.MedicationLog
	Created      bool
	AlreadyTaken bool
}

// Recorder marks doses as taken. The (user, medication, time, date) tuple is
// the upsert key so repeated calls converge on one entry.
type Recorder struct {
	Logs        databases.MedicationLogDatabase
	Medications databases.MedicationDatabase
	Now         func() time.Time
}

// NewRecorder creates a Recorder
func NewRecorder(logs databases.MedicationLogDatabase, meds databases.MedicationDatabase) *Recorder {
	return &Recorder{Logs: logs, Medications: meds, Now: time.Now}
}

// ParseDoseKey validates the identifying tuple
func ParseDoseKey(userID, medicationID, scheduledTime, scheduledDate string) (models.DoseKey, error) {
	if userID == "" || medicationID == "" || scheduledTime == "" || scheduledDate == "" {
		return models.DoseKey{}, ErrInvalidDoseKey
	}
	medID, err := primitive.ObjectIDFromHex(medicationID)
	if err != nil {
		return models.DoseKey{}, ErrInvalidDoseKey
	}
	if !models.ValidClock(scheduledTime) {
		return models.DoseKey{}, ErrInvalidDoseKey
	}
	day, err := models.ParseDay(scheduledDate)
	if err != nil {
		return models.DoseKey{}, ErrInvalidDoseKey
	}
	return models.DoseKey{
		UserID:        userID,
		MedicationID:  medID,
		ScheduledTime: scheduledTime,
		ScheduledDate: day,
	}, nil
}

// MarkTaken records the dose as taken, creating the entry when needed
func (r *Recorder) MarkTaken(ctx context.Context, key models.DoseKey, medicationName string) (MarkResult, error) {
	name := r.medicationName(ctx, key, medicationName)
	entry, created, err := r.Logs.MarkTaken(ctx, key, name, r.Now().UTC())
	if err != nil {
		return MarkResult{}, err
	}
	dosesMarked.WithLabelValues(SourceAPI).Inc()
	return MarkResult{Log: entry, Created: created}, nil
}

// MarkTakenFromLink is the email link path. It leaves an entry that is
// already taken untouched and reports AlreadyTaken instead.
func (r *Recorder) MarkTakenFromLink(ctx context.Context, key models.DoseKey, medicationName string) (MarkResult, error) {
	existing, err := r.Logs.Find(ctx, key)
	switch {
	case err == nil && existing.Status == models.DoseStatusTaken:
		return MarkResult{Log: existing, AlreadyTaken: true}, nil
	case err != nil && !errors.Is(err, databases.ErrNotFound):
		return MarkResult{}, err
	}

	name := medicationName
	if name == "" && existing != nil {
		name = existing.MedicationName
	}
	name = r.medicationName(ctx, key, name)

	entry, created, err := r.Logs.MarkTaken(ctx, key, name, r.Now().UTC())
	if err != nil {
		return MarkResult{}, err
	}
	dosesMarked.WithLabelValues(SourceLink).Inc()
	return MarkResult{Log: entry, Created: created}, nil
}

// medicationName fills in a missing name from the registry, or a generic one
func (r *Recorder) medicationName(ctx context.Context, key models.DoseKey, name string) string {
	if name != "" {
		return name
	}
	if r.Medications != nil {
		med, err := r.Medications.FindByID(ctx, key.MedicationID.Hex())
		if err == nil && med.Name != "" {
			return med.Name
		}
		if err != nil && !errors.Is(err, databases.ErrNotFound) {
			zap.S().Errorw("failed to look up medication name", "error", err, "medicationId", key.MedicationID.Hex())
		}
	}
	return defaultMedicationName
}

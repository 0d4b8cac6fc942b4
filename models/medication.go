package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Medication holds the structure for the medication collection in mongo
type Medication struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID          string             `json:"userId" bson:"userId"`
	Name            string             `json:"name" bson:"name"`
	Frequency       string             `json:"frequency" bson:"frequency"`
	TimeOfDay       []string           `json:"timeOfDay" bson:"timeOfDay"`
	StartDate       time.Time          `json:"startDate" bson:"startDate"`
	EndDate         *time.Time         `json:"endDate,omitempty" bson:"endDate,omitempty"`
	Notes           string             `json:"notes,omitempty" bson:"notes,omitempty"`
	ReminderEnabled bool               `json:"reminderEnabled" bson:"reminderEnabled"`
	Active          bool               `json:"active" bson:"active"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// RemindsAt reports whether a reminder for the clock time target is due at now.
func (m Medication) RemindsAt(target string, now time.Time) bool {
	if !m.Active || !m.ReminderEnabled {
		return false
	}
	if m.StartDate.After(now) {
		return false
	}
	if m.EndDate != nil && m.EndDate.Before(now) {
		return false
	}
	for _, t := range m.TimeOfDay {
		if t == target {
			return true
		}
	}
	return false
}

// MedicationRequest is the body accepted when creating a medication
type MedicationRequest struct {
	Name            string   `json:"name"`
	Frequency       string   `json:"frequency"`
	TimeOfDay       []string `json:"timeOfDay"`
	StartDate       string   `json:"startDate"`
	EndDate         string   `json:"endDate"`
	Notes           string   `json:"notes"`
	ReminderEnabled *bool    `json:"reminderEnabled"`
}

// MedicationUpdate is the body accepted by the partial update. Nil fields are
// left untouched.
type MedicationUpdate struct {
	ID              string    `json:"id"`
	Name            *string   `json:"name"`
	Frequency       *string   `json:"frequency"`
	TimeOfDay       *[]string `json:"timeOfDay"`
	StartDate       *string   `json:"startDate"`
	EndDate         *string   `json:"endDate"`
	Notes           *string   `json:"notes"`
	ReminderEnabled *bool     `json:"reminderEnabled"`
	Active          *bool     `json:"active"`
}

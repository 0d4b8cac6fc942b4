package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Dose log statuses
const (
	DoseStatusPending = "pending"
	DoseStatusTaken   = "taken"
	DoseStatusMissed  = "missed"
)

// MedicationLog holds the structure for the medicationlogs collection in mongo.
// (UserID, MedicationID, ScheduledTime, ScheduledDate) identifies an entry.
type MedicationLog struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID         string             `json:"userId" bson:"userId"`
	MedicationID   primitive.ObjectID `json:"medicationId" bson:"medicationId"`
	MedicationName string             `json:"medicationName" bson:"medicationName"`
	ScheduledTime  string             `json:"scheduledTime" bson:"scheduledTime"`
	ScheduledDate  time.Time          `json:"scheduledDate" bson:"scheduledDate"`
	TakenAt        *time.Time         `json:"takenAt,omitempty" bson:"takenAt,omitempty"`
	Status         string             `json:"status" bson:"status"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// DoseKey is the upsert key of a dose log entry
type DoseKey struct {
	UserID        string
	MedicationID  primitive.ObjectID
	ScheduledTime string
	ScheduledDate time.Time
}

// MarkTakenRequest is the body accepted by the mark-taken API
type MarkTakenRequest struct {
	MedicationID   string `json:"medicationId"`
	MedicationName string `json:"medicationName"`
	ScheduledTime  string `json:"scheduledTime"`
	ScheduledDate  string `json:"scheduledDate"`
}

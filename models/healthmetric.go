package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MetricTypes lists the accepted health metric types
var MetricTypes = []string{
	"blood_pressure",
	"blood_sugar",
	"weight",
	"heart_rate",
	"temperature",
	"oxygen_saturation",
	"sleep_hours",
}

// IsMetricType reports whether t is one of MetricTypes
func IsMetricType(t string) bool {
	for _, mt := range MetricTypes {
		if mt == t {
			return true
		}
	}
	return false
}

// HealthMetric holds the structure for the healthmetrics collection in mongo.
// Value is stored as sent, usually a number or {systolic, diastolic} for
// blood_pressure.
type HealthMetric struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID     string             `json:"userId" bson:"userId"`
	Type       string             `json:"type" bson:"type"`
	Value      interface{}        `json:"value" bson:"value"`
	Unit       string             `json:"unit" bson:"unit"`
	Notes      string             `json:"notes,omitempty" bson:"notes,omitempty"`
	RecordedAt time.Time          `json:"recordedAt" bson:"recordedAt"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}

// HealthMetricRequest is the body accepted when recording a metric
type HealthMetricRequest struct {
	Type       string      `json:"type"`
	Value      interface{} `json:"value"`
	Unit       string      `json:"unit"`
	Notes      string      `json:"notes"`
	RecordedAt string      `json:"recordedAt"`
}

// MetricQuery narrows a metric listing
type MetricQuery struct {
	Type  string
	Since time.Time
	Limit int64
}

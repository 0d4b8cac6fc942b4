package models

import "time"

// Reminder is a single dose reminder handed to the notifier
type Reminder struct {
	Email          string    `json:"email"`
	UserName       string    `json:"userName,omitempty"`
	UserID         string    `json:"userId"`
	PushoverKey    string    `json:"-"`
	MedicationID   string    `json:"medicationId"`
	MedicationName string    `json:"medicationName"`
	ScheduledTime  string    `json:"scheduledTime"`
	ScheduledDate  string    `json:"scheduledDate"`
	MarkTakenURL   string    `json:"markTakenUrl"`
	SentAt         time.Time `json:"sentAt"`
}

// ReminderResult is returned by a matcher run
type ReminderResult struct {
	Success       bool       `json:"success"`
	CurrentTime   time.Time  `json:"currentTime"`
	ReminderTime  string     `json:"reminderTime"`
	RemindersSent int        `json:"remindersSent"`
	Details       []Reminder `json:"details"`
}

// ReminderPreview lists what a matcher run would remind about
type ReminderPreview struct {
	Success          bool         `json:"success"`
	CurrentTime      time.Time    `json:"currentTime"`
	ReminderTime     string       `json:"reminderTime"`
	MedicationsFound int          `json:"medicationsFound"`
	Medications      []Medication `json:"medications"`
}

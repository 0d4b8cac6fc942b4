package reminders

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/databases"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
)

// MarkTakenPath is the API path the email deep link points at
const MarkTakenPath = "/api/v1/medications/mark-taken"

// DefaultAdvance is how long before a dose the reminder goes out
const DefaultAdvance = 5 * time.Minute

// Notifier delivers one reminder
type Notifier interface {
	SendReminder(ctx context.Context, r models.Reminder) error
}

// Matcher finds the doses due at now plus Advance and hands a reminder for
// each to the Notifier. It never writes to the dose log.
type Matcher struct {
	Medications databases.MedicationDatabase
	Users       databases.UserDatabase
	Logs        databases.MedicationLogDatabase
	Notifier    Notifier
	Advance     time.Duration
	Location    *time.Location
	BaseURL     string
	Now         func() time.Time
}

// NewMatcher creates a Matcher evaluating clock times in loc
func NewMatcher(meds databases.MedicationDatabase, users databases.UserDatabase, logs databases.MedicationLogDatabase, n Notifier, advance time.Duration, loc *time.Location, baseURL string) *Matcher {
	if loc == nil {
		loc = time.UTC
	}
	return &Matcher{
		Medications: meds,
		Users:       users,
		Logs:        logs,
		Notifier:    n,
		Advance:     advance,
		Location:    loc,
		BaseURL:     strings.TrimRight(baseURL, "/"),
		Now:         time.Now,
	}
}

// Target returns the reminder clock time and its date for the instant now
func (m *Matcher) Target(now time.Time) (clock, day string) {
	at := now.In(m.Location).Add(m.Advance)
	return at.Format(models.ClockLayout), at.Format(models.DayLayout)
}

// Run sends a reminder for every due dose. Failures for one medication are
// logged and do not stop the others.
func (m *Matcher) Run(ctx context.Context) (*models.ReminderResult, error) {
	now := m.Now()
	target, day := m.Target(now)

	due, err := m.due(ctx, target, now)
	if err != nil {
		return nil, err
	}

	result := &models.ReminderResult{
		Success:      true,
		CurrentTime:  now,
		ReminderTime: target,
		Details:      []models.Reminder{},
	}
	for _, med := range due {
		if r, ok := m.remind(ctx, med, target, day, now); ok {
			result.Details = append(result.Details, r)
		}
	}
	result.RemindersSent = len(result.Details)

	zap.S().Infow("reminder run finished",
		"reminderTime", target,
		"matched", len(due),
		"sent", result.RemindersSent,
	)
	return result, nil
}

// Preview reports the medications Run would remind about without sending
func (m *Matcher) Preview(ctx context.Context) (*models.ReminderPreview, error) {
	now := m.Now()
	target, _ := m.Target(now)

	due, err := m.due(ctx, target, now)
	if err != nil {
		return nil, err
	}
	return &models.ReminderPreview{
		Success:          true,
		CurrentTime:      now,
		ReminderTime:     target,
		MedicationsFound: len(due),
		Medications:      due,
	}, nil
}

// due queries the registry and rechecks every result against the schedule
func (m *Matcher) due(ctx context.Context, target string, now time.Time) ([]models.Medication, error) {
	meds, err := m.Medications.FindDue(ctx, target, now)
	if err != nil {
		return nil, fmt.Errorf("failed to find due medications: %w", err)
	}
	due := make([]models.Medication, 0, len(meds))
	for _, med := range meds {
		if med.RemindsAt(target, now) {
			due = append(due, med)
		}
	}
	return due, nil
}

// remind resolves the owner and notifies. It reports whether a reminder went out.
func (m *Matcher) remind(ctx context.Context, med models.Medication, target, day string, now time.Time) (models.Reminder, bool) {
	user, err := m.resolveUser(ctx, med.UserID)
	if err != nil {
		reminderFailures.WithLabelValues("user").Inc()
		zap.S().Warnw("skipping reminder, owner not resolved",
			"error", err,
			"medicationId", med.ID.Hex(),
			"userId", med.UserID,
		)
		return models.Reminder{}, false
	}
	userID := user.ID.Hex()

	if m.alreadyTaken(ctx, models.DoseKey{UserID: userID, MedicationID: med.ID, ScheduledTime: target}, day) {
		zap.S().Debugw("skipping reminder, dose already taken", "medicationId", med.ID.Hex(), "scheduledTime", target)
		return models.Reminder{}, false
	}

	r := models.Reminder{
		Email:          user.Email,
		UserName:       user.Name,
		UserID:         userID,
		PushoverKey:    user.PushoverKey,
		MedicationID:   med.ID.Hex(),
		MedicationName: med.Name,
		ScheduledTime:  target,
		ScheduledDate:  day,
		MarkTakenURL:   MarkTakenURL(m.BaseURL, med.ID.Hex(), target, day, userID),
		SentAt:         now,
	}
	if err := m.Notifier.SendReminder(ctx, r); err != nil {
		reminderFailures.WithLabelValues("notify").Inc()
		zap.S().Errorw("failed to send reminder",
			"error", err,
			"medicationId", med.ID.Hex(),
			"userId", userID,
		)
		return models.Reminder{}, false
	}
	remindersSent.Inc()
	return r, true
}

// resolveUser looks the owner up by id. Documents written before ids became
// the user key hold the email instead, so those fall back to an email match.
// An unresolved owner is an error; no other user is ever substituted.
func (m *Matcher) resolveUser(ctx context.Context, userKey string) (*models.User, error) {
	if userKey == "" {
		return nil, databases.ErrNotFound
	}
	user, err := m.Users.FindByID(ctx, userKey)
	if errors.Is(err, databases.ErrNotFound) && strings.Contains(userKey, "@") {
		user, err = m.Users.FindByEmail(ctx, userKey)
	}
	if err != nil {
		return nil, err
	}
	if user.Email == "" {
		return nil, fmt.Errorf("user %s has no email: %w", user.ID.Hex(), databases.ErrNotFound)
	}
	return user, nil
}

func (m *Matcher) alreadyTaken(ctx context.Context, key models.DoseKey, day string) bool {
	if m.Logs == nil {
		return false
	}
	d, err := models.ParseDay(day)
	if err != nil {
		return false
	}
	key.ScheduledDate = d
	entry, err := m.Logs.Find(ctx, key)
	if err != nil {
		if !errors.Is(err, databases.ErrNotFound) {
			zap.S().Errorw("failed to check dose log", "error", err, "medicationId", key.MedicationID.Hex())
		}
		return false
	}
	return entry.Status == models.DoseStatusTaken
}

// MarkTakenURL builds the one-click link carried by reminder emails
func MarkTakenURL(baseURL, medicationID, scheduledTime, scheduledDate, userID string) string {
	q := url.Values{}
	q.Set("medicationId", medicationID)
	q.Set("scheduledTime", scheduledTime)
	q.Set("scheduledDate", scheduledDate)
	q.Set("userId", userID)
	return strings.TrimRight(baseURL, "/") + MarkTakenPath + "?" + q.Encode()
}

package reminders_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/databases"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/databases/mocks"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/reminders"
)

// memoryLogs behaves like the unique tuple index plus upsert
type memoryLogs struct {
	mu      sync.Mutex
	entries map[models.DoseKey]*models.MedicationLog
}

func newMemoryLogs() *memoryLogs {
	return &memoryLogs{entries: map[models.DoseKey]*models.MedicationLog{}}
}

func (m *memoryLogs) Find(_ context.Context, key models.DoseKey) (*models.MedicationLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		return nil, databases.ErrNotFound
	}
	c := *e
	return &c, nil
}

func (m *memoryLogs) MarkTaken(_ context.Context, key models.DoseKey, name string, now time.Time) (*models.MedicationLog, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		e = &models.MedicationLog{
			ID:             primitive.NewObjectID(),
			UserID:         key.UserID,
			MedicationID:   key.MedicationID,
			MedicationName: name,
			ScheduledTime:  key.ScheduledTime,
			ScheduledDate:  key.ScheduledDate,
			CreatedAt:      now,
		}
		m.entries[key] = e
	}
	e.Status = models.DoseStatusTaken
	e.TakenAt = &now
	e.UpdatedAt = now
	c := *e
	return &c, !ok, nil
}

func (m *memoryLogs) ListByUser(_ context.Context, userID string, _, _ *time.Time) ([]models.MedicationLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.MedicationLog
	for _, e := range m.entries {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func TestParseDoseKey(t *testing.T) {
	medID := primitive.NewObjectID().Hex()
	tests := []struct {
		name                  string
		user, med, clock, day string
		wantErr               bool
	}{
		{"valid", "u1", medID, "09:00", "2025-03-01", false},
		{"missing user", "", medID, "09:00", "2025-03-01", true},
		{"missing medication", "u1", "", "09:00", "2025-03-01", true},
		{"bad medication id", "u1", "not-an-id", "09:00", "2025-03-01", true},
		{"bad clock", "u1", medID, "9:00", "2025-03-01", true},
		{"bad date", "u1", medID, "09:00", "03/01/2025", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := reminders.ParseDoseKey(tt.user, tt.med, tt.clock, tt.day)
			if tt.wantErr {
				assert.ErrorIs(t, err, reminders.ErrInvalidDoseKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "09:00", key.ScheduledTime)
			assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), key.ScheduledDate)
		})
	}
}

func doseKey(t *testing.T) models.DoseKey {
	key, err := reminders.ParseDoseKey("u1", primitive.NewObjectID().Hex(), "09:00", "2025-03-01")
	require.NoError(t, err)
	return key
}

func TestRecorderMarkTakenIsIdempotent(t *testing.T) {
	logs := newMemoryLogs()
	r := reminders.NewRecorder(logs, nil)
	key := doseKey(t)

	first, err := r.MarkTaken(context.Background(), key, "Metformin")
	require.NoError(t, err)
	assert.True(t, first.Created)

	second, err := r.MarkTaken(context.Background(), key, "Metformin")
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.Log.ID, second.Log.ID)
	assert.Len(t, logs.entries, 1)
}

func TestRecorderMarkTakenConcurrent(t *testing.T) {
	logs := newMemoryLogs()
	r := reminders.NewRecorder(logs, nil)
	key := doseKey(t)

	var wg sync.WaitGroup
	created := make(chan bool, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := r.MarkTaken(context.Background(), key, "Metformin")
			assert.NoError(t, err)
			created <- res.Created
		}()
	}
	wg.Wait()
	close(created)

	n := 0
	for c := range created {
		if c {
			n++
		}
	}
	assert.Equal(t, 1, n)
	assert.Len(t, logs.entries, 1)
}

func TestRecorderResolvesMedicationName(t *testing.T) {
	key := doseKey(t)

	tests := []struct {
		name   string
		setup  func(m *mocks.MedicationDatabase)
		expect string
	}{
		{
			name: "from registry",
			setup: func(m *mocks.MedicationDatabase) {
				m.On("FindByID", mock.Anything, key.MedicationID.Hex()).Return(&models.Medication{Name: "Lisinopril"}, nil)
			},
			expect: "Lisinopril",
		},
		{
			name: "missing medication",
			setup: func(m *mocks.MedicationDatabase) {
				m.On("FindByID", mock.Anything, key.MedicationID.Hex()).Return(nil, databases.ErrNotFound)
			},
			expect: "Medication",
		},
		{
			name: "registry error",
			setup: func(m *mocks.MedicationDatabase) {
				m.On("FindByID", mock.Anything, key.MedicationID.Hex()).Return(nil, errors.New("timeout"))
			},
			expect: "Medication",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meds := mocks.NewMedicationDatabase(t)
			tt.setup(meds)
			r := reminders.NewRecorder(newMemoryLogs(), meds)

			res, err := r.MarkTaken(context.Background(), key, "")
			require.NoError(t, err)
			assert.Equal(t, tt.expect, res.Log.MedicationName)
		})
	}
}

func TestRecorderMarkTakenFromLink(t *testing.T) {
	logs := newMemoryLogs()
	r := reminders.NewRecorder(logs, nil)
	key := doseKey(t)

	first, err := r.MarkTakenFromLink(context.Background(), key, "Metformin")
	require.NoError(t, err)
	assert.False(t, first.AlreadyTaken)
	assert.True(t, first.Created)
	takenAt := *first.Log.TakenAt

	r.Now = func() time.Time { return takenAt.Add(time.Hour) }
	second, err := r.MarkTakenFromLink(context.Background(), key, "Metformin")
	require.NoError(t, err)
	assert.True(t, second.AlreadyTaken)
	assert.Equal(t, takenAt, *second.Log.TakenAt)
}

func TestRecorderMarkTakenFromLinkLookupError(t *testing.T) {
	logs := mocks.NewMedicationLogDatabase(t)
	r := reminders.NewRecorder(logs, nil)
	key := doseKey(t)

	logs.On("Find", mock.Anything, key).Return(nil, errors.New("connection reset"))

	_, err := r.MarkTakenFromLink(context.Background(), key, "Metformin")
	assert.Error(t, err)
	logs.AssertNotCalled(t, "MarkTaken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

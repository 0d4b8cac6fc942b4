package databases_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/databases"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/databases/mocks"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
)

func doseKey() models.DoseKey {
	return models.DoseKey{
		UserID:        "user-1",
		MedicationID:  primitive.NewObjectID(),
		ScheduledTime: "09:00",
		ScheduledDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestMedicationLogDatabase_MarkTaken(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 2, 0, 0, time.UTC)
	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}

	tests := []struct {
		name        string
		setup       func(coll *mocks.CollectionHelper, key models.DoseKey)
		wantCreated bool
		wantErr     string
	}{
		{
			name: "creates a new entry",
			setup: func(coll *mocks.CollectionHelper, key models.DoseKey) {
				coll.On("UpdateOne", context.Background(), databases.DoseKeyFilter(key), mock.Anything, mock.Anything).
					Return(&mongo.UpdateResult{UpsertedCount: 1}, nil).Once()
			},
			wantCreated: true,
		},
		{
			name: "updates an existing entry",
			setup: func(coll *mocks.CollectionHelper, key models.DoseKey) {
				coll.On("UpdateOne", context.Background(), databases.DoseKeyFilter(key), mock.Anything, mock.Anything).
					Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil).Once()
			},
		},
		{
			name: "retries after losing the insert race",
			setup: func(coll *mocks.CollectionHelper, key models.DoseKey) {
				coll.On("UpdateOne", context.Background(), databases.DoseKeyFilter(key), mock.Anything, mock.Anything).
					Return(nil, dup).Once()
				coll.On("UpdateOne", context.Background(), databases.DoseKeyFilter(key), mock.Anything, mock.Anything).
					Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil).Once()
			},
		},
		{
			name: "db failure",
			setup: func(coll *mocks.CollectionHelper, key models.DoseKey) {
				coll.On("UpdateOne", context.Background(), databases.DoseKeyFilter(key), mock.Anything, mock.Anything).
					Return(nil, errors.New("mocked-error")).Once()
			},
			wantErr: "mocked-error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := doseKey()
			dbHelper := &mocks.DatabaseHelper{}
			coll := mocks.NewCollectionHelper(t)
			sr := &mocks.SingleResultHelper{}

			tt.setup(coll, key)
			sr.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
				arg := args.Get(0).(**models.MedicationLog)
				(*arg).Status = models.DoseStatusTaken
				(*arg).TakenAt = &now
			})
			if tt.wantErr == "" {
				coll.On("FindOne", context.Background(), databases.DoseKeyFilter(key)).Return(sr)
			}
			dbHelper.On("Collection", "medicationlogs").Return(coll)

			entry, created, err := databases.NewMedicationLogDatabase(dbHelper).MarkTaken(context.Background(), key, "Metformin", now)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantCreated, created)
			assert.Equal(t, models.DoseStatusTaken, entry.Status)
		})
	}
}

func TestMedicationLogDatabase_MarkTakenUpdateDocument(t *testing.T) {
	key := doseKey()
	now := time.Date(2025, 3, 10, 9, 2, 0, 0, time.UTC)

	dbHelper := &mocks.DatabaseHelper{}
	coll := &mocks.CollectionHelper{}
	sr := &mocks.SingleResultHelper{}

	coll.On("UpdateOne", context.Background(), databases.DoseKeyFilter(key), bson.M{
		"$set":         bson.M{"status": "taken", "takenAt": now, "updatedAt": now},
		"$setOnInsert": bson.M{"medicationName": "Metformin", "createdAt": now},
	}, mock.Anything).Return(&mongo.UpdateResult{UpsertedCount: 1}, nil)
	coll.On("FindOne", context.Background(), databases.DoseKeyFilter(key)).Return(sr)
	sr.On("Decode", mock.Anything).Return(nil)
	dbHelper.On("Collection", "medicationlogs").Return(coll)

	_, created, err := databases.NewMedicationLogDatabase(dbHelper).MarkTaken(context.Background(), key, "Metformin", now)
	assert.NoError(t, err)
	assert.True(t, created)
	coll.AssertExpectations(t)
}

func TestMedicationLogDatabase_ListByUserDateRange(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	dbHelper := &mocks.DatabaseHelper{}
	coll := &mocks.CollectionHelper{}
	cursor := &mocks.CursorHelper{}

	cursor.On("All", context.Background(), mock.Anything).Return(nil)
	cursor.On("Close", context.Background()).Return(nil)
	coll.On("Find", context.Background(), bson.M{
		"userId":        "user-1",
		"scheduledDate": bson.M{"$gte": from, "$lte": to},
	}, mock.Anything).Return(cursor, nil)
	dbHelper.On("Collection", "medicationlogs").Return(coll)

	logs, err := databases.NewMedicationLogDatabase(dbHelper).ListByUser(context.Background(), "user-1", &from, &to)
	assert.NoError(t, err)
	assert.Empty(t, logs)
	coll.AssertExpectations(t)
}

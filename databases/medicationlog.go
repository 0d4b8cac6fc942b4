package databases

// go generate: mockery --name MedicationLogDatabase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
)

const medicationLogName = "medicationlogs"

// MedicationLogDatabase contains the methods to use with the dose log
type MedicationLogDatabase interface {
	Find(ctx context.Context, key models.DoseKey) (*models.MedicationLog, error)
	MarkTaken(ctx context.Context, key models.DoseKey, medicationName string, now time.Time) (*models.MedicationLog, bool, error)
	ListByUser(ctx context.Context, userID string, from, to *time.Time) ([]models.MedicationLog, error)
}

type medicationLogDatabase struct {
	db DatabaseHelper
}

// NewMedicationLogDatabase initializes a new instance of the dose log database
func NewMedicationLogDatabase(db DatabaseHelper) MedicationLogDatabase {
	return &medicationLogDatabase{db: db}
}

// DoseKeyFilter matches the single entry identified by key
func DoseKeyFilter(key models.DoseKey) bson.M {
	return bson.M{
		"userId":        key.UserID,
		"medicationId":  key.MedicationID,
		"scheduledTime": key.ScheduledTime,
		"scheduledDate": key.ScheduledDate,
	}
}

func (l *medicationLogDatabase) Find(ctx context.Context, key models.DoseKey) (*models.MedicationLog, error) {
	entry := &models.MedicationLog{}
	if err := l.db.Collection(medicationLogName).FindOne(ctx, DoseKeyFilter(key)).Decode(&entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// MarkTaken upserts the entry for key with status taken. The bool reports
// whether the entry was created by this call.
func (l *medicationLogDatabase) MarkTaken(ctx context.Context, key models.DoseKey, medicationName string, now time.Time) (*models.MedicationLog, bool, error) {
	coll := l.db.Collection(medicationLogName)
	filter := DoseKeyFilter(key)
	update := bson.M{
		"$set": bson.M{
			"status":    models.DoseStatusTaken,
			"takenAt":   now,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"medicationName": medicationName,
			"createdAt":      now,
		},
	}
	opts := options.Update().SetUpsert(true)

	res, err := coll.UpdateOne(ctx, filter, update, opts)
	if err != nil && mongo.IsDuplicateKeyError(err) {
		// lost an insert race on the unique tuple index, the entry exists now
		res, err = coll.UpdateOne(ctx, filter, update, opts)
	}
	if err != nil {
		return nil, false, err
	}

	entry, err := l.Find(ctx, key)
	if err != nil {
		return nil, false, err
	}
	return entry, res.UpsertedCount > 0, nil
}

// ListByUser returns entries between from and to (inclusive days), latest
// day first and earliest dose first within a day
func (l *medicationLogDatabase) ListByUser(ctx context.Context, userID string, from, to *time.Time) ([]models.MedicationLog, error) {
	filter := bson.M{"userId": userID}
	if from != nil || to != nil {
		day := bson.M{}
		if from != nil {
			day["$gte"] = *from
		}
		if to != nil {
			day["$lte"] = *to
		}
		filter["scheduledDate"] = day
	}
	opts := options.Find().SetSort(bson.D{{Key: "scheduledDate", Value: -1}, {Key: "scheduledTime", Value: 1}})

	logs := []models.MedicationLog{}
	if err := findAll(ctx, l.db.Collection(medicationLogName), filter, &logs, opts); err != nil {
		return nil, err
	}
	return logs, nil
}

package databases

// go generate: mockery --name MedicationDatabase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
)

const medicationName = "medications"

// MedicationDatabase defines the interface for medication database operations
type MedicationDatabase interface {
	ListByUser(ctx context.Context, userID string, activeOnly bool) ([]models.Medication, error)
	FindByID(ctx context.Context, id string) (*models.Medication, error)
	Create(ctx context.Context, medication *models.Medication) error
	Update(ctx context.Context, userID, id string, set bson.M) (*models.Medication, error)
	Delete(ctx context.Context, userID, id string) error
	FindDue(ctx context.Context, target string, now time.Time) ([]models.Medication, error)
}

type medicationDatabase struct {
	db DatabaseHelper
}

// NewMedicationDatabase creates a new medication database instance
func NewMedicationDatabase(db DatabaseHelper) MedicationDatabase {
	return &medicationDatabase{db: db}
}

// DueMedicationsFilter selects active, reminder enabled medications scheduled at
// the clock time target whose active window covers now
func DueMedicationsFilter(target string, now time.Time) bson.M {
	return bson.M{
		"active":          true,
		"reminderEnabled": true,
		"timeOfDay":       target,
		"startDate":       bson.M{"$lte": now},
		"$or": []bson.M{
			{"endDate": bson.M{"$exists": false}},
			{"endDate": nil},
			{"endDate": bson.M{"$gte": now}},
		},
	}
}

// ListByUser returns the user's medications, newest first
func (m *medicationDatabase) ListByUser(ctx context.Context, userID string, activeOnly bool) ([]models.Medication, error) {
	filter := bson.M{"userId": userID}
	if activeOnly {
		filter["active"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	medications := []models.Medication{}
	if err := findAll(ctx, m.db.Collection(medicationName), filter, &medications, opts); err != nil {
		return nil, err
	}
	return medications, nil
}

func (m *medicationDatabase) FindByID(ctx context.Context, id string) (*models.Medication, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	medication := &models.Medication{}
	if err := m.db.Collection(medicationName).FindOne(ctx, bson.M{"_id": oid}).Decode(&medication); err != nil {
		return nil, err
	}
	return medication, nil
}

func (m *medicationDatabase) Create(ctx context.Context, medication *models.Medication) error {
	now := time.Now().UTC()
	medication.CreatedAt = now
	medication.UpdatedAt = now
	if medication.ID.IsZero() {
		medication.ID = primitive.NewObjectID()
	}

	_, err := m.db.Collection(medicationName).InsertOne(ctx, medication)
	return err
}

// Update applies set to the medication only when it belongs to userID and
// returns the updated document
func (m *medicationDatabase) Update(ctx context.Context, userID, id string, set bson.M) (*models.Medication, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	fields := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range set {
		fields[k] = v
	}

	filter := bson.M{"_id": oid, "userId": userID}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	medication := &models.Medication{}
	err = m.db.Collection(medicationName).FindOneAndUpdate(ctx, filter, bson.M{"$set": fields}, opts).Decode(&medication)
	if err != nil {
		return nil, err
	}
	return medication, nil
}

func (m *medicationDatabase) Delete(ctx context.Context, userID, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := m.db.Collection(medicationName).DeleteOne(ctx, bson.M{"_id": oid, "userId": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *medicationDatabase) FindDue(ctx context.Context, target string, now time.Time) ([]models.Medication, error) {
	var medications []models.Medication
	if err := findAll(ctx, m.db.Collection(medicationName), DueMedicationsFilter(target, now), &medications); err != nil {
		return nil, err
	}
	return medications, nil
}

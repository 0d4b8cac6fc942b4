package databases

// go generate: mockery --name HealthMetricDatabase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
)

const healthMetricName = "healthmetrics"

// HealthMetricDatabase contains the methods to use with the metric store
type HealthMetricDatabase interface {
	Create(ctx context.Context, metric *models.HealthMetric) error
	List(ctx context.Context, userID string, q models.MetricQuery) ([]models.HealthMetric, error)
	Delete(ctx context.Context, userID, id string) error
}

type healthMetricDatabase struct {
	db DatabaseHelper
}

// NewHealthMetricDatabase initializes a new instance of the metric database
func NewHealthMetricDatabase(db DatabaseHelper) HealthMetricDatabase {
	return &healthMetricDatabase{db: db}
}

// MetricFilter selects the user's readings recorded since q.Since, optionally
// of a single type
func MetricFilter(userID string, q models.MetricQuery) bson.M {
	filter := bson.M{
		"userId":     userID,
		"recordedAt": bson.M{"$gte": q.Since},
	}
	if q.Type != "" {
		filter["type"] = q.Type
	}
	return filter
}

func (h *healthMetricDatabase) Create(ctx context.Context, metric *models.HealthMetric) error {
	if metric.ID.IsZero() {
		metric.ID = primitive.NewObjectID()
	}
	metric.CreatedAt = time.Now().UTC()
	if metric.RecordedAt.IsZero() {
		metric.RecordedAt = metric.CreatedAt
	}
	_, err := h.db.Collection(healthMetricName).InsertOne(ctx, metric)
	return err
}

// List returns readings newest first, capped at q.Limit
func (h *healthMetricDatabase) List(ctx context.Context, userID string, q models.MetricQuery) ([]models.HealthMetric, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "recordedAt", Value: -1}}).
		SetLimit(q.Limit)

	metrics := []models.HealthMetric{}
	if err := findAll(ctx, h.db.Collection(healthMetricName), MetricFilter(userID, q), &metrics, opts); err != nil {
		return nil, err
	}
	return metrics, nil
}

func (h *healthMetricDatabase) Delete(ctx context.Context, userID, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := h.db.Collection(healthMetricName).DeleteOne(ctx, bson.M{"_id": oid, "userId": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

package databases

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// indexes lists the indexes every collection needs. The dose log tuple index
// is what makes concurrent mark-taken upserts converge on one entry.
var indexes = map[string][]mongo.IndexModel{
	userName: {
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	},
	medicationName: {
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "active", Value: 1}, {Key: "reminderEnabled", Value: 1}, {Key: "timeOfDay", Value: 1}}},
	},
	medicationLogName: {
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "medicationId", Value: 1},
				{Key: "scheduledTime", Value: 1},
				{Key: "scheduledDate", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	},
	healthMetricName: {
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "type", Value: 1}, {Key: "recordedAt", Value: -1}}},
	},
	chatHistoryName: {
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "sessionId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "updatedAt", Value: -1}}},
	},
}

// EnsureIndexes creates any missing index. Existing indexes are left alone.
func EnsureIndexes(ctx context.Context, db DatabaseHelper) error {
	for name, models := range indexes {
		if _, err := db.Collection(name).CreateIndexes(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", name, err)
		}
	}
	return nil
}

package databases

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
)

// ownedCollections store a userId foreign key
var ownedCollections = []string{medicationName, medicationLogName, healthMetricName, chatHistoryName}

// MigrateUserKeys rewrites documents whose userId holds the owner's email to
// hold the owner's id instead. It returns the number of documents changed per
// collection.
//
// Dose log entries and chat sessions are unique per user key, so a legacy
// document can collide with one already written under the id. Those are
// merged into the id-keyed document and the legacy copy is removed.
func MigrateUserKeys(ctx context.Context, db DatabaseHelper, users []models.User) (map[string]int64, error) {
	changed := make(map[string]int64, len(ownedCollections))
	for _, u := range users {
		if u.Email == "" {
			continue
		}
		for _, name := range ownedCollections {
			n, err := migrateCollection(ctx, db.Collection(name), name, u)
			changed[name] += n
			if err != nil {
				return changed, fmt.Errorf("failed to migrate %s for user %s: %w", name, u.ID.Hex(), err)
			}
		}
	}
	return changed, nil
}

func migrateCollection(ctx context.Context, coll CollectionHelper, name string, u models.User) (int64, error) {
	res, err := coll.UpdateMany(ctx,
		bson.M{"userId": u.Email},
		bson.M{"$set": bson.M{"userId": u.ID.Hex()}},
	)
	if err == nil {
		return res.ModifiedCount, nil
	}
	if !mongo.IsDuplicateKeyError(err) || !mergeable(name) {
		return 0, err
	}

	// UpdateMany stops at the first conflict, move the rest one at a time
	var legacy []bson.M
	if err := findAll(ctx, coll, bson.M{"userId": u.Email}, &legacy); err != nil {
		return 0, err
	}
	var n int64
	for _, doc := range legacy {
		_, err := coll.UpdateOne(ctx, bson.M{"_id": doc["_id"]}, bson.M{"$set": bson.M{"userId": u.ID.Hex()}})
		if err == nil {
			n++
			continue
		}
		if !mongo.IsDuplicateKeyError(err) {
			return n, err
		}
		if err := mergeLegacy(ctx, coll, name, u.ID.Hex(), doc); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// mergeable reports whether name has a unique index including userId
func mergeable(name string) bool {
	return name == medicationLogName || name == chatHistoryName
}

// mergeFilter selects the id-keyed document a legacy one collides with
func mergeFilter(name, userID string, doc bson.M) bson.M {
	switch name {
	case medicationLogName:
		return bson.M{
			"userId":        userID,
			"medicationId":  doc["medicationId"],
			"scheduledTime": doc["scheduledTime"],
			"scheduledDate": doc["scheduledDate"],
		}
	case chatHistoryName:
		return bson.M{"userId": userID, "sessionId": doc["sessionId"]}
	}
	return nil
}

// mergeLegacy folds doc into the id-keyed document and deletes doc. A taken
// dose stays taken; chat messages are interleaved by timestamp.
func mergeLegacy(ctx context.Context, coll CollectionHelper, name, userID string, doc bson.M) error {
	filter := mergeFilter(name, userID, doc)
	var update bson.M
	switch name {
	case medicationLogName:
		if doc["status"] == models.DoseStatusTaken {
			filter["status"] = bson.M{"$ne": models.DoseStatusTaken}
			update = bson.M{"$set": bson.M{"status": models.DoseStatusTaken, "takenAt": doc["takenAt"]}}
		}
	case chatHistoryName:
		if msgs, ok := doc["messages"].(bson.A); ok && len(msgs) > 0 {
			update = bson.M{"$push": bson.M{"messages": bson.M{
				"$each": msgs,
				"$sort": bson.M{"timestamp": 1},
			}}}
		}
	}
	if update != nil {
		if _, err := coll.UpdateOne(ctx, filter, update); err != nil {
			return err
		}
	}
	_, err := coll.DeleteOne(ctx, bson.M{"_id": doc["_id"]})
	return err
}

package databases

// go generate: mockery --name ChatHistoryDatabase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
)

const chatHistoryName = "chathistories"

// ChatHistoryDatabase contains the methods to use with the chat log
type ChatHistoryDatabase interface {
	AppendMessages(ctx context.Context, userID, sessionID string, messages ...models.ChatMessage) error
	FindSession(ctx context.Context, userID, sessionID string) (*models.ChatHistory, error)
	ListSessions(ctx context.Context, userID string) ([]models.ChatHistory, error)
	DeleteSession(ctx context.Context, userID, sessionID string) (int64, error)
	DeleteAll(ctx context.Context, userID string) (int64, error)
}

type chatHistoryDatabase struct {
	db DatabaseHelper
}

// NewChatHistoryDatabase initializes a new instance of the chat history database
func NewChatHistoryDatabase(db DatabaseHelper) ChatHistoryDatabase {
	return &chatHistoryDatabase{db: db}
}

// AppendMessages pushes messages onto the session document, creating it on
// the first turn. A single upsert keeps concurrent turns from overwriting
// each other.
func (c *chatHistoryDatabase) AppendMessages(ctx context.Context, userID, sessionID string, messages ...models.ChatMessage) error {
	now := time.Now().UTC()
	filter := bson.M{"userId": userID, "sessionId": sessionID}
	update := bson.M{
		"$push":        bson.M{"messages": bson.M{"$each": messages}},
		"$set":         bson.M{"updatedAt": now},
		"$setOnInsert": bson.M{"createdAt": now},
	}
	coll := c.db.Collection(chatHistoryName)
	opts := options.Update().SetUpsert(true)
	_, err := coll.UpdateOne(ctx, filter, update, opts)
	if err != nil && mongo.IsDuplicateKeyError(err) {
		_, err = coll.UpdateOne(ctx, filter, update, opts)
	}
	return err
}

func (c *chatHistoryDatabase) FindSession(ctx context.Context, userID, sessionID string) (*models.ChatHistory, error) {
	history := &models.ChatHistory{}
	filter := bson.M{"userId": userID, "sessionId": sessionID}
	if err := c.db.Collection(chatHistoryName).FindOne(ctx, filter).Decode(&history); err != nil {
		return nil, err
	}
	return history, nil
}

// ListSessions returns the user's sessions, most recently updated first
func (c *chatHistoryDatabase) ListSessions(ctx context.Context, userID string) ([]models.ChatHistory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	sessions := []models.ChatHistory{}
	if err := findAll(ctx, c.db.Collection(chatHistoryName), bson.M{"userId": userID}, &sessions, opts); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (c *chatHistoryDatabase) DeleteSession(ctx context.Context, userID, sessionID string) (int64, error) {
	res, err := c.db.Collection(chatHistoryName).DeleteOne(ctx, bson.M{"userId": userID, "sessionId": sessionID})
	if err != nil {
		return 0, err
	}
	if res.DeletedCount == 0 {
		return 0, ErrNotFound
	}
	return res.DeletedCount, nil
}

func (c *chatHistoryDatabase) DeleteAll(ctx context.Context, userID string) (int64, error) {
	res, err := c.db.Collection(chatHistoryName).DeleteMany(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

package databases

// go generate: mockery --name UserDatabase

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
)

const userName = "users"

// UserDatabase contains the methods to use with the user database
type UserDatabase interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	SetPushoverKey(ctx context.Context, id, key string) error
	List(ctx context.Context) ([]models.User, error)
}

type userDatabase struct {
	db DatabaseHelper
}

// NewUserDatabase initializes a new instance of user database with the provided db connection
func NewUserDatabase(db DatabaseHelper) UserDatabase {
	return &userDatabase{
		db: db,
	}
}

func (u *userDatabase) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	user := &models.User{}
	if err := u.db.Collection(userName).FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		return nil, err
	}
	return user, nil
}

// FindByEmail matches the lowercased address
func (u *userDatabase) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	filter := bson.M{"email": strings.ToLower(strings.TrimSpace(email))}
	if err := u.db.Collection(userName).FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userDatabase) Create(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.CreatedAt = now
	user.UpdatedAt = now
	_, err := u.db.Collection(userName).InsertOne(ctx, user)
	return wrapWriteErr(err)
}

// SetPushoverKey stores the key, an empty key removes it
func (u *userDatabase) SetPushoverKey(ctx context.Context, id, key string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{"pushoverKey": key, "updatedAt": time.Now().UTC()}}
	if key == "" {
		update = bson.M{"$unset": bson.M{"pushoverKey": ""}, "$set": bson.M{"updatedAt": time.Now().UTC()}}
	}
	res, err := u.db.Collection(userName).UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (u *userDatabase) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := findAll(ctx, u.db.Collection(userName), bson.M{}, &users); err != nil {
		return nil, err
	}
	return users, nil
}

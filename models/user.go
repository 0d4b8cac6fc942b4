package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Auth providers
const (
	ProviderCredentials = "credentials"
	ProviderGoogle      = "google"
	ProviderGithub      = "github"
)

// User holds the structure for the user collection in mongo
type User struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Email         string             `json:"email" bson:"email"`
	Password      string             `json:"-" bson:"password,omitempty"`
	Image         string             `json:"image,omitempty" bson:"image,omitempty"`
	Provider      string             `json:"provider" bson:"provider"`
	ProviderID    string             `json:"providerId,omitempty" bson:"providerId,omitempty"`
	EmailVerified bool               `json:"emailVerified" bson:"emailVerified"`
	PushoverKey   string             `json:"pushoverKey,omitempty" bson:"pushoverKey,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// RegisterRequest is the body accepted when creating an account
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PushoverRequest stores or clears the user's Pushover key
type PushoverRequest struct {
	UserKey string `json:"userKey"`
}

// TokenResponse is returned after a successful login
type TokenResponse struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

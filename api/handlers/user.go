package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/api"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/config"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/databases"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/notify"
	templates "github.com/Saideep1817/AI-chatbot-for-medical-emergencies/templates/html"
)

const (
	maxNameLength     = 50
	minPasswordLength = 6
)

// Mailer sends one-off emails
type Mailer interface {
	SendEmail(ctx context.Context, e notify.Email) error
}

// User exists for dependency injection purposes
type User struct {
	DB     databases.UserDatabase
	Mailer Mailer
}

// RegisterHandler creates a credentials account
func (u User) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "Invalid request body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	switch {
	case req.Name == "" || req.Email == "" || req.Password == "":
		badRequest(w, "Name, email and password are required")
		return
	case utf8.RuneCountInString(req.Name) > maxNameLength:
		badRequest(w, "Name must be 50 characters or less")
		return
	case len(req.Password) < minPasswordLength:
		badRequest(w, "Password must be at least 6 characters")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		badRequest(w, "Invalid email address")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		config.ErrorStatus("failed to hash password", http.StatusInternalServerError, w, err)
		return
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Provider: models.ProviderCredentials,
	}
	if err := u.DB.Create(r.Context(), user); err != nil {
		if errors.Is(err, databases.ErrDuplicate) {
			api.WriteJSON(w, http.StatusConflict, models.ErrorMessageResponse{Error: "User with this email already exists"})
			return
		}
		config.ErrorStatus("failed to create user", http.StatusInternalServerError, w, err)
		return
	}

	u.welcome(r.Context(), user)
	api.WriteJSON(w, http.StatusCreated, map[string]interface{}{"user": user})
}

func (u User) welcome(ctx context.Context, user *models.User) {
	if u.Mailer == nil {
		return
	}
	subject := "Welcome to Health Tracker"
	body := "Hi " + user.Name + ",\n\nYour account is ready. Add your medications and we will remind you before every dose."
	err := u.Mailer.SendEmail(ctx, notify.Email{
		To:      user.Email,
		ToName:  user.Name,
		Subject: subject,
		HTML:    templates.RenderGenericEmail(subject, body),
		Text:    body,
	})
	if err != nil {
		zap.S().Errorw("failed to send welcome email", "error", err, "userId", user.ID.Hex())
	}
}

// MeHandler returns the authenticated user's profile
func (u User) MeHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	user, err := u.DB.FindByID(r.Context(), userID)
	if errors.Is(err, databases.ErrNotFound) {
		notFound(w, "User not found")
		return
	}
	if err != nil {
		config.ErrorStatus("failed to get user", http.StatusInternalServerError, w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

// PushoverHandler stores or, with an empty key, clears the user's Pushover key
func (u User) PushoverHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req models.PushoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "Invalid request body")
		return
	}
	err := u.DB.SetPushoverKey(r.Context(), userID, strings.TrimSpace(req.UserKey))
	if errors.Is(err, databases.ErrNotFound) {
		notFound(w, "User not found")
		return
	}
	if err != nil {
		config.ErrorStatus("failed to update pushover key", http.StatusInternalServerError, w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
}

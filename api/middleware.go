package api

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shaj13/go-guardian/auth"
	"github.com/shaj13/go-guardian/auth/strategies/basic"
	"github.com/shaj13/go-guardian/auth/strategies/bearer"
	"github.com/shaj13/go-guardian/store"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/config"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/databases"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
)

// SessionCookie carries the session token for browser clients
const SessionCookie = "session"

// tokenCacheTTL bounds how long a validated token skips signature checks
const tokenCacheTTL = 10 * time.Minute

var (
	// ErrInvalidToken is returned for malformed, expired or revoked session tokens
	ErrInvalidToken = errors.New("invalid session token")
	// ErrInvalidCredentials is returned when the email or password does not match
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Auth authenticates requests with HTTP basic credentials or a signed session
// token, and issues those tokens
type Auth struct {
	Users      databases.UserDatabase
	Secret     []byte
	TTL        time.Duration
	CronSecret string
	Now        func() time.Time

	authenticator auth.Authenticator
	revoked       sync.Map
}

// NewAuth sets up the go-guardian strategies
func NewAuth(users databases.UserDatabase, conf *config.Config) *Auth {
	a := &Auth{
		Users:      users,
		Secret:     []byte(conf.JWTSecret),
		TTL:        conf.SessionTTL,
		CronSecret: conf.CronSecret,
		Now:        time.Now,
	}
	if a.TTL <= 0 {
		a.TTL = 7 * 24 * time.Hour
	}

	cache := store.NewFIFO(context.Background(), tokenCacheTTL)
	a.authenticator = auth.New()
	a.authenticator.EnableStrategy(basic.StrategyKey, basic.New(a.ValidateUser, cache))
	a.authenticator.EnableStrategy(bearer.CachedStrategyKey, bearer.New(a.ValidateToken, cache))
	return a
}

// Middleware rejects unauthenticated requests and puts the user id in the
// request context
func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
				r.Header.Set("Authorization", "Bearer "+c.Value)
			}
		}
		user, err := a.authenticator.Authenticate(r)
		if err != nil {
			zap.S().Debugw("unauthorized", "url", r.URL.Path, "error", err)
			WriteJSON(w, http.StatusUnauthorized, models.ErrorMessageResponse{Error: "Authentication required"})
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), user.ID())))
	})
}

// ValidateUser checks basic credentials against the stored bcrypt hash
func (a *Auth) ValidateUser(ctx context.Context, r *http.Request, email, password string) (auth.Info, error) {
	user, err := a.Users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, databases.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	if user.Password == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return auth.NewDefaultUser(user.Email, user.ID.Hex(), nil, nil), nil
}

// ValidateToken verifies a session token that is not in the token cache
func (a *Auth) ValidateToken(_ context.Context, _ *http.Request, token string) (auth.Info, error) {
	claims, err := a.parse(token)
	if err != nil {
		return nil, err
	}
	return auth.NewDefaultUser(claims.Subject, claims.Subject, nil, nil), nil
}

func (a *Auth) parse(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return a.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(a.Now))
	if err != nil || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	if _, ok := a.revoked.Load(claims.ID); ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// IssueToken signs a session token for userID
func (a *Auth) IssueToken(userID string) (string, time.Time, error) {
	now := a.Now()
	expires := now.Add(a.TTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        uuid.New().String(),
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	})
	signed, err := token.SignedString(a.Secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}

// CreateToken exchanges the basic credentials accepted by Middleware for a
// session token, returned in the body and as a cookie
func (a *Auth) CreateToken(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		WriteJSON(w, http.StatusUnauthorized, models.ErrorMessageResponse{Error: "Authentication required"})
		return
	}

	token, expires, err := a.IssueToken(userID)
	if err != nil {
		config.ErrorStatus("failed to create token", http.StatusInternalServerError, w, err)
		return
	}
	auth.Append(a.authenticator.Strategy(bearer.CachedStrategyKey), token, auth.NewDefaultUser(userID, userID, nil, nil), r)

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
	})
	WriteJSON(w, http.StatusOK, models.TokenResponse{Token: token, UserID: userID, ExpiresAt: expires})
}

// RevokeToken logs the session out
func (a *Auth) RevokeToken(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if claims, err := a.parse(token); err == nil {
		a.revoked.Store(claims.ID, claims.ExpiresAt.Time)
	}
	auth.Revoke(a.authenticator.Strategy(bearer.CachedStrategyKey), token, r)
	a.pruneRevoked()

	http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
	WriteJSON(w, http.StatusOK, models.SuccessResponse{Success: true, Message: "Logged out"})
}

// pruneRevoked drops revocations for tokens that have expired anyway
func (a *Auth) pruneRevoked() {
	now := a.Now()
	a.revoked.Range(func(k, v interface{}) bool {
		if exp, ok := v.(time.Time); ok && exp.Before(now) {
			a.revoked.Delete(k)
		}
		return true
	})
}

// CronMiddleware only lets through requests carrying the shared cron secret as
// a bearer token. Without a configured secret every request is rejected.
func (a *Auth) CronMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.CronSecret == "" {
			zap.S().Warnw("rejecting reminder trigger, CRON_SECRET is not set", "url", r.URL.Path)
			WriteJSON(w, http.StatusUnauthorized, models.ErrorMessageResponse{Error: "Unauthorized"})
			return
		}
		got := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(got), []byte(a.CronSecret)) != 1 {
			WriteJSON(w, http.StatusUnauthorized, models.ErrorMessageResponse{Error: "Unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

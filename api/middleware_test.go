package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/api"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/config"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/databases"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/databases/mocks"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
)

func newAuth(t *testing.T) (*api.Auth, *mocks.UserDatabase) {
	users := mocks.NewUserDatabase(t)
	conf := &config.Config{JWTSecret: "test-secret", SessionTTL: time.Hour, CronSecret: "cron-secret"}
	return api.NewAuth(users, conf), users
}

// whoami echoes the id Middleware put in the context
func whoami(w http.ResponseWriter, r *http.Request) {
	id, _ := api.UserIDFromContext(r.Context())
	api.WriteJSON(w, http.StatusOK, map[string]string{"userId": id})
}

func TestMiddlewareRejectsAnonymous(t *testing.T) {
	a, _ := newAuth(t)
	rr := httptest.NewRecorder()
	a.Middleware(http.HandlerFunc(whoami)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/medications", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error": "Authentication required"}`, rr.Body.String())
}

func TestMiddlewareAcceptsIssuedToken(t *testing.T) {
	a, _ := newAuth(t)
	userID := primitive.NewObjectID().Hex()
	token, expires, err := a.IssueToken(userID)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, time.Minute)

	tests := []struct {
		name  string
		setup func(r *http.Request)
	}{
		{"bearer header", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }},
		{"session cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: api.SessionCookie, Value: token}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(req)
			rr := httptest.NewRecorder()
			a.Middleware(http.HandlerFunc(whoami)).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, `{"userId": "`+userID+`"}`, rr.Body.String())
		})
	}
}

func TestMiddlewareRejectsForeignAndExpiredTokens(t *testing.T) {
	a, _ := newAuth(t)
	other := api.NewAuth(mocks.NewUserDatabase(t), &config.Config{JWTSecret: "other-secret", SessionTTL: time.Hour})
	forged, _, err := other.IssueToken("someone")
	require.NoError(t, err)

	expiredIssuer := api.NewAuth(mocks.NewUserDatabase(t), &config.Config{JWTSecret: "test-secret", SessionTTL: time.Hour})
	expiredIssuer.Now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _, err := expiredIssuer.IssueToken("someone")
	require.NoError(t, err)

	for name, token := range map[string]string{"forged": forged, "expired": expired, "garbage": "not-a-token"} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rr := httptest.NewRecorder()
			a.Middleware(http.HandlerFunc(whoami)).ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestCreateTokenWithBasicCredentials(t *testing.T) {
	a, users := newAuth(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{ID: primitive.NewObjectID(), Email: "jane@example.com", Password: string(hash)}
	users.On("FindByEmail", mock.Anything, "jane@example.com").Return(user, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", nil)
	req.SetBasicAuth("jane@example.com", "secret123")
	rr := httptest.NewRecorder()
	a.Middleware(http.HandlerFunc(a.CreateToken)).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.TokenResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, user.ID.Hex(), resp.UserID)
	assert.NotEmpty(t, resp.Token)

	var cookie *http.Cookie
	for _, c := range rr.Result().Cookies() {
		if c.Name == api.SessionCookie {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, resp.Token, cookie.Value)
}

func TestCreateTokenWrongPassword(t *testing.T) {
	a, users := newAuth(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	users.On("FindByEmail", mock.Anything, "jane@example.com").
		Return(&models.User{ID: primitive.NewObjectID(), Email: "jane@example.com", Password: string(hash)}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", nil)
	req.SetBasicAuth("jane@example.com", "wrong")
	rr := httptest.NewRecorder()
	a.Middleware(http.HandlerFunc(a.CreateToken)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestValidateUserUnknownEmail(t *testing.T) {
	a, users := newAuth(t)
	users.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, databases.ErrNotFound)

	_, err := a.ValidateUser(httptest.NewRequest(http.MethodGet, "/", nil).Context(), nil, "nobody@example.com", "x")
	assert.ErrorIs(t, err, api.ErrInvalidCredentials)
}

func TestRevokeTokenInvalidatesSession(t *testing.T) {
	a, _ := newAuth(t)
	token, _, err := a.IssueToken("user-1")
	require.NoError(t, err)

	call := func(h http.Handler) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		a.Middleware(h).ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusOK, call(http.HandlerFunc(whoami)).Code)
	assert.Equal(t, http.StatusOK, call(http.HandlerFunc(a.RevokeToken)).Code)
	assert.Equal(t, http.StatusUnauthorized, call(http.HandlerFunc(whoami)).Code)
}

func TestCronMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })

	tests := []struct {
		name       string
		secret     string
		header     string
		wantStatus int
	}{
		{"matching secret", "cron-secret", "Bearer cron-secret", http.StatusNoContent},
		{"wrong secret", "cron-secret", "Bearer nope", http.StatusUnauthorized},
		{"missing header", "cron-secret", "", http.StatusUnauthorized},
		{"secret not configured", "", "Bearer ", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := api.NewAuth(mocks.NewUserDatabase(t), &config.Config{JWTSecret: "x", CronSecret: tt.secret})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/medications/send-reminders", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			a.CronMiddleware(ok).ServeHTTP(rr, req)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestMetricsMiddlewareSetsRequestID(t *testing.T) {
	r := mux.NewRouter()
	r.Use(api.MetricsMiddleware)
	r.HandleFunc("/api/v1/things/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/things/42", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(api.RequestIDHeader))
}

func TestTimeoutMiddleware(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
			w.WriteHeader(http.StatusOK)
		}
	})

	rr := httptest.NewRecorder()
	api.TimeoutMiddleware(20*time.Millisecond)(slow).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Contains(t, rr.Body.String(), "Request timeout")
}

func TestHealthCheckHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	api.HealthCheckHandler(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"alive": true}`, rr.Body.String())
}

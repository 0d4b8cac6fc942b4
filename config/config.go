package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/logging"
)

// ErrEnvVariableNotSet is returned by Validate when a required value is empty
var ErrEnvVariableNotSet = errors.New("environment variable not set")

// ErrInvalidTimezone is returned by Validate when REMINDER_TIMEZONE does not load
var ErrInvalidTimezone = errors.New("invalid reminder timezone")

// Config holds the project config values
type Config struct {
	URL          string
	DatabaseName string
	BaseURL      string
	Port         string
	Env          string

	JWTSecret  string
	SessionTTL time.Duration
	CronSecret string

	ReminderAdvance  time.Duration
	ReminderLocation *time.Location
	SchedulerEnabled bool
	RequestTimeout   time.Duration

	AI    AIConfig
	Email EmailConfig

	PushoverAppToken string

	locationErr error
}

// AIConfig configures the OpenAI compatible completion endpoint
type AIConfig struct {
	APIKey        string
	BaseURL       string
	Model         string
	RatePerSecond float64
}

// EmailConfig selects and configures the outbound email provider
type EmailConfig struct {
	Provider       string
	From           string
	FromName       string
	SendGridAPIKey string
	SMTPHost       string
	SMTPPort       int
	SMTPUser       string
	SMTPPassword   string
}

// New sets up all config related services
func New() *Config {
	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("ai_api_key", "AI_API_KEY", "GEMINI_API_KEY", "OPENAI_API_KEY")

	conf := fromViper(v)

	logger, err := setLogger(conf.Env)
	if err != nil {
		logger = zap.NewExample()
	}
	_ = zap.ReplaceGlobals(logger)

	return conf
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db_name", "health-tracker")
	v.SetDefault("base_url", "http://localhost:8080")
	v.SetDefault("port", "8080")
	v.SetDefault("env", "production")
	v.SetDefault("session_ttl_hours", 168)
	v.SetDefault("reminder_advance_minutes", 5)
	v.SetDefault("reminder_timezone", "UTC")
	v.SetDefault("scheduler_enabled", false)
	v.SetDefault("request_timeout_seconds", 60)
	v.SetDefault("ai_base_url", "https://generativelanguage.googleapis.com/v1beta/openai/")
	v.SetDefault("ai_model", "gemini-2.5-flash")
	v.SetDefault("ai_rate_per_second", 2)
	v.SetDefault("email_provider", "auto")
	v.SetDefault("email_from", "noreply@healthtracker.com")
	v.SetDefault("email_from_name", "Health Tracker")
	v.SetDefault("smtp_port", 587)
}

func fromViper(v *viper.Viper) *Config {
	// an unknown zone keeps UTC so the struct stays usable, Validate reports it
	loc, locErr := time.LoadLocation(v.GetString("reminder_timezone"))
	if locErr != nil {
		loc = time.UTC
	}

	return &Config{
		URL:              v.GetString("db_uri"),
		DatabaseName:     v.GetString("db_name"),
		BaseURL:          strings.TrimRight(v.GetString("base_url"), "/"),
		Port:             v.GetString("port"),
		Env:              v.GetString("env"),
		JWTSecret:        v.GetString("jwt_secret"),
		SessionTTL:       time.Duration(v.GetInt("session_ttl_hours")) * time.Hour,
		CronSecret:       v.GetString("cron_secret"),
		ReminderAdvance:  time.Duration(v.GetInt("reminder_advance_minutes")) * time.Minute,
		ReminderLocation: loc,
		SchedulerEnabled: v.GetBool("scheduler_enabled"),
		RequestTimeout:   time.Duration(v.GetInt("request_timeout_seconds")) * time.Second,
		AI: AIConfig{
			APIKey:        v.GetString("ai_api_key"),
			BaseURL:       v.GetString("ai_base_url"),
			Model:         v.GetString("ai_model"),
			RatePerSecond: v.GetFloat64("ai_rate_per_second"),
		},
		Email: EmailConfig{
			Provider:       strings.ToLower(v.GetString("email_provider")),
			From:           v.GetString("email_from"),
			FromName:       v.GetString("email_from_name"),
			SendGridAPIKey: v.GetString("sendgrid_api_key"),
			SMTPHost:       v.GetString("smtp_host"),
			SMTPPort:       v.GetInt("smtp_port"),
			SMTPUser:       v.GetString("smtp_user"),
			SMTPPassword:   v.GetString("smtp_password"),
		},
		PushoverAppToken: v.GetString("pushover_app_token"),
		locationErr:      locErr,
	}
}

// Validate reports the first required value that is missing, or a reminder
// timezone that failed to load
func (c *Config) Validate() error {
	required := map[string]string{
		"DB_URI":     c.URL,
		"JWT_SECRET": c.JWTSecret,
	}
	for _, name := range []string{"DB_URI", "JWT_SECRET"} {
		if required[name] == "" {
			return fmt.Errorf("%s: %w", name, ErrEnvVariableNotSet)
		}
	}
	if c.locationErr != nil {
		return fmt.Errorf("REMINDER_TIMEZONE: %w: %v", ErrInvalidTimezone, c.locationErr)
	}
	return nil
}

func setLogger(env string) (*zap.Logger, error) {
	return logging.New(env)
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err. The error detail only goes to the log.
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(zap.Error(err)).Error(message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/ai"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/api"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/api/scheduler"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/config"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/databases"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/notify"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/reminders"
)

const (
	breakerFailures = 5
	breakerCooldown = time.Minute
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router   *mux.Router
	Config   config.Config
	AI       ai.Client
	Notifier *notify.Notifier
	Hub      *notify.Hub
	Matcher  *reminders.Matcher

	dbHelper  databases.DatabaseHelper
	client    databases.ClientHelper
	scheduler *scheduler.Scheduler
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	users := databases.NewUserDatabase(a.dbHelper)
	meds := databases.NewMedicationDatabase(a.dbHelper)
	logs := databases.NewMedicationLogDatabase(a.dbHelper)
	chats := databases.NewChatHistoryDatabase(a.dbHelper)

	auth := api.NewAuth(users, &a.Config)

	u := User{DB: users}
	var notifier reminders.Notifier = notify.NewNotifier(notify.NewLogSender())
	if a.Notifier != nil {
		u.Mailer = a.Notifier
		notifier = a.Notifier
	}
	a.Matcher = reminders.NewMatcher(meds, users, logs, notifier, a.Config.ReminderAdvance, a.Config.ReminderLocation, a.Config.BaseURL)

	m := Medication{DB: meds, Location: a.Config.ReminderLocation}
	d := DoseLog{Recorder: reminders.NewRecorder(logs, meds), DB: logs}
	rem := Reminder{Runner: a.Matcher}
	hm := HealthMetric{DB: databases.NewHealthMetricDatabase(a.dbHelper), Now: time.Now}
	c := Chat{AI: a.AI, DB: chats, Now: time.Now}
	ch := ChatHistory{DB: chats}
	s := Symptom{AI: a.AI, DB: chats, Now: time.Now}
	live := Live{Hub: a.Hub}

	r := mux.NewRouter()
	r.Use(api.MetricsMiddleware)

	// healthchex
	r.HandleFunc("/health", api.HealthCheckHandler).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	apiCreate := r.PathPrefix("/api/v1").Subrouter()
	apiCreate.Use(api.TimeoutMiddleware(a.Config.RequestTimeout))

	apiCreate.Handle("/auth/register", http.HandlerFunc(u.RegisterHandler)).Methods("POST")
	apiCreate.Handle("/auth/token", auth.Middleware(http.HandlerFunc(auth.CreateToken))).Methods("POST")
	apiCreate.Handle("/auth/logout", auth.Middleware(http.HandlerFunc(auth.RevokeToken))).Methods("DELETE")

	apiCreate.Handle("/users/me", auth.Middleware(http.HandlerFunc(u.MeHandler))).Methods("GET")
	apiCreate.Handle("/users/me/pushover", auth.Middleware(http.HandlerFunc(u.PushoverHandler))).Methods("PATCH")

	// the mark-taken and send-reminders routes must stay above the bare /medications routes
	markTakenGet := d.MarkTakenGetHandler(auth.Middleware(http.HandlerFunc(d.ListDoseLogHandler)))
	apiCreate.Handle("/medications/mark-taken", markTakenGet).Methods("GET")
	apiCreate.Handle("/medications/mark-taken", auth.Middleware(http.HandlerFunc(d.MarkTakenHandler))).Methods("POST")
	apiCreate.Handle("/mark-taken", http.HandlerFunc(d.MarkTakenLinkHandler)).Methods("GET")
	apiCreate.Handle("/medications/send-reminders", auth.CronMiddleware(http.HandlerFunc(rem.SendRemindersHandler))).Methods("POST")
	apiCreate.Handle("/medications/send-reminders", auth.CronMiddleware(http.HandlerFunc(rem.PreviewRemindersHandler))).Methods("GET")

	apiCreate.Handle("/medications", auth.Middleware(http.HandlerFunc(m.ListMedicationsHandler))).Methods("GET")
	apiCreate.Handle("/medications", auth.Middleware(http.HandlerFunc(m.CreateMedicationHandler))).Methods("POST")
	apiCreate.Handle("/medications", auth.Middleware(http.HandlerFunc(m.UpdateMedicationHandler))).Methods("PATCH")
	apiCreate.Handle("/medications", auth.Middleware(http.HandlerFunc(m.DeleteMedicationHandler))).Methods("DELETE")

	apiCreate.Handle("/health-metrics", auth.Middleware(http.HandlerFunc(hm.ListHealthMetricsHandler))).Methods("GET")
	apiCreate.Handle("/health-metrics", auth.Middleware(http.HandlerFunc(hm.CreateHealthMetricHandler))).Methods("POST")
	apiCreate.Handle("/health-metrics", auth.Middleware(http.HandlerFunc(hm.DeleteHealthMetricHandler))).Methods("DELETE")

	apiCreate.Handle("/chat", auth.Middleware(http.HandlerFunc(c.ChatHandler))).Methods("POST")
	apiCreate.Handle("/chat-history", auth.Middleware(http.HandlerFunc(ch.GetChatHistoryHandler))).Methods("GET")
	apiCreate.Handle("/chat-history", auth.Middleware(http.HandlerFunc(ch.DeleteChatHistoryHandler))).Methods("DELETE")
	apiCreate.Handle("/symptom-analysis", auth.Middleware(http.HandlerFunc(s.SymptomAnalysisHandler))).Methods("POST")

	apiCreate.Handle("/ws/reminders", auth.Middleware(http.HandlerFunc(live.RemindersSocketHandler))).Methods("GET")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {
	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(zap.Error(err)).Error("failed to create new client")
		return err
	}

	ctx, cancel := api.WithQueryTimeout(context.Background())
	defer cancel()
	if err := client.Connect(ctx); err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(zap.Error(err)).Error("failed to connect to database")
		return err
	}
	a.client = client
	a.dbHelper = databases.NewDatabase(&a.Config, client)
	zap.S().Info("health-tracker-api has connected to the database")

	if err := databases.EnsureIndexes(ctx, a.dbHelper); err != nil {
		zap.S().With(zap.Error(err)).Error("failed to ensure indexes")
		return err
	}

	a.AI = newAIClient(a.Config.AI)
	a.Notifier, a.Hub, err = newNotifier(&a.Config)
	if err != nil {
		zap.S().With(zap.Error(err)).Error("failed to set up notifier")
		return err
	}

	// initialize api router
	a.Router = a.New()

	if a.Config.SchedulerEnabled {
		a.scheduler = scheduler.NewScheduler(a.Matcher, a.Config.ReminderLocation)
		a.scheduler.Start()
	}
	return nil
}

// Shutdown stops the scheduler and closes the database connection
func (a *App) Shutdown(ctx context.Context) error {
	if a.scheduler != nil {
		a.scheduler.Stop()
	}
	if a.client == nil {
		return nil
	}
	return a.client.Disconnect(ctx)
}

// newAIClient leaves the client nil when no key is configured so handlers can
// answer with their fallback
func newAIClient(conf config.AIConfig) ai.Client {
	c, err := ai.NewOpenAIClient(conf)
	if errors.Is(err, ai.ErrNotConfigured) {
		zap.S().Warn("AI_API_KEY is not set, AI features will use fallback responses")
		return nil
	}
	if err != nil {
		zap.S().With(zap.Error(err)).Error("failed to create AI client")
		return nil
	}
	return c
}

func newNotifier(conf *config.Config) (*notify.Notifier, *notify.Hub, error) {
	sender, err := notify.NewSender(conf.Email)
	if err != nil {
		return nil, nil, err
	}
	zap.S().Infow("email provider selected", "provider", sender.Name())

	hub := notify.NewHub()
	channels := []notify.Channel{hub}
	if conf.PushoverAppToken != "" {
		channels = append(channels, notify.NewPushoverChannel(conf.PushoverAppToken))
	}
	return notify.NewNotifier(notify.NewBreakerSender(sender, breakerFailures, breakerCooldown), channels...), hub, nil
}

// requireUser returns the authenticated user's id or writes a 401
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := api.UserIDFromContext(r.Context())
	if !ok {
		api.WriteJSON(w, http.StatusUnauthorized, models.ErrorMessageResponse{Error: "Authentication required"})
	}
	return id, ok
}

func badRequest(w http.ResponseWriter, message string) {
	api.WriteJSON(w, http.StatusBadRequest, models.ErrorMessageResponse{Error: message})
}

func notFound(w http.ResponseWriter, message string) {
	api.WriteJSON(w, http.StatusNotFound, models.ErrorMessageResponse{Error: message})
}

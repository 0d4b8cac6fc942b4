package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
)

// EveryMinute is the reminder job schedule
const EveryMinute = "* * * * *"

// runTimeout keeps one run from overlapping the next tick by much
const runTimeout = 55 * time.Second

// Runner is one reminder matcher pass
type Runner interface {
	Run(ctx context.Context) (*models.ReminderResult, error)
}

// Scheduler triggers the reminder matcher in process, for deployments without
// an external cron calling the send-reminders endpoint
type Scheduler struct {
	cron   *cron.Cron
	runner Runner
}

// NewScheduler creates a new scheduler instance. A tick is skipped while the
// previous run is still going.
func NewScheduler(runner Runner, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	logger := cronLogger{}
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		runner: runner,
	}
}

// Start begins the scheduler with the reminder job registered
func (s *Scheduler) Start() {
	if _, err := s.cron.AddFunc(EveryMinute, s.sendReminders); err != nil {
		zap.S().Errorw("failed to register reminder job", "error", err)
		return
	}
	s.cron.Start()
	zap.S().Info("reminder scheduler started")
}

// Stop gracefully stops the scheduler, waiting for a running job
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("reminder scheduler stopped")
}

func (s *Scheduler) sendReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	result, err := s.runner.Run(ctx)
	if err != nil {
		zap.S().Errorw("scheduled reminder run failed", "error", err)
		return
	}
	zap.S().Debugw("scheduled reminder run", "reminderTime", result.ReminderTime, "sent", result.RemindersSent)
}

// cronLogger routes cron's own logging to zap
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	zap.S().Debugw(msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	zap.S().Errorw(msg, append(keysAndValues, "error", err)...)
}

package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/models"
)

type countingRunner struct {
	calls int32
	err   error
	block chan struct{}
}

func (c *countingRunner) Run(ctx context.Context) (*models.ReminderResult, error) {
	atomic.AddInt32(&c.calls, 1)
	if c.block != nil {
		<-c.block
	}
	if c.err != nil {
		return nil, c.err
	}
	return &models.ReminderResult{Success: true, ReminderTime: "09:00"}, nil
}

func TestSendRemindersCallsRunner(t *testing.T) {
	r := &countingRunner{}
	s := NewScheduler(r, nil)

	s.sendReminders()
	assert.Equal(t, int32(1), atomic.LoadInt32(&r.calls))
}

func TestSendRemindersSurvivesRunnerError(t *testing.T) {
	r := &countingRunner{err: errors.New("db down")}
	s := NewScheduler(r, time.UTC)

	assert.NotPanics(t, s.sendReminders)
	assert.Equal(t, int32(1), atomic.LoadInt32(&r.calls))
}

func TestSkipIfStillRunning(t *testing.T) {
	r := &countingRunner{block: make(chan struct{})}
	s := NewScheduler(r, time.UTC)

	// wrap the job the way Start does and fire it twice while the first is blocked
	job := cron.NewChain(cron.SkipIfStillRunning(cronLogger{})).Then(cron.FuncJob(s.sendReminders))
	go job.Run()
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&r.calls) == 1 }, time.Second, 5*time.Millisecond)

	job.Run()
	close(r.block)
	assert.Equal(t, int32(1), atomic.LoadInt32(&r.calls))
}

func TestStartAndStop(t *testing.T) {
	s := NewScheduler(&countingRunner{}, time.UTC)
	s.Start()
	assert.Len(t, s.cron.Entries(), 1)
	s.Stop()
}

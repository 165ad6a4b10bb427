package schedule

import (
	"context"
	"time"

	"weather-widget/internal/application/registry"
	"weather-widget/pkg/log"
	"weather-widget/pkg/msg"

	"github.com/robfig/cron/v3"
)

// Evicter drops widgets idle for longer than the given duration
type Evicter interface {
	Evict(idle time.Duration) int
}

type SessionScheduler struct {
	cron           *cron.Cron
	evicter        Evicter
	cronExpression string
	idle           time.Duration
}

func NewSessionScheduler(widgets *registry.Registry, cronExpression string, idle time.Duration) *SessionScheduler {
	return &SessionScheduler{
		cron:           cron.New(),
		evicter:        widgets,
		cronExpression: cronExpression,
		idle:           idle,
	}
}

// InitSessionScheduleTasks registers the idle session eviction and starts the cron
func (scheduler *SessionScheduler) InitSessionScheduleTasks() error {
	if _, err := scheduler.cron.AddFunc(scheduler.cronExpression, scheduler.EvictIdleSessions); err != nil {
		return err
	}

	scheduler.cron.Start()
	return nil
}

// Stop waits for a running eviction to finish
func (scheduler *SessionScheduler) Stop(ctx context.Context) {
	select {
	case <-scheduler.cron.Stop().Done():
	case <-ctx.Done():
	}
}

func (scheduler *SessionScheduler) EvictIdleSessions() {
	log.Info(msg.GetMessage("session.cron.start"))

	evicted := scheduler.evicter.Evict(scheduler.idle)

	log.Info(msg.GetMessage("session.cron.end", evicted))
}

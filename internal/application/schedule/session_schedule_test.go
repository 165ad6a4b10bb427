package schedule

import (
	"testing"
	"time"
)

type countingEvicter struct {
	idle  time.Duration
	calls int
}

func (c *countingEvicter) Evict(idle time.Duration) int {
	c.idle = idle
	c.calls++
	return 3
}

func TestEvictIdleSessionsUsesConfiguredIdle(t *testing.T) {
	evicter := &countingEvicter{}
	scheduler := &SessionScheduler{evicter: evicter, idle: 30 * time.Minute}

	scheduler.EvictIdleSessions()

	if evicter.calls != 1 || evicter.idle != 30*time.Minute {
		t.Fatalf("unexpected eviction calls=%d idle=%v", evicter.calls, evicter.idle)
	}
}

func TestInitSessionScheduleTasksRejectsBadExpression(t *testing.T) {
	scheduler := NewSessionScheduler(nil, "not a cron", time.Minute)
	if err := scheduler.InitSessionScheduleTasks(); err == nil {
		t.Fatal("expected invalid cron expression error")
	}
}

package schedule

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"weather-favorites/internal/domain/usecase/session"
	"weather-favorites/pkg/log"
	"weather-favorites/pkg/msg"
)

// SessionSweepScheduler logs out users whose in-memory favorites went unused for too long, so
// that their favorites are persisted and memory is released. Each replica sweeps its own registry.
type SessionSweepScheduler struct {
	scheduler   gocron.Scheduler
	useCase     session.UseCase
	cron        string
	idleTimeout time.Duration
}

func NewSessionSweepScheduler(useCase session.UseCase, cronExpression string, idleTimeout time.Duration) (*SessionSweepScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	return &SessionSweepScheduler{scheduler: scheduler, useCase: useCase, cron: cronExpression, idleTimeout: idleTimeout}, nil
}

func (s *SessionSweepScheduler) InitSessionSweepScheduleTasks() error {
	_, err := s.scheduler.NewJob(
		gocron.CronJob(s.cron, false),
		gocron.NewTask(func(ctx context.Context) { s.Sweep(ctx) }),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}
	s.scheduler.Start()
	log.Infof("Session sweep scheduler started with cron expression: %s", s.cron)
	return nil
}

// Sweep expires idle sessions once and returns how many were expired.
func (s *SessionSweepScheduler) Sweep(ctx context.Context) int {
	log.Debug(msg.GetMessage("schedule.sweep-start"))

	expired, err := s.useCase.ExpireIdle(ctx, s.idleTimeout)
	if err != nil {
		log.Error("Idle session sweep finished with errors", zap.Int("expired", expired), zap.Error(err))
		return expired
	}

	log.Info(msg.GetMessage("schedule.sweep-end", expired))
	return expired
}

func (s *SessionSweepScheduler) Stop() {
	if err := s.scheduler.Shutdown(); err != nil {
		log.Error("Failed to stop session sweep scheduler", zap.Error(err))
	}
}

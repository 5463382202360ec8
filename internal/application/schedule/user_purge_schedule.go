package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"weather-favorites/internal/domain/usecase/account"
	"weather-favorites/pkg/log"
	"weather-favorites/pkg/msg"
	"weather-favorites/pkg/redis"
)

const purgeLockKey = "user_purge_scheduler"

// UserPurgeSchedulerConfig holds configuration for the user purge scheduler
type UserPurgeSchedulerConfig struct {
	CronExpression string
	Retention      time.Duration
	LockTTL        time.Duration
}

// UserPurgeScheduler hard-deletes soft-deleted users past their retention. A redis lock keeps
// replicas from purging concurrently.
type UserPurgeScheduler struct {
	cron        *cron.Cron
	useCase     account.UseCase
	redisClient *redis.Client
	config      UserPurgeSchedulerConfig
	now         func() time.Time
}

func NewUserPurgeScheduler(useCase account.UseCase, redisClient *redis.Client, config UserPurgeSchedulerConfig) *UserPurgeScheduler {
	return &UserPurgeScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		config:      config,
		now:         time.Now,
	}
}

// InitUserPurgeScheduleTasks registers the purge job and starts the cron.
func (s *UserPurgeScheduler) InitUserPurgeScheduleTasks() error {
	if _, err := s.cron.AddFunc(s.config.CronExpression, func() { s.ExecuteScheduledTask(context.Background()) }); err != nil {
		return err
	}
	s.cron.Start()
	log.Infof("User purge scheduler started with cron expression: %s", s.config.CronExpression)
	return nil
}

// ExecuteScheduledTask runs one purge under the lock. Losing the lock race is not an error.
func (s *UserPurgeScheduler) ExecuteScheduledTask(ctx context.Context) {
	runID := uuid.New().String()
	log.Info(msg.GetMessage("schedule.purge-start", runID), zap.String("run_id", runID))

	opts := redis.NewLockOptions().
		WithTTL(s.getLockTTL()).
		WithMaxRetries(0).
		WithLockNamespace("schedules")

	err := redis.LockWithFunc(ctx, s.redisClient, purgeLockKey, opts, func() error {
		_, err := s.useCase.PurgeDeleted(ctx, s.now().Add(-s.config.Retention))
		return err
	})
	switch {
	case errors.Is(err, redis.ErrLockNotAcquired):
		log.Info(msg.GetMessage("schedule.lock-failed", purgeLockKey, err), zap.String("run_id", runID))
		return
	case err != nil:
		log.Error(msg.GetMessage("schedule.purge-failed", runID), zap.String("run_id", runID), zap.Error(err))
		return
	}

	log.Info(msg.GetMessage("schedule.purge-end", runID), zap.String("run_id", runID))
}

// Stop waits for a running job to finish.
func (s *UserPurgeScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}

func (s *UserPurgeScheduler) getLockTTL() time.Duration {
	if s.config.LockTTL > 0 {
		return s.config.LockTTL
	}
	return 10 * time.Minute
}

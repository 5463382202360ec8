package schedule

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"weather-favorites/internal/domain/favorites"
	"weather-favorites/internal/domain/gateway/cache"
	"weather-favorites/internal/domain/model"
	"weather-favorites/internal/domain/usecase/account"
	"weather-favorites/internal/domain/usecase/session"
	"weather-favorites/internal/mocks"
	"weather-favorites/pkg/redis"
)

type ScheduleTestSuite struct {
	suite.Suite
	server *miniredis.Miniredis
	client *redis.Client
}

func (s *ScheduleTestSuite) SetupTest() {
	s.server = miniredis.RunT(s.T())
	port, err := strconv.Atoi(s.server.Port())
	s.Require().NoError(err)
	s.client = redis.NewClient(redis.NewRedisConfig().WithHost(s.server.Host()).WithPort(port))
}

func (s *ScheduleTestSuite) TearDownTest() {
	_ = s.client.Close()
}

func (s *ScheduleTestSuite) newPurgeScheduler(users *mocks.MockUserGateway, now time.Time) *UserPurgeScheduler {
	scheduler := NewUserPurgeScheduler(account.NewAccountUseCase(users, nil), s.client, UserPurgeSchedulerConfig{
		CronExpression: "0 3 * * *",
		Retention:      24 * time.Hour,
		LockTTL:        time.Minute,
	})
	scheduler.now = func() time.Time { return now }
	return scheduler
}

func (s *ScheduleTestSuite) TestPurgeUsesRetentionCutoff() {
	now := time.Date(2024, 5, 10, 3, 0, 0, 0, time.UTC)
	users := mocks.NewMockUserGateway(s.T())
	users.On("PurgeDeleted", mock.Anything, now.Add(-24*time.Hour)).Return(int64(3), nil).Once()

	s.newPurgeScheduler(users, now).ExecuteScheduledTask(context.Background())

	s.False(s.server.Exists("schedules::"+purgeLockKey), "lock must be released")
}

func (s *ScheduleTestSuite) TestPurgeSkipsWhenLockIsHeld() {
	users := mocks.NewMockUserGateway(s.T())
	s.Require().NoError(s.server.Set("schedules::"+purgeLockKey, "other-replica"))

	s.newPurgeScheduler(users, time.Now()).ExecuteScheduledTask(context.Background())

	users.AssertNotCalled(s.T(), "PurgeDeleted", mock.Anything, mock.Anything)
	got, err := s.server.Get("schedules::" + purgeLockKey)
	s.Require().NoError(err)
	s.Equal("other-replica", got)
}

func (s *ScheduleTestSuite) TestPurgeRejectsInvalidCron() {
	scheduler := NewUserPurgeScheduler(nil, s.client, UserPurgeSchedulerConfig{CronExpression: "not a cron"})
	s.Error(scheduler.InitUserPurgeScheduleTasks())
}

func (s *ScheduleTestSuite) TestSweepPersistsIdleSessions() {
	current := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	registry := favorites.NewRegistry().WithClock(func() time.Time { return current })
	sessions := cache.NewRedisSessionGateway(s.client, time.Hour)
	useCase := session.NewSessionUseCase(registry, sessions)
	ctx := context.Background()

	idle, err := useCase.Login(ctx, "idle-user")
	s.Require().NoError(err)
	s.Require().NoError(idle.Put("Boston", model.WeatherRecord{Temperature: 41.2, Humidity: 70}))
	_, err = useCase.Login(ctx, "active-user")
	s.Require().NoError(err)

	current = current.Add(45 * time.Minute)
	_, ok := useCase.Store("active-user")
	s.Require().True(ok)

	scheduler, err := NewSessionSweepScheduler(useCase, "*/5 * * * *", 30*time.Minute)
	s.Require().NoError(err)
	s.Equal(1, scheduler.Sweep(ctx))

	_, ok = useCase.Store("idle-user")
	s.False(ok)
	_, ok = useCase.Store("active-user")
	s.True(ok)

	doc, err := sessions.Find(ctx, "idle-user")
	s.Require().NoError(err)
	s.Require().NotNil(doc)
	s.Contains(doc.Favorites, "Boston")
}

func TestScheduleTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleTestSuite))
}

func TestSweepSchedulerLifecycle(t *testing.T) {
	scheduler, err := NewSessionSweepScheduler(nil, "*/5 * * * *", time.Minute)
	require.NoError(t, err)
	require.NoError(t, scheduler.InitSessionSweepScheduleTasks())
	scheduler.Stop()

	broken, err := NewSessionSweepScheduler(nil, "every now and then", time.Minute)
	require.NoError(t, err)
	assert.Error(t, broken.InitSessionSweepScheduleTasks())
}

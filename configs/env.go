package configs

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"weather-favorites/pkg/resource"
)

type ServerConfig struct {
	Port           int    `validate:"min=1,max=65535"`
	ContextPath    string `validate:"startswith=/"`
	SwaggerEnabled bool
}

type BackoffConfig struct {
	MaxRetries      int `validate:"min=0"`
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

type BreakerConfig struct {
	MaxRequests      uint32 `validate:"min=1"`
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32 `validate:"min=1"`
}

type WeatherConfig struct {
	BaseURL        string `validate:"required,url"`
	APIKey         string
	Timeout        time.Duration `validate:"gt=0"`
	Fanout         int           `validate:"min=1"`
	HealthLocation string        `validate:"required"`
	Backoff        BackoffConfig
	Breaker        BreakerConfig
}

type DBConfig struct {
	URI         string `validate:"required"`
	Gateway     string `validate:"oneof=gorm sqlc"`
	AutoMigrate bool
}

type RedisConfig struct {
	Host     string `validate:"required"`
	Port     int    `validate:"min=1,max=65535"`
	Password string
	Database int `validate:"min=0"`
}

type SessionConfig struct {
	TTL         time.Duration `validate:"gt=0"`
	IdleTimeout time.Duration `validate:"gt=0"`
	SweepCron   string        `validate:"required"`
}

type PurgeConfig struct {
	Cron      string        `validate:"required"`
	Retention time.Duration `validate:"gt=0"`
	LockTTL   time.Duration `validate:"gt=0"`
}

type EventsConfig struct {
	Enabled    bool
	Queue      string `validate:"required_if=Enabled true"`
	WorkerPool int    `validate:"min=1"`
}

type AWSConfig struct {
	Region          string `validate:"required"`
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// AppConfig is the typed view over application.yml.
type AppConfig struct {
	Name     string `validate:"required"`
	LogLevel string `validate:"oneof=debug info warn error"`
	Server   ServerConfig
	Weather  WeatherConfig
	DB       DBConfig
	Redis    RedisConfig
	Session  SessionConfig
	Purge    PurgeConfig
	Events   EventsConfig
	AWS      AWSConfig
}

// Load reads every app.* property and validates the result.
func Load() (*AppConfig, error) {
	config := &AppConfig{
		Name:     resource.GetString("app.name"),
		LogLevel: resource.GetString("app.log-level"),
		Server: ServerConfig{
			Port:           resource.GetInt("app.server.port"),
			ContextPath:    resource.GetString("app.server.context-path"),
			SwaggerEnabled: resource.GetBool("app.server.swagger-enabled"),
		},
		Weather: WeatherConfig{
			BaseURL:        resource.GetString("app.weather.base-url"),
			APIKey:         resource.GetString("app.weather.api-key"),
			Timeout:        resource.GetDuration("app.weather.timeout"),
			Fanout:         resource.GetInt("app.weather.fanout"),
			HealthLocation: resource.GetString("app.weather.health-location"),
			Backoff: BackoffConfig{
				MaxRetries:      resource.GetInt("app.weather.backoff.max-retries"),
				InitialInterval: resource.GetDuration("app.weather.backoff.initial-interval"),
				MaxInterval:     resource.GetDuration("app.weather.backoff.max-interval"),
			},
			Breaker: BreakerConfig{
				MaxRequests:      uint32(resource.GetInt("app.weather.breaker.max-requests")),
				Interval:         resource.GetDuration("app.weather.breaker.interval"),
				Timeout:          resource.GetDuration("app.weather.breaker.timeout"),
				FailureThreshold: uint32(resource.GetInt("app.weather.breaker.failure-threshold")),
			},
		},
		DB: DBConfig{
			URI:         resource.GetString("app.db.uri"),
			Gateway:     resource.GetString("app.db.gateway"),
			AutoMigrate: resource.GetBool("app.db.auto-migrate"),
		},
		Redis: RedisConfig{
			Host:     resource.GetString("app.redis.host"),
			Port:     resource.GetInt("app.redis.port"),
			Password: resource.GetString("app.redis.password"),
			Database: resource.GetInt("app.redis.database"),
		},
		Session: SessionConfig{
			TTL:         resource.GetDuration("app.session.ttl"),
			IdleTimeout: resource.GetDuration("app.session.idle-timeout"),
			SweepCron:   resource.GetString("app.session.sweep-cron"),
		},
		Purge: PurgeConfig{
			Cron:      resource.GetString("app.user.purge.cron"),
			Retention: resource.GetDuration("app.user.purge.retention"),
			LockTTL:   resource.GetDuration("app.user.purge.lock-ttl"),
		},
		Events: EventsConfig{
			Enabled:    resource.GetBool("app.events.enabled"),
			Queue:      resource.GetString("app.events.queue"),
			WorkerPool: resource.GetInt("app.events.worker-pool"),
		},
		AWS: AWSConfig{
			Region:          resource.GetString("app.cloud.aws-region"),
			Endpoint:        resource.GetString("app.cloud.aws-endpoint"),
			AccessKeyID:     resource.GetString("app.cloud.aws-access-key-id"),
			SecretAccessKey: resource.GetString("app.cloud.aws-secret-access-key"),
		},
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

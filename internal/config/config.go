package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/scribearc/scribearc/internal/env"
)

type Config struct {
	Port        string
	ENV         string
	FrontendURL string
	DB          DatabaseConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	RateLimiter RateLimiterConfig
	Mail        MailConfig
	Auth        AuthConfig
	Tracking    TrackingConfig
}

type RateLimiterConfig struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

type AuthConfig struct {
	JWT_SECRET string
}

type DatabaseConfig struct {
	DB_HOST      string
	DB_PORT      string
	DB_DATABASE  string
	DB_USERNAME  string
	DB_PASSWORD  string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  string
}

type RedisConfig struct {
	ADDR     string
	PASSWORD string
	DB       int
}

type RabbitMQConfig struct {
	HOST     string
	PORT     string
	USERNAME string
	PASSWORD string
}

func (r RabbitMQConfig) GetConnectionString() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", r.USERNAME, r.PASSWORD, r.HOST, r.PORT)
}

type MailConfig struct {
	SEND_GRID   SendGridConfig
	FROM_EMAIL  string
	ADMIN_EMAIL string
}

type SendGridConfig struct {
	API_KEY string
}

// TrackingConfig controls the anonymous tracking view: how long a verified
// viewer session stays unlocked and how long failed PIN attempts are remembered.
type TrackingConfig struct {
	VerifiedTTL    time.Duration
	AttemptTTL     time.Duration
	MaxPinAttempts int
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.ENV, "production")
}

func GetConfig() Config {
	rateLimitTimeFrame, err := time.ParseDuration(env.GetString("RATE_LIMIT_TIME_FRAME", "1m"))
	if err != nil {
		rateLimitTimeFrame = 60 * time.Second
	}

	verifiedTTL, err := time.ParseDuration(env.GetString("TRACKING_VERIFIED_TTL", "6h"))
	if err != nil {
		verifiedTTL = 6 * time.Hour
	}

	attemptTTL, err := time.ParseDuration(env.GetString("TRACKING_ATTEMPT_TTL", "30m"))
	if err != nil {
		attemptTTL = 30 * time.Minute
	}

	return Config{
		Port:        env.GetString("PORT", "8080"),
		ENV:         env.GetString("ENV", "development"),
		FrontendURL: env.GetString("FRONTEND_URL", "http://localhost:3000"),
		DB: DatabaseConfig{
			DB_HOST:      env.GetString("DB_HOST", "127.0.0.1"),
			DB_PORT:      env.GetString("DB_PORT", "5432"),
			DB_USERNAME:  env.GetString("DB_USERNAME", "root"),
			DB_PASSWORD:  env.GetString("DB_PASSWORD", ""),
			DB_DATABASE:  env.GetString("DB_DATABASE", "scribearc"),
			MaxOpenConns: env.GetInt("DB_MAX_OPEN_CONNS", 30),
			MaxIdleConns: env.GetInt("DB_MAX_IDLE_CONNS", 30),
			MaxIdleTime:  env.GetString("DB_MAX_IDLE_TIME", "15m"),
		},
		Redis: RedisConfig{
			ADDR:     env.GetString("REDIS_ADDR", "127.0.0.1:6379"),
			PASSWORD: env.GetString("REDIS_PASSWORD", ""),
			DB:       env.GetInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			HOST:     env.GetString("RABBITMQ_HOST", "127.0.0.1"),
			PORT:     env.GetString("RABBITMQ_PORT", "5672"),
			USERNAME: env.GetString("RABBITMQ_USERNAME", "guest"),
			PASSWORD: env.GetString("RABBITMQ_PASSWORD", "guest"),
		},
		// By default if not specified, we allow 5000 requests per minute on all routes
		RateLimiter: RateLimiterConfig{
			RequestsPerTimeFrame: env.GetInt("RATE_LIMIT_REQUESTS_PER_TIME_FRAME", 5000),
			TimeFrame:            rateLimitTimeFrame,
			Enabled:              env.GetBool("RATE_LIMIT_ENABLED", true),
		},
		Mail: MailConfig{
			FROM_EMAIL:  env.GetString("MAIL_FROM_MAIL", ""),
			ADMIN_EMAIL: env.GetString("MAIL_ADMIN_EMAIL", ""),
			SEND_GRID: SendGridConfig{
				API_KEY: env.GetString("MAIL_SEND_GRID_API_KEY", ""),
			},
		},
		Auth: AuthConfig{
			JWT_SECRET: env.GetString("AUTH_JWT_SECRET", ""),
		},
		Tracking: TrackingConfig{
			VerifiedTTL:    verifiedTTL,
			AttemptTTL:     attemptTTL,
			MaxPinAttempts: env.GetInt("TRACKING_MAX_PIN_ATTEMPTS", 3),
		},
	}
}

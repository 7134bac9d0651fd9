// Package config holds the application configuration, loaded from the
// environment with optional .env overrides.
package config

import "time"

// App is the root application configuration.
type App struct {
	Env       string `envconfig:"APP_ENV" default:"development"`
	Server    Server
	DB        DB
	RateLimit RateLimit
	Log       Log
}

// Server configures the HTTP listener.
type Server struct {
	Host string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port int    `envconfig:"SERVER_PORT" default:"3000"`
}

// DB configures the database connection.
type DB struct {
	Url string `envconfig:"DATABASE_URL"`
}

// RateLimit configures the per-client request limiter.
type RateLimit struct {
	MaxRequests int           `envconfig:"RATE_LIMIT_MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
}

// Log configures the application logger.
type Log struct {
	Level      int    `envconfig:"LOG_LEVEL" default:"0"`
	Format     string `envconfig:"LOG_FORMAT" default:"text"`
	Prefix     string `envconfig:"LOG_PREFIX" default:"bankoffice"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"15:04:05"`
}

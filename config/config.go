package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Infrastructure
	Postgres PostgresConfig
	RabbitMQ RabbitMQConfig

	// Access
	Auth          AuthConfig
	RateLimit     RateLimitConfig
	Permission    PermissionConfig
	Authorization AuthorizationConfig

	// Task API specifics
	App AppConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

// RabbitMQConfig is optional: an empty URL disables event publishing.
type RabbitMQConfig struct {
	URL      string
	Exchange string
	Queue    string
}

type AuthConfig struct {
	JWTSecret string
	JWTIssuer string
	TokenTTL  time.Duration
	APIUser   string
	APIToken  string
}

type RateLimitConfig struct {
	RequestsPerMin int
	Burst          int
}

type PermissionConfig struct {
	CacheSize int
	CacheTTL  time.Duration
}

type AuthorizationConfig struct {
	GuardRemove     bool
	GuardTransplant bool
}

type AppConfig struct {
	BaseURL  string
	Timezone string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Infrastructure
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Postgres.MaxConns = viper.GetInt32("postgres.max_conns")
	cfg.Postgres.MinConns = viper.GetInt32("postgres.min_conns")
	cfg.Postgres.MaxConnLifetime = viper.GetDuration("postgres.max_conn_lifetime")

	cfg.RabbitMQ.URL = viper.GetString("rabbitmq.url")
	cfg.RabbitMQ.Exchange = viper.GetString("rabbitmq.exchange")
	cfg.RabbitMQ.Queue = viper.GetString("rabbitmq.queue")

	// Access
	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	cfg.Auth.JWTIssuer = viper.GetString("auth.jwt_issuer")
	cfg.Auth.TokenTTL = viper.GetDuration("auth.token_ttl")
	cfg.Auth.APIUser = viper.GetString("auth.api_user")
	cfg.Auth.APIToken = viper.GetString("auth.api_token")

	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	cfg.Permission.CacheSize = viper.GetInt("permission.cache_size")
	cfg.Permission.CacheTTL = viper.GetDuration("permission.cache_ttl")

	cfg.Authorization.GuardRemove = viper.GetBool("authorization.guard_remove")
	cfg.Authorization.GuardTransplant = viper.GetBool("authorization.guard_transplant")

	// Task API specifics
	cfg.App.BaseURL = strings.TrimRight(viper.GetString("app.base_url"), "/")
	cfg.App.Timezone = viper.GetString("app.timezone")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.RateLimit.RequestsPerMin < 0 {
		return fmt.Errorf("rate_limit.requests_per_min must not be negative")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.max_conns", 10)
	viper.SetDefault("postgres.min_conns", 1)
	viper.SetDefault("postgres.max_conn_lifetime", "30m")

	viper.SetDefault("rabbitmq.exchange", "taskboard.events")
	viper.SetDefault("rabbitmq.queue", "taskboard.audit")

	viper.SetDefault("auth.jwt_issuer", "taskboard-api")
	viper.SetDefault("auth.token_ttl", "24h")
	viper.SetDefault("auth.api_user", "jsonrpc")

	viper.SetDefault("rate_limit.requests_per_min", 600)
	viper.SetDefault("permission.cache_size", 1024)
	viper.SetDefault("permission.cache_ttl", "30s")

	viper.SetDefault("authorization.guard_remove", true)
	viper.SetDefault("authorization.guard_transplant", true)

	viper.SetDefault("app.base_url", "http://localhost:8080")
	viper.SetDefault("app.timezone", "UTC")
}

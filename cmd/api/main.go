package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"taskboard-api/config"
	"taskboard-api/config/postgre"
	"taskboard-api/config/rabbitmq"
	_ "taskboard-api/docs" // Swagger docs
	"taskboard-api/internal/httpserver"
	"taskboard-api/internal/middleware"
	"taskboard-api/internal/permission"
	"taskboard-api/internal/task/repository"
	eventRepo "taskboard-api/internal/task/repository/rabbitmq"
	"taskboard-api/internal/task/usecase"
	"taskboard-api/pkg/datemath"
	"taskboard-api/pkg/log"
	"taskboard-api/pkg/scope"
)

// @title       Taskboard Task API
// @description JSON-RPC 2.0 task API: search, read, create, update, move and close tasks on project boards.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.basic BasicAuth
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Taskboard Task API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Infrastructure
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(postgresDB)

	var events repository.EventRepository
	if cfg.RabbitMQ.URL != "" {
		mq, mqErr := rabbitmq.Connect(cfg.RabbitMQ.URL)
		if mqErr != nil {
			logger.Warnf(ctx, "RabbitMQ not available, task events disabled: %v", mqErr)
		} else {
			defer mq.Close()
			if err := eventRepo.DeclareExchange(mq.Channel, cfg.RabbitMQ.Exchange); err != nil {
				logger.Error(ctx, "Failed to declare exchange: ", err)
				return
			}
			events = eventRepo.New(mq.Channel, cfg.RabbitMQ.Exchange, logger)
			logger.Infof(ctx, "Publishing task events to exchange %q", cfg.RabbitMQ.Exchange)
		}
	} else {
		logger.Warn(ctx, "rabbitmq.url is empty, task events disabled")
	}

	// 4. Task domain helpers
	dates, err := datemath.NewParser(cfg.App.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.App.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	jwtManager, err := scope.New(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	if err != nil {
		logger.Error(ctx, "Failed to initialize token manager: ", err)
		return
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		PostgresDB:      postgresDB,
		Events:          events,
		JWTManager:      jwtManager,
		Middleware: middleware.Config{
			APIUser:        cfg.Auth.APIUser,
			APIToken:       cfg.Auth.APIToken,
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			Burst:          cfg.RateLimit.Burst,
		},
		PermissionCfg: permission.CacheConfig{
			Size: cfg.Permission.CacheSize,
			TTL:  cfg.Permission.CacheTTL,
		},
		Policy: usecase.Policy{
			GuardRemove:     cfg.Authorization.GuardRemove,
			GuardTransplant: cfg.Authorization.GuardTransplant,
		},
		Dates:   dates,
		BaseURL: cfg.App.BaseURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

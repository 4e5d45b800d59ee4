package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"taskboard-api/config"
	"taskboard-api/config/rabbitmq"
	auditConsumer "taskboard-api/internal/task/delivery/rabbitmq"
	"taskboard-api/pkg/log"
)

// main runs the audit consumer: one log line per task event published by
// the API.
//
//  1. Load config and logger (same as cmd/api/main.go)
//  2. Connect RabbitMQ, declare and bind the audit queue
//  3. Consume until shutdown
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting audit consumer...")

	if cfg.RabbitMQ.URL == "" {
		logger.Error(ctx, "rabbitmq.url is required for the consumer")
		return
	}

	mq, err := rabbitmq.Connect(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Error(ctx, "Failed to connect to RabbitMQ: ", err)
		return
	}
	defer mq.Close()

	if err := auditConsumer.DeclareQueue(mq.Channel, cfg.RabbitMQ.Exchange, cfg.RabbitMQ.Queue); err != nil {
		logger.Error(ctx, "Failed to declare audit queue: ", err)
		return
	}

	consumer := auditConsumer.New(logger, mq.Channel, cfg.RabbitMQ.Queue)
	logger.Infof(ctx, "Consuming %q from exchange %q", cfg.RabbitMQ.Queue, cfg.RabbitMQ.Exchange)
	if err := consumer.Start(ctx); err != nil {
		logger.Error(ctx, "Consumer stopped: ", err)
		return
	}

	logger.Info(ctx, "Audit consumer stopped gracefully")
}

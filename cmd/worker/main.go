package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	notificationApp "plume/internal/application/notification"
	subscriptionApp "plume/internal/application/subscription"
	"plume/internal/infrastructure/cache"
	"plume/internal/infrastructure/config"
	"plume/internal/infrastructure/database"
	"plume/internal/infrastructure/repository"
	"plume/internal/shared/logger"
)

func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger()
	log.Infow("starting subscription sweep worker", "environment", env)

	if err := database.Init(&cfg.Database); err != nil {
		log.Errorw("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Errorw("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	log.Infow("redis connection established", "address", cfg.Redis.GetAddr())

	subscriptionRepo := repository.NewSubscriptionRepository(database.Get())
	notificationRepo := repository.NewNotificationRepository(database.Get())
	entitlementCache := cache.NewRedisEntitlementCache(redisClient, log)

	notificationService := notificationApp.NewService(notificationRepo, log)
	subscriptionService := subscriptionApp.NewService(
		subscriptionRepo,
		entitlementCache,
		notificationService,
		cfg.Billing,
		log,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	interval := time.Duration(cfg.Worker.SweepIntervalMinutes) * time.Minute
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Infow("running initial sweep")
	runSweeps(ctx, subscriptionService, log)

	log.Infow("sweep worker started", "interval", interval)

	for {
		select {
		case <-ticker.C:
			runSweeps(ctx, subscriptionService, log)
		case sig := <-sigChan:
			log.Infow("received shutdown signal", "signal", sig)
			cancel()
			log.Infow("sweep worker stopped")
			return
		}
	}
}

func runSweeps(ctx context.Context, svc *subscriptionApp.Service, log logger.Interface) {
	result, err := svc.ExpireOverdueSubscriptions(ctx)
	if err != nil {
		log.Errorw("expiry sweep failed", "error", err)
	} else if result.ExpiredCount > 0 {
		log.Infow("expiry sweep completed", "expired", result.ExpiredCount)
	}

	resetCount, err := svc.ResetWeeklyUsage(ctx)
	if err != nil {
		log.Errorw("weekly reset sweep failed", "error", err)
	} else if resetCount > 0 {
		log.Infow("weekly reset sweep completed", "reset", resetCount)
	}
}

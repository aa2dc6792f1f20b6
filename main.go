// File: eventscheduler/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"eventscheduler/config"
	"eventscheduler/cron"
	"eventscheduler/handlers"
	"eventscheduler/middleware"
	"eventscheduler/routes"
	"eventscheduler/services/scheduler"
	"eventscheduler/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Optional result cache.
	schedulerService := &scheduler.DefaultSchedulerService{
		Strict: config.AppConfig.StrictTimeValidation,
		Logger: logger.Named("scheduler"),
	}
	if config.AppConfig.CacheEnabled {
		if _, err := utils.InitCache(context.Background()); err != nil {
			logger.Warn("main: schedule cache disabled", zap.Error(err))
		}
	}
	if client := utils.GetCacheClient(); client != nil {
		schedulerService.Cache = scheduler.NewRedisResultCache(client, config.AppConfig.ScheduleCacheTTL)
		defer func() { _ = client.Close() }()
	}

	healthCron, err := cron.StartHealthMonitor(config.AppConfig.HealthCheckSpec, utils.GetCacheClient(), logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to start health monitor: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	scheduleHandler := handlers.NewScheduleHandler(schedulerService)
	handlerBundle := &handlers.HandlerBundle{
		ScheduleEventsHandler: scheduleHandler.ScheduleEventsHandler,
		HealthHandler:         handlers.HealthHandler,
	}
	routes.RegisterRoutes(router, handlerBundle, config.AppConfig.AllowedOrigins())

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	<-healthCron.Stop().Done()

	ctx, cancel := context.WithTimeout(context.Background(), config.AppConfig.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

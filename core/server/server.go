package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"mentorhub/core/cache"
	"mentorhub/core/config"
	"mentorhub/core/constants"
	"mentorhub/core/database"
	"mentorhub/core/logger"
	"mentorhub/core/storage"
	"mentorhub/core/worker"
	"mentorhub/modules/auth"
	"mentorhub/modules/calendar"
	"mentorhub/modules/event"
	eventservice "mentorhub/modules/event/service"
	"mentorhub/modules/notification"
	"mentorhub/modules/notification/tasks"
	"mentorhub/modules/profile"
	"mentorhub/modules/request"
	"mentorhub/modules/status"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Run boots the API process and the background worker, then blocks until
// an interrupt triggers graceful shutdown.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Init(cfg.LogLevel)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}

	redisCache, err := cache.NewRedisCache(cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())
	e.Use(middleware.Logger())

	asynqClient := worker.NewClient(cfg)
	defer asynqClient.Close()
	notifier := tasks.NewEnqueuer(asynqClient)

	st := storage.NewS3Storage(cfg.Storage)

	auth.Init(e, db, redisCache)
	profileSvc := profile.Init(e, db, redisCache, st)

	resolver := eventservice.NewCoachNameResolver(
		eventservice.NewNameCache(constants.CoachNameTTL), profileSvc)

	status.Init(e)
	event.Init(e, db, redisCache, resolver)
	request.Init(e, db, redisCache, notifier)
	calendar.Init(e, db, resolver)
	notification.Init(e, db, redisCache)

	bg := worker.New(cfg, db)
	go func() {
		if err := bg.Start(cfg); err != nil {
			logger.Error("worker stopped", "error", err)
		}
	}()

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	bg.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}

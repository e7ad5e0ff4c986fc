package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parking-api/core/cache"
	"parking-api/core/config"
	"parking-api/core/database"
	"parking-api/core/jobs"
	"parking-api/core/logger"
	"parking-api/core/middleware"
	"parking-api/core/utils"
	"parking-api/modules/slot"
	"parking-api/modules/ticket"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Run wires configuration, storage, cache, jobs and HTTP routes, then
// serves until SIGINT/SIGTERM.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.LogLevel, cfg.Environment)

	db, err := database.InitDB(database.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	// Schema and the fixed slot seed run before the first request so the
	// registry is fully populated when serving starts.
	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelMigrate()
	if err := database.Migrate(migrateCtx, &db, cfg.Parking.Capacity); err != nil {
		return err
	}

	appCache := cache.NewNoopCache()
	jobClient := jobs.NewNoopClient()
	var jobServer *asynq.Server

	if cfg.Redis.Enabled {
		appCache, err = cache.NewRedisCache(cfg.Redis)
		if err != nil {
			return err
		}
		jobClient = jobs.NewClient(cfg.Redis)
		defer jobClient.Close()

		jobServer = jobs.NewServer(cfg.Redis)
		go func() {
			if err := jobServer.Run(jobs.NewMux()); err != nil {
				logger.Error("Server:JobWorker", "error", err)
			}
		}()
	} else {
		logger.Warn("Redis disabled; availability cache and receipt jobs are off")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: utils.GenerateID,
	}))
	e.Use(echomw.CORS())

	mw := middleware.NewMiddleware()
	e.Use(mw.RequestLogger())

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	slot.Init(e, &db, appCache)
	ticket.Init(e, &db, appCache, jobClient)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server:Start", "error", err)
		}
	}()
	logger.Info("Parking API listening", "addr", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server:Shutdown", "error", err)
	}
	if jobServer != nil {
		jobServer.Shutdown()
	}

	return nil
}

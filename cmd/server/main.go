package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"planline.app/api-server/core/config"
	"planline.app/api-server/core/db"
	"planline.app/api-server/core/observability"
	"planline.app/api-server/internal/http/handler"
	"planline.app/api-server/internal/http/router"
	"planline.app/api-server/internal/service"
	"planline.app/api-server/internal/store"
	"planline.app/api-server/internal/store/memory"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	shutdownTelemetry, err := observability.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			slog.Error("telemetry shutdown failed", "error", err)
		}
	}()

	var (
		stores store.Provider
		tx     store.TxRunner
	)
	if cfg.UseMemoryStore() {
		slog.Warn("DATABASE_URL not set, using in-memory store")
		mem := memory.New()
		stores, tx = mem, mem
	} else {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := db.EnsureSchema(ctx, pool); err != nil {
			return err
		}

		pg := store.NewPostgres(pool)
		stores, tx = pg, pg
	}

	authService := service.NewAuthService(stores.Users(), cfg.Auth.Secret, cfg.Auth.TokenTTL)
	userService := service.NewUserService(stores, tx)
	orgService := service.NewOrganizationService(stores, tx)
	projectService := service.NewProjectService(stores, tx)
	taskService := service.NewTaskService(stores, tx)
	commentService := service.NewCommentService(stores, tx)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := router.New(cfg.Telemetry.ServiceName, authService, router.Handlers{
		Auth:         handler.NewAuthHandler(authService, userService),
		User:         handler.NewUserHandler(userService),
		Organization: handler.NewOrganizationHandler(orgService),
		Project:      handler.NewProjectHandler(projectService),
		Task:         handler.NewTaskHandler(taskService),
		Comment:      handler.NewCommentHandler(commentService),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "port", cfg.Port, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}

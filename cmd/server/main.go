package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-tracker-api/internal/config"
	"github.com/yukikurage/project-tracker-api/internal/database"
	"github.com/yukikurage/project-tracker-api/internal/handlers"
	"github.com/yukikurage/project-tracker-api/internal/repository"
	"github.com/yukikurage/project-tracker-api/internal/services"
	"github.com/yukikurage/project-tracker-api/internal/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// A failed schema init is reported but does not stop the server
	if err := database.Migrate(db); err != nil {
		logger.Error("schema initialization failed", slog.String("error", err.Error()))
	}

	store, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		logger.Error("failed to prepare upload directory", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize services and handlers
	projectService := services.NewProjectService(repository.NewProjectRepository(db))
	taskService := services.NewTaskService(repository.NewTaskRepository(db))
	fileService := services.NewFileService(repository.NewFileRepository(db), store, logger)

	router := handlers.NewRouter(handlers.RouterConfig{
		Projects:  handlers.NewProjectHandler(projectService, logger),
		Tasks:     handlers.NewTaskHandler(taskService, logger),
		Files:     handlers.NewFileHandler(fileService, logger),
		UploadDir: store.Root(),
		Logger:    logger,
	})

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", slog.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped unexpectedly", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("failed to shutdown server", slog.String("error", err.Error()))
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	logger.Info("server stopped")
}

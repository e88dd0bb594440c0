package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shri8977/FUTURE-FS-01/config"
	_ "github.com/shri8977/FUTURE-FS-01/docs" // Important for Swagger
	v1 "github.com/shri8977/FUTURE-FS-01/internal/delivery/http/v1"
	"github.com/shri8977/FUTURE-FS-01/internal/domain"
	"github.com/shri8977/FUTURE-FS-01/internal/repository/file"
	"github.com/shri8977/FUTURE-FS-01/internal/usecase"
	"github.com/shri8977/FUTURE-FS-01/pkg/email"
	"github.com/shri8977/FUTURE-FS-01/pkg/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Contact relay, theme preference and project catalog for the portfolio site.
// @host            localhost:3000
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting portfolio server", "port", cfg.Port, "mail_driver", cfg.MailDriver)

	// 3. Setup Email Sender
	var sender email.Sender
	switch cfg.MailDriver {
	case "log":
		sender = email.NewLogSender(logger.Log)
	default:
		sender = email.NewSMTPSender(email.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.EmailUser,
			Password: cfg.EmailPass,
			Logger:   logger.Log,
		})
	}

	// 4. Setup Repositories
	var projectRepo domain.ProjectRepository
	projectRepo, err = file.NewProjectRepository(cfg.ProjectsFile)
	if err != nil {
		logger.Log.Warn("Project catalog unavailable - serving no projects", "path", cfg.ProjectsFile, "error", err)
		projectRepo = file.NewEmptyProjectRepository()
	}

	// 5. Setup UseCases
	contactUC := usecase.NewContactUsecase(sender, usecase.ContactRoute{
		From: cfg.EmailUser,
		To:   cfg.EmailTo,
	}, cfg.SendTimeout)
	if !contactUC.RelayConfigured() {
		logger.Log.Warn("Email relay not fully configured - contact form submissions will fail")
	}
	projectUC := usecase.NewProjectUsecase(projectRepo)
	healthUC := usecase.NewHealthUsecase(contactUC)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		ProjectUC: projectUC,
		HealthUC:  healthUC,
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// must outlast the relay deadline so a slow dispatch still gets its reply out
		WriteTimeout: cfg.SendTimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Log.Info("Server listening", "url", "http://localhost:"+cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Graceful Shutdown
	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("Server forced to shutdown", "error", err)
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Log.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}

	logger.Log.Info("Server exiting")
}

package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/TimKirathe/wonderland-api/internal/config"
	"github.com/TimKirathe/wonderland-api/internal/gelf"
	"github.com/TimKirathe/wonderland-api/internal/handler"
	"github.com/TimKirathe/wonderland-api/internal/mailer"
	"github.com/TimKirathe/wonderland-api/internal/ratelimit"
	"github.com/TimKirathe/wonderland-api/internal/repository"
	"github.com/TimKirathe/wonderland-api/internal/router"
	"github.com/TimKirathe/wonderland-api/internal/service"
	"github.com/TimKirathe/wonderland-api/internal/store"
)

const (
	contactLimit  = 5
	inquiryLimit  = 3
	limiterWindow = 60 * time.Second
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: .env load failed: %v", err)
	}
	cfg := config.Load()

	// GELF UDP logging
	if cfg.GelfAddr != "" {
		gelfWriter, err := gelf.New(cfg.GelfAddr)
		if err != nil {
			log.Printf("Warning: GELF init failed: %v", err)
		} else {
			defer gelfWriter.Close()
			log.SetOutput(io.MultiWriter(os.Stderr, gelfWriter))
			log.Printf("GELF logging: enabled (%s)", cfg.GelfAddr)
		}
	}

	// Record store client. With no URL configured requests fail as
	// "unavailable" and the health check reports "not configured".
	storeClient := store.New(cfg.SupabaseURL, cfg.SupabaseKey)
	if cfg.SupabaseURL == "" {
		log.Printf("Warning: record store not configured; submissions will be rejected")
	}

	// Repositories
	contactRepo := repository.NewContactRepo(storeClient)
	inquiryRepo := repository.NewInquiryRepo(storeClient)
	reviewRepo := repository.NewReviewRepo(storeClient)

	// Email
	var sender mailer.Sender = mailer.Disabled{}
	if cfg.ResendAPIKey != "" {
		sender = mailer.NewResend(cfg.ResendAPIKey, cfg.FromEmail)
		log.Printf("email: enabled (from %s)", cfg.FromEmail)
	}

	// Services
	intakeSvc := service.NewIntakeService(contactRepo, inquiryRepo, sender, cfg.StaffEmail, nil)
	reviewSvc := service.NewReviewService(reviewRepo)
	authSvc, err := service.NewAuthService(cfg.AdminEmail, cfg.AdminPass, cfg.JWTSecret)
	if err != nil {
		log.Fatalf("Failed to set up staff auth: %v", err)
	}

	// Rate limiters, one policy per intake endpoint. Owned here: built at
	// boot, sweepers stopped at shutdown.
	contactLimiter := ratelimit.New(contactLimit, limiterWindow, nil)
	defer contactLimiter.Close()
	inquiryLimiter := ratelimit.New(inquiryLimit, limiterWindow, nil)
	defer inquiryLimiter.Close()

	// Handlers
	contactH := handler.NewContactHandler(intakeSvc)
	inquiryH := handler.NewInquiryHandler(intakeSvc)
	reviewH := handler.NewReviewHandler(reviewSvc)
	photosH := handler.NewPhotosHandler(cfg.PhotosDir, cfg.PhotosURL)
	healthH := handler.NewHealthHandler(reviewRepo, cfg.SupabaseURL != "", cfg.ResendAPIKey != "")
	monitoringH := handler.NewMonitoringHandler(handler.EnvFlags{
		Database:       cfg.SupabaseURL != "",
		Email:          cfg.ResendAPIKey != "",
		Analytics:      cfg.AnalyticsWebsiteID != "",
		ErrorReporting: cfg.SentryDSN != "",
	})
	adminH := handler.NewAdminHandler(authSvc, contactRepo, inquiryRepo)

	r := router.New(cfg.JWTSecret, contactLimiter, inquiryLimiter,
		contactH, inquiryH, reviewH, photosH, healthH, monitoringH, adminH)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("wonderland-api serving on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Warning: shutdown: %v", err)
	}
}

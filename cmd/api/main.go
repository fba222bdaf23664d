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

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/clearskyva/backoffice/internal/auth"
	"github.com/clearskyva/backoffice/internal/config"
	"github.com/clearskyva/backoffice/internal/database"
	"github.com/clearskyva/backoffice/internal/handler"
	"github.com/clearskyva/backoffice/internal/identity"
	"github.com/clearskyva/backoffice/internal/mailer"
	middlewarepkg "github.com/clearskyva/backoffice/internal/middleware"
	"github.com/clearskyva/backoffice/internal/repository"
	"github.com/clearskyva/backoffice/internal/router"
	"github.com/clearskyva/backoffice/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer pool.Close()

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	inquiriesRepo := repository.NewPGXInquiriesRepository(pool)
	testimonialsRepo := repository.NewPGXTestimonialsRepository(pool)
	blogRepo := repository.NewPGXBlogPostsRepository(pool)
	adminsRepo := repository.NewPGXAdminUsersRepository(pool)
	teamRepo := repository.NewPGXTeamMembersRepository(pool)

	httpClient := &http.Client{Timeout: 15 * time.Second}
	mail := mailer.NewRESTClient(httpClient, cfg.Mail.BaseURL, cfg.Mail.APIKey)
	identities := identity.NewRESTStore(httpClient, cfg.IdentityBaseURL, cfg.IdentityAPIKey)

	submissionService := service.NewSubmissionService(inquiriesRepo, testimonialsRepo, mail, cfg.Mail, cfg.PhoneRegion)
	moderationService := service.NewModerationService(inquiriesRepo, testimonialsRepo, mail, cfg.Mail)
	blogService := service.NewBlogService(blogRepo)
	provisioningService := service.NewProvisioningService(adminsRepo, identities)
	authService := service.NewAuthService(adminsRepo, jwtManager)

	handlers := router.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Contact:      handler.NewContactHandler(submissionService),
		Testimonials: handler.NewTestimonialHandler(submissionService, moderationService),
		Inquiries:    handler.NewInquiryHandler(moderationService),
		Blog:         handler.NewBlogHandler(blogService),
		Team:         handler.NewTeamHandler(teamRepo),
		Users:        handler.NewUserAdminHandler(provisioningService),
		Dashboard:    handler.NewDashboardHandler(moderationService),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, jwtManager, handlers)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}

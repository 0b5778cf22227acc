package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/peakform/coachdesk/internal/dashboard/events"
	httpapi "github.com/peakform/coachdesk/internal/dashboard/http"
	"github.com/peakform/coachdesk/internal/dashboard/mail"
	"github.com/peakform/coachdesk/internal/dashboard/scoring"
	"github.com/peakform/coachdesk/internal/dashboard/service"
	"github.com/peakform/coachdesk/internal/dashboard/store"
	"github.com/peakform/coachdesk/internal/dashboard/store/drivers/sqlite"
	"github.com/peakform/coachdesk/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the dashboard service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db  store.Store
	hub *events.Hub

	// Services
	rosterService       *service.RosterService
	teamService         *service.TeamService
	invitationService   *service.InvitationService
	intelligenceService *service.IntelligenceService
	statsService        *service.StatsService
	preferencesService  *service.PreferencesService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &Application{
		cfg: cfg,
		hub: events.NewHub(),
		logger: slogx.New(slogx.Config{
			Service: "dashboard-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	ctx := slogx.WithContext(context.Background(), app.logger)
	if err := app.housekeepingService.Start(ctx); err != nil {
		return fmt.Errorf("failed to start housekeeping: %w", err)
	}

	app.logger.Info("dashboard service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down dashboard service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()
	app.hub.Close()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("dashboard service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations.
func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services.
func (app *Application) initServices() {
	var mailer mail.Mailer = mail.Noop{}
	if app.cfg.ResendAPIKey != "" {
		mailer = mail.NewResendMailer(app.cfg.ResendAPIKey, app.cfg.ResendFrom)
		app.logger.Info("invitation emails enabled via resend")
	} else {
		app.logger.Warn("no RESEND_API_KEY set; invitation emails disabled")
	}

	app.rosterService = &service.RosterService{
		Store:  app.db,
		Scores: scoring.StoredScores{Source: app.db.Adherence()},
		Hub:    app.hub,
	}
	app.teamService = &service.TeamService{Store: app.db, Hub: app.hub}
	app.invitationService = &service.InvitationService{
		Store:     app.db,
		Mailer:    mailer,
		Hub:       app.hub,
		SignupURL: app.cfg.SignupURL,
	}
	app.intelligenceService = &service.IntelligenceService{Store: app.db, Hub: app.hub}
	app.statsService = &service.StatsService{Store: app.db}
	app.preferencesService = &service.PreferencesService{Store: app.db, Hub: app.hub}
	app.housekeepingService = &service.HousekeepingService{
		Store:             app.db,
		Hub:               app.hub,
		Schedule:          app.cfg.HousekeepingSchedule,
		ResolvedRetention: app.cfg.ResolvedRetention,
	}
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		[]byte(app.cfg.JWTSecret),
		app.cfg.Issuer,
		BuildVersion,
		app.db,
		app.hub,
		app.logger,
	)

	// Wire services to router
	router.RosterService = app.rosterService
	router.TeamService = app.teamService
	router.InvitationService = app.invitationService
	router.IntelligenceService = app.intelligenceService
	router.StatsService = app.statsService
	router.PreferencesService = app.preferencesService
	router.Housekeeping = app.housekeepingService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

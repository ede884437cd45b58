package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/text/language"

	notifyconsumers "github.com/febinsug/PDSL-eHATv5-sub000/internal/notify/consumers"
	notifyhandler "github.com/febinsug/PDSL-eHATv5-sub000/internal/notify/handler"
	notifyrepository "github.com/febinsug/PDSL-eHATv5-sub000/internal/notify/repository"
	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/events"
	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/export"
	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/handler"
	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/repository"
	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/rollup"
	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/service"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/config"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/database"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/httputil"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/logger"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/messaging"
)

func main() {
	// Load configuration with validation (fails fast in production if required config is missing)
	cfg, err := config.LoadWithValidation("timesheet-service")
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("timesheet-service", cfg.Server.Environment)
	log.Info().Msg("starting Timesheet Service")

	// Connect to database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Connect to RabbitMQ
	rmq, err := messaging.New(&cfg.RabbitMQ, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
	}
	defer rmq.Close()

	// Initialize event publisher
	publisher, err := events.NewTimesheetEventPublisher(rmq, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create event publisher")
	}

	// Initialize repositories
	recordRepo := repository.NewRecordRepository(db)
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	notificationRepo := notifyrepository.NewNotificationRepository(db)
	recipientRepo := notifyrepository.NewRecipientRepository(db)

	// Initialize services
	engine := rollup.New(language.English)
	serializer := export.NewSerializer(log)
	timesheetService := service.NewTimesheetService(recordRepo, userRepo, projectRepo, publisher, log)
	approvalService := service.NewApprovalService(recordRepo, engine, publisher, log)
	reportService := service.NewReportService(recordRepo, projectRepo, engine, log)
	exportService := service.NewExportService(recordRepo, projectRepo, engine, serializer, publisher, log)

	// Initialize handlers
	timesheetHandler := handler.NewTimesheetHandler(timesheetService, log)
	approvalHandler := handler.NewApprovalHandler(approvalService, log)
	reportHandler := handler.NewReportHandler(reportService, log)
	exportHandler := handler.NewExportHandler(exportService, log)
	notificationHandler := notifyhandler.NewNotificationHandler(notificationRepo, log)

	// Start notification consumer
	notifyConsumer, err := notifyconsumers.NewTimesheetEventConsumer(rmq, notificationRepo, recipientRepo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create notification consumer")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := notifyConsumer.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to start notification consumer")
	}

	authenticator := httputil.NewAuthenticator(&cfg.JWT)

	// Create router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RealIP)
	r.Use(httputil.RequestID)
	r.Use(httputil.Logger(log))
	r.Use(httputil.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.JSON(w, http.StatusOK, map[string]interface{}{
			"status":   "healthy",
			"service":  "timesheet-service",
			"database": db.Health(r.Context()),
			"rabbitmq": rmq.Health(),
		})
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(authenticator.Middleware)

		r.Route("/timesheets", func(r chi.Router) {
			r.Post("/", timesheetHandler.SaveWeek)
			r.Get("/week", timesheetHandler.GetWeek)
			r.Get("/month", timesheetHandler.GetMonth)
		})

		r.Route("/approvals", func(r chi.Router) {
			r.Use(httputil.RequireManager)
			r.Get("/pending", approvalHandler.Pending)
			r.Post("/weeks/{id}/approve", approvalHandler.ApproveWeek)
			r.Post("/weeks/{id}/reject", approvalHandler.RejectWeek)
			r.Post("/months/{id}/{monthKey}/approve", approvalHandler.ApproveMonth)
			r.Post("/months/{id}/{monthKey}/reject", approvalHandler.RejectMonth)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Use(httputil.RequirePermission("reports.read"))
			r.Get("/range", reportHandler.Range)
			r.Get("/utilization", reportHandler.Utilization)
			r.Get("/users", reportHandler.Users)
		})

		r.Route("/exports", func(r chi.Router) {
			r.Use(httputil.RequirePermission("reports.export"))
			r.Get("/projects.xlsx", exportHandler.Projects)
			r.Get("/users.xlsx", exportHandler.Users)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", notificationHandler.List)
			r.Get("/unread-count", notificationHandler.UnreadCount)
			r.Post("/{id}/read", notificationHandler.MarkRead)
		})
	})

	// Create server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server
	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Cancel context to stop consumers
	cancel()

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

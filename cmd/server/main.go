package main

import (
	"fmt"
	"log"

	"fhsis/internal/config"
	"fhsis/internal/handler"
	"fhsis/internal/notify/noop"
	"fhsis/internal/notify/ses"
	"fhsis/internal/port"
	"fhsis/internal/repository/postgres"
	"fhsis/internal/router"
	"fhsis/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	barangayRepo := postgres.NewBarangayRepo(db)
	lookupRepo := postgres.NewLookupRepo(db)
	submissionRepo := postgres.NewSubmissionRepo(db)
	reportRepo := postgres.NewReportRepo(db)
	apptRepo := postgres.NewAppointmentRepo(db)

	// Initialize notification delivery
	var notifier port.NotificationSender
	switch cfg.Email.Provider {
	case "ses":
		notifier, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		notifier = noop.NewNoopSender()
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	lookupSvc := service.NewLookupService(lookupRepo, barangayRepo)
	submissionSvc := service.NewSubmissionService(submissionRepo, lookupRepo)
	reportSvc := service.NewReportService(reportRepo)
	apptSvc := service.NewAppointmentService(apptRepo, notifier)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	statusH := handler.NewReportStatusHandler(submissionSvc)
	reportH := handler.NewReportHandler(reportSvc)
	exportH := handler.NewExportHandler(reportSvc, lookupSvc)
	lookupH := handler.NewLookupHandler(lookupSvc)
	apptH := handler.NewAppointmentHandler(apptSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins,
		authH, statusH, reportH, exportH, lookupH, apptH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

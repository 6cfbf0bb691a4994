package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "eventdesk-backend/internal/api/http"
	"eventdesk-backend/internal/config"
	"eventdesk-backend/internal/logger"
	"eventdesk-backend/internal/repository/postgres"
	"eventdesk-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting EventDesk Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	attendanceSvc := service.NewAttendanceService(
		store.AttendanceRepository,
		store.MemberRepository,
		store.EventRepository,
		store.AuditRepository,
	)
	memberSvc := service.NewMemberService(store.MemberRepository, store.AttendanceRepository)
	eventSvc := service.NewEventService(store.EventRepository)
	importSvc := service.NewImportService(
		store.MemberRepository,
		store.EventRepository,
		store.AttendanceRepository,
		store.AuditRepository,
	)
	exportSvc := service.NewExportService(store.AttendanceRepository, store.EventRepository)
	auditSvc := service.NewAuditService(store.AuditRepository)

	// Initialize HTTP handlers
	router := httpapi.NewRouter(&httpapi.Handlers{
		Events:     httpapi.NewEventHandler(eventSvc),
		Attendance: httpapi.NewAttendanceHandler(attendanceSvc, exportSvc),
		Imports:    httpapi.NewImportHandler(importSvc),
		Members:    httpapi.NewMemberHandler(memberSvc),
		Audits:     httpapi.NewAuditHandler(auditSvc),
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}

package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	apihttp "library-circulation/internal/api/http"
	"library-circulation/internal/config"
	"library-circulation/internal/domain"
	"library-circulation/internal/jobs"
	"library-circulation/internal/logger"
	"library-circulation/internal/repository/postgres"
	"library-circulation/internal/scheduler"
	"library-circulation/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'expire-reservations', 'all-nightly')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Library Circulation Job Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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
	clock := domain.SystemClock

	loanService := service.NewLoanService(
		store.LoanRepository,
		store.UserRepository,
		store.BookRepository,
		clock,
	)

	circulationService := service.NewCirculationService(
		store.BookRepository,
		store.UserRepository,
		store.LoanRepository,
		store.ReservationRepository,
		clock,
	)

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(circulationService, loanService, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Job scheduler is running. Press Ctrl+C to stop.")

	// Start the health/trigger HTTP listener
	router := mux.NewRouter()
	apihttp.RegisterJobRoutes(router, jobRunner)
	httpServer := &http.Server{
		Addr:    cfg.GetHTTPAddress(),
		Handler: router,
	}
	go func() {
		logger.Info("HTTP listener started", "addr", cfg.GetHTTPAddress())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP listener failed", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down job scheduler...")
	httpServer.Close()
	cronScheduler.Stop()
	logger.Info("Job scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "expire-reservations":
		jobRunner.ExpireReservations()
	case "report-overdue-loans":
		jobRunner.ReportOverdueLoans()
	case "all-nightly":
		jobRunner.RunAllNightlyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - expire-reservations\n")
		fmt.Printf("  - report-overdue-loans\n")
		fmt.Printf("  - all-nightly\n")
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/coder/quartz"

	"github.com/zano-5702/worktime-backend-go/internal/config"
	appHTTP "github.com/zano-5702/worktime-backend-go/internal/handler/http"
	"github.com/zano-5702/worktime-backend-go/internal/pkg/cron"
	"github.com/zano-5702/worktime-backend-go/internal/pkg/database"
	"github.com/zano-5702/worktime-backend-go/internal/pkg/export"
	"github.com/zano-5702/worktime-backend-go/internal/pkg/sse"
	"github.com/zano-5702/worktime-backend-go/internal/repository/memory"
	"github.com/zano-5702/worktime-backend-go/internal/repository/postgresql"
	aggregateService "github.com/zano-5702/worktime-backend-go/internal/service/aggregate"
	trackingService "github.com/zano-5702/worktime-backend-go/internal/service/tracking"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logLevel := slog.LevelInfo
	if cfg.App.LogLevel == "debug" {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	customerRepo := postgresql.NewCustomerRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	workLogRepo := postgresql.NewWorkLogRepository(db)
	aggregateRepo := postgresql.NewAggregateRepository(db)
	deviceStateRepo := postgresql.NewDeviceStateRepository(db)

	// Sessions are ephemeral by design and live in process memory only.
	sessionStore := memory.NewSessionStore()

	hub := sse.NewHub()
	exporter := export.NewClient(cfg.Export)
	if !exporter.Enabled() {
		log.Println("Sheet export disabled (APPS_SCRIPT_URL not set)")
	}

	aggregator := aggregateService.NewService(aggregateRepo)
	trackingSvc := trackingService.NewTrackingService(
		employeeRepo,
		customerRepo,
		sessionStore,
		workLogRepo,
		aggregator,
		hub,
		exporter,
	)
	debouncer := trackingService.NewDebouncer(
		quartz.NewReal(),
		cfg.Tracking.StabilizationDelay,
		deviceStateRepo,
		trackingSvc,
	)

	scheduler := cron.NewScheduler()
	cron.NewTrackingJobs(trackingSvc, cfg.Tracking.MaxSessionAge).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	signalHandler := appHTTP.NewSignalHandler(debouncer)
	sessionHandler := appHTTP.NewSessionHandler(trackingSvc)
	aggregateHandler := appHTTP.NewAggregateHandler(aggregator)
	configHandler := appHTTP.NewConfigHandler(customerRepo, employeeRepo)
	eventHandler := appHTTP.NewEventHandler(hub)

	router := appHTTP.NewRouter(
		cfg.App.AdminToken,
		signalHandler,
		sessionHandler,
		aggregateHandler,
		configHandler,
		eventHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

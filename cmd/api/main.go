package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/config"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	appHTTP "github.com/cmlabs-hris/attendance-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/logger"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/snapshot"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/sse"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/storage"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/memory"
	attendanceService "github.com/cmlabs-hris/attendance-backend-go/internal/service/attendance"
	employeeService "github.com/cmlabs-hris/attendance-backend-go/internal/service/employee"
)

const appName = "attendance-backend"

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	log := logger.New(os.Stdout, appName, version, cfg.App.Env, cfg.App.LogLevel)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	documentStorage, closeStorage, err := newDocumentStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStorage()

	employees := loadDocument[[]employee.Employee](ctx, documentStorage, cfg.Storage.EmployeesDocument)
	ledger := loadDocument[attendance.Ledger](ctx, documentStorage, cfg.Storage.AttendanceDocument)

	employeesDoc := snapshot.NewDocument(cfg.Storage.EmployeesDocument, documentStorage)
	attendanceDoc := snapshot.NewDocument(cfg.Storage.AttendanceDocument, documentStorage)

	employeeRepo := memory.NewEmployeeRepository(employees, employeesDoc)
	attendanceRepo := memory.NewAttendanceRepository(ledger, attendanceDoc)
	employeesDoc.Attach(employeeRepo)
	attendanceDoc.Attach(attendanceRepo)

	scheduler := cron.NewScheduler()
	snapshot.Schedule(scheduler, cfg.Storage.FlushInterval, employeesDoc, attendanceDoc)
	scheduler.Start()

	hub := sse.NewHub()
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, hub, time.Now)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(appHTTP.RouterOptions{
		Logger:         log,
		AllowedOrigins: cfg.App.AllowedOrigins,
	}, employeeHandler, attendanceHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", "http://localhost"+server.Addr, "storage", cfg.Storage.Type)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			serveErr := fmt.Errorf("server error: %w", err)
			if stopErr := stopScheduler(context.Background(), scheduler); stopErr != nil {
				return errors.Join(serveErr, stopErr)
			}
			return serveErr
		}
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()

	// Event streams never end on their own; close them before draining.
	hub.Close()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Failed to shut down HTTP server", "error", err)
	}

	if err := stopScheduler(shutdownCtx, scheduler); err != nil {
		return err
	}

	slog.Info("Server stopped")
	return nil
}

// stopScheduler stops the flush jobs and runs the final flush of every dirty document.
func stopScheduler(ctx context.Context, scheduler *cron.Scheduler) error {
	if err := scheduler.Stop(ctx); err != nil {
		slog.Error("Final flush failed", "error", err)
		return fmt.Errorf("final flush failed: %w", err)
	}
	return nil
}

// newDocumentStorage builds the configured backend and a cleanup func for it.
func newDocumentStorage(ctx context.Context, cfg *config.Config) (storage.DocumentStorage, func(), error) {
	switch cfg.Storage.Type {
	case config.StorageLocal:
		local, err := storage.NewLocalStorage(cfg.Storage.BasePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize local storage: %w", err)
		}
		return local, func() {}, nil
	case config.StoragePostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		pg, err := storage.NewPostgresStorage(ctx, db)
		if err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to initialize postgres storage: %w", err)
		}
		return pg, db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage type: %s", cfg.Storage.Type)
	}
}

// loadDocument decodes the stored document under key. A missing or unreadable
// document yields the zero value so the server still starts.
func loadDocument[T any](ctx context.Context, store storage.DocumentStorage, key string) T {
	var v T
	found, err := snapshot.Load(ctx, store, key, &v)
	switch {
	case err != nil:
		slog.Error("Failed to load document, starting empty", "document", key, "error", err)
		var empty T
		return empty
	case !found:
		slog.Info("Document not found, starting empty", "document", key)
	default:
		slog.Info("Document loaded", "document", key)
	}
	return v
}

// Package main provides the campusd binary entry point.
// Campusd serves the campus event management HTTP API: colleges,
// students, events, registrations, attendance, feedback, and reports.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	// Register the swagger spec via init()
	_ "github.com/rajkumar2004725/Campus-Event-Management/docs"

	"github.com/spf13/cobra"

	"github.com/rajkumar2004725/Campus-Event-Management/config"
	"github.com/rajkumar2004725/Campus-Event-Management/internal/adapters/email"
	httpdelivery "github.com/rajkumar2004725/Campus-Event-Management/internal/delivery/http"
	"github.com/rajkumar2004725/Campus-Event-Management/internal/delivery/http/controllers"
	"github.com/rajkumar2004725/Campus-Event-Management/internal/delivery/http/middleware"
	"github.com/rajkumar2004725/Campus-Event-Management/internal/domain"
	"github.com/rajkumar2004725/Campus-Event-Management/internal/repository"
	"github.com/rajkumar2004725/Campus-Event-Management/internal/services"
)

const (
	Version = "0.1.0"
	appName = "campusd"
)

// @title Campus Event Management API
// @version 1.0
// @description Colleges, students, events, registrations, attendance, feedback, and the reports on top of them.
// @BasePath /
func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Campus event management API server",
		Long: `Campusd serves the campus event management HTTP API.

It tracks colleges, students, events, and registrations, records
attendance and feedback, and reports on event popularity and student
participation. Configuration comes from the environment; see
.env.example for the available variables.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Bring the database schema up to date and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return migrate()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Load the sample dataset and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return seed()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, Version)
		},
	})

	return cmd
}

func serve() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := config.NewLogger()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stores, err := repository.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer stores.Close()

	svc, err := buildServices(cfg, stores)
	if err != nil {
		return err
	}

	router := httpdelivery.NewRouter(
		controllers.NewEventController(logger, svc.events),
		controllers.NewRegistrationController(logger, svc.registrations),
		controllers.NewReportController(logger, svc.reports),
		controllers.NewDirectoryController(logger, svc.directory),
		controllers.NewDebugController(logger, svc.seeder, svc.events, svc.registrations, svc.directory),
		controllers.NewHealthController(logger, stores.DB),
	)

	handler := middleware.RequestID(
		middleware.LoggingMiddleware(logger,
			middleware.Metrics(
				middleware.CORS(cfg.CORSAllowedOrigins, router))))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", server.Addr, "env", cfg.Environment, "version", Version)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("shutdown complete")
	return nil
}

// migrate opens the database, which brings the schema up to date for
// both backends, and exits.
func migrate() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	stores, err := repository.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer stores.Close()

	fmt.Println("schema is up to date")
	return nil
}

func seed() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := config.NewLogger()
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	stores, err := repository.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer stores.Close()

	svc, err := buildServices(cfg, stores)
	if err != nil {
		return err
	}
	if err := svc.seeder.Seed(ctx); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	fmt.Println("sample dataset loaded")
	return nil
}

type appServices struct {
	events        domain.EventService
	registrations domain.RegistrationService
	reports       domain.ReportService
	directory     domain.DirectoryService
	seeder        domain.Seeder
}

// buildServices wires the service layer. Email provider "noop" leaves the
// email service nil, so registration skips confirmation mail.
func buildServices(cfg *config.Config, stores *repository.Stores) (*appServices, error) {
	var emailService domain.EmailService
	if cfg.Email.Provider != "noop" {
		mailer, err := email.NewMailer(email.MailerConfig{
			Provider:    cfg.Email.Provider,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
			SES: email.SESConfig{
				Region:             cfg.Email.SESRegion,
				AccessKeyID:        cfg.Email.SESAccessKeyID,
				SecretAccessKey:    cfg.Email.SESSecretAccessKey,
				InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("create mailer: %w", err)
		}
		emailService = services.NewEmailService(mailer, email.NewTemplateRenderer())
	}

	events := services.NewEventService(stores.Events, cfg.ContextTimeout)
	registrations := services.NewRegistrationService(stores.Registrations, stores.Events, stores.Students, emailService, cfg.ContextTimeout)
	directory := services.NewDirectoryService(stores.Students, cfg.ContextTimeout)
	reports := services.NewReportService(stores.Reports, cfg.ContextTimeout)

	return &appServices{
		events:        events,
		registrations: registrations,
		reports:       reports,
		directory:     directory,
		seeder:        services.NewSeeder(directory, events, registrations),
	}, nil
}

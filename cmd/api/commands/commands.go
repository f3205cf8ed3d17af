package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/persidate/core/internal/domain/jalali"
	"github.com/persidate/core/internal/infrastructure/config"
	"github.com/persidate/core/internal/infrastructure/logger"
	"github.com/persidate/core/internal/infrastructure/server"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the PersiDate API server",
		Long:  "Start the PersiDate API server with all configured routes and middleware",
		Run: func(cmd *cobra.Command, args []string) {
			runServer()
		},
	}
}

// NewConvertCommand creates the one-shot conversion command
func NewConvertCommand() *cobra.Command {
	convertCmd := &cobra.Command{
		Use:   "convert <date>",
		Short: "Convert a date between the Jalali and Gregorian calendars",
		Long:  "Convert a Jalali date (YYYY/MM/DD) to Gregorian, or a Gregorian date (YYYY-MM-DD) to Jalali with --from-gregorian",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fromGregorian, _ := cmd.Flags().GetBool("from-gregorian")
			convertDate(args[0], fromGregorian)
		},
	}

	convertCmd.Flags().Bool("from-gregorian", false, "Treat the input as a Gregorian date and convert to Jalali")

	return convertCmd
}

// NewTodayCommand creates the today command
func NewTodayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Print the current date in the Jalali calendar",
		Run: func(cmd *cobra.Command, args []string) {
			printToday()
		},
	}
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print PersiDate version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("PersiDate Core v1.0.0")
		},
	}
}

func runServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	srv, err := server.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatalw("Failed to initialize server", "error", err)
	}

	appLogger.Infow("Starting PersiDate API server",
		"port", cfg.Server.Port,
		"environment", cfg.App.Environment,
	)

	go func() {
		if err := srv.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
			appLogger.Infow("Server stopped", "reason", err)
		}
	}()

	// Block until interrupted, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatalw("Server shutdown failed", "error", err)
	}
}

func convertDate(date string, fromGregorian bool) {
	var converted jalali.Date

	if fromGregorian {
		parsed, err := jalali.Parse(jalali.Gregorian, date)
		if err != nil {
			log.Fatalf("Failed to parse date: %v", err)
		}
		converted, err = jalali.ToJalali(parsed)
		if err != nil {
			log.Fatalf("Failed to convert date: %v", err)
		}
	} else {
		parsed, err := jalali.Parse(jalali.Jalali, date)
		if err != nil {
			log.Fatalf("Failed to parse date: %v", err)
		}
		converted, err = jalali.ToGregorian(parsed)
		if err != nil {
			log.Fatalf("Failed to convert date: %v", err)
		}
	}

	fmt.Println(converted)
}

func printToday() {
	year, month, day := time.Now().UTC().Date()
	date, err := jalali.New(jalali.Gregorian, year, int(month), day)
	if err != nil {
		log.Fatalf("Failed to read the system clock: %v", err)
	}
	converted, err := jalali.ToJalali(date)
	if err != nil {
		log.Fatalf("Failed to convert date: %v", err)
	}
	fmt.Println(converted)
}

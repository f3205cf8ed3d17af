package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/persidate/core/cmd/api/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "persidate",
		Short: "PersiDate calendar API server",
		Long:  `PersiDate converts dates between the Persian (Jalali) and Gregorian calendars, performs calendar-aware arithmetic, and classifies dates within recurring billing periods.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewConvertCommand())
	rootCmd.AddCommand(commands.NewTodayCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}

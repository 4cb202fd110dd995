// Package cmd provides the command-line interface for the memristor models.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// Environment variables read by the commands.
const (
	EnvRecordPath  = "MEMRISTOR_RECORD_PATH"
	EnvMonitorPort = "MEMRISTOR_MONITOR_PORT"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "memristor",
	Short: "Pulse and sweep simulated memristors.",
	Long: `memristor simulates memristive devices that follow the Anouk ` +
		`power-law fit. It can sweep the resistance curve of a device and ` +
		`apply pulse trains while reading the device state.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return loadEnv(".env")
	},
}

func init() {
	rootCmd.AddCommand(curveCmd)
	rootCmd.AddCommand(pulseCmd)
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

// loadEnv reads an optional .env file. Variables already set win.
func loadEnv(filename string) error {
	err := godotenv.Load(filename)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", filename, err)
	}

	return nil
}

func recordPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}

	return os.Getenv(EnvRecordPath)
}

func monitorPort() (int, error) {
	value := os.Getenv(EnvMonitorPort)
	if value == "" {
		return 0, nil
	}

	port, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", EnvMonitorPort, err)
	}

	return port, nil
}

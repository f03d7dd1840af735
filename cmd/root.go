package cmd

import (
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/zyarat-mobile/zyarat/internal/config"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zyarat",
		Short: "Tunisian artifact scanner companion tool",
		Long: `Zyarat drives the artifact-scan pipeline of the Zyarat tourism app from
the command line: it checks the analysis server, prepares and uploads photos
of Tunisian historical artifacts, and manages the local Kronodex collection
and ticket reservations.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
			configureLogging()
		},
	}

	// Add subcommands
	cmd.AddCommand(newHealthCmd())
	cmd.AddCommand(newScanCmd())
	cmd.AddCommand(newKronodexCmd())
	cmd.AddCommand(newTicketsCmd())

	return cmd
}

func configureLogging() {
	var level slog.Level
	switch strings.ToLower(config.Load().LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	slog.SetLogLoggerLevel(level)
}

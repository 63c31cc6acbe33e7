package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/Michal-learning/magazyn/pkg/infrastructure/config"
	"github.com/Michal-learning/magazyn/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		dbPath     = flag.String("db", "", "Path to the SQLite state database")
		demo       = flag.Bool("demo", false, "Seed demo data when the database is empty")
		seedDir    = flag.String("seed-dir", "", "Import CSV files from a directory")
		filter     = flag.String("filter", "", "Case-insensitive substring filter for the report")
		recent     = flag.Int("recent", 5, "Number of recent actions to show")
		exportFile = flag.String("export", "", "Write the report to an .xlsx workbook")
		format     = flag.String("format", "text", "Output format: text, json")
		verbose    = flag.Bool("verbose", false, "Include the full lot ledger in the output")
		help       = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	setupLogging()

	// Create command configuration
	cmdConfig := commands.Config{
		DBPath:     *dbPath,
		Demo:       *demo,
		SeedDir:    *seedDir,
		Filter:     *filter,
		Recent:     *recent,
		ExportFile: *exportFile,
		Format:     *format,
		Verbose:    *verbose,
		Help:       *help,
	}

	// Create and execute command
	cmd := commands.NewLedgerCommand(cmdConfig)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging configures the global zerolog logger from the application
// configuration. Invalid configuration falls back to console info logging
// so the command itself can report the error.
func setupLogging() {
	zerolog.TimeFieldFormat = time.RFC3339

	cfg, err := config.Load()
	if err != nil {
		zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		return
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Log.Format == "console" {
		zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

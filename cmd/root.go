/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/scrobloop/scrobloop/internal/config"
	"github.com/scrobloop/scrobloop/internal/looper"
	"github.com/scrobloop/scrobloop/internal/report"
	"github.com/scrobloop/scrobloop/pkg/catalog"
	"github.com/scrobloop/scrobloop/pkg/openscrobbler"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

var (
	flagArtist   string
	flagAlbum    string
	flagCount    int
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

// maxTitleWidth caps track titles in the resolved tracklist printout.
const maxTitleWidth = 60

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scrobloop",
	Short: "Batch album scrobbler for OpenScrobbler",
	Long: `scrobloop resolves an album's tracklist from the Last.fm catalog and
repeatedly submits it to OpenScrobbler as timestamped scrobble batches.

Artist, album and repeat count can be passed as flags; anything missing is
prompted for on stdin. Credentials are read from the API_KEY and SESSION_ID
environment variables, and the process refuses to start without them.

The loop distinguishes three failure modes per attempt: an HTTP 429 is a
short throttle and retries the same slot, a zero-accepted response slows
down and retries, and the service's in-body daily-limit error stops the run
for good.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&flagArtist, "artist", "a", "", "Artist name")
	rootCmd.Flags().StringVarP(&flagAlbum, "album", "b", "", "Album title")
	rootCmd.Flags().IntVarP(&flagCount, "count", "n", 0, "Number of scrobble batches to submit")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/scrobloop/config.yaml)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Log file path (default: stderr)")
}

func runRoot(cmd *cobra.Command, args []string) error {
	reporter := report.Default()

	if err := run(reporter); err != nil {
		reporter.Error(err.Error())
		return err
	}
	return nil
}

func run(reporter *report.Console) error {
	cfg, err := config.LoadFile(flagConfig)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := setupLogger(flagLogFile, flagLogLevel)

	in, err := collectInputs(bufio.NewReader(os.Stdin), os.Stdout, flagArtist, flagAlbum, flagCount)
	if err != nil {
		return err
	}

	catalogClient, err := catalog.NewClient(catalog.Config{
		APIKey: cfg.APIKey,
		Logger: zerologAdapter{logger},
	})
	if err != nil {
		return err
	}

	submitClient, err := openscrobbler.NewClient(openscrobbler.Config{
		SessionID: cfg.SessionID,
		Logger:    zerologAdapter{logger},
	})
	if err != nil {
		return err
	}

	ctx := context.Background()

	reporter.Info(fmt.Sprintf("Looking up %q by %q", in.album, in.artist))
	tracks, err := catalogClient.AlbumTracks(ctx, in.artist, in.album)
	if err != nil {
		return err
	}

	reporter.Info(fmt.Sprintf("Resolved %d track(s):", len(tracks)))
	names := make([]string, len(tracks))
	for i, t := range tracks {
		names[i] = t.Name
		reporter.Info(fmt.Sprintf("%3d. %s", i+1, runewidth.Truncate(t.Name, maxTitleWidth, "…")))
	}

	loop := looper.New(looper.Config{
		Count:                  in.count,
		CountRejectedAsAttempt: cfg.CountRejectedAsAttempt,
		AcceptDelay:            cfg.AcceptDelay,
		RejectDelay:            cfg.RejectDelay,
		RateLimitDelay:         cfg.RateLimitDelay,
		ErrorDelay:             cfg.ErrorDelay,
	}, submitClient, reporter, logger)

	state, err := loop.Run(ctx, in.artist, in.album, names)
	if err != nil {
		return err
	}

	switch state {
	case looper.StoppedByLimit:
		reporter.Info("Stopped due to daily limit")
	default:
		reporter.Info("Scrobbling done")
	}
	return nil
}

// setupLogger creates a logger with the specified configuration
func setupLogger(logFile, logLevel string) zerolog.Logger {
	level := zerolog.InfoLevel
	switch logLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	var output *os.File
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			output = os.Stderr
		} else {
			output = f
		}
	} else {
		output = os.Stderr
	}

	logger := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	if output == os.Stderr {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	return logger
}

// zerologAdapter exposes a zerolog.Logger through the clients' minimal
// Logger interface.
type zerologAdapter struct {
	l zerolog.Logger
}

func (a zerologAdapter) Debugf(format string, args ...interface{}) {
	a.l.Debug().Msgf(format, args...)
}

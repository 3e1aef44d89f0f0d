package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/msepp/monthcal"
	"github.com/msepp/monthcal/monthgrid"
	"github.com/spf13/cobra"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

type flags struct {
	config    string
	locale    string
	weekStart string
	month     string
	logFile   string
}

func main() {
	var f flags
	if path, err := monthcal.DefaultSettingsPath(); err != nil {
		logger.Warn("failed to determine settings location", slog.String("error", err.Error()))
	} else {
		f.config = path
	}
	cmd := &cobra.Command{
		Use:           "monthcal",
		Short:         "An interactive month calendar for the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(f)
		},
	}
	cmd.Flags().StringVar(&f.config, "config", f.config, "Settings file location")
	cmd.Flags().StringVar(&f.locale, "locale", "", "Locale for month and weekday names, e.g. de_DE. Defaults to LC_TIME/LANG.")
	cmd.Flags().StringVar(&f.weekStart, "week-start", "", "First day of the week, e.g. monday. Defaults to the locale's.")
	cmd.Flags().StringVar(&f.month, "month", "", "Month to show first, in format 2006-01. Defaults to the current month.")
	cmd.Flags().StringVar(&f.logFile, "log", "", "Write debug log to given file")
	if err := cmd.Execute(); err != nil {
		logger.Error("run error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(f flags) error {
	settings, err := monthcal.LoadSettings(f.config)
	if err != nil {
		return err
	}
	// command line wins over the settings file.
	if f.locale != "" {
		settings.Locale = f.locale
	}
	if f.weekStart != "" {
		settings.WeekStart = f.weekStart
	}
	options, err := settings.Options()
	if err != nil {
		return err
	}
	if f.month != "" {
		var t time.Time
		if t, err = time.Parse("2006-01", f.month); err != nil {
			return fmt.Errorf("invalid month %q: %w", f.month, err)
		}
		options = append(options, monthcal.UseStartDate(monthgrid.FromTime(t)))
	}
	// the terminal belongs to the calendar while it runs, so logging only
	// goes to a file when asked for.
	if f.logFile != "" {
		var lf *os.File
		if lf, err = os.OpenFile(f.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer lf.Close()
		fileLogger := slog.New(slog.NewTextHandler(lf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		fileLogger.Info("starting", slog.String("settings", f.config))
		options = append(options, monthcal.UseLogger(fileLogger))
	}
	return monthcal.Run(options...)
}

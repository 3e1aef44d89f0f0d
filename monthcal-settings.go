package monthcal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/msepp/monthcal/locale"
	"gopkg.in/yaml.v3"
)

// Settings contains the configuration values read from the settings file.
type Settings struct {
	// Locale is the locale code for month and weekday names, e.g. "de_DE".
	// Empty means the locale configured in the environment.
	Locale string `yaml:"locale"`
	// WeekStart overrides the locale's first day of the week, e.g. "monday".
	WeekStart string `yaml:"week_start"`
	// TickInterval is how often the current date is re-checked.
	TickInterval time.Duration `yaml:"tick_interval"`
}

// DefaultSettingsPath returns the settings file location under the user
// configuration directory.
func DefaultSettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("os.UserConfigDir: %w", err)
	}
	return filepath.Join(dir, "monthcal", "config.yaml"), nil
}

// LoadSettings reads settings from the YAML file at path. A missing file is
// not an error, zero Settings are returned instead.
func LoadSettings(path string) (Settings, error) {
	var s Settings
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return s, nil
	case err != nil:
		return s, fmt.Errorf("reading settings: %w", err)
	}
	if err = yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing settings %s: %w", path, err)
	}
	return s, nil
}

// Options converts settings into application options. A configured locale
// must be known, one taken from the environment falls back to the closest
// known locale.
func (s Settings) Options() ([]Option, error) {
	var (
		loc *locale.Locale
		err error
	)
	if s.Locale == "" {
		loc = locale.Closest(locale.FromEnv())
	} else if loc, err = locale.New(s.Locale); err != nil {
		return nil, fmt.Errorf("locale.New: %w", err)
	}
	if s.WeekStart != "" {
		var ws time.Weekday
		if ws, err = locale.ParseWeekday(s.WeekStart); err != nil {
			return nil, fmt.Errorf("week start: %w", err)
		}
		loc = loc.WithWeekStart(ws)
	}
	return []Option{
		UseLocale(loc),
		UseTickInterval(s.TickInterval),
	}, nil
}

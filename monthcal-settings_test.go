package monthcal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/msepp/monthcal/locale"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}
	return path
}

func TestLoadSettings(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Settings
		wantErr bool
	}{
		{
			name:    "all values",
			content: "locale: de_DE\nweek_start: sunday\ntick_interval: 30s\n",
			want:    Settings{Locale: "de_DE", WeekStart: "sunday", TickInterval: 30 * time.Second},
		},
		{
			name:    "partial",
			content: "locale: fi_FI\n",
			want:    Settings{Locale: "fi_FI"},
		},
		{
			name:    "empty",
			content: "",
			want:    Settings{},
		},
		{
			name:    "invalid",
			content: "locale: [de_DE\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadSettings(writeSettings(t, tt.content))
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadSettings() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("LoadSettings() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadSettings_missing(t *testing.T) {
	got, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if got != (Settings{}) {
		t.Errorf("LoadSettings() = %+v, want zero settings", got)
	}
}

func TestSettings_Options(t *testing.T) {
	tests := []struct {
		name      string
		settings  Settings
		weekStart time.Weekday
		title     string
		wantErr   error
	}{
		{name: "locale default week start", settings: Settings{Locale: "en_US"}, weekStart: time.Sunday, title: "May 2024"},
		{name: "week start override", settings: Settings{Locale: "en_US", WeekStart: "mon"}, weekStart: time.Monday, title: "May 2024"},
		{name: "german", settings: Settings{Locale: "de_DE"}, weekStart: time.Monday, title: "Mai 2024"},
		{name: "unknown locale", settings: Settings{Locale: "xx_XX"}, wantErr: locale.ErrUnknownLocale},
		{name: "bad week start", settings: Settings{Locale: "en_US", WeekStart: "someday"}, wantErr: locale.ErrUnknownWeekday},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options, err := tt.settings.Options()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Options() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Options() error = %v", err)
			}
			m := New(append(options, UseClock((&testClock{now: may14}).Now))...)
			if got := m.locale.WeekStart(); got != tt.weekStart {
				t.Errorf("WeekStart() = %v, want %v", got, tt.weekStart)
			}
			if got := m.Title(); got != tt.title {
				t.Errorf("Title() = %v, want %v", got, tt.title)
			}
		})
	}
}

func TestSettings_OptionsFromEnv(t *testing.T) {
	tests := []struct {
		name      string
		lang      string
		weekStart time.Weekday
		title     string
	}{
		{name: "exact", lang: "en_GB.UTF-8", weekStart: time.Monday, title: "May 2024"},
		{name: "regional variant", lang: "de_AT.UTF-8", weekStart: time.Monday, title: "Mai 2024"},
		{name: "bare language", lang: "en", weekStart: time.Sunday, title: "May 2024"},
		{name: "unknown falls back to default", lang: "xx_XX.UTF-8", weekStart: time.Sunday, title: "May 2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LC_ALL", "")
			t.Setenv("LC_TIME", "")
			t.Setenv("LANG", tt.lang)
			options, err := Settings{}.Options()
			if err != nil {
				t.Fatalf("Options() error = %v", err)
			}
			m := New(append(options, UseClock((&testClock{now: may14}).Now))...)
			if got := m.locale.WeekStart(); got != tt.weekStart {
				t.Errorf("WeekStart() = %v, want %v", got, tt.weekStart)
			}
			if got := m.Title(); got != tt.title {
				t.Errorf("Title() = %v, want %v", got, tt.title)
			}
		})
	}
}

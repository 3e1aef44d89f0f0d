// Package locale provides the localized strings and week-start convention for
// the calendar. Month and weekday names come from github.com/goodsign/monday.
package locale

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Default is the locale code used when nothing else is configured.
const Default = "en_US"

var (
	// ErrUnknownLocale is returned for locale codes without translations.
	ErrUnknownLocale = errors.New("unknown locale")
	// ErrUnknownWeekday is returned when a weekday name can't be parsed.
	ErrUnknownWeekday = errors.New("unknown weekday")
)

// sundayFirst lists the locales where weeks start on Sunday. Anything else
// starts on Monday.
var sundayFirst = map[monday.Locale]bool{
	monday.LocaleEnUS: true,
	monday.LocaleJaJP: true,
	monday.LocaleKoKR: true,
	monday.LocalePtBR: true,
	monday.LocaleZhTW: true,
	monday.LocaleZhHK: true,
}

// Locale formats calendar strings for a single locale.
type Locale struct {
	code      monday.Locale
	weekStart time.Weekday
	caser     cases.Caser
}

// New returns the locale for code, e.g. "de_DE". Codes are matched against
// the locales monday has translations for. Encoding suffixes such as
// ".UTF-8" and dashes in place of underscores are accepted.
func New(code string) (*Locale, error) {
	normalized := normalize(code)
	for _, known := range monday.ListLocales() {
		if string(known) != normalized {
			continue
		}
		tag, err := language.Parse(strings.ReplaceAll(normalized, "_", "-"))
		if err != nil {
			tag = language.Und
		}
		weekStart := time.Monday
		if sundayFirst[known] {
			weekStart = time.Sunday
		}
		return &Locale{
			code:      known,
			weekStart: weekStart,
			caser:     cases.Title(tag),
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, code)
}

// MustNew is like New but panics on error.
func MustNew(code string) *Locale {
	l, err := New(code)
	if err != nil {
		panic(err)
	}
	return l
}

// Closest returns the locale for code, or the nearest locale monday has
// translations for when there is no exact match, e.g. "de_AT" gives "de_DE"
// and "en" gives "en_US". Codes matching nothing give Default.
func Closest(code string) *Locale {
	if l, err := New(code); err == nil {
		return l
	}
	desired, err := language.Parse(strings.ReplaceAll(normalize(code), "_", "-"))
	if err != nil {
		return MustNew(Default)
	}
	// monday lists en_US first, so it wins ties.
	known := monday.ListLocales()
	codes := make([]monday.Locale, 0, len(known))
	tags := make([]language.Tag, 0, len(known))
	for _, c := range known {
		tag, err := language.Parse(strings.ReplaceAll(string(c), "_", "-"))
		if err != nil {
			continue
		}
		codes = append(codes, c)
		tags = append(tags, tag)
	}
	_, i, confidence := language.NewMatcher(tags).Match(desired)
	if confidence == language.No || i < 0 || i >= len(codes) {
		return MustNew(Default)
	}
	return MustNew(string(codes[i]))
}

// FromEnv returns the locale code configured in the environment, checking
// LC_ALL, LC_TIME and LANG in that order. Returns Default if none are set or
// the value is the POSIX locale.
func FromEnv() string {
	for _, name := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		v := normalize(os.Getenv(name))
		switch v {
		case "", "C", "POSIX":
			continue
		}
		return v
	}
	return Default
}

func normalize(code string) string {
	code = strings.TrimSpace(code)
	// drop encoding and modifier, e.g. de_DE.UTF-8@euro
	if i := strings.IndexAny(code, ".@"); i >= 0 {
		code = code[:i]
	}
	return strings.ReplaceAll(code, "-", "_")
}

// WithWeekStart returns a copy of the locale with weeks starting on d.
func (l *Locale) WithWeekStart(d time.Weekday) *Locale {
	c := *l
	c.weekStart = d
	return &c
}

// WeekStart returns the first day of the week.
func (l *Locale) WeekStart() time.Weekday {
	return l.weekStart
}

// MonthYear returns the title-cased "Month Year" label, e.g. "March 2024".
func (l *Locale) MonthYear(year int, month time.Month) string {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return l.caser.String(monday.Format(t, "January 2006", l.code))
}

// WeekdayAbbr returns the abbreviated name of d, at most three characters.
func (l *Locale) WeekdayAbbr(d time.Weekday) string {
	// 2024-01-07 is a Sunday.
	t := time.Date(2024, time.January, 7+int(d), 0, 0, 0, 0, time.UTC)
	name := []rune(l.caser.String(monday.Format(t, "Mon", l.code)))
	if len(name) > 3 {
		name = name[:3]
	}
	return string(name)
}

// Weekdays returns the abbreviated weekday names in display order, starting
// from the week start.
func (l *Locale) Weekdays() [7]string {
	var names [7]string
	for i := range names {
		names[i] = l.WeekdayAbbr((l.weekStart + time.Weekday(i)) % 7)
	}
	return names
}

// ParseWeekday parses an English weekday name or its three letter
// abbreviation, case insensitive.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("%w: %q", ErrUnknownWeekday, s)
}

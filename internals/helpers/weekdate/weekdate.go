// file: internals/helpers/weekdate/weekdate.go
//
// Calendar-week arithmetic for the weekly study plan. A week is always
// addressed by its Monday; every date is normalized to midnight UTC so that
// date-typed columns compare cleanly.
package weekdate

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/id"
)

const (
	// DateLayout is the wire format for week identifiers and day dates.
	DateLayout = "2006-01-02"

	// DaysPerWeek day-slots per weekly plan, Monday..Sunday.
	DaysPerWeek = 7
)

var ErrInvalidWeekStart = errors.New("week start must be a Monday")

// Day labels use one fixed locale (Indonesian), same as the mobile client.
var dayTranslator locales.Translator = id.New()

// WeekDay is one of the 7 day-slots of a week.
type WeekDay struct {
	Date  time.Time
	Label string // localized wide weekday name, e.g. "Senin"
}

// DateOnly truncates t to midnight UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NormalizeToWeekStart returns the Monday on or before t, at midnight UTC.
// Idempotent: normalizing a Monday returns the same Monday.
func NormalizeToWeekStart(t time.Time) time.Time {
	d := DateOnly(t)
	// Weekday(): Sunday=0 .. Saturday=6; shift so Monday=0.
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// IsWeekStart reports whether t falls on a Monday. Only the calendar date
// matters; a time-of-day does not disqualify it.
func IsWeekStart(t time.Time) bool {
	return DateOnly(t).Weekday() == time.Monday
}

// WeekDates enumerates the 7 day-slots of the week beginning at weekStart.
// Fails when weekStart is not a Monday; any time-of-day is dropped.
func WeekDates(weekStart time.Time) ([]WeekDay, error) {
	if !IsWeekStart(weekStart) {
		return nil, ErrInvalidWeekStart
	}
	start := DateOnly(weekStart)
	days := make([]WeekDay, 0, DaysPerWeek)
	for i := 0; i < DaysPerWeek; i++ {
		d := start.AddDate(0, 0, i)
		days = append(days, WeekDay{
			Date:  d,
			Label: dayTranslator.WeekdayWide(d.Weekday()),
		})
	}
	return days, nil
}

// ParseWeekIdentifier parses a caller-supplied "yyyy-MM-dd" week identifier
// and normalizes it to its Monday. Malformed input falls back to the current
// week instead of failing: the console drives navigation from the URL and a
// bad segment should land the user on "this week", not on an error page.
func ParseWeekIdentifier(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw != "" {
		if t, err := time.Parse(DateLayout, raw); err == nil {
			return NormalizeToWeekStart(t)
		}
	}
	return NormalizeToWeekStart(time.Now().UTC())
}

// FormatDate renders a date in the wire format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// SameDate reports whether a and b fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}

// InWeek reports whether date lies inside [weekStart, weekStart+6].
func InWeek(date, weekStart time.Time) bool {
	d := DateOnly(date)
	ws := DateOnly(weekStart)
	return !d.Before(ws) && !d.After(ws.AddDate(0, 0, DaysPerWeek-1))
}

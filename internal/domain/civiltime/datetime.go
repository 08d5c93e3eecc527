package civiltime

import (
	"fmt"
	"regexp"
	"time"
)

// dateTimePattern accepts YYYY-MM-DDTHH:MM[:SS] with no offset. A space is
// tolerated in place of the T because some admin clients send it.
var dateTimePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})[T ](\d{2}):(\d{2})(?::(\d{2}))?$`)

// DateTime is a calendar date plus a wall-clock time, understood to be in
// the converter's civil zone. It carries no offset.
type DateTime struct {
	Year  int
	Month time.Month
	Day   int
	Time  TimeOfDay
}

// ParseDateTime parses a bare civil datetime string. Lexical mismatches are
// ErrInvalidFormat; out-of-range components are ErrInvalidCivilTime.
func ParseDateTime(s string) (DateTime, error) {
	m := dateTimePattern.FindStringSubmatch(s)
	if m == nil {
		return DateTime{}, formatError(s, "want YYYY-MM-DDTHH:MM[:SS]")
	}

	dt := DateTime{
		Year:  atoi(m[1]),
		Month: time.Month(atoi(m[2])),
		Day:   atoi(m[3]),
		Time: TimeOfDay{
			Hour:   atoi(m[4]),
			Minute: atoi(m[5]),
		},
	}
	if m[6] != "" {
		dt.Time.Second = atoi(m[6])
		dt.Time.HasSeconds = true
	}

	if err := dt.validate(); err != nil {
		return DateTime{}, civilError(s, err.Error())
	}
	return dt, nil
}

func (d DateTime) validate() error {
	switch {
	case d.Month < time.January || d.Month > time.December:
		return fmt.Errorf("month %d out of range", d.Month)
	case d.Day < 1 || d.Day > daysIn(d.Year, d.Month):
		return fmt.Errorf("day %d out of range for %04d-%02d", d.Day, d.Year, d.Month)
	case d.Time.Hour > 23:
		return fmt.Errorf("hour %d out of range", d.Time.Hour)
	case d.Time.Minute > 59:
		return fmt.Errorf("minute %d out of range", d.Time.Minute)
	case d.Time.Second > 59:
		return fmt.Errorf("second %d out of range", d.Time.Second)
	}
	return nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// dateTimeOf extracts the wall-clock date and time of t in t's location.
func dateTimeOf(t time.Time) DateTime {
	y, m, d := t.Date()
	return DateTime{Year: y, Month: m, Day: d, Time: timeOfDayOf(t, true)}
}

// wall returns the wall clock as if it were a UTC instant. It is only used
// for arithmetic on wall-clock values, never as a real instant.
func (d DateTime) wall() time.Time {
	return time.Date(d.Year, d.Month, d.Day, d.Time.Hour, d.Time.Minute, d.Time.Second, 0, time.UTC)
}

// Weekday reports the civil day of the week.
func (d DateTime) Weekday() time.Weekday {
	return d.wall().Weekday()
}

// String renders YYYY-MM-DDTHH:MM:SS.
func (d DateTime) String() string {
	return d.wall().Format("2006-01-02T15:04:05")
}

// InputString renders the datetime-local form value YYYY-MM-DDTHH:MM.
func (d DateTime) InputString() string {
	return d.wall().Format("2006-01-02T15:04")
}

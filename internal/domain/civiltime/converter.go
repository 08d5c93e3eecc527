// Package civiltime converts between wall-clock time in one fixed civil zone
// and UTC. Offsets and daylight saving rules come from the IANA database
// (bundled via time/tzdata), so transition dates follow the zone's current
// legislation rather than a hard-coded table.
//
// Storage always holds UTC: full instants for events and specials, and
// time-of-day strings for operation hours. Conversion happens at the API
// boundary:
//
//	conv, _ := civiltime.NewConverter("America/Toronto")
//	at, _ := conv.CivilToUTC("2025-08-15T19:30")   // 2025-08-15T23:30:00Z
//	open, _ := conv.TimeOfDayToUTC("11:00")         // "15:00" in summer
//
// A Converter is immutable after construction and safe for concurrent use.
package civiltime

import (
	"fmt"
	"regexp"
	"slices"
	"time"
	_ "time/tzdata" // zone rules must resolve in minimal images
)

// probeWindow brackets a wall-clock value when collecting candidate offsets.
// Zone transitions are always further apart than this.
const probeWindow = 24 * time.Hour

// explicitZonePattern matches strings that carry their own UTC marker.
var explicitZonePattern = regexp.MustCompile(`(?:[Zz]|[+-]\d{2}:?\d{2})$`)

// instantLayouts are tried in order for strings carrying a UTC marker.
var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
}

// Converter performs every civil-zone conversion for the service.
type Converter struct {
	loc *time.Location
	now func() time.Time
}

// Option configures a Converter.
type Option func(*Converter)

// WithClock replaces time.Now as the source of "today" and "now".
func WithClock(now func() time.Time) Option {
	return func(c *Converter) {
		if now != nil {
			c.now = now
		}
	}
}

// NewConverter loads the named IANA zone (e.g. "America/Toronto").
func NewConverter(zone string, opts ...Option) (*Converter, error) {
	if zone == "" {
		return nil, fmt.Errorf("civiltime: zone must not be empty")
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("civiltime: loading zone %q: %w", zone, err)
	}

	c := &Converter{loc: loc, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Location returns the civil zone.
func (c *Converter) Location() *time.Location {
	return c.loc
}

// Now returns the current instant in UTC.
func (c *Converter) Now() time.Time {
	return c.now().UTC()
}

// CivilNow returns the current wall clock in the civil zone.
func (c *Converter) CivilNow() DateTime {
	return c.UTCToCivil(c.Now())
}

// CivilToUTC interprets s (YYYY-MM-DDTHH:MM[:SS]) as wall-clock time in the
// civil zone and returns the corresponding UTC instant.
//
// A wall clock skipped by a spring-forward transition is rejected with
// ErrInvalidCivilTime. A wall clock repeated by a fall-back transition
// resolves to its second occurrence, in standard time.
func (c *Converter) CivilToUTC(s string) (time.Time, error) {
	dt, err := ParseDateTime(s)
	if err != nil {
		return time.Time{}, err
	}
	return c.resolve(dt, s)
}

// DateTimeToUTC is CivilToUTC for an already parsed value.
func (c *Converter) DateTimeToUTC(dt DateTime) (time.Time, error) {
	if err := dt.validate(); err != nil {
		return time.Time{}, civilError(dt.String(), err.Error())
	}
	return c.resolve(dt, dt.String())
}

// resolve finds every offset that maps the wall clock onto itself and picks
// one according to the gap and fold policy documented on CivilToUTC.
func (c *Converter) resolve(dt DateTime, input string) (time.Time, error) {
	wall := dt.wall()

	var matches []time.Time
	seen := make(map[int]bool, 2)
	for _, probe := range []time.Time{wall.Add(-probeWindow), wall, wall.Add(probeWindow)} {
		_, offset := probe.In(c.loc).Zone()
		if seen[offset] {
			continue
		}
		seen[offset] = true

		candidate := wall.Add(-time.Duration(offset) * time.Second)
		if _, got := candidate.In(c.loc).Zone(); got == offset {
			matches = append(matches, candidate)
		}
	}

	if len(matches) == 0 {
		return time.Time{}, civilError(input, fmt.Sprintf("does not exist in %s (clocks skip it)", c.loc))
	}

	// Fold: the later instant is the standard-time occurrence.
	return slices.MaxFunc(matches, func(a, b time.Time) int { return a.Compare(b) }).UTC(), nil
}

// UTCToCivil returns the wall clock in the civil zone at instant t.
func (c *Converter) UTCToCivil(t time.Time) DateTime {
	return dateTimeOf(t.In(c.loc))
}

// TimeOfDayToUTC converts a civil time of day to a UTC time of day. Today's
// civil date is the reference day used to pick the offset, so on the day of
// a DST transition the result may be one hour off for the other half of the
// day.
func (c *Converter) TimeOfDayToUTC(s string) (TimeOfDay, error) {
	tod, err := ParseTimeOfDay(s)
	if err != nil {
		return TimeOfDay{}, err
	}

	today := c.CivilNow()
	dt := DateTime{Year: today.Year, Month: today.Month, Day: today.Day, Time: tod}

	at, err := c.resolve(dt, s)
	if err != nil {
		return TimeOfDay{}, err
	}
	return timeOfDayOf(at, tod.HasSeconds), nil
}

// TimeOfDayFromUTC converts a UTC time of day back to civil time. It uses
// the same reference day as TimeOfDayToUTC: of the instants at that UTC
// clock on the days around today, it picks the one that falls on today's
// civil date, so the two conversions round-trip all day.
func (c *Converter) TimeOfDayFromUTC(s string) (TimeOfDay, error) {
	tod, err := ParseTimeOfDay(s)
	if err != nil {
		return TimeOfDay{}, err
	}

	today := c.CivilNow()
	var fallback time.Time
	for _, shift := range []int{0, -1, 1} {
		at := time.Date(today.Year, today.Month, today.Day+shift, tod.Hour, tod.Minute, tod.Second, 0, time.UTC).In(c.loc)
		y, m, d := at.Date()
		if y == today.Year && m == today.Month && d == today.Day {
			return timeOfDayOf(at, tod.HasSeconds), nil
		}
		if shift == 0 {
			fallback = at
		}
	}
	return timeOfDayOf(fallback, tod.HasSeconds), nil
}

// IsDST reports whether the zone's daylight offset is in effect at t.
func (c *Converter) IsDST(t time.Time) bool {
	return t.In(c.loc).IsDST()
}

// ZoneInfo describes the civil zone's state at t.
type ZoneInfo struct {
	Name         string
	Abbreviation string
	Offset       string
	IsDST        bool
}

// ZoneInfo returns name, abbreviation, signed offset and DST flag at t.
func (c *Converter) ZoneInfo(t time.Time) ZoneInfo {
	local := t.In(c.loc)
	abbr, offset := local.Zone()
	return ZoneInfo{
		Name:         c.loc.String(),
		Abbreviation: abbr,
		Offset:       formatOffset(offset),
		IsDST:        c.IsDST(t),
	}
}

func formatOffset(seconds int) string {
	sign := '+'
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}
	return fmt.Sprintf("%c%02d:%02d", sign, seconds/3600, seconds%3600/60)
}

// ParseInstant accepts both storage and form shapes. Strings ending in Z or
// an explicit offset are parsed as already-absolute; bare strings are civil
// wall-clock time and go through CivilToUTC.
func (c *Converter) ParseInstant(s string) (time.Time, error) {
	if !explicitZonePattern.MatchString(s) {
		return c.CivilToUTC(s)
	}
	return parseExplicit(s)
}

// ParseUTCInstant is ParseInstant for values that are already UTC: bare
// strings are read as UTC wall-clock time instead of civil time.
func ParseUTCInstant(s string) (time.Time, error) {
	if !explicitZonePattern.MatchString(s) {
		dt, err := ParseDateTime(s)
		if err != nil {
			return time.Time{}, err
		}
		return dt.wall(), nil
	}
	return parseExplicit(s)
}

func parseExplicit(s string) (time.Time, error) {
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, formatError(s, "want RFC 3339 timestamp")
}

// FormatInput renders t as a datetime-local form value in the civil zone.
func (c *Converter) FormatInput(t time.Time) string {
	return c.UTCToCivil(t).InputString()
}

// FormatEventDate renders a short label such as "Aug 9 at 11 A.M" or
// "Aug 9 at 7:30 P.M" in the civil zone.
func (c *Converter) FormatEventDate(t time.Time) string {
	local := t.In(c.loc)
	hour, suffix := twelveHour(local.Hour())
	dotted := suffix[:1] + "." + suffix[1:]

	clock := fmt.Sprintf("%d", hour)
	if local.Minute() != 0 {
		clock = fmt.Sprintf("%d:%02d", hour, local.Minute())
	}
	return fmt.Sprintf("%s at %s %s", local.Format("Jan 2"), clock, dotted)
}

package civiltime

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// timeOfDayPattern is the lexical shape accepted for stored operation hours.
var timeOfDayPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])(?::([0-5][0-9]))?$`)

const minutesPerHour = 60

// TimeOfDay is a wall-clock time with no date and no zone.
// HasSeconds records whether the value was written as HH:MM:SS so that
// conversions hand back the same shape they were given.
type TimeOfDay struct {
	Hour       int
	Minute     int
	Second     int
	HasSeconds bool
}

// ParseTimeOfDay parses HH:MM or HH:MM:SS. Anything else is ErrInvalidFormat.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m := timeOfDayPattern.FindStringSubmatch(s)
	if m == nil {
		return TimeOfDay{}, formatError(s, "want HH:MM or HH:MM:SS")
	}

	// The pattern guarantees the numeric groups are in range.
	t := TimeOfDay{Hour: atoi(m[1]), Minute: atoi(m[2])}
	if m[3] != "" {
		t.Second = atoi(m[3])
		t.HasSeconds = true
	}
	return t, nil
}

// MustParseTimeOfDay is ParseTimeOfDay for literals known to be valid.
func MustParseTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// timeOfDayOf extracts the wall clock of t in t's own location.
func timeOfDayOf(t time.Time, withSeconds bool) TimeOfDay {
	return TimeOfDay{
		Hour:       t.Hour(),
		Minute:     t.Minute(),
		Second:     t.Second(),
		HasSeconds: withSeconds,
	}
}

// Minutes returns minutes since midnight, ignoring seconds.
func (t TimeOfDay) Minutes() int {
	return t.Hour*minutesPerHour + t.Minute
}

// String renders HH:MM, or HH:MM:SS when the value carried seconds. The hour
// is always two digits, so a parsed "9:05" renders as "09:05".
func (t TimeOfDay) String() string {
	if t.HasSeconds {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	}
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Display renders a 12-hour clock label such as "2:30 PM".
func (t TimeOfDay) Display() string {
	hour, suffix := twelveHour(t.Hour)
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute, suffix)
}

func twelveHour(h int) (int, string) {
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return h, suffix
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

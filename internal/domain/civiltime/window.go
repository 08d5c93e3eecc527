package civiltime

import "time"

// Window is a business-hours window in civil time. When Close is earlier
// than Open the window crosses midnight into the following civil day.
// Day, when set, pins the day the window opens on.
type Window struct {
	Open    TimeOfDay
	Close   TimeOfDay
	Enabled bool
	Day     *time.Weekday
}

// Overnight reports whether the window spans midnight.
func (w Window) Overnight() bool {
	return w.Close.Minutes() < w.Open.Minutes()
}

// Contains reports whether now falls inside the window. Both bounds are
// inclusive at minute resolution.
func (w Window) Contains(now DateTime) bool {
	if !w.Enabled {
		return false
	}

	nowMin := now.Time.Minutes()
	openMin := w.Open.Minutes()
	closeMin := w.Close.Minutes()

	if !w.Overnight() {
		if w.Day != nil && now.Weekday() != *w.Day {
			return false
		}
		return openMin <= nowMin && nowMin <= closeMin
	}

	if w.Day == nil {
		return nowMin >= openMin || nowMin <= closeMin
	}

	start := *w.Day
	next := (start + 1) % 7
	day := now.Weekday()
	return (day == start && nowMin >= openMin) || (day == next && nowMin <= closeMin)
}

// StatusText renders "Closed", "Open until 11:00 PM" or "Opens at 5:00 PM".
func (w Window) StatusText(now DateTime) string {
	if !w.Enabled {
		return "Closed"
	}
	if w.Contains(now) {
		return "Open until " + w.Close.Display()
	}
	return "Opens at " + w.Open.Display()
}

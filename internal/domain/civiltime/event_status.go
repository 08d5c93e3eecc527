package civiltime

import "time"

// EventStatus classifies a scheduled interval relative to now.
type EventStatus string

const (
	EventUpcoming EventStatus = "upcoming"
	EventCurrent  EventStatus = "current"
	EventEnded    EventStatus = "ended"
)

// IsValid returns true if the status is one of the defined constants.
func (s EventStatus) IsValid() bool {
	switch s {
	case EventUpcoming, EventCurrent, EventEnded:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s EventStatus) String() string {
	return string(s)
}

// EventStatusAt compares instants, which makes the result independent of
// the zone any of them were expressed in. Both ends are inclusive.
func EventStatusAt(start, end, now time.Time) EventStatus {
	switch {
	case now.Before(start):
		return EventUpcoming
	case !now.After(end):
		return EventCurrent
	default:
		return EventEnded
	}
}

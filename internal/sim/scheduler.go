package sim

import (
	"errors"
	"strings"
	"time"
)

// Scheduling validation errors.
var (
	ErrMissingEventFields = errors.New("please fill in all fields")
	ErrBadDuration        = errors.New("duration must be between 15 and 480 minutes")
)

// Event is one scheduled entry.
type Event struct {
	Title       string    `json:"title"`
	At          time.Time `json:"at"`
	DurationMin int       `json:"duration_min"`
}

const (
	// MinEventDuration and MaxEventDuration bound an event's length in
	// minutes.
	MinEventDuration = 15
	MaxEventDuration = 480
	// DefaultEventDuration fills the form when the user leaves it blank.
	DefaultEventDuration = 60
)

// ScheduleEvent validates the form fields and returns the event to append
// to the upcoming list.
func ScheduleEvent(title string, at time.Time, durationMin int) (Event, error) {
	if strings.TrimSpace(title) == "" || at.IsZero() {
		return Event{}, ErrMissingEventFields
	}
	if durationMin == 0 {
		durationMin = DefaultEventDuration
	}
	if durationMin < MinEventDuration || durationMin > MaxEventDuration {
		return Event{}, ErrBadDuration
	}
	return Event{Title: strings.TrimSpace(title), At: at, DurationMin: durationMin}, nil
}

// Describe renders an event the way the upcoming list shows it.
func (ev Event) Describe() string {
	return "📅 " + ev.Title + " - " + ev.At.Format("Jan 2, 2006 3:04 PM")
}

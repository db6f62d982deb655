package app

import (
	"sort"

	"futuristic-aid/internal/sim"
)

// EventList is the persisted upcoming-events list behind the scheduler
// panel.
type EventList struct {
	store  *PrefStore
	events []sim.Event
}

func NewEventList(store *PrefStore) *EventList {
	return &EventList{store: store}
}

// Restore loads persisted events.
func (l *EventList) Restore() error {
	var events []sim.Event
	if _, err := l.store.Load(KeyEvents, &events); err != nil {
		return err
	}
	l.events = events
	return nil
}

// Add appends an event, keeps the list sorted by start time, and persists.
func (l *EventList) Add(ev sim.Event) error {
	l.events = append(l.events, ev)
	sort.Slice(l.events, func(i, j int) bool { return l.events[i].At.Before(l.events[j].At) })
	return l.store.Set(KeyEvents, l.events)
}

// Upcoming returns the events soonest-first.
func (l *EventList) Upcoming() []sim.Event {
	return l.events
}

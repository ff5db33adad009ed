package sim

// EventType distinguishes the two events that drive the simulation.
type EventType int

const (
	// PatientArrival is a new patient walking into the ED.
	PatientArrival EventType = iota
	// BedAvailable fires when a bed's occupant finishes treatment.
	BedAvailable
)

func (t EventType) String() string {
	switch t {
	case PatientArrival:
		return "PATIENT_ARRIVAL"
	case BedAvailable:
		return "BED_AVAILABLE"
	}
	return "UNKNOWN"
}

// Event is one discrete simulation event. Start is the simulation minute the
// event fires; BedID is set only for BedAvailable events.
//
// Identity is by id, but pool ordering compares timestamps only: two distinct
// events in the same minute are equal for ordering purposes and pop in
// insertion order. The pool is a multiset and never deduplicates.
type Event struct {
	ID    int
	Type  EventType
	Start int
	BedID int
}

// EventPool is an unordered multiset of pending events supporting
// earliest-timestamp extraction by linear scan. Ties resolve to the first
// encountered event, which is the earliest inserted.
//
// A binary heap would be the usual choice, but heap sift-up does not preserve
// insertion order among equal timestamps, and that tie-break is part of the
// pool's contract.
type EventPool struct {
	events []*Event
}

// Add inserts an event into the pool.
func (ep *EventPool) Add(ev *Event) {
	ep.events = append(ep.events, ev)
}

// PopNext removes and returns the event with the smallest start timestamp,
// or nil if the pool is empty. The engine treats nil as the termination
// condition of the main loop.
func (ep *EventPool) PopNext() *Event {
	if len(ep.events) == 0 {
		return nil
	}

	minIdx := 0
	for i, ev := range ep.events {
		if ev.Start < ep.events[minIdx].Start {
			minIdx = i
		}
	}

	ev := ep.events[minIdx]
	ep.events = append(ep.events[:minIdx], ep.events[minIdx+1:]...)
	return ev
}

// Len returns the number of pending events.
func (ep *EventPool) Len() int {
	return len(ep.events)
}

// Clear empties the pool.
func (ep *EventPool) Clear() {
	ep.events = nil
}

package sim

import "testing"

func TestEventPool_PopNext_ReturnsEarliest(t *testing.T) {
	// GIVEN a pool with events at minutes 30, 10, 20
	ep := &EventPool{}
	ep.Add(&Event{ID: 1, Type: PatientArrival, Start: 30})
	ep.Add(&Event{ID: 2, Type: PatientArrival, Start: 10})
	ep.Add(&Event{ID: 3, Type: PatientArrival, Start: 20})

	// WHEN events are popped until empty
	var order []int
	for ep.Len() > 0 {
		order = append(order, ep.PopNext().ID)
	}

	// THEN they come out in timestamp order
	want := []int{2, 3, 1}
	for i, id := range order {
		if id != want[i] {
			t.Errorf("pop order[%d]: got event %d, want %d", i, id, want[i])
		}
	}
}

func TestEventPool_PopNext_TiesResolveByInsertionOrder(t *testing.T) {
	// GIVEN two distinct events in the same minute plus a later one
	ep := &EventPool{}
	ep.Add(&Event{ID: 1, Type: BedAvailable, Start: 15, BedID: 1})
	ep.Add(&Event{ID: 2, Type: BedAvailable, Start: 15, BedID: 2})
	ep.Add(&Event{ID: 3, Type: PatientArrival, Start: 40})

	// WHEN the tied minute is drained
	first := ep.PopNext()
	second := ep.PopNext()

	// THEN both events survive (no dedup) and pop in insertion order
	if first.ID != 1 {
		t.Errorf("first tied pop: got event %d, want 1", first.ID)
	}
	if second.ID != 2 {
		t.Errorf("second tied pop: got event %d, want 2", second.ID)
	}
	if ep.Len() != 1 {
		t.Errorf("pool length after tied pops: got %d, want 1", ep.Len())
	}
}

func TestEventPool_PopNext_Empty_ReturnsNil(t *testing.T) {
	// GIVEN an empty pool
	ep := &EventPool{}

	// WHEN PopNext is called
	got := ep.PopNext()

	// THEN it signals termination with nil
	if got != nil {
		t.Errorf("PopNext on empty pool: got %v, want nil", got)
	}
}

func TestEventPool_Clear(t *testing.T) {
	ep := &EventPool{}
	ep.Add(&Event{ID: 1, Type: PatientArrival, Start: 0})
	ep.Clear()
	if ep.Len() != 0 {
		t.Errorf("Clear: pool length got %d, want 0", ep.Len())
	}
}

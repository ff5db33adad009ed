package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceUnit_Occupy_FreeResource_ReservesAtSimTime(t *testing.T) {
	// GIVEN a free unit
	u := NewResourceUnit(1, Nurse)

	// WHEN a reservation is requested at minute 100 for 30 minutes
	offset := u.Occupy(7, 100, 30)

	// THEN the reservation is [100, 130) with no forced delay
	assert.Equal(t, 0, offset)
	require.Len(t, u.Reservations(), 1)
	assert.Equal(t, Reservation{PatientID: 7, Start: 100, Duration: 30}, u.Reservations()[0])
}

func TestResourceUnit_Occupy_BusyResource_ForcesDelay(t *testing.T) {
	// GIVEN a unit busy until minute 130
	u := NewResourceUnit(1, Doctor)
	u.Occupy(1, 100, 30)

	// WHEN a second reservation is requested at minute 100
	offset := u.Occupy(2, 100, 20)

	// THEN it is appended at the end of the first and the offset is the gap
	// to the unit's next free instant
	assert.Equal(t, 30, offset)
	require.Len(t, u.Reservations(), 2)
	assert.Equal(t, Reservation{PatientID: 2, Start: 130, Duration: 20}, u.Reservations()[1])
}

func TestResourceUnit_Occupy_ReservationsNeverOverlap(t *testing.T) {
	// GIVEN a unit receiving overlapping requests from several patients
	u := NewResourceUnit(1, Lab)
	u.Occupy(1, 0, 60)
	u.Occupy(2, 10, 60)
	u.Occupy(3, 5, 15)
	u.Occupy(4, 200, 30)

	// THEN every reservation starts at or after the previous one's end
	reservations := u.Reservations()
	for i := 1; i < len(reservations); i++ {
		if reservations[i].Start < reservations[i-1].End() {
			t.Errorf("reservation %d overlaps previous: starts %d before end %d",
				i, reservations[i].Start, reservations[i-1].End())
		}
	}

	// AND utilization stays in [0,1]
	util := u.Utilization()
	assert.GreaterOrEqual(t, util, 0.0)
	assert.LessOrEqual(t, util, 1.0)
}

func TestResourceUnit_IsOccupied(t *testing.T) {
	u := NewResourceUnit(1, Wardie)
	assert.False(t, u.IsOccupied(0))

	u.Occupy(1, 10, 20)
	assert.True(t, u.IsOccupied(15))
	assert.True(t, u.IsOccupied(29))
	assert.False(t, u.IsOccupied(30))
}

func TestResourceUnit_LastOccupied(t *testing.T) {
	u := NewResourceUnit(1, XRayStaff)
	assert.Equal(t, 0, u.LastOccupied())

	u.Occupy(1, 10, 30)
	assert.Equal(t, 40, u.LastOccupied())

	u.Occupy(2, 40, 10)
	assert.Equal(t, 50, u.LastOccupied())
}

func TestResourceUnit_Utilization(t *testing.T) {
	// Empty ledger reports zero.
	u := NewResourceUnit(1, Doctor)
	assert.Equal(t, 0.0, u.Utilization())

	// [10,40) busy out of 40 minutes total.
	u.Occupy(1, 10, 30)
	assert.InDelta(t, 0.75, u.Utilization(), 1e-9)

	// Back-to-back reservation keeps the ratio exact: 50 busy of 60.
	u.Occupy(2, 40, 20)
	assert.InDelta(t, 50.0/60.0, u.Utilization(), 1e-9)
}

func TestResourceUnit_RemoveReservation(t *testing.T) {
	// GIVEN a ledger with reservations starting at 0 and 30
	u := NewResourceUnit(1, Nurse)
	u.Occupy(1, 0, 30)
	u.Occupy(2, 30, 15)

	// WHEN the reservation starting at 30 is removed
	r, ok := u.RemoveReservation(30)

	// THEN it is returned and gone from the ledger
	require.True(t, ok)
	assert.Equal(t, Reservation{PatientID: 2, Start: 30, Duration: 15}, r)
	require.Len(t, u.Reservations(), 1)

	// AND removing a nonexistent start reports a miss
	_, ok = u.RemoveReservation(999)
	assert.False(t, ok)
}

func TestResourceUnit_Clear(t *testing.T) {
	u := NewResourceUnit(1, Lab)
	u.Occupy(1, 0, 60)
	u.Clear()
	assert.Empty(t, u.Reservations())
	assert.Equal(t, 0, u.LastOccupied())
}

func TestResourceUnit_Clone_IsIndependent(t *testing.T) {
	// GIVEN a unit with one reservation
	u := NewResourceUnit(3, Doctor)
	u.Occupy(1, 0, 20)

	// WHEN it is cloned and the clone gains a reservation
	cp := u.Clone()
	cp.Occupy(2, 20, 10)

	// THEN the original ledger is untouched
	assert.Equal(t, 3, cp.ID())
	assert.Len(t, u.Reservations(), 1)
	assert.Len(t, cp.Reservations(), 2)
}

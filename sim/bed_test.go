package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBedPool_FirstAvailable_OrdersByFreeTimeThenID(t *testing.T) {
	// GIVEN three beds where bed 1 frees latest and beds 2,3 are free now
	gen := &idGen{}
	pool := NewBedPool(3, gen)

	p1 := NewPatient(1)
	bed1 := pool.ByID(1)
	pool.Assign(bed1, p1, 0, 500)
	released := pool.Release(pool.ByID(2), 50) // bumps bed 2's tsToFree to 50
	require.Nil(t, released)

	// WHEN the first available bed is requested
	got := pool.FirstAvailable()

	// THEN it is bed 3: free, and its tsToFree (0) precedes bed 2's (50)
	require.NotNil(t, got)
	assert.Equal(t, 3, got.ID())
}

func TestBedPool_Assign_Release_RoundTrip(t *testing.T) {
	// GIVEN a patient assigned to a bed until minute 120
	gen := &idGen{}
	pool := NewBedPool(1, gen)
	patient := NewPatient(9)
	bed := pool.FirstAvailable()
	require.NotNil(t, bed)

	pool.Assign(bed, patient, 10, 120)

	// THEN the bed is occupied and the patient is in it
	assert.False(t, bed.Available())
	assert.True(t, patient.InBed())
	assert.Equal(t, 120, bed.FreeAt())
	assert.Nil(t, pool.FirstAvailable())

	// WHEN the bed is released at minute 120
	got := pool.Release(bed, 120)

	// THEN the prior occupant is returned and the bed is free again
	assert.Same(t, patient, got)
	assert.True(t, bed.Available())
	assert.Nil(t, bed.Patient())
	assert.Equal(t, 120, bed.FreeAt())
}

func TestBedPool_AtMostOnePatientPerBed(t *testing.T) {
	// An available bed never holds an occupant.
	gen := &idGen{}
	pool := NewBedPool(4, gen)
	pool.Assign(pool.ByID(2), NewPatient(1), 0, 60)

	for _, id := range []int{1, 2, 3, 4} {
		bed := pool.ByID(id)
		require.NotNil(t, bed)
		if bed.Available() {
			assert.Nil(t, bed.Patient(), "available bed %d holds a patient", id)
		}
	}
}

func TestBedPool_ByID_MissReturnsNil(t *testing.T) {
	pool := NewBedPool(2, &idGen{})
	assert.Nil(t, pool.ByID(99))
}

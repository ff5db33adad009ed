package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionedRNG_SameSubsystem_ReturnsCachedInstance(t *testing.T) {
	p := NewPartitionedRNG(NewSimulationKey(42))
	first := p.ForSubsystem(SubsystemTriage)
	second := p.ForSubsystem(SubsystemTriage)
	assert.Same(t, first, second)
}

func TestPartitionedRNG_ArrivalsUsesMasterSeedDirectly(t *testing.T) {
	p := NewPartitionedRNG(NewSimulationKey(42))
	got := p.ForSubsystem(SubsystemArrivals).Int63()
	want := rand.New(rand.NewSource(42)).Int63()
	assert.Equal(t, want, got)
}

func TestPartitionedRNG_SubsystemsAreIsolated(t *testing.T) {
	// Draining one subsystem's stream must not perturb another's.
	a := NewPartitionedRNG(NewSimulationKey(7))
	b := NewPartitionedRNG(NewSimulationKey(7))

	for i := 0; i < 100; i++ {
		a.ForSubsystem(SubsystemAnts).Float64()
	}

	assert.Equal(t, b.ForSubsystem(SubsystemTriage).Int63(), a.ForSubsystem(SubsystemTriage).Int63())
}

func TestPartitionedRNG_Key(t *testing.T) {
	p := NewPartitionedRNG(NewSimulationKey(9))
	assert.Equal(t, NewSimulationKey(9), p.Key())
}

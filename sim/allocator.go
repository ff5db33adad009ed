package sim

import (
	"fmt"
	"math/rand"
)

// Allocator is the plugin contract consumed by the engine. An allocator is
// handed the five resource-kind collections once, then asked to place each
// admitted patient's treatment tasks onto concrete units.
//
// Ownership: the engine transfers the Resources value into the allocator via
// SetResources and does not touch it again until the run ends; Resources()
// hands it back for reporting. This keeps engine and plugin state unaliased
// even when an allocator restructures the collections.
type Allocator interface {
	// SetResources binds the resource collections the allocator will mutate.
	SetResources(res *Resources)

	// AllocateTasks picks a treatment path for the patient, reserves a
	// resource of the required kind for each task in order, records the path
	// on the patient, and returns the total minutes from simTime until the
	// path completes (fixed durations plus any forced delays).
	AllocateTasks(patient *Patient, simTime int) int

	// Resources returns the (possibly restructured) collections for
	// reporting.
	Resources() *Resources

	// Description identifies the algorithm in human-readable form.
	Description() string
}

// allocatorRegistry is the static registry of allocation algorithms,
// selected by the configuration's enumerated index. Runtime plugin
// discovery is deliberately absent; third-party allocators register by
// adding an entry here (or implement the coarser text contract in sim/spi).
var allocatorRegistry = []struct {
	name string
	make func(rng *PartitionedRNG) Allocator
}{
	{"random", func(rng *PartitionedRNG) Allocator {
		return NewRandomAllocator(rng.ForSubsystem(SubsystemAllocator))
	}},
	{"aco-edrt", func(rng *PartitionedRNG) Allocator {
		return NewACOAllocator(rng.ForSubsystem(SubsystemAllocator), rng.ForSubsystem(SubsystemAnts))
	}},
}

// NewAllocatorByIndex instantiates the registered allocator at index,
// drawing the algorithm's randomness from the run's partitioned RNG.
func NewAllocatorByIndex(index int, rng *PartitionedRNG) (Allocator, error) {
	if index < 0 || index >= len(allocatorRegistry) {
		return nil, fmt.Errorf("no allocation algorithm registered at index %d", index)
	}
	return allocatorRegistry[index].make(rng), nil
}

// AllocatorNames returns the registered algorithm names in index order.
func AllocatorNames() []string {
	names := make([]string, len(allocatorRegistry))
	for i, entry := range allocatorRegistry {
		names[i] = entry.name
	}
	return names
}

// randomTreatmentPath picks one of the eight canonical paths uniformly and
// returns a copy the caller may record on a patient.
func randomTreatmentPath(rng *rand.Rand) []Task {
	src := TreatmentPaths[rng.Intn(len(TreatmentPaths))]
	path := make([]Task, len(src))
	copy(path, src)
	return path
}

package sim

import "math/rand"

// RandomAllocator is the baseline: for every task it picks a uniformly
// random unit of the task's kind and reserves it. No look-ahead, no load
// balancing.
type RandomAllocator struct {
	res *Resources
	rng *rand.Rand
}

// NewRandomAllocator creates the baseline allocator.
func NewRandomAllocator(rng *rand.Rand) *RandomAllocator {
	return &RandomAllocator{rng: rng}
}

// SetResources binds the resource collections.
func (a *RandomAllocator) SetResources(res *Resources) {
	a.res = res
}

// Resources returns the bound collections.
func (a *RandomAllocator) Resources() *Resources {
	return a.res
}

// AllocateTasks walks a random treatment path and reserves a random unit per
// task, accumulating fixed durations plus forced delays.
func (a *RandomAllocator) AllocateTasks(patient *Patient, simTime int) int {
	total := 0
	path := randomTreatmentPath(a.rng)

	start := simTime
	for _, task := range path {
		unit := a.randomUnit(task.Kind)
		timeToEnd := task.Duration + unit.Occupy(patient.ID(), start, task.Duration)
		total += timeToEnd
		start += timeToEnd
	}

	patient.SetTreatmentPath(path)

	return total
}

// randomUnit picks a uniformly random unit from the kind's collection.
func (a *RandomAllocator) randomUnit(kind ResourceKind) *ResourceUnit {
	units := a.res.Kind(kind)
	return units[a.rng.Intn(len(units))]
}

// Description identifies the algorithm.
func (a *RandomAllocator) Description() string {
	return "Random Resource First"
}

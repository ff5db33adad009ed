package sim

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// numTriageLevels is the count of discrete triage acuity levels (1-5).
const numTriageLevels = 5

// Simulator is the core object that owns all simulation state: the event
// pool, bed pool, patient queue, allocator, and aggregate statistics. The
// whole run is single-threaded and strictly event-ordered; nothing is shared
// across Simulator instances, so repeated executions are isolated.
type Simulator struct {
	Config Config
	Clock  int

	eventPool    *EventPool
	beds         *BedPool
	patientQueue []*Patient
	died         []*Patient
	discharged   []*Patient
	allocator    Allocator

	queuedPatients  int
	patientArrivals int

	rng *PartitionedRNG
	ids idGen
}

// NewSimulator initialises a run: resources, beds, the arrival schedule, and
// the configured allocation algorithm. Initialisation failure is the only
// fatal path of the process; the caller reports the error and exits
// non-zero.
func NewSimulator(cfg Config, key SimulationKey) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	sim := &Simulator{
		Config:    cfg,
		eventPool: &EventPool{},
		rng:       NewPartitionedRNG(key),
	}

	resources := NewResources(cfg.Doctors, cfg.Nurses, cfg.Wardies, cfg.Labs, cfg.XRayStaff, &sim.ids)
	sim.beds = NewBedPool(cfg.Beds, &sim.ids)

	allocator, err := NewAllocatorByIndex(cfg.AlgorithmIndex, sim.rng)
	if err != nil {
		return nil, err
	}
	allocator.SetResources(resources)
	sim.allocator = allocator

	sim.initEventPool(cfg.MeanArrivalsPerHour, cfg.SimHours)

	logrus.Debugf("simulator ready: %d beds, algorithm %q, %d arrival(s) scheduled",
		cfg.Beds, allocator.Description(), sim.eventPool.Len())

	return sim, nil
}

// initEventPool seeds the pool with one PatientArrival event per generated
// arrival timestamp.
func (sim *Simulator) initEventPool(meanHourArrivals, hours int) {
	sim.eventPool.Clear()
	for _, minute := range sim.arrivals(meanHourArrivals, hours) {
		sim.scheduleEvent(minute, PatientArrival)
	}
}

// Run drives the event loop until the pool is empty. An empty pool is the
// termination condition, not an error.
func (sim *Simulator) Run() {
	for sim.eventPool.Len() > 0 {
		ev := sim.eventPool.PopNext()
		if ev == nil {
			return
		}
		sim.Clock = ev.Start

		logrus.Debugf("[minute %04d] %s", sim.Clock, ev.Type)

		switch ev.Type {
		case PatientArrival:
			sim.handlePatientArrival(ev.Start)
		case BedAvailable:
			sim.handleBedAvailable(ev.Start, ev.BedID)
		default:
			panic(fmt.Sprintf("Simulator.Run: unexpected event type %v", ev.Type))
		}
	}
}

// scheduleEvent adds an event of the given type at the given minute.
func (sim *Simulator) scheduleEvent(minute int, evType EventType) {
	sim.eventPool.Add(&Event{ID: sim.ids.nextEventID(), Type: evType, Start: minute})
}

// scheduleBedEvent adds a BedAvailable event for the given bed.
func (sim *Simulator) scheduleBedEvent(minute, bedID int) {
	sim.eventPool.Add(&Event{ID: sim.ids.nextEventID(), Type: BedAvailable, Start: minute, BedID: bedID})
}

// handlePatientArrival admits the patient to a bed when one is free,
// otherwise queues them, otherwise records a death. Queue overflow is an
// absorbed local policy, never an error.
func (sim *Simulator) handlePatientArrival(simTime int) {
	patient := NewPatient(sim.ids.nextPatientID())
	sim.patientArrivals++

	switch {
	case sim.beds.Available():
		sim.admit(patient, simTime)
	case len(sim.patientQueue) < sim.Config.QueueCapacity:
		patient.Enqueue(simTime)
		sim.patientQueue = append(sim.patientQueue, patient)
		sim.queuedPatients++
	default:
		sim.died = append(sim.died, patient)
		logrus.Warnf("[minute %04d] queue full, patient %d died", simTime, patient.ID())
	}
}

// handleBedAvailable discharges the bed's occupant and, if anyone is
// waiting, admits the next patient from the queue.
func (sim *Simulator) handleBedAvailable(simTime, bedID int) {
	bed := sim.beds.ByID(bedID)
	if bed == nil {
		// Bed ids are minted once at init and never retired; an event naming
		// an unknown bed is a programming error, not a contingency.
		panic(fmt.Sprintf("Simulator.handleBedAvailable: no bed with id %d", bedID))
	}

	patient := sim.beds.Release(bed, simTime)
	patient.LeaveBed(simTime)
	sim.discharged = append(sim.discharged, patient)

	next := sim.patientFromQueue(simTime)
	if next == nil {
		return
	}
	sim.admit(next, simTime)
}

// admit allocates the patient's treatment tasks and binds them to the first
// available bed until the allocator's reported completion time.
func (sim *Simulator) admit(patient *Patient, simTime int) {
	totalDuration := sim.allocator.AllocateTasks(patient, simTime)
	bed := sim.beds.FirstAvailable()
	sim.beds.Assign(bed, patient, simTime, simTime+totalDuration)
	sim.scheduleBedEvent(simTime+totalDuration, bed.ID())
}

// patientFromQueue removes and returns the queued patient with the highest
// weight: queue-stay time multiplied by a fresh triage priority draw per
// candidate. Ties keep the first encountered. Returns nil on an empty queue.
func (sim *Simulator) patientFromQueue(currentTime int) *Patient {
	if len(sim.patientQueue) == 0 {
		return nil
	}

	maxWeight := math.MinInt
	pickIdx := 0
	for i, patient := range sim.patientQueue {
		weight := (currentTime - patient.QueuedAt()) * sim.triagePriority()
		if weight > maxWeight {
			maxWeight = weight
			pickIdx = i
		}
	}

	patient := sim.patientQueue[pickIdx]
	sim.patientQueue = append(sim.patientQueue[:pickIdx], sim.patientQueue[pickIdx+1:]...)
	return patient
}

// triagePriority draws a uniform acuity level in [1, numTriageLevels].
func (sim *Simulator) triagePriority() int {
	return sim.rng.ForSubsystem(SubsystemTriage).Intn(numTriageLevels) + 1
}

// nextPoissonValue produces the next interarrival gap via Knuth's algorithm.
// For mean = +Inf the product underflows to zero and the returned gap
// overshoots any horizon, so a zero arrival rate yields a single arrival.
func (sim *Simulator) nextPoissonValue(mean float64) int {
	rng := sim.rng.ForSubsystem(SubsystemArrivals)

	l := math.Exp(-mean)
	k := 0
	p := 1.0
	for {
		p *= rng.Float64()
		k++
		if p <= l {
			break
		}
	}

	return k - 1
}

// arrivals produces the patient arrival timestamps in minutes for the whole
// horizon. The first arrival is pinned at minute 0.
func (sim *Simulator) arrivals(meanHourArrivals, hours int) []int {
	avgTimeDistance := 60 / float64(meanHourArrivals)

	var minutes []int
	time := 0
	for time < hours*60 {
		minutes = append(minutes, time)
		time += sim.nextPoissonValue(avgTimeDistance)
	}

	return minutes
}

// QueueLen returns the current number of waiting patients.
func (sim *Simulator) QueueLen() int {
	return len(sim.patientQueue)
}

// Allocator exposes the active allocation algorithm.
func (sim *Simulator) Allocator() Allocator {
	return sim.allocator
}

// Beds exposes the bed pool.
func (sim *Simulator) Beds() *BedPool {
	return sim.beds
}

// AvgPatientBedTime returns the mean bed-stay minutes across discharged
// patients, gaps between tasks included. 0 when nobody was discharged.
func (sim *Simulator) AvgPatientBedTime() float64 {
	if len(sim.discharged) == 0 {
		return 0
	}

	sum := 0.0
	for _, patient := range sim.discharged {
		sum += float64(patient.BedTime())
	}
	return sum / float64(len(sim.discharged))
}

// Report assembles the run's aggregated outputs for the presentation layer.
func (sim *Simulator) Report() *Metrics {
	m := &Metrics{
		PatientArrivals:    sim.patientArrivals,
		QueuedPatients:     sim.queuedPatients,
		DiedPatients:       len(sim.died),
		DischargedPatients: len(sim.discharged),
		AvgBedTime:         sim.AvgPatientBedTime(),
	}

	resources := sim.allocator.Resources()
	for _, kind := range AllResourceKinds {
		m.Utilization[kind] = resources.Utilization(kind)
	}

	return m
}

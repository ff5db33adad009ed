// Package sim provides the discrete-event simulation engine for emergency
// department resource contention.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - event.go: the event pool and the two event types that drive the run
//   - reservation.go: the per-unit reservation ledger and its occupancy rules
//   - simulator.go: the event loop, queue/triage policy, and bed handling
//
// # Architecture
//
// Patients arrive on a Poisson schedule, compete for a bounded bed pool, and
// are routed through fixed multi-step treatment paths. Placing a path's
// tasks onto concrete resource units is delegated to an Allocator chosen
// from a static registry:
//   - RandomAllocator: uniformly random unit per task (baseline)
//   - ACOAllocator: greedy earliest-available placement plus periodic
//     schedule compaction via the Ant System (antsystem.go)
//
// The coarser text-based plugin contract for external allocators lives in
// sim/spi.
//
// All randomness flows through a PartitionedRNG (rng.go) so a run is
// reproducible from its seed.
package sim

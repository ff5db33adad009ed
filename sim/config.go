package sim

import "fmt"

// Config groups the simulation parameters consumed by NewSimulator.
// Defaults mirror the reference ED deployment; see DefaultConfig.
type Config struct {
	MeanArrivalsPerHour int // mean patient arrivals per hour (Poisson)
	SimHours            int // total simulated time in hours
	Beds                int // fixed bed pool size
	QueueCapacity       int // arrival queue capacity; overflow is recorded as death
	Doctors             int // doctor units
	Nurses              int // nurse units
	Wardies             int // wardie units
	Labs                int // lab units
	XRayStaff           int // x-ray staff units
	AlgorithmIndex      int // index into the allocator registry
}

// DefaultConfig returns the stock ED configuration.
func DefaultConfig() Config {
	return Config{
		MeanArrivalsPerHour: 20,
		SimHours:            1,
		Beds:                5,
		QueueCapacity:       100,
		Doctors:             4,
		Nurses:              4,
		Wardies:             2,
		Labs:                2,
		XRayStaff:           2,
		AlgorithmIndex:      0,
	}
}

// Validate rejects configurations the engine cannot initialise from.
func (c Config) Validate() error {
	if c.MeanArrivalsPerHour < 0 {
		return fmt.Errorf("mean arrivals per hour must be >= 0, got %d", c.MeanArrivalsPerHour)
	}
	if c.SimHours <= 0 {
		return fmt.Errorf("simulation hours must be > 0, got %d", c.SimHours)
	}
	if c.Beds < 0 || c.QueueCapacity < 0 {
		return fmt.Errorf("beds (%d) and queue capacity (%d) must be >= 0", c.Beds, c.QueueCapacity)
	}
	// The treatment catalog routes tasks to all five kinds, so an empty kind
	// would strand the first allocation that needs it mid-run.
	if c.Doctors <= 0 || c.Nurses <= 0 || c.Wardies <= 0 || c.Labs <= 0 || c.XRayStaff <= 0 {
		return fmt.Errorf("every resource kind needs at least one unit, got doctors=%d nurses=%d wardies=%d labs=%d xray=%d",
			c.Doctors, c.Nurses, c.Wardies, c.Labs, c.XRayStaff)
	}
	if c.AlgorithmIndex < 0 || c.AlgorithmIndex >= len(allocatorRegistry) {
		return fmt.Errorf("algorithm index %d out of range [0,%d)", c.AlgorithmIndex, len(allocatorRegistry))
	}
	return nil
}

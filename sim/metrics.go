package sim

import "fmt"

// Metrics aggregates the reported outputs of one simulation run: patient
// counts, per-kind resource utilization, and the average bed time across
// discharged patients.
type Metrics struct {
	PatientArrivals    int // patients that arrived
	QueuedPatients     int // patients that went through the queue
	DiedPatients       int // patients dropped on queue overflow
	DischargedPatients int // patients that completed treatment

	AvgBedTime float64 // mean minutes in a bed across discharged patients

	// Utilization per resource kind, each in [0,1].
	Utilization [numResourceKinds]float64
}

// Print displays the run's aggregated outputs.
func (m *Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	for _, kind := range AllResourceKinds {
		fmt.Printf("%s utilisation    : %.4f\n", kind, m.Utilization[kind])
	}
	fmt.Printf("Arrived patients     : %d\n", m.PatientArrivals)
	fmt.Printf("Queued patients      : %d\n", m.QueuedPatients)
	fmt.Printf("Died patients        : %d\n", m.DiedPatients)
	fmt.Printf("Discharged patients  : %d\n", m.DischargedPatients)
	fmt.Printf("Average time in beds : %.2f min\n", m.AvgBedTime)
}

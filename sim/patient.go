package sim

// Patient tracks one patient's lifecycle through the ED: created on arrival,
// optionally queued, assigned a bed and a treatment path, and finally
// archived on discharge (or recorded as died if the queue overflows).
type Patient struct {
	id        int
	inBed     bool
	inQueue   bool
	queuedAt  int
	bed       *Bed
	treatPath []Task

	// Bed occupancy interval: set on bed entry, closed on discharge.
	bedStart int
	bedEnd   int
}

// NewPatient creates a patient with an engine-minted id.
func NewPatient(id int) *Patient {
	return &Patient{id: id}
}

// ID returns the patient's unique id.
func (p *Patient) ID() int {
	return p.id
}

// EnterBed binds the patient to a bed and opens the occupancy interval.
func (p *Patient) EnterBed(bed *Bed, simTime int) {
	p.bed = bed
	p.inBed = true
	p.inQueue = false
	p.bedStart = simTime
	p.bedEnd = simTime
}

// LeaveBed unbinds the patient from its bed and closes the occupancy interval.
func (p *Patient) LeaveBed(simTime int) {
	p.bed = nil
	p.inBed = false
	p.bedEnd = simTime
}

// InBed reports whether the patient currently occupies a bed.
func (p *Patient) InBed() bool {
	return p.inBed
}

// InQueue reports whether the patient is waiting in the arrival queue.
func (p *Patient) InQueue() bool {
	return p.inQueue
}

// Enqueue marks the patient as queued at the given simulation time.
func (p *Patient) Enqueue(simTime int) {
	p.queuedAt = simTime
	p.inQueue = true
}

// QueuedAt returns the simulation minute the patient entered the queue.
func (p *Patient) QueuedAt() int {
	return p.queuedAt
}

// BedTime returns the number of minutes spent in a bed, gaps included.
func (p *Patient) BedTime() int {
	return p.bedEnd - p.bedStart
}

// SetTreatmentPath records the task sequence chosen for this patient.
func (p *Patient) SetTreatmentPath(path []Task) {
	p.treatPath = path
}

// TreatmentPath returns the task sequence assigned on allocation, or nil if
// the patient was never treated.
func (p *Patient) TreatmentPath() []Task {
	return p.treatPath
}

package sim

import "sort"

// bedNotOccupied marks an unset occupancy timestamp.
const bedNotOccupied = -1

// Bed is one ED bed: current occupant (nil when free), the minute it was
// occupied, and the minute it is next free. Beds are created once at init
// and never destroyed during a run.
type Bed struct {
	id         int
	patient    *Patient
	tsOccupied int
	tsToFree   int
}

// NewBed creates a free bed with an engine-minted id.
func NewBed(id int) *Bed {
	return &Bed{id: id, tsOccupied: bedNotOccupied}
}

// ID returns the bed's unique id.
func (b *Bed) ID() int {
	return b.id
}

// Patient returns the current occupant, or nil.
func (b *Bed) Patient() *Patient {
	return b.patient
}

// Available reports whether the bed can take a patient: no occupant and the
// occupancy timestamp unset.
func (b *Bed) Available() bool {
	return b.patient == nil && b.tsOccupied == bedNotOccupied
}

// FreeAt returns the minute the bed is next free.
func (b *Bed) FreeAt() int {
	return b.tsToFree
}

// BedPool is the fixed set of ED beds, ordered on demand by
// (time-next-free, id) ascending.
type BedPool struct {
	beds []*Bed
}

// NewBedPool creates count beds with ids minted from gen.
func NewBedPool(count int, gen *idGen) *BedPool {
	pool := &BedPool{}
	for i := 0; i < count; i++ {
		pool.beds = append(pool.beds, NewBed(gen.nextBedID()))
	}
	pool.sortBeds()
	return pool
}

func (p *BedPool) sortBeds() {
	sort.Slice(p.beds, func(i, j int) bool {
		if p.beds[i].tsToFree == p.beds[j].tsToFree {
			return p.beds[i].id < p.beds[j].id
		}
		return p.beds[i].tsToFree < p.beds[j].tsToFree
	})
}

// Len returns the number of beds in the pool.
func (p *BedPool) Len() int {
	return len(p.beds)
}

// Available reports whether at least one bed is free.
func (p *BedPool) Available() bool {
	for _, bed := range p.beds {
		if bed.Available() {
			return true
		}
	}
	return false
}

// FirstAvailable re-sorts the pool by (time-next-free, id) and returns the
// first free bed, or nil if all beds are occupied.
func (p *BedPool) FirstAvailable() *Bed {
	p.sortBeds()
	for _, bed := range p.beds {
		if bed.Available() {
			return bed
		}
	}
	return nil
}

// ByID returns the bed with the given id, or nil. Bed ids are stable for the
// whole run, so a miss indicates a programming error in event bookkeeping.
func (p *BedPool) ByID(id int) *Bed {
	for _, bed := range p.beds {
		if bed.id == id {
			return bed
		}
	}
	return nil
}

// Assign binds the patient to the bed from simTime until freeAt.
func (p *BedPool) Assign(bed *Bed, patient *Patient, simTime, freeAt int) {
	bed.patient = patient
	patient.EnterBed(bed, simTime)
	bed.tsOccupied = simTime
	bed.tsToFree = freeAt
	p.sortBeds()
}

// Release frees the bed at simTime and returns the prior occupant for
// downstream discharge bookkeeping.
func (p *BedPool) Release(bed *Bed, simTime int) *Patient {
	patient := bed.patient
	bed.patient = nil
	bed.tsOccupied = bedNotOccupied
	bed.tsToFree = simTime
	return patient
}

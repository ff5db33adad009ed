package sim

// Reservation is one interval on a resource unit's ledger: the owning
// patient, the start minute, and the duration.
type Reservation struct {
	PatientID int
	Start     int
	Duration  int
}

// End returns the first minute after the reservation.
func (r Reservation) End() int {
	return r.Start + r.Duration
}

// ResourceUnit is a single staff member or equipment slot of one kind with an
// append-ordered reservation ledger. The ledger never overlaps and never
// gap-fills on its own: a reservation requested while the unit is busy is
// pushed to the end of the last reservation. Gap-filling is an optimizer
// responsibility.
type ResourceUnit struct {
	id       int
	kind     ResourceKind
	reserved []Reservation
}

// NewResourceUnit creates an empty unit with an engine-minted id.
func NewResourceUnit(id int, kind ResourceKind) *ResourceUnit {
	return &ResourceUnit{id: id, kind: kind}
}

// ID returns the unit's id, unique within its kind.
func (u *ResourceUnit) ID() int {
	return u.id
}

// Kind returns the resource kind this unit belongs to.
func (u *ResourceUnit) Kind() ResourceKind {
	return u.kind
}

// Occupy reserves the unit for the patient. If the unit is free at simTime
// the reservation starts there and the returned offset is 0. If the unit is
// busy, the reservation is appended at the end of the last one and the offset
// is the forced delay (newStart - simTime) the caller must add to its running
// total.
func (u *ResourceUnit) Occupy(patientID, simTime, duration int) int {
	if u.IsOccupied(simTime) {
		last := u.reserved[len(u.reserved)-1]
		newStart := last.End()
		u.reserved = append(u.reserved, Reservation{PatientID: patientID, Start: newStart, Duration: duration})
		return newStart - simTime
	}

	u.reserved = append(u.reserved, Reservation{PatientID: patientID, Start: simTime, Duration: duration})
	return 0
}

// IsOccupied reports whether the last reservation extends past simTime.
func (u *ResourceUnit) IsOccupied(simTime int) bool {
	if len(u.reserved) == 0 {
		return false
	}
	return u.reserved[len(u.reserved)-1].End() > simTime
}

// LastOccupied returns the end minute of the last reservation, or 0 if the
// ledger is empty.
func (u *ResourceUnit) LastOccupied() int {
	if len(u.reserved) == 0 {
		return 0
	}
	return u.reserved[len(u.reserved)-1].End()
}

// Utilization returns the fraction of time the unit was busy: the sum of
// reservation durations over the end of the last reservation. 0 for an empty
// ledger. In [0,1] by construction since reservations are end-to-end or
// later.
func (u *ResourceUnit) Utilization() float64 {
	if len(u.reserved) == 0 {
		return 0
	}

	durations := 0
	for _, r := range u.reserved {
		durations += r.Duration
	}

	return float64(durations) / float64(u.reserved[len(u.reserved)-1].End())
}

// Reservations returns the ledger for iteration. The returned slice is the
// unit's internal storage -- callers may read it but MUST NOT mutate it.
func (u *ResourceUnit) Reservations() []Reservation {
	return u.reserved
}

// RemoveReservation removes and returns the single reservation whose start
// equals the given minute. The second return value is false if no
// reservation starts there.
func (u *ResourceUnit) RemoveReservation(start int) (Reservation, bool) {
	for i, r := range u.reserved {
		if r.Start == start {
			u.reserved = append(u.reserved[:i], u.reserved[i+1:]...)
			return r, true
		}
	}
	return Reservation{}, false
}

// Clear empties the ledger.
func (u *ResourceUnit) Clear() {
	u.reserved = nil
}

// Clone returns a structural copy of the unit, same id, independent ledger.
func (u *ResourceUnit) Clone() *ResourceUnit {
	cp := &ResourceUnit{id: u.id, kind: u.kind}
	cp.reserved = append(cp.reserved, u.reserved...)
	return cp
}

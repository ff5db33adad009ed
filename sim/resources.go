package sim

import "fmt"

// Resources holds the five resource-kind collections. The engine constructs
// it once and hands ownership to the active allocator; the allocator may
// restructure the collections (the optimizing allocator replaces them after
// each consolidation pass) and the engine reads them back for reporting.
type Resources struct {
	Doctors   []*ResourceUnit
	Nurses    []*ResourceUnit
	Wardies   []*ResourceUnit
	Labs      []*ResourceUnit
	XRayStaff []*ResourceUnit
}

// NewResources builds the per-kind unit collections with ids minted from gen.
func NewResources(doctors, nurses, wardies, labs, xRayStaff int, gen *idGen) *Resources {
	res := &Resources{}
	for i := 0; i < doctors; i++ {
		res.Doctors = append(res.Doctors, NewResourceUnit(gen.nextResourceID(), Doctor))
	}
	for i := 0; i < nurses; i++ {
		res.Nurses = append(res.Nurses, NewResourceUnit(gen.nextResourceID(), Nurse))
	}
	for i := 0; i < wardies; i++ {
		res.Wardies = append(res.Wardies, NewResourceUnit(gen.nextResourceID(), Wardie))
	}
	for i := 0; i < labs; i++ {
		res.Labs = append(res.Labs, NewResourceUnit(gen.nextResourceID(), Lab))
	}
	for i := 0; i < xRayStaff; i++ {
		res.XRayStaff = append(res.XRayStaff, NewResourceUnit(gen.nextResourceID(), XRayStaff))
	}
	return res
}

// Kind returns the unit collection for the given kind. An unknown kind is a
// configuration inconsistency and panics.
func (r *Resources) Kind(kind ResourceKind) []*ResourceUnit {
	switch kind {
	case Doctor:
		return r.Doctors
	case Nurse:
		return r.Nurses
	case Wardie:
		return r.Wardies
	case Lab:
		return r.Labs
	case XRayStaff:
		return r.XRayStaff
	}
	panic(fmt.Sprintf("Resources.Kind: unexpected resource kind %v", kind))
}

// SetKind replaces the unit collection for the given kind.
func (r *Resources) SetKind(kind ResourceKind, units []*ResourceUnit) {
	switch kind {
	case Doctor:
		r.Doctors = units
	case Nurse:
		r.Nurses = units
	case Wardie:
		r.Wardies = units
	case Lab:
		r.Labs = units
	case XRayStaff:
		r.XRayStaff = units
	default:
		panic(fmt.Sprintf("Resources.SetKind: unexpected resource kind %v", kind))
	}
}

// Utilization returns the mean utilization across the kind's units, or 0 for
// an empty collection.
func (r *Resources) Utilization(kind ResourceKind) float64 {
	units := r.Kind(kind)
	if len(units) == 0 {
		return 0
	}

	sum := 0.0
	for _, u := range units {
		sum += u.Utilization()
	}
	return sum / float64(len(units))
}

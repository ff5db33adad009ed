package sim

// idGen mints entity ids for one simulation run. It replaces the
// process-wide static counters a naive port would carry: each Simulator owns
// its own generator, so concurrent independent runs never share state.
// Ids start at 1 within each entity family.
type idGen struct {
	patients  int
	beds      int
	resources int
	events    int
}

func (g *idGen) nextPatientID() int {
	g.patients++
	return g.patients
}

func (g *idGen) nextBedID() int {
	g.beds++
	return g.beds
}

func (g *idGen) nextResourceID() int {
	g.resources++
	return g.resources
}

func (g *idGen) nextEventID() int {
	g.events++
	return g.events
}

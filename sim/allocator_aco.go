package sim

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// endSentinel temporarily marks the synthetic end node while the reservation
// graph is being built; it is renumbered to the maximal real node index
// before the graph is handed to the Ant System.
const endSentinel = math.MaxInt

// nodeRecord maps one graph node back to the reservation it represents.
type nodeRecord struct {
	resourceID int
	patientID  int
	node       int
	start      int
}

// ACOAllocator allocates greedily in real time (earliest-available unit
// first), then after every patient re-optimizes each resource-kind
// collection independently: it rebuilds a graph from the live reservation
// ledgers, extracts tightly-connected reservation chains with the Ant
// System, and consolidates each chain onto a single unit.
type ACOAllocator struct {
	res *Resources
	// pathRNG draws treatment paths; antRNG drives the ant colony. Separate
	// streams keep path choice reproducible across ant-count changes.
	pathRNG *rand.Rand
	antRNG  *rand.Rand
}

// NewACOAllocator creates the optimizing allocator.
func NewACOAllocator(pathRNG, antRNG *rand.Rand) *ACOAllocator {
	return &ACOAllocator{pathRNG: pathRNG, antRNG: antRNG}
}

// SetResources binds the resource collections.
func (a *ACOAllocator) SetResources(res *Resources) {
	a.res = res
}

// Resources returns the bound, possibly restructured collections.
func (a *ACOAllocator) Resources() *Resources {
	return a.res
}

// Description identifies the algorithm.
func (a *ACOAllocator) Description() string {
	return "ACOPath EDRT: Realtime execution, experimental"
}

// AllocateTasks places the patient's tasks in real time, re-optimizes every
// resource kind, and returns the patient's estimated ED time from the
// post-optimization schedules: latest reservation end minus earliest
// reservation start across all kinds. That span, not the naive real-time
// sum, is what the engine uses to schedule the bed release.
func (a *ACOAllocator) AllocateTasks(patient *Patient, simTime int) int {
	a.allocateTasksRealtime(patient, simTime)
	a.acoOptimise()
	return a.estimatedBedTime(patient.ID())
}

// allocateTasksRealtime walks a random treatment path and reserves, for each
// task, the unit of the task's kind with the earliest last-occupied time.
func (a *ACOAllocator) allocateTasksRealtime(patient *Patient, simTime int) int {
	total := 0
	path := randomTreatmentPath(a.pathRNG)

	start := simTime
	for _, task := range path {
		unit := a.earliestAvailableUnit(task.Kind)
		timeToEnd := task.Duration + unit.Occupy(patient.ID(), start, task.Duration)
		total += timeToEnd
		start += timeToEnd
	}

	patient.SetTreatmentPath(path)

	return total
}

// earliestAvailableUnit picks the unit with the smallest LastOccupied, a
// greedy load-balancing heuristic.
func (a *ACOAllocator) earliestAvailableUnit(kind ResourceKind) *ResourceUnit {
	units := a.res.Kind(kind)

	leastEnd := math.MaxInt
	var pick *ResourceUnit
	for _, unit := range units {
		if unit.LastOccupied() < leastEnd {
			leastEnd = unit.LastOccupied()
			pick = unit
		}
	}

	return pick
}

// acoOptimise re-optimizes each resource-kind collection independently:
// graph construction, path extraction, and consolidation back onto units.
func (a *ACOAllocator) acoOptimise() {
	for _, kind := range AllResourceKinds {
		units := a.res.Kind(kind)

		var log []nodeRecord
		edges := a.buildReservationGraph(units, &log)

		// Not enough structure to improve this kind on this pass.
		if countNodes(edges) <= 3 {
			continue
		}

		// Extract up to one chain per unit. Interior nodes of an accepted
		// chain leave the graph, so later chains never reuse a reservation.
		var paths [][]int
		for budget := len(units); budget > 0; budget-- {
			if countNodes(edges) <= 2 {
				break
			}

			as := NewAntSystem(edges, DefaultAnts, DefaultIterations, a.antRNG)
			path := as.Path(0, countNodes(edges)-1)
			if len(path) >= 3 {
				paths = append(paths, path)
				removePath(path, edges)
			}
		}

		a.res.SetKind(kind, consolidate(paths, log, units))
		logrus.Debugf("aco: %s consolidated to %d unit(s)", kind, len(a.res.Kind(kind)))
	}
}

// buildReservationGraph converts a kind's reservation ledgers into the Ant
// System's topology. Each reservation becomes a node reached by an edge from
// the unit's previous reservation (or from the shared start node 0),
// weighted by the gap since the previous reservation's end plus the
// reservation's duration. Every unit's chain closes with an edge to the
// synthetic end node, which is then renumbered to the maximal node index so
// node ids are compact in [0, N]. The log records, per node, the owning
// unit, patient, and reservation start.
func (a *ACOAllocator) buildReservationGraph(units []*ResourceUnit, log *[]nodeRecord) map[graphEdge]float64 {
	edges := make(map[graphEdge]float64)

	strNode := 0
	endNode := 1
	for _, unit := range units {
		reservations := unit.Reservations()
		if len(reservations) == 0 {
			continue
		}

		timestamp := 0
		for _, r := range reservations {
			gap := r.Start - timestamp
			edges[graphEdge{strNode, endNode}] = edgeWeight(gap, r.Duration)

			*log = append(*log, nodeRecord{
				resourceID: unit.ID(),
				patientID:  r.PatientID,
				node:       endNode,
				start:      r.Start,
			})

			endNode++
			strNode = endNode - 1
			timestamp = r.End()
		}

		edges[graphEdge{strNode, endSentinel}] = edgeWeight(0, 0)
		strNode = 0
	}

	if len(edges) == 0 {
		edges[graphEdge{0, endSentinel}] = edgeWeight(0, 0)
	}

	return renumberSentinel(edges, endSentinel)
}

// edgeWeight is the heuristic distance of an edge: gap before the
// reservation plus its duration, floored at 2 when the sum is not positive.
func edgeWeight(gap, duration int) float64 {
	if gap+duration > 0 {
		return float64(gap + duration)
	}
	return 2
}

// countNodes counts the distinct node ids present in the graph.
func countNodes(edges map[graphEdge]float64) int {
	nodes := make(map[int]struct{})
	for edge := range edges {
		nodes[edge.U] = struct{}{}
		nodes[edge.V] = struct{}{}
	}
	return len(nodes)
}

// renumberSentinel rewrites every occurrence of the sentinel node id to the
// maximal compact node index.
func renumberSentinel(edges map[graphEdge]float64, sentinel int) map[graphEdge]float64 {
	next := countNodes(edges) - 1

	out := make(map[graphEdge]float64, len(edges))
	for edge, distance := range edges {
		if edge.U == sentinel {
			edge.U = next
		}
		if edge.V == sentinel {
			edge.V = next
		}
		out[edge] = distance
	}

	return out
}

// removePath deletes an accepted path's interior nodes from the graph (every
// edge ending at one of them) plus the closing edge onto the end node.
func removePath(path []int, edges map[graphEdge]float64) {
	if len(path) <= 2 {
		return
	}

	for i := 1; i < len(path)-1; i++ {
		interior := path[i]
		for edge := range edges {
			if edge.V == interior {
				delete(edges, edge)
			}
		}
	}

	last := path[len(path)-1]
	previous := path[len(path)-2]
	delete(edges, graphEdge{previous, last})
}

// consolidate maps accepted paths back onto resource units: each path's
// reservations are relocated onto the unit owning the path's first
// reservation node, packing the chain onto one physical unit. Relocation
// moves every reservation exactly once, so the (patient, duration) multiset
// across the kind is preserved; only the grouping onto units changes. Units
// left with an empty ledger drop out of the collection.
func consolidate(paths [][]int, log []nodeRecord, units []*ResourceUnit) []*ResourceUnit {
	byNode := make(map[int]nodeRecord, len(log))
	for _, rec := range log {
		byNode[rec.node] = rec
	}
	byID := make(map[int]*ResourceUnit, len(units))
	for _, unit := range units {
		byID[unit.ID()] = unit
	}

	for _, path := range paths {
		if len(path) <= 2 {
			continue
		}

		head, ok := byNode[path[1]]
		if !ok {
			continue
		}
		dest := byID[head.resourceID]

		for i := 2; i < len(path)-1; i++ {
			rec, ok := byNode[path[i]]
			if !ok {
				continue
			}
			src := byID[rec.resourceID]
			if src == nil || src == dest {
				continue
			}

			if r, removed := src.RemoveReservation(rec.start); removed {
				dest.Occupy(r.PatientID, r.Start, r.Duration)
			}
		}
	}

	var out []*ResourceUnit
	for _, unit := range units {
		if len(unit.Reservations()) > 0 {
			out = append(out, unit)
		}
	}
	if len(out) == 0 {
		return units
	}
	return out
}

// estimatedBedTime spans the patient's reservations across all five kinds:
// latest end minus earliest start, or 0 if the patient holds none.
func (a *ACOAllocator) estimatedBedTime(patientID int) int {
	lowMark := math.MaxInt
	highMark := math.MinInt

	for _, kind := range AllResourceKinds {
		for _, unit := range a.res.Kind(kind) {
			for _, r := range unit.Reservations() {
				if r.PatientID != patientID {
					continue
				}
				if r.Start < lowMark {
					lowMark = r.Start
				}
				if r.End() > highMark {
					highMark = r.End()
				}
			}
		}
	}

	if highMark == math.MinInt {
		return 0
	}

	return highMark - lowMark
}

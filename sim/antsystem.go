package sim

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// Ant System parameters. Standard Ant System metaheuristic settings; the
// graph here encodes reservation chains, not physical distance.
const (
	// DefaultAnts is the number of ants unleashed per iteration.
	DefaultAnts = 300

	// DefaultIterations is the number of unleashing iterations.
	DefaultIterations = 100

	// pheroQuantity is the initial pheromone amount per edge, and the
	// numerator of the reinforcement deposit.
	pheroQuantity = 100.0

	// pheroImportance (alpha) weighs pheromone in the transition probability.
	pheroImportance = 1.0

	// heuImportance (beta) weighs the inverse-distance heuristic.
	heuImportance = 5.0

	// evaporationRate is the fraction of pheromone lost per iteration.
	evaporationRate = 0.5

	// noNeighbour signals a dead end during traversal.
	noNeighbour = -1

	// noPheromone marks a non-edge in the pheromone matrix. Unknown edges
	// never become traversable.
	noPheromone = -1.0
)

// graphEdge is a directed edge between two node indices.
type graphEdge struct {
	U, V int
}

// AntSystem finds a frequently-traversed path between two nodes of a
// weighted directed graph by iterated stochastic ant walks with pheromone
// reinforcement.
type AntSystem struct {
	edgeDistance map[graphEdge]float64
	maxNode      int
	ants         int
	iterations   int
	rng          *rand.Rand
}

// pathTally records one distinct successful tour and its frequency.
type pathTally struct {
	nodes []int
	count int
}

// NewAntSystem creates an Ant System over the given topology. Non-positive
// ants or iterations fall back to the defaults. The rng drives every
// transition draw, making runs reproducible under an injected seed.
func NewAntSystem(edgeDistance map[graphEdge]float64, ants, iterations int, rng *rand.Rand) *AntSystem {
	if ants <= 0 {
		ants = DefaultAnts
	}
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	maxNode := 0
	for edge := range edgeDistance {
		if edge.U > maxNode {
			maxNode = edge.U
		}
		if edge.V > maxNode {
			maxNode = edge.V
		}
	}

	return &AntSystem{
		edgeDistance: edgeDistance,
		maxNode:      maxNode,
		ants:         ants,
		iterations:   iterations,
		rng:          rng,
	}
}

// Path returns the node sequence from src to dest with the highest recorded
// frequency across all iterations, or an empty path if no ant ever completed
// the traversal. Any non-empty result starts at src, ends at dest, and has
// length >= 2.
func (as *AntSystem) Path(src, dest int) []int {
	tallies := make(map[string]*pathTally)
	edgePhero := as.createPheroTopo()

	for i := 0; i < as.iterations; i++ {
		for ant := 0; ant < as.ants; ant++ {
			tour := as.unleashAnt(src, dest, edgePhero)
			if len(tour) > 1 {
				key := encodePath(tour)
				if tally, ok := tallies[key]; ok {
					tally.count++
				} else {
					tallies[key] = &pathTally{nodes: tour, count: 1}
				}
			}
		}
		as.updateTrails(tallies, edgePhero)
	}

	return as.convergedPath(tallies)
}

// createPheroTopo builds the pheromone matrix: noPheromone everywhere except
// existing edges, which start at pheroQuantity.
func (as *AntSystem) createPheroTopo() [][]float64 {
	size := as.maxNode + 1
	edgePhero := make([][]float64, size)
	for i := range edgePhero {
		edgePhero[i] = make([]float64, size)
		for j := range edgePhero[i] {
			edgePhero[i][j] = noPheromone
		}
	}

	for edge := range as.edgeDistance {
		edgePhero[edge.U][edge.V] = pheroQuantity
	}

	return edgePhero
}

// unleashAnt walks one ant from src towards dest. The ant dies on a dead end
// or on revisiting a node (cycle). A tour is returned only when it starts at
// src and ends at dest.
func (as *AntSystem) unleashAnt(src, dest int, edgePhero [][]float64) []int {
	trace := []int{src}
	visited := map[int]bool{src: true}

	node := src
	for node != dest {
		neighbour := as.pickNeighbour(node, edgePhero)
		if neighbour == noNeighbour {
			break // dead end
		}
		if visited[neighbour] {
			break // cycle
		}
		trace = append(trace, neighbour)
		visited[neighbour] = true

		node = neighbour
	}

	if len(trace) <= 1 {
		return nil
	}
	if trace[0] == src && trace[len(trace)-1] == dest {
		return trace
	}
	return nil
}

// pickNeighbour draws the next node among the current node's neighbours,
// each with probability proportional to pheromone^alpha * (1/distance)^beta.
func (as *AntSystem) pickNeighbour(node int, edgePhero [][]float64) int {
	neighs := as.availNeighbours(node, edgePhero)
	if len(neighs) == 0 {
		return noNeighbour
	}

	probs := make([]float64, len(neighs))
	for i, neigh := range neighs {
		probs[i] = as.transitionProb(node, neigh, neighs, edgePhero)
	}

	// Uniform draw over the cumulative probability bands.
	value := as.rng.Float64()
	sum := 0.0
	for i, p := range probs {
		sum += p
		if value <= sum {
			return neighs[i]
		}
	}

	// Rounding left the draw above the last band.
	return neighs[len(neighs)-1]
}

// availNeighbours collects nodes reachable from node: a valid pheromone
// entry, self-loops excluded.
func (as *AntSystem) availNeighbours(node int, edgePhero [][]float64) []int {
	var neighbours []int
	for i := range edgePhero[node] {
		if edgePhero[node][i] >= 0 && i != node {
			neighbours = append(neighbours, i)
		}
	}
	return neighbours
}

// transitionProb returns the normalized transition probability from node i
// to node j over the given neighbour set.
func (as *AntSystem) transitionProb(i, j int, neighs []int, edgePhero [][]float64) float64 {
	num := math.Pow(edgePhero[i][j], pheroImportance) * math.Pow(as.heuristic(i, j), heuImportance)

	denom := 0.0
	for _, neigh := range neighs {
		denom += math.Pow(edgePhero[i][neigh], pheroImportance) * math.Pow(as.heuristic(i, neigh), heuImportance)
	}

	return num / denom
}

// heuristic is the inverse edge distance.
func (as *AntSystem) heuristic(i, j int) float64 {
	return 1 / as.edgeDistance[graphEdge{i, j}]
}

// tourLength sums the edge distances along a path.
func (as *AntSystem) tourLength(path []int) float64 {
	if len(path) <= 1 {
		return 0
	}

	sum := 0.0
	for i := 1; i < len(path); i++ {
		sum += as.edgeDistance[graphEdge{path[i-1], path[i]}]
	}
	return sum
}

// updateTrails evaporates all pheromone, then reinforces every edge of each
// recorded successful path by pheroQuantity / tourLength: shorter paths
// receive stronger reinforcement per traversal.
func (as *AntSystem) updateTrails(tallies map[string]*pathTally, edgePhero [][]float64) {
	for i := range edgePhero {
		for j := range edgePhero[i] {
			if edgePhero[i][j] != noPheromone {
				edgePhero[i][j] *= 1 - evaporationRate
			}
		}
	}

	for _, tally := range tallies {
		deposit := pheroQuantity / as.tourLength(tally.nodes)
		for i := 1; i < len(tally.nodes); i++ {
			edgePhero[tally.nodes[i-1]][tally.nodes[i]] += deposit
		}
	}
}

// convergedPath returns the recorded path with the highest frequency, or an
// empty path if no ant ever succeeded.
func (as *AntSystem) convergedPath(tallies map[string]*pathTally) []int {
	var best []int
	bestCount := math.MinInt

	for _, tally := range tallies {
		if tally.count > bestCount {
			bestCount = tally.count
			best = tally.nodes
		}
	}

	return best
}

// encodePath produces a map key for a node sequence.
func encodePath(path []int) string {
	var sb strings.Builder
	for i, node := range path {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(node))
	}
	return sb.String()
}

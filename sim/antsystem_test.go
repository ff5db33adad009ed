package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func antRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestAntSystem_SingleDirectEdge_ConvergesToIt(t *testing.T) {
	// GIVEN a topology with exactly one viable edge src -> dest
	edges := map[graphEdge]float64{
		{0, 1}: 5,
	}
	as := NewAntSystem(edges, 10, 3, antRNG())

	// WHEN a path is requested
	path := as.Path(0, 1)

	// THEN the optimizer converges to that exact path
	assert.Equal(t, []int{0, 1}, path)
}

func TestAntSystem_Path_SatisfiesEndpointContract(t *testing.T) {
	// GIVEN a chain 0 -> 1 -> 2 with a distracting branch
	edges := map[graphEdge]float64{
		{0, 1}: 2,
		{1, 2}: 2,
		{0, 3}: 2, // dead end
	}
	as := NewAntSystem(edges, 50, 10, antRNG())

	// WHEN a path is requested
	path := as.Path(0, 2)

	// THEN any non-empty result starts at src, ends at dest, length >= 2
	require.NotEmpty(t, path)
	assert.Equal(t, 0, path[0])
	assert.Equal(t, 2, path[len(path)-1])
	assert.GreaterOrEqual(t, len(path), 2)
}

func TestAntSystem_UnreachableDest_ReturnsEmptyPath(t *testing.T) {
	// GIVEN a topology where dest has no incoming edges
	edges := map[graphEdge]float64{
		{0, 1}: 3,
	}
	as := NewAntSystem(edges, 20, 5, antRNG())

	// WHEN a path to an unreachable node is requested
	path := as.Path(0, 5)

	// THEN the result is empty
	assert.Empty(t, path)
}

func TestAntSystem_CycleKillsAnt_NoFalsePath(t *testing.T) {
	// GIVEN a pure cycle that never reaches dest
	edges := map[graphEdge]float64{
		{0, 1}: 2,
		{1, 0}: 2,
	}
	as := NewAntSystem(edges, 20, 5, antRNG())

	path := as.Path(0, 2)

	assert.Empty(t, path)
}

func TestAntSystem_DefaultsApplied(t *testing.T) {
	as := NewAntSystem(map[graphEdge]float64{{0, 1}: 1}, 0, 0, antRNG())
	assert.Equal(t, DefaultAnts, as.ants)
	assert.Equal(t, DefaultIterations, as.iterations)
}

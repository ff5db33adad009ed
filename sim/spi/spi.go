// Package spi defines the coarse text-based contract for externally-built
// allocation algorithms. Unlike sim.Allocator, which binds live resource
// collections, this contract exchanges resource state as opaque serialized
// text, so implementations can live outside the process that runs the
// simulation. The serialization format is owned by the integration layer,
// not by this package.
package spi

// Algo is the plugin-facing allocation contract.
type Algo interface {
	// UpdateResources provides the current resource state as serialized
	// text. Called before each Run.
	UpdateResources(state string)

	// Run executes one allocation pass and returns the resulting resource
	// state as serialized text.
	Run() string

	// Repeat reports whether the allocation process wants another pass.
	// False means allocation has finished.
	Repeat() bool

	// Description identifies this algorithm implementation.
	Description() string
}

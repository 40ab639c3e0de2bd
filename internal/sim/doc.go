// Package sim runs Metropolis Monte Carlo sweeps over an Ising lattice.
//
// The package ties the lattice, an energy model and the observable tracker
// together:
//
//   - [Accept] / [Probability]: the Metropolis criterion
//   - [Simulator]: the sweep driver (Idle → Running → Completed)
//   - [Params]: temperature, coupling, field, step count and capture rate
//   - [Result]: final lattice, observable series and snapshot series
//   - [Ensemble]: independent replicas with consecutive seeds
//
// # Example
//
//	l, _ := ising.New(100, ising.FullGrid{D: 2}, ising.NewSource(1))
//	s := sim.New(physics.NewNearestNeighbor(1, 0))
//	result, err := s.Run(ctx, l, sim.Params{Temperature: 2.5, Coupling: 1, Steps: 100, CaptureRate: 2})
//
// # Thread Safety
//
// A Simulator and its Lattice belong to one run and are NOT thread-safe.
// Separate runs share nothing and may execute concurrently; [Ensemble] does
// exactly that.
package sim

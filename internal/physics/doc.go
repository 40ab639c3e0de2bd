// Package physics provides the energy models used by the Metropolis sweep.
//
// Each model implements [Hamiltonian], returning the energy change of
// flipping one spin:
//
//   - [NearestNeighbor]: H = -J·Σ s_i·s_j - h·Σ s_i over the 2·D wrapped
//     neighbors, ΔE = 2·s·(J·Σneighbors + h)
//   - [UnitCoupling]: the spherical-shell form ΔE = 2·s·Σneighbors, with no
//     field term and J fixed at 1
//
// Callers pick one by name with [New]:
//
//	h, err := physics.New(physics.NameNearestNeighbor, 1.0, 0.0)
//	dE := h.DeltaE(lattice, site)
package physics

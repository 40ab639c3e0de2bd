// Package ising provides the lattice primitives for Metropolis simulation of
// the Ising spin model.
//
// The package defines the state that a simulation run mutates and the values
// it hands back to callers:
//
//   - [Lattice]: the mutable grid of ±1 spins for one run
//   - [Mask]: boundary strategy deciding which cells hold and flip spins
//     ([FullGrid] for the periodic square/cubic lattice, [Shell] for the
//     spherical shell inside a cube)
//   - [Snapshot]: an immutable copy of the spins taken at a capture point
//   - [Configuration]: the read-only view shared by Lattice and Snapshot
//   - [Source]: injected randomness (uniform floats and integers)
//
// # Example
//
//	src := ising.NewSource(42)
//	l, err := ising.New(100, ising.FullGrid{D: 2}, src)
//	if err != nil {
//	    return err
//	}
//	c := l.RandomSite()
//	l.Flip(c)
//
// # Thread Safety
//
// A Lattice is owned by a single run and is NOT safe for concurrent use.
// Snapshots never change after capture and may be shared freely.
package ising

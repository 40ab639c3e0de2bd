package ising

// Snapshot is an immutable copy of a lattice taken after a sweep.
type Snapshot struct {
	view
	step int
}

// Step returns the sweep index the snapshot was captured after.
func (s Snapshot) Step() int { return s.step }

// Spins returns a copy of all N^D cell values in row-major order.
func (s Snapshot) Spins() []int8 {
	out := make([]int8, len(s.spins))
	copy(out, s.spins)
	return out
}

// Rows returns the 2D grid as rows, or nil for 3D snapshots.
func (s Snapshot) Rows() [][]int8 {
	if s.geo == nil || s.geo.dim != 2 {
		return nil
	}
	n := s.geo.n
	rows := make([][]int8, n)
	for i := range rows {
		rows[i] = make([]int8, n)
		copy(rows[i], s.spins[i*n:(i+1)*n])
	}
	return rows
}

// Sites returns the eligible coordinates.
func (s Snapshot) Sites() []Coord {
	out := make([]Coord, s.Len())
	for k := range out {
		out[k] = s.Site(k)
	}
	return out
}

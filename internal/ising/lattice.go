package ising

import "fmt"

// Spin values.
const (
	Down int8 = -1
	Up   int8 = 1
)

// Coord addresses a cell. 2D lattices leave the third axis at zero.
type Coord [3]int

// Configuration is the read-only view of spins shared by Lattice and Snapshot.
type Configuration interface {
	Size() int
	Dim() int
	Spin(c Coord) int8
	Neighbors(c Coord, buf []int8) []int8
	NeighborSum(c Coord) int
	// Len is the number of eligible cells.
	Len() int
	// Site returns the k-th eligible cell, 0 <= k < Len().
	Site(k int) Coord
}

// geometry is fixed at construction and shared by a lattice and its snapshots.
type geometry struct {
	n     int
	dim   int
	cells int
	mask  Mask
	// sites holds eligible flat indices; nil when every cell is eligible.
	sites []int
}

func (g *geometry) index(c Coord) int {
	if g.dim == 2 {
		return c[0]*g.n + c[1]
	}
	return (c[0]*g.n+c[1])*g.n + c[2]
}

func (g *geometry) coord(i int) Coord {
	if g.dim == 2 {
		return Coord{i / g.n, i % g.n, 0}
	}
	return Coord{i / (g.n * g.n), (i / g.n) % g.n, i % g.n}
}

func (g *geometry) wrap(v int) int {
	return (v%g.n + g.n) % g.n
}

type view struct {
	geo   *geometry
	spins []int8
}

// Size returns the per-axis length N.
func (v view) Size() int { return v.geo.n }

// Dim returns 2 or 3.
func (v view) Dim() int { return v.geo.dim }

// Mask returns the boundary strategy the lattice was built with.
func (v view) Mask() Mask { return v.geo.mask }

func (v view) Spin(c Coord) int8 { return v.spins[v.geo.index(c)] }

// Neighbors appends the 2·D axis-aligned neighbor spins of c to buf, each axis
// wrapped modulo N. The order is +1 then -1 per axis.
func (v view) Neighbors(c Coord, buf []int8) []int8 {
	for axis := 0; axis < v.geo.dim; axis++ {
		for _, d := range [2]int{1, -1} {
			nc := c
			nc[axis] = v.geo.wrap(c[axis] + d)
			buf = append(buf, v.spins[v.geo.index(nc)])
		}
	}
	return buf
}

// NeighborSum returns the sum of the 2·D wrapped neighbor spins of c.
func (v view) NeighborSum(c Coord) int {
	sum := 0
	for axis := 0; axis < v.geo.dim; axis++ {
		nc := c
		nc[axis] = v.geo.wrap(c[axis] + 1)
		sum += int(v.spins[v.geo.index(nc)])
		nc[axis] = v.geo.wrap(c[axis] - 1)
		sum += int(v.spins[v.geo.index(nc)])
	}
	return sum
}

func (v view) Len() int {
	if v.geo.sites == nil {
		return v.geo.cells
	}
	return len(v.geo.sites)
}

func (v view) Site(k int) Coord {
	if v.geo.sites == nil {
		return v.geo.coord(k)
	}
	return v.geo.coord(v.geo.sites[k])
}

// Eligible reports whether c may be flipped.
func (v view) Eligible(c Coord) bool {
	return v.geo.mask.Eligible(c, v.geo.n)
}

// Lattice is the mutable spin grid of one run.
type Lattice struct {
	view
	src Source
}

// New builds a lattice of size n under mask. Every populated cell gets an
// independent fair ±1 draw from src, in row-major order.
func New(n int, mask Mask, src Source) (*Lattice, error) {
	if mask == nil {
		return nil, InvalidParameter("boundary", nil, "no mask given")
	}
	if n <= 0 {
		return nil, InvalidParameter("size", n, "must be positive")
	}
	if err := mask.Validate(n); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("ising: nil random source")
	}

	geo := &geometry{n: n, dim: mask.Dim(), mask: mask}
	geo.cells = n * n
	if geo.dim == 3 {
		geo.cells *= n
	}

	_, full := mask.(FullGrid)
	if !full {
		geo.sites = make([]int, 0)
	}

	spins := make([]int8, geo.cells)
	for i := range spins {
		c := geo.coord(i)
		if !mask.Populated(c, n) {
			continue
		}
		spins[i] = int8(2*src.Intn(2) - 1)
		if !full && mask.Eligible(c, n) {
			geo.sites = append(geo.sites, i)
		}
	}

	return &Lattice{view: view{geo: geo, spins: spins}, src: src}, nil
}

// Set writes s at c. Callers must only set eligible cells; this is not checked.
func (l *Lattice) Set(c Coord, s int8) {
	l.spins[l.geo.index(c)] = s
}

// Flip negates the spin at c.
func (l *Lattice) Flip(c Coord) {
	i := l.geo.index(c)
	l.spins[i] = -l.spins[i]
}

// RandomSite draws an eligible cell with replacement. The full grid draws
// each axis independently; masked lattices draw from the eligible set.
func (l *Lattice) RandomSite() Coord {
	if l.geo.sites == nil {
		var c Coord
		for axis := 0; axis < l.geo.dim; axis++ {
			c[axis] = l.src.Intn(l.geo.n)
		}
		return c
	}
	return l.geo.coord(l.geo.sites[l.src.Intn(len(l.geo.sites))])
}

// Source returns the random source the lattice draws sites from.
func (l *Lattice) Source() Source { return l.src }

// Snapshot copies the current spins.
func (l *Lattice) Snapshot(step int) Snapshot {
	spins := make([]int8, len(l.spins))
	copy(spins, l.spins)
	return Snapshot{view: view{geo: l.geo, spins: spins}, step: step}
}

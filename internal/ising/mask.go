package ising

import "fmt"

// Mask decides which cells of the N^D cube carry a spin and which of those
// may be flipped. Membership is evaluated once, when the lattice is built.
type Mask interface {
	Name() string
	Dim() int
	// Validate checks the mask against lattice size n.
	Validate(n int) error
	// Populated reports whether the cell holds a spin. Unpopulated cells hold 0.
	Populated(c Coord, n int) bool
	// Eligible reports whether the cell may be flipped. Eligible cells are populated.
	Eligible(c Coord, n int) bool
}

// FullGrid is the periodic square (D=2) or cubic (D=3) lattice where every
// cell is populated and eligible.
type FullGrid struct {
	D int
}

func (g FullGrid) Name() string { return "grid" }
func (g FullGrid) Dim() int     { return g.D }

func (g FullGrid) Validate(n int) error {
	if g.D != 2 && g.D != 3 {
		return InvalidParameter("dim", g.D, "must be 2 or 3")
	}
	return nil
}

func (g FullGrid) Populated(Coord, int) bool { return true }
func (g FullGrid) Eligible(Coord, int) bool  { return true }

// Shell is the spherical boundary inside an N^3 cube. Cells within Radius of
// the center are populated; only the outer band with squared distance in
// ((Radius-1)^2, Radius^2] is flipped, the interior stays frozen.
type Shell struct {
	Radius int
}

func (s Shell) Name() string { return "shell" }
func (s Shell) Dim() int     { return 3 }

func (s Shell) Validate(n int) error {
	if s.Radius < 1 {
		return InvalidParameter("radius", s.Radius, "must be at least 1")
	}
	if 2*s.Radius >= n {
		return InvalidParameter("radius", s.Radius, fmt.Sprintf("must be below half the lattice size %d", n))
	}
	return nil
}

func (s Shell) Populated(c Coord, n int) bool {
	return centerDist2(c, n) <= s.Radius*s.Radius
}

func (s Shell) Eligible(c Coord, n int) bool {
	d := centerDist2(c, n)
	inner := s.Radius - 1
	return d > inner*inner && d <= s.Radius*s.Radius
}

func centerDist2(c Coord, n int) int {
	center := n / 2
	dx, dy, dz := c[0]-center, c[1]-center, c[2]-center
	return dx*dx + dy*dy + dz*dz
}

package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/isingsim/internal/ising"
)

func uniformLattice(t *testing.T, n int, mask ising.Mask, s int8) *ising.Lattice {
	t.Helper()
	l, err := ising.New(n, mask, ising.NewSource(1))
	if err != nil {
		t.Fatalf("new lattice: %v", err)
	}
	for k := 0; k < l.Len(); k++ {
		l.Set(l.Site(k), s)
	}
	return l
}

func TestNearestNeighborDeltaE(t *testing.T) {
	tests := []struct {
		name     string
		j, h     float64
		spin     int8
		expected float64
	}{
		{"aligned up", 1.0, 0.0, ising.Up, 8.0},
		{"aligned down", 1.0, 0.0, ising.Down, 8.0},
		{"field along spin", 1.0, 0.5, ising.Up, 9.0},
		{"field against spin", 1.0, 0.5, ising.Down, 7.0},
		{"antiferro coupling", -1.0, 0.0, ising.Up, -8.0},
		{"weak coupling", 0.25, 0.0, ising.Up, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := uniformLattice(t, 4, ising.FullGrid{D: 2}, tt.spin)
			h := NewNearestNeighbor(tt.j, tt.h)
			if got := h.DeltaE(l, ising.Coord{1, 2}); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("DeltaE = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDeltaEAntisymmetric(t *testing.T) {
	models := []Hamiltonian{
		NewNearestNeighbor(1.0, 0.0),
		NewNearestNeighbor(0.7, -0.3),
		UnitCoupling{},
	}

	for _, h := range models {
		t.Run(h.Name(), func(t *testing.T) {
			l, err := ising.New(6, ising.FullGrid{D: 2}, ising.NewSource(21))
			if err != nil {
				t.Fatal(err)
			}
			for i := 0; i < 50; i++ {
				c := l.RandomSite()
				before := h.DeltaE(l, c)
				l.Flip(c)
				after := h.DeltaE(l, c)
				if math.Abs(before+after) > 1e-12 {
					t.Fatalf("site %v: dE=%v after flip %v, want negation", c, before, after)
				}
			}
		})
	}
}

func TestUnitCouplingIgnoresField(t *testing.T) {
	l := uniformLattice(t, 10, ising.Shell{Radius: 3}, ising.Up)
	c := l.Site(0)

	got := UnitCoupling{}.DeltaE(l, c)
	want := 2 * float64(l.NeighborSum(c))
	if got != want {
		t.Errorf("DeltaE = %v, want %v", got, want)
	}
}

func TestCubeDeltaE(t *testing.T) {
	l := uniformLattice(t, 3, ising.FullGrid{D: 3}, ising.Up)
	h := NewNearestNeighbor(1.0, 0.0)
	if got := h.DeltaE(l, ising.Coord{0, 0, 0}); got != 12.0 {
		t.Errorf("DeltaE = %v, want 12", got)
	}
}

func TestNew(t *testing.T) {
	h, err := New(NameNearestNeighbor, 2.0, 0.1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	params := h.GetParams()
	if params["coupling"] != 2.0 || params["field"] != 0.1 {
		t.Errorf("unexpected params: %v", params)
	}

	if _, err := New(NameUnitCoupling, 5, 5); err != nil {
		t.Fatalf("New unit: %v", err)
	}

	_, err = New("heisenberg", 1, 0)
	if !errors.Is(err, ising.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}

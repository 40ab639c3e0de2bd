package physics

import (
	"fmt"
	"sort"

	"github.com/san-kum/isingsim/internal/ising"
)

const (
	NameNearestNeighbor = "nearest_neighbor"
	NameUnitCoupling    = "unit_coupling"
)

// Hamiltonian computes the energy change of flipping the spin at a site.
type Hamiltonian interface {
	Name() string
	DeltaE(v ising.Configuration, c ising.Coord) float64
	GetParams() map[string]float64
}

var factories = map[string]func(j, h float64) Hamiltonian{
	NameNearestNeighbor: func(j, h float64) Hamiltonian { return &NearestNeighbor{J: j, H: h} },
	NameUnitCoupling:    func(float64, float64) Hamiltonian { return UnitCoupling{} },
}

// New returns the Hamiltonian registered under name. UnitCoupling ignores j and h.
func New(name string, j, h float64) (Hamiltonian, error) {
	fn, ok := factories[name]
	if !ok {
		return nil, ising.InvalidParameter("hamiltonian", name, fmt.Sprintf("unknown model (available: %v)", Names()))
	}
	return fn(j, h), nil
}

// Names lists the registered Hamiltonians in sorted order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

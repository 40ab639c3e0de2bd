package physics

import "github.com/san-kum/isingsim/internal/ising"

// UnitCoupling is the energy change used by the spherical-shell lattice:
// unit coupling and no external field.
type UnitCoupling struct{}

func (UnitCoupling) Name() string { return NameUnitCoupling }

func (UnitCoupling) DeltaE(v ising.Configuration, c ising.Coord) float64 {
	return 2 * float64(v.Spin(c)) * float64(v.NeighborSum(c))
}

// GetParams reports the fixed coupling; the model has no field term.
func (UnitCoupling) GetParams() map[string]float64 {
	return map[string]float64{"coupling": 1}
}

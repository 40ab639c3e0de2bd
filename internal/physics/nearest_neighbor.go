package physics

import "github.com/san-kum/isingsim/internal/ising"

// NearestNeighbor is the ferromagnetic Ising Hamiltonian with coupling J and
// external field H.
type NearestNeighbor struct {
	J float64
	H float64
}

func NewNearestNeighbor(j, h float64) *NearestNeighbor {
	return &NearestNeighbor{J: j, H: h}
}

func (n *NearestNeighbor) Name() string { return NameNearestNeighbor }

func (n *NearestNeighbor) DeltaE(v ising.Configuration, c ising.Coord) float64 {
	s := float64(v.Spin(c))
	return 2 * s * (n.J*float64(v.NeighborSum(c)) + n.H)
}

func (n *NearestNeighbor) GetParams() map[string]float64 {
	return map[string]float64{"coupling": n.J, "field": n.H}
}

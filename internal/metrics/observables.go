package metrics

import "github.com/san-kum/isingsim/internal/ising"

// Observation is one entry of the observable series.
type Observation struct {
	Step          int     `json:"step"`
	Energy        float64 `json:"energy"`
	Magnetization float64 `json:"magnetization"`
}

// TotalEnergy sums -J·s·Σneighbors - h·s over the eligible cells and halves
// the result, since every bond is visited from both ends.
func TotalEnergy(v ising.Configuration, coupling, field float64) float64 {
	energy := 0.0
	for k := 0; k < v.Len(); k++ {
		c := v.Site(k)
		s := float64(v.Spin(c))
		energy += -coupling*s*float64(v.NeighborSum(c)) - field*s
	}
	return energy / 2
}

// MeanMagnetization is the mean spin over the eligible cells.
func MeanMagnetization(v ising.Configuration) float64 {
	n := v.Len()
	if n == 0 {
		return 0
	}
	sum := 0
	for k := 0; k < n; k++ {
		sum += int(v.Spin(v.Site(k)))
	}
	return float64(sum) / float64(n)
}

// Tracker summarizes a configuration with a fixed coupling and field.
type Tracker struct {
	Coupling float64
	Field    float64
}

func NewTracker(coupling, field float64) Tracker {
	return Tracker{Coupling: coupling, Field: field}
}

func (t Tracker) Observe(step int, v ising.Configuration) Observation {
	return Observation{
		Step:          step,
		Energy:        TotalEnergy(v, t.Coupling, t.Field),
		Magnetization: MeanMagnetization(v),
	}
}

package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func feed(m interface{ Observe(Observation) }, obs ...Observation) {
	for _, o := range obs {
		m.Observe(o)
	}
}

func TestMeanEnergyBurnIn(t *testing.T) {
	m := NewMeanEnergy(2)
	feed(m,
		Observation{Step: 0, Energy: 100},
		Observation{Step: 1, Energy: 100},
		Observation{Step: 2, Energy: -4},
		Observation{Step: 3, Energy: -6},
	)
	assert.Equal(t, "mean_energy", m.Name())
	assert.InDelta(t, -5.0, m.Value(), 1e-12)

	m.Reset()
	assert.Equal(t, 0.0, m.Value())
}

func TestMeanAbsMagnetization(t *testing.T) {
	m := NewMeanAbsMagnetization(0)
	feed(m,
		Observation{Step: 0, Magnetization: 0.5},
		Observation{Step: 1, Magnetization: -0.5},
	)
	assert.InDelta(t, 0.5, m.Value(), 1e-12)
}

func TestSpecificHeat(t *testing.T) {
	c := NewSpecificHeat(2.0, 4, 0)
	assert.Equal(t, 0.0, c.Value(), "needs two samples")

	feed(c,
		Observation{Step: 0, Energy: -2},
		Observation{Step: 1, Energy: 2},
	)
	// sample variance 8, / (T²=4 · 4 sites)
	assert.InDelta(t, 0.5, c.Value(), 1e-12)
}

func TestSusceptibility(t *testing.T) {
	x := NewSusceptibility(0.5, 10, 1)
	feed(x,
		Observation{Step: 0, Magnetization: 5},
		Observation{Step: 1, Magnetization: 0.2},
		Observation{Step: 2, Magnetization: -0.4},
	)
	// |m| = 0.2, 0.4 -> sample variance 0.02
	assert.InDelta(t, 10*0.02/0.5, x.Value(), 1e-12)

	x.Reset()
	assert.Equal(t, 0.0, x.Value())
}

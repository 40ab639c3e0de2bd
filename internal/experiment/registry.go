package experiment

import (
	"fmt"

	"github.com/san-kum/isingsim/internal/config"
	"github.com/san-kum/isingsim/internal/ising"
	"github.com/san-kum/isingsim/internal/metrics"
	"github.com/san-kum/isingsim/internal/physics"
	"github.com/san-kum/isingsim/internal/sim"
)

// Registry resolves energy models by name. Boundary masks come from
// config.Config.Mask.
type Registry struct {
	hamiltonians map[string]func(j, h float64) (physics.Hamiltonian, error)
}

func NewRegistry() *Registry {
	r := &Registry{
		hamiltonians: make(map[string]func(float64, float64) (physics.Hamiltonian, error)),
	}

	for _, name := range physics.Names() {
		name := name
		r.hamiltonians[name] = func(j, h float64) (physics.Hamiltonian, error) {
			return physics.New(name, j, h)
		}
	}

	return r
}

func (r *Registry) GetHamiltonian(name string, j, h float64) (physics.Hamiltonian, error) {
	fn, ok := r.hamiltonians[name]
	if !ok {
		return nil, ising.InvalidParameter("hamiltonian", name, fmt.Sprintf("unknown model (available: %v)", physics.Names()))
	}
	return fn(j, h)
}

func (r *Registry) ListModels() []string {
	return config.Models()
}

// DefaultMetrics returns the thermodynamic summaries recorded for every run.
func (r *Registry) DefaultMetrics(cfg *config.Config, sites int) []sim.Metric {
	return []sim.Metric{
		metrics.NewMeanEnergy(cfg.BurnIn),
		metrics.NewMeanAbsMagnetization(cfg.BurnIn),
		metrics.NewSpecificHeat(cfg.Temperature, sites, cfg.BurnIn),
		metrics.NewSusceptibility(cfg.Temperature, sites, cfg.BurnIn),
	}
}
